package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"promptbox/config"
	"promptbox/dao"
	"promptbox/models"
	"promptbox/pkg/jwt"
	"promptbox/pkg/response"
	"promptbox/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
	GetUser(ctx context.Context, userID int64) (*types.UserResponse, error)
	BindEmail(ctx context.Context, userID int64, req *types.BindEmailRequest) error
	ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error
}

type UserService struct {
	UserDAO *dao.Users
	Verify  IVerifyService
	Config  *config.Config
}

func (s *UserService) issueToken(userID int64) (string, error) {
	expire := time.Duration(s.Config.Jwt.GetExpireDays()) * 24 * time.Hour
	return jwt.GenerateToken([]byte(s.Config.Jwt.Secret), userID, expire)
}

func (s *UserService) tokenResponse(user *models.User) (*types.TokenResponse, error) {
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        types.NewUserResponse(user),
	}, nil
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(http.StatusBadRequest, "用户名已存在")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		State:        models.UserStateUnbound,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		// 并发注册同名用户时唯一键兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusBadRequest, "用户名已存在")
		}
		return nil, err
	}

	return s.tokenResponse(user)
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, response.NewError(http.StatusBadRequest, "用户名或密码错误")
	}

	return s.tokenResponse(user)
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*types.UserResponse, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(http.StatusNotFound, "用户不存在")
	}
	resp := types.NewUserResponse(user)
	return &resp, nil
}

// BindEmail 消费验证码后绑定邮箱
// 邮箱已被其他账号占用时失败
func (s *UserService) BindEmail(ctx context.Context, userID int64, req *types.BindEmailRequest) error {
	ok, err := s.Verify.Consume(ctx, req.Email, req.Code)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(http.StatusBadRequest, "验证码错误或已过期")
	}

	holder, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if holder != nil && holder.ID != userID {
		return response.NewError(http.StatusBadRequest, "该邮箱已被绑定")
	}

	return s.UserDAO.UpdateById(ctx, userID, map[string]any{
		"email": req.Email,
		"state": models.UserStateBound,
	})
}

// ResetPassword 验证码即身份凭证，不要求登录态
func (s *UserService) ResetPassword(ctx context.Context, req *types.ResetPasswordRequest) error {
	ok, err := s.Verify.Consume(ctx, req.Email, req.Code)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(http.StatusBadRequest, "验证码错误或已过期")
	}

	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewError(http.StatusNotFound, "该邮箱未绑定任何账户")
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.UserDAO.UpdateById(ctx, user.ID, map[string]any{
		"password_hash": hash,
	})
}
