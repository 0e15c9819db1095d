package handler

import (
	"net/http"

	"promptbox/config"
	"promptbox/dao"
	"promptbox/middleware"
	"promptbox/pkg/context"
	"promptbox/pkg/response"
	"promptbox/service"
	"promptbox/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config        *config.Config
	UserService   service.IUserService
	VerifyService service.IVerifyService
	UserDAO       *dao.Users
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UserDAO)
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/send-code", context.Wrap(h.SendCode))
	g.POST("/bind-email", authorize, context.Wrap(h.BindEmail))
	g.POST("/reset-password", context.Wrap(h.ResetPassword))
	g.POST("/logout", authorize, context.Wrap(h.Logout))
	g.GET("/user", authorize, context.Wrap(h.GetUser))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) SendCode(c *gin.Context) error {
	var req types.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.VerifyService.SendCode(c.Request.Context(), req.Email); err != nil {
		return response.NewError(http.StatusInternalServerError, "发送失败: "+err.Error())
	}
	response.SuccessMsg(c, "验证码已发送")
	return nil
}

func (h *Auth) BindEmail(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.BindEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.UserService.BindEmail(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.SuccessMsg(c, "邮箱绑定成功")
	return nil
}

func (h *Auth) ResetPassword(c *gin.Context) error {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.UserService.ResetPassword(c.Request.Context(), &req); err != nil {
		return err
	}
	response.SuccessMsg(c, "密码重置成功")
	return nil
}

// Logout 令牌无状态，客户端丢弃即可
func (h *Auth) Logout(c *gin.Context) error {
	response.SuccessMsg(c, "退出成功")
	return nil
}

func (h *Auth) GetUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	user, err := h.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
