package service

import (
	"context"
	"errors"
	"net/http"

	"promptbox/dao"
	"promptbox/pkg/response"

	"gorm.io/gorm"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	// Toggle 翻转收藏状态，返回翻转后的状态
	Toggle(ctx context.Context, userID, promptID int64) (bool, error)
}

type FavoriteService struct {
	FavoriteDAO *dao.PromptFavoriteDAO
	PromptDAO   *dao.PromptDAO
}

func (s *FavoriteService) Toggle(ctx context.Context, userID, promptID int64) (bool, error) {
	prompt, err := s.PromptDAO.GetActiveByID(ctx, promptID)
	if err != nil {
		return false, err
	}
	if prompt == nil {
		return false, response.NewError(http.StatusNotFound, "提示词不存在")
	}
	if prompt.UserID == userID {
		return false, response.NewError(http.StatusBadRequest, "不能收藏自己的提示词")
	}

	existing, err := s.FavoriteDAO.GetByPromptUser(ctx, promptID, userID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if _, err := s.FavoriteDAO.Remove(ctx, promptID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.FavoriteDAO.Add(ctx, promptID, userID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
