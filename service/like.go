package service

import (
	"context"
	"errors"
	"net/http"

	"promptbox/dao"
	"promptbox/pkg/response"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// Toggle 翻转点赞状态，返回翻转后的状态
	Toggle(ctx context.Context, userID, promptID int64) (bool, error)
}

type LikeService struct {
	LikeDAO   *dao.PromptLikeDAO
	PromptDAO *dao.PromptDAO
}

func (s *LikeService) Toggle(ctx context.Context, userID, promptID int64) (bool, error) {
	prompt, err := s.PromptDAO.GetActiveByID(ctx, promptID)
	if err != nil {
		return false, err
	}
	if prompt == nil {
		return false, response.NewError(http.StatusNotFound, "提示词不存在")
	}
	if prompt.UserID == userID {
		return false, response.NewError(http.StatusBadRequest, "不能点赞自己的提示词")
	}

	existing, err := s.LikeDAO.GetByPromptUser(ctx, promptID, userID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if _, err := s.LikeDAO.Remove(ctx, promptID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.LikeDAO.Add(ctx, promptID, userID); err != nil {
		// 并发下重复插入视为已点赞，计数由唯一键保护不会重复累加
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
