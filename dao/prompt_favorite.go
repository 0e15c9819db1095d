package dao

import (
	"context"

	"promptbox/models"

	"gorm.io/gorm"
)

type PromptFavoriteDAO struct {
	Repo[models.PromptFavorite]
}

func NewPromptFavoriteDAO(db *gorm.DB) *PromptFavoriteDAO {
	return &PromptFavoriteDAO{Repo: NewRepo[models.PromptFavorite](db)}
}

// GetByPromptUser 查询指定用户对指定提示词的收藏记录
func (d *PromptFavoriteDAO) GetByPromptUser(ctx context.Context, promptID int64, userID int64) (*models.PromptFavorite, error) {
	return d.Repo.FindByWhere(ctx, "prompt_id = ? AND user_id = ?", promptID, userID)
}

// Add 插入收藏记录并加计数，同一事务提交
func (d *PromptFavoriteDAO) Add(ctx context.Context, promptID int64, userID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fav := models.PromptFavorite{PromptID: promptID, UserID: userID}
		if err := tx.Create(&fav).Error; err != nil {
			return err
		}
		return incrPromptCounter(tx, promptID, ColFavoriteCount, 1)
	})
}

// Remove 删除收藏记录并减计数，同一事务提交
func (d *PromptFavoriteDAO) Remove(ctx context.Context, promptID int64, userID int64) (bool, error) {
	removed := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("prompt_id = ? AND user_id = ?", promptID, userID).Delete(&models.PromptFavorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return incrPromptCounter(tx, promptID, ColFavoriteCount, -1)
	})
	return removed, err
}

// FilterFavoritedIDs 从给定提示词里筛出用户收藏过的
func (d *PromptFavoriteDAO) FilterFavoritedIDs(ctx context.Context, userID int64, promptIDs []int64) (map[int64]struct{}, error) {
	favorited := make(map[int64]struct{}, len(promptIDs))
	if len(promptIDs) == 0 {
		return favorited, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.PromptFavorite{}).
		Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).
		Pluck("prompt_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		favorited[id] = struct{}{}
	}
	return favorited, nil
}
