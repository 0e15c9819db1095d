package dao

import (
	"context"

	"promptbox/models"

	"gorm.io/gorm"
)

type PromptLikeDAO struct {
	Repo[models.PromptLike]
}

func NewPromptLikeDAO(db *gorm.DB) *PromptLikeDAO {
	return &PromptLikeDAO{Repo: NewRepo[models.PromptLike](db)}
}

// GetByPromptUser 查询指定用户对指定提示词的点赞记录
func (d *PromptLikeDAO) GetByPromptUser(ctx context.Context, promptID int64, userID int64) (*models.PromptLike, error) {
	return d.Repo.FindByWhere(ctx, "prompt_id = ? AND user_id = ?", promptID, userID)
}

// Add 插入点赞记录并加计数，同一事务提交
// 并发重复点赞由 (prompt_id, user_id) 唯一键仲裁，冲突时整个事务回滚
func (d *PromptLikeDAO) Add(ctx context.Context, promptID int64, userID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := models.PromptLike{PromptID: promptID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return incrPromptCounter(tx, promptID, ColLikeCount, 1)
	})
}

// Remove 删除点赞记录并减计数，同一事务提交
// 记录不存在时不动计数，返回 false
func (d *PromptLikeDAO) Remove(ctx context.Context, promptID int64, userID int64) (bool, error) {
	removed := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("prompt_id = ? AND user_id = ?", promptID, userID).Delete(&models.PromptLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return incrPromptCounter(tx, promptID, ColLikeCount, -1)
	})
	return removed, err
}

// FilterLikedIDs 从给定提示词里筛出用户点赞过的
func (d *PromptLikeDAO) FilterLikedIDs(ctx context.Context, userID int64, promptIDs []int64) (map[int64]struct{}, error) {
	liked := make(map[int64]struct{}, len(promptIDs))
	if len(promptIDs) == 0 {
		return liked, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.PromptLike{}).
		Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).
		Pluck("prompt_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = struct{}{}
	}
	return liked, nil
}
