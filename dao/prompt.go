package dao

import (
	"context"

	"promptbox/models"

	"gorm.io/gorm"
)

// 提示词冗余计数列
const (
	ColViewCount     = "view_count"
	ColLikeCount     = "like_count"
	ColFavoriteCount = "favorite_count"
)

type PromptDAO struct {
	Repo[models.Prompt]
}

func NewPromptDAO(db *gorm.DB) *PromptDAO {
	return &PromptDAO{Repo: NewRepo[models.Prompt](db)}
}

// incrPromptCounter 计数相对增减，直接落在存储层，避免读改写丢更新；下限为 0
func incrPromptCounter(tx *gorm.DB, promptID int64, column string, delta int64) error {
	return tx.Model(&models.Prompt{}).
		Where("id = ?", promptID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta)).Error
}

// GetActiveByID 查询未删除的提示词，查不到返回 nil
func (d *PromptDAO) GetActiveByID(ctx context.Context, id int64) (*models.Prompt, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND state = ?", id, models.PromptStateActive)
}

// GetOwnedActive 查询属于指定用户且未删除的提示词
func (d *PromptDAO) GetOwnedActive(ctx context.Context, id int64, userID int64) (*models.Prompt, error) {
	return d.Repo.FindByWhere(ctx, "id = ? AND user_id = ? AND state = ?", id, userID, models.PromptStateActive)
}

// ListActive 查询全部未删除提示词，按创建时间倒序
func (d *PromptDAO) ListActive(ctx context.Context, limit, offset int) ([]*models.Prompt, error) {
	var prompts []*models.Prompt
	err := d.Db.WithContext(ctx).
		Where("state = ?", models.PromptStateActive).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&prompts).Error
	return prompts, err
}

func (d *PromptDAO) CountActive(ctx context.Context) (int64, error) {
	return d.Repo.Count(ctx, "state = ?", models.PromptStateActive)
}

// ListByUser 查询指定用户的未删除提示词
func (d *PromptDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Prompt, error) {
	var prompts []*models.Prompt
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND state = ?", userID, models.PromptStateActive).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&prompts).Error
	return prompts, err
}

func (d *PromptDAO) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.Count(ctx, "user_id = ? AND state = ?", userID, models.PromptStateActive)
}

// ListLikedByUser 查询用户点赞过的提示词，按点赞时间倒序
func (d *PromptDAO) ListLikedByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Prompt, error) {
	var prompts []*models.Prompt
	err := d.Db.WithContext(ctx).
		Joins("JOIN prompt_likes ON prompt_likes.prompt_id = prompts.id").
		Where("prompt_likes.user_id = ? AND prompts.state = ?", userID, models.PromptStateActive).
		Order("prompt_likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&prompts).Error
	return prompts, err
}

func (d *PromptDAO) CountLikedByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Prompt{}).
		Joins("JOIN prompt_likes ON prompt_likes.prompt_id = prompts.id").
		Where("prompt_likes.user_id = ? AND prompts.state = ?", userID, models.PromptStateActive).
		Count(&count).Error
	return count, err
}

// ListFavoritedByUser 查询用户收藏过的提示词，按收藏时间倒序
func (d *PromptDAO) ListFavoritedByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Prompt, error) {
	var prompts []*models.Prompt
	err := d.Db.WithContext(ctx).
		Joins("JOIN prompt_favorites ON prompt_favorites.prompt_id = prompts.id").
		Where("prompt_favorites.user_id = ? AND prompts.state = ?", userID, models.PromptStateActive).
		Order("prompt_favorites.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&prompts).Error
	return prompts, err
}

func (d *PromptDAO) CountFavoritedByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Prompt{}).
		Joins("JOIN prompt_favorites ON prompt_favorites.prompt_id = prompts.id").
		Where("prompt_favorites.user_id = ? AND prompts.state = ?", userID, models.PromptStateActive).
		Count(&count).Error
	return count, err
}

// UpdateByID 部分字段更新
func (d *PromptDAO) UpdateByID(ctx context.Context, id int64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Prompt{}).
		Where("id = ?", id).
		Updates(data).Error
}

// SoftDelete 软删除，行保留
func (d *PromptDAO) SoftDelete(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Prompt{}).
		Where("id = ?", id).
		Update("state", models.PromptStateDeleted).Error
}
