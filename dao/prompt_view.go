package dao

import (
	"context"
	"errors"

	"promptbox/models"

	"gorm.io/gorm"
)

type PromptViewDAO struct {
	Repo[models.PromptView]
}

func NewPromptViewDAO(db *gorm.DB) *PromptViewDAO {
	return &PromptViewDAO{Repo: NewRepo[models.PromptView](db)}
}

// Record 记录一次浏览并加计数，同一事务提交
// 靠 (prompt_id, ip_address) 唯一键仲裁并发：冲突说明该 IP 已浏览过，
// 事务回滚，计数不动，返回 false
func (d *PromptViewDAO) Record(ctx context.Context, promptID int64, userID *int64, ip string) (bool, error) {
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		view := models.PromptView{
			PromptID:  promptID,
			UserID:    userID,
			IPAddress: ip,
		}
		if err := tx.Create(&view).Error; err != nil {
			return err
		}
		return incrPromptCounter(tx, promptID, ColViewCount, 1)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CountAll 浏览记录总数
func (d *PromptViewDAO) CountAll(ctx context.Context) (int64, error) {
	return d.Repo.Count(ctx, "1 = 1")
}
