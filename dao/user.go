package dao

import (
	"context"

	"promptbox/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByID 根据ID查询，查不到返回 nil
func (u *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(data).Error
}
