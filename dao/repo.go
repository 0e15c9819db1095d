package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO，按表内嵌到各自的 DAO 中
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindByWhere 按条件查询单条记录，查不到返回 nil
func (r Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var item T
	res := r.Db.WithContext(ctx).Where(query, args...).Limit(1).Find(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// IsExist 判断记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count 按条件统计
func (r Repo[T]) Count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count, err
}

// Create 插入记录
func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}
