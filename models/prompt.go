package models

import (
	"time"
)

// 提示词状态
const (
	PromptStateDeleted int8 = 0 // 已删除（软删除）
	PromptStateActive  int8 = 1 // 正常
)

// Prompt 提示词主表，计数列是冗余缓存，行数以关联表为准
type Prompt struct {
	ID            int64     `gorm:"column:id;primary_key" json:"id"`
	UserID        int64     `gorm:"column:user_id;not null;index:idx_userid_state" json:"user_id"`
	Title         string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	State         int8      `gorm:"column:state;not null;default:1;index:idx_userid_state" json:"state"`
	ViewCount     int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	LikeCount     int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	FavoriteCount int64     `gorm:"column:favorite_count;not null;default:0" json:"favorite_count"`
	CreatedAt     time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (p Prompt) TableName() string {
	return "prompts"
}
