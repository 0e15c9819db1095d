package models

import (
	"time"
)

// PromptLike 点赞记录，存在即点赞，(prompt_id, user_id) 唯一
type PromptLike struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	PromptID  int64     `gorm:"column:prompt_id;not null;uniqueIndex:uk_prompt_user" json:"prompt_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_prompt_user;index:idx_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (l PromptLike) TableName() string {
	return "prompt_likes"
}
