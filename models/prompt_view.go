package models

import (
	"time"
)

// PromptView 浏览记录，(prompt_id, ip_address) 唯一，IP 维度去重
type PromptView struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	PromptID  int64     `gorm:"column:prompt_id;not null;uniqueIndex:uk_prompt_ip" json:"prompt_id"`
	UserID    *int64    `gorm:"column:user_id" json:"user_id"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45);not null;uniqueIndex:uk_prompt_ip" json:"ip_address"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (v PromptView) TableName() string {
	return "prompt_views"
}
