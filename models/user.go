package models

import (
	"time"
)

// 用户邮箱绑定状态
const (
	UserStateUnbound int8 = 0 // 未绑定邮箱
	UserStateBound   int8 = 1 // 已绑定邮箱
)

type User struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_username" json:"username"`
	Email        *string   `gorm:"column:email;type:varchar(100);uniqueIndex:uk_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	State        int8      `gorm:"column:state;not null;default:0" json:"state"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (u User) TableName() string {
	return "users"
}
