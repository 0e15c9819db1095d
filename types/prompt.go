package types

import (
	"time"

	"promptbox/models"
)

// 分页默认值
const (
	DefaultPage     int = 1
	DefaultPageSize int = 10
	MaxPageSize     int = 100
)

// CreatePromptRequest 创建提示词请求
type CreatePromptRequest struct {
	Title   string `json:"title" binding:"required,max=200"`     // 标题
	Content string `json:"content" binding:"required,max=30000"` // 正文
}

// UpdatePromptRequest 更新提示词请求，nil 字段不改
type UpdatePromptRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Content *string `json:"content" binding:"omitempty,max=30000"`
}

// PageQuery 分页参数，page 从 1 开始
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// Normalize 填默认值
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PromptResponse 提示词信息，对外字段统一 lowerCamelCase
type PromptResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	State         int8      `json:"state"`
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	FavoriteCount int64     `json:"favoriteCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	IsLiked       bool      `json:"isLiked"`
	IsFavorited   bool      `json:"isFavorited"`
}

// PromptListResponse 分页列表
type PromptListResponse struct {
	List     []*PromptResponse `json:"list"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// StatsResponse 全站统计
type StatsResponse struct {
	TotalPrompts int64 `json:"totalPrompts"`
	TotalViews   int64 `json:"totalViews"`
}

func NewPromptResponse(p *models.Prompt, isLiked, isFavorited bool) *PromptResponse {
	return &PromptResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Content:       p.Content,
		State:         p.State,
		ViewCount:     p.ViewCount,
		LikeCount:     p.LikeCount,
		FavoriteCount: p.FavoriteCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		IsLiked:       isLiked,
		IsFavorited:   isFavorited,
	}
}
