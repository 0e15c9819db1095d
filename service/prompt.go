package service

import (
	"context"
	"net/http"
	"time"

	"promptbox/dao"
	"promptbox/models"
	"promptbox/pkg/response"
	"promptbox/pkg/snowflake"
	"promptbox/types"
)

var _ IPromptService = (*PromptService)(nil)

type IPromptService interface {
	Create(ctx context.Context, userID int64, req *types.CreatePromptRequest) (*types.PromptResponse, error)
	Update(ctx context.Context, userID, promptID int64, req *types.UpdatePromptRequest) (*types.PromptResponse, error)
	Delete(ctx context.Context, userID, promptID int64) error
	Get(ctx context.Context, promptID, viewerID int64, ip string) (*types.PromptResponse, error)
	List(ctx context.Context, viewerID int64, page *types.PageQuery) (*types.PromptListResponse, error)
	ListMine(ctx context.Context, userID int64, page *types.PageQuery) (*types.PromptListResponse, error)
	ListLiked(ctx context.Context, userID int64, page *types.PageQuery) (*types.PromptListResponse, error)
	ListFavorited(ctx context.Context, userID int64, page *types.PageQuery) (*types.PromptListResponse, error)
}

type PromptService struct {
	PromptDAO   *dao.PromptDAO
	ViewDAO     *dao.PromptViewDAO
	LikeDAO     *dao.PromptLikeDAO
	FavoriteDAO *dao.PromptFavoriteDAO
}

func (s *PromptService) Create(ctx context.Context, userID int64, req *types.CreatePromptRequest) (*types.PromptResponse, error) {
	prompt := &models.Prompt{
		ID:      snowflake.GenPromptID(),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		State:   models.PromptStateActive,
	}
	if err := s.PromptDAO.Create(ctx, prompt); err != nil {
		return nil, err
	}
	return types.NewPromptResponse(prompt, false, false), nil
}

// Update 只有作者能改自己的未删除提示词，nil 字段不动
func (s *PromptService) Update(ctx context.Context, userID, promptID int64, req *types.UpdatePromptRequest) (*types.PromptResponse, error) {
	prompt, err := s.PromptDAO.GetOwnedActive(ctx, promptID, userID)
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, response.NewError(http.StatusNotFound, "提示词不存在或无权限")
	}

	data := map[string]any{}
	if req.Title != nil {
		data["title"] = *req.Title
		prompt.Title = *req.Title
	}
	if req.Content != nil {
		data["content"] = *req.Content
		prompt.Content = *req.Content
	}
	if len(data) > 0 {
		data["updated_at"] = time.Now()
		if err := s.PromptDAO.UpdateByID(ctx, promptID, data); err != nil {
			return nil, err
		}
	}

	return types.NewPromptResponse(prompt, false, false), nil
}

func (s *PromptService) Delete(ctx context.Context, userID, promptID int64) error {
	prompt, err := s.PromptDAO.GetOwnedActive(ctx, promptID, userID)
	if err != nil {
		return err
	}
	if prompt == nil {
		return response.NewError(http.StatusNotFound, "提示词不存在或无权限")
	}
	return s.PromptDAO.SoftDelete(ctx, promptID)
}

// Get 读取提示词并按 IP 记录一次浏览
// 同一 IP 只计一次，计数与浏览记录同事务落库
func (s *PromptService) Get(ctx context.Context, promptID, viewerID int64, ip string) (*types.PromptResponse, error) {
	prompt, err := s.PromptDAO.GetActiveByID(ctx, promptID)
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, response.NewError(http.StatusNotFound, "提示词不存在")
	}

	var viewUser *int64
	if viewerID > 0 {
		viewUser = &viewerID
	}
	recorded, err := s.ViewDAO.Record(ctx, promptID, viewUser, ip)
	if err != nil {
		return nil, err
	}
	if recorded {
		prompt.ViewCount++
	}

	isLiked, isFavorited := false, false
	if viewerID > 0 {
		like, err := s.LikeDAO.GetByPromptUser(ctx, promptID, viewerID)
		if err != nil {
			return nil, err
		}
		isLiked = like != nil

		fav, err := s.FavoriteDAO.GetByPromptUser(ctx, promptID, viewerID)
		if err != nil {
			return nil, err
		}
		isFavorited = fav != nil
	}

	return types.NewPromptResponse(prompt, isLiked, isFavorited), nil
}

// List 全站未删除提示词，最新在前
// 登录用户带上 isLiked / isFavorited
func (s *PromptService) List(ctx context.Context, viewerID int64, page *types.PageQuery) (*types.PromptListResponse, error) {
	page.Normalize()

	prompts, err := s.PromptDAO.ListActive(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.PromptDAO.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	liked, favorited := map[int64]struct{}{}, map[int64]struct{}{}
	if viewerID > 0 && len(prompts) > 0 {
		ids := make([]int64, 0, len(prompts))
		for _, p := range prompts {
			ids = append(ids, p.ID)
		}
		if liked, err = s.LikeDAO.FilterLikedIDs(ctx, viewerID, ids); err != nil {
			return nil, err
		}
		if favorited, err = s.FavoriteDAO.FilterFavoritedIDs(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}

	list := make([]*types.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		_, isLiked := liked[p.ID]
		_, isFavorited := favorited[p.ID]
		list = append(list, types.NewPromptResponse(p, isLiked, isFavorited))
	}

	return &types.PromptListResponse{
		List:     list,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

func (s *PromptService) ListMine(ctx context.Context, userID int64, page *types.PageQuery) (*types.PromptListResponse, error) {
	page.Normalize()

	prompts, err := s.PromptDAO.ListByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.PromptDAO.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildListResponse(prompts, total, page, false, false), nil
}

func (s *PromptService) ListLiked(ctx context.Context, userID int64, page *types.PageQuery) (*types.PromptListResponse, error) {
	page.Normalize()

	prompts, err := s.PromptDAO.ListLikedByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.PromptDAO.CountLikedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildListResponse(prompts, total, page, true, false), nil
}

func (s *PromptService) ListFavorited(ctx context.Context, userID int64, page *types.PageQuery) (*types.PromptListResponse, error) {
	page.Normalize()

	prompts, err := s.PromptDAO.ListFavoritedByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.PromptDAO.CountFavoritedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildListResponse(prompts, total, page, false, true), nil
}

func buildListResponse(prompts []*models.Prompt, total int64, page *types.PageQuery, isLiked, isFavorited bool) *types.PromptListResponse {
	list := make([]*types.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		list = append(list, types.NewPromptResponse(p, isLiked, isFavorited))
	}
	return &types.PromptListResponse{
		List:     list,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}
