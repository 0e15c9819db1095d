package service

import (
	"context"

	"promptbox/dao"
	"promptbox/types"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	Global(ctx context.Context) (*types.StatsResponse, error)
}

type StatsService struct {
	PromptDAO *dao.PromptDAO
	ViewDAO   *dao.PromptViewDAO
}

func (s *StatsService) Global(ctx context.Context) (*types.StatsResponse, error) {
	totalPrompts, err := s.PromptDAO.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.ViewDAO.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return &types.StatsResponse{
		TotalPrompts: totalPrompts,
		TotalViews:   totalViews,
	}, nil
}
