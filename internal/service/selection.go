package service

import (
	"context"

	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pipeline"
)

// Selection answers brush and nearest-point queries against a dashboard's scatter table.
type Selection struct {
	dashboard *Dashboard
}

func NewSelection(dashboardService *Dashboard) *Selection {
	return &Selection{
		dashboard: dashboardService,
	}
}

func (s *Selection) Brush(ctx context.Context, q model.DashboardQuery, rect model.Rect) ([]*model.ScatterPoint, error) {
	d, err := s.dashboard.Get(ctx, q)
	if err != nil {
		return nil, err
	}
	return pipeline.Brush(d.Scatter, rect), nil
}

// Nearest returns the point closest to (near.X, near.Y) within near.Threshold, or nil.
func (s *Selection) Nearest(ctx context.Context, q model.DashboardQuery, near model.NearQuery) (*model.ScatterPoint, error) {
	d, err := s.dashboard.Get(ctx, q)
	if err != nil {
		return nil, err
	}
	p, ok := pipeline.Nearest(d.Scatter, near)
	if !ok {
		return nil, nil
	}
	return p, nil
}
