package services

import (
	"context"
	"fmt"

	"verbrauch/internal/core"
	"verbrauch/internal/stats"
)

// WaterView is a persisted entry together with its derived fields.
type WaterView struct {
	core.WaterEntry
	core.WaterDerived
}

// Water serves the water collection.
type Water struct {
	store WaterStore
}

func NewWater(store WaterStore) *Water {
	return &Water{store: store}
}

func (s *Water) Create(ctx context.Context, e core.WaterEntry) (WaterView, error) {
	created, err := s.store.CreateWater(ctx, e)
	if err != nil {
		return WaterView{}, fmt.Errorf("create water entry: %w", err)
	}
	return WaterView{created, core.DeriveWater(created)}, nil
}

func (s *Water) Get(ctx context.Context, id int64) (WaterView, error) {
	e, err := s.store.GetWater(ctx, id)
	if err != nil {
		return WaterView{}, err
	}
	return WaterView{e, core.DeriveWater(e)}, nil
}

func (s *Water) List(ctx context.Context) ([]WaterView, error) {
	entries, err := s.store.ListWater(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]WaterView, len(entries))
	for i, e := range entries {
		views[i] = WaterView{e, core.DeriveWater(e)}
	}
	return views, nil
}

func (s *Water) Delete(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteWater(ctx, id)
}

func (s *Water) Overall(ctx context.Context) (stats.WaterOverall, error) {
	entries, err := s.store.ListWater(ctx)
	if err != nil {
		return stats.WaterOverall{}, err
	}
	return stats.WaterOverallStats(entries), nil
}

func (s *Water) YearlySummary(ctx context.Context) ([]stats.WaterYearSummary, error) {
	entries, err := s.store.ListWater(ctx)
	if err != nil {
		return nil, err
	}
	return stats.WaterYearlySummary(entries), nil
}

func (s *Water) PriceTrend(ctx context.Context) ([]stats.WaterTrendPoint, error) {
	entries, err := s.store.ListWater(ctx)
	if err != nil {
		return nil, err
	}
	return stats.WaterPriceTrend(entries), nil
}
