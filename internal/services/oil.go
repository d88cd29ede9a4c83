package services

import (
	"context"
	"fmt"

	"verbrauch/internal/core"
	"verbrauch/internal/stats"
)

// OilView is a persisted delivery together with its derived fields.
type OilView struct {
	core.OilEntry
	core.OilDerived
}

// Oil serves the oil collection and its fill-level sub-collection.
type Oil struct {
	store OilStore
}

func NewOil(store OilStore) *Oil {
	return &Oil{store: store}
}

// view derives the per-entry fields. The year totals come from a second
// aggregate round trip against the store.
func (s *Oil) view(ctx context.Context, e core.OilEntry) (OilView, error) {
	volume, costs, err := s.store.OilYearTotals(ctx, e.Date.Year())
	if err != nil {
		return OilView{}, fmt.Errorf("oil year totals: %w", err)
	}
	return OilView{e, core.DeriveOil(e, volume, costs)}, nil
}

func (s *Oil) Create(ctx context.Context, e core.OilEntry) (OilView, error) {
	created, err := s.store.CreateOil(ctx, e)
	if err != nil {
		return OilView{}, fmt.Errorf("create oil entry: %w", err)
	}
	return s.view(ctx, created)
}

func (s *Oil) Get(ctx context.Context, id int64) (OilView, error) {
	e, err := s.store.GetOil(ctx, id)
	if err != nil {
		return OilView{}, err
	}
	return s.view(ctx, e)
}

func (s *Oil) List(ctx context.Context) ([]OilView, error) {
	entries, err := s.store.ListOil(ctx)
	if err != nil {
		return nil, err
	}
	// Year totals computed once per distinct year, not per entry.
	yearVolume := map[int]float64{}
	yearCosts := map[int]float64{}
	views := make([]OilView, len(entries))
	for i, e := range entries {
		year := e.Date.Year()
		if _, ok := yearVolume[year]; !ok {
			volume, costs, err := s.store.OilYearTotals(ctx, year)
			if err != nil {
				return nil, fmt.Errorf("oil year totals: %w", err)
			}
			yearVolume[year] = volume
			yearCosts[year] = costs
		}
		views[i] = OilView{e, core.DeriveOil(e, yearVolume[year], yearCosts[year])}
	}
	return views, nil
}

func (s *Oil) Delete(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteOil(ctx, id)
}

func (s *Oil) Overall(ctx context.Context) (stats.OilOverall, error) {
	entries, err := s.store.ListOil(ctx)
	if err != nil {
		return stats.OilOverall{}, err
	}
	return stats.OilOverallStats(entries), nil
}

func (s *Oil) YearlySummary(ctx context.Context) ([]stats.OilYearSummary, error) {
	entries, err := s.store.ListOil(ctx)
	if err != nil {
		return nil, err
	}
	return stats.OilYearlySummary(entries), nil
}

func (s *Oil) PriceTrend(ctx context.Context) ([]stats.PricePoint, error) {
	entries, err := s.store.ListOil(ctx)
	if err != nil {
		return nil, err
	}
	return stats.OilPriceTrend(entries), nil
}

func (s *Oil) CreateFillLevel(ctx context.Context, l core.OilFillLevel) (core.OilFillLevel, error) {
	created, err := s.store.CreateOilFillLevel(ctx, l)
	if err != nil {
		return core.OilFillLevel{}, fmt.Errorf("create oil fill level: %w", err)
	}
	return created, nil
}

func (s *Oil) ListFillLevels(ctx context.Context) ([]core.OilFillLevel, error) {
	return s.store.ListOilFillLevels(ctx)
}

func (s *Oil) DeleteFillLevel(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteOilFillLevel(ctx, id)
}
