package services

import (
	"context"
	"fmt"

	"verbrauch/internal/core"
	"verbrauch/internal/stats"
)

// ElectricityView is a persisted entry together with its derived fields.
type ElectricityView struct {
	core.ElectricityEntry
	core.ElectricityDerived
}

// Electricity serves the electricity collection.
type Electricity struct {
	store ElectricityStore
}

func NewElectricity(store ElectricityStore) *Electricity {
	return &Electricity{store: store}
}

func (s *Electricity) Create(ctx context.Context, e core.ElectricityEntry) (ElectricityView, error) {
	created, err := s.store.CreateElectricity(ctx, e)
	if err != nil {
		return ElectricityView{}, fmt.Errorf("create electricity entry: %w", err)
	}
	return ElectricityView{created, core.DeriveElectricity(created)}, nil
}

func (s *Electricity) Get(ctx context.Context, id int64) (ElectricityView, error) {
	e, err := s.store.GetElectricity(ctx, id)
	if err != nil {
		return ElectricityView{}, err
	}
	return ElectricityView{e, core.DeriveElectricity(e)}, nil
}

func (s *Electricity) List(ctx context.Context) ([]ElectricityView, error) {
	entries, err := s.store.ListElectricity(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ElectricityView, len(entries))
	for i, e := range entries {
		views[i] = ElectricityView{e, core.DeriveElectricity(e)}
	}
	return views, nil
}

func (s *Electricity) Delete(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteElectricity(ctx, id)
}

func (s *Electricity) Overall(ctx context.Context) (stats.ElectricityOverall, error) {
	entries, err := s.store.ListElectricity(ctx)
	if err != nil {
		return stats.ElectricityOverall{}, err
	}
	return stats.ElectricityOverallStats(entries), nil
}

func (s *Electricity) YearlySummary(ctx context.Context) ([]stats.ElectricityYearSummary, error) {
	entries, err := s.store.ListElectricity(ctx)
	if err != nil {
		return nil, err
	}
	return stats.ElectricityYearlySummary(entries), nil
}

func (s *Electricity) PriceTrend(ctx context.Context) ([]stats.PricePoint, error) {
	entries, err := s.store.ListElectricity(ctx)
	if err != nil {
		return nil, err
	}
	return stats.ElectricityPriceTrend(entries), nil
}
