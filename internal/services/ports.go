// Package services orchestrates the entry store, the derived-field
// calculator, and the aggregation engine for each utility kind. Every
// statistics call reads a fresh full snapshot; nothing is cached.
package services

import (
	"context"

	"verbrauch/internal/core"
)

// ElectricityStore is the electricity collection of the entry store.
type ElectricityStore interface {
	CreateElectricity(ctx context.Context, e core.ElectricityEntry) (core.ElectricityEntry, error)
	GetElectricity(ctx context.Context, id int64) (core.ElectricityEntry, error)
	ListElectricity(ctx context.Context) ([]core.ElectricityEntry, error)
	DeleteElectricity(ctx context.Context, id int64) (bool, error)
}

// OilStore is the oil collection plus its fill-level sub-collection.
// OilYearTotals is the aggregate read-back used for per-entry
// year_usage/year_costs derivation.
type OilStore interface {
	CreateOil(ctx context.Context, e core.OilEntry) (core.OilEntry, error)
	GetOil(ctx context.Context, id int64) (core.OilEntry, error)
	ListOil(ctx context.Context) ([]core.OilEntry, error)
	DeleteOil(ctx context.Context, id int64) (bool, error)
	OilYearTotals(ctx context.Context, year int) (volume, costs float64, err error)

	CreateOilFillLevel(ctx context.Context, l core.OilFillLevel) (core.OilFillLevel, error)
	ListOilFillLevels(ctx context.Context) ([]core.OilFillLevel, error)
	DeleteOilFillLevel(ctx context.Context, id int64) (bool, error)
}

// WaterStore is the water collection of the entry store.
type WaterStore interface {
	CreateWater(ctx context.Context, e core.WaterEntry) (core.WaterEntry, error)
	GetWater(ctx context.Context, id int64) (core.WaterEntry, error)
	ListWater(ctx context.Context) ([]core.WaterEntry, error)
	DeleteWater(ctx context.Context, id int64) (bool, error)
}

// Store bundles all collections; both storage backends implement it.
type Store interface {
	ElectricityStore
	OilStore
	WaterStore
	Close() error
}
