package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"verbrauch/internal/core"
)

func (s *SQLiteStore) CreateWater(ctx context.Context, e core.WaterEntry) (core.WaterEntry, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO water (year, volume_water, volume_wastewater, volume_rainwater,
		                    costs_water, costs_wastewater, costs_rainwater,
		                    payments, fixed_price, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Year, e.VolumeWater, e.VolumeWastewater, e.VolumeRainwater,
		e.CostsWater, e.CostsWastewater, e.CostsRainwater,
		e.Payments, e.FixedPrice, e.Note)
	if err != nil {
		return core.WaterEntry{}, fmt.Errorf("insert water entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.WaterEntry{}, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return e, nil
}

func (s *SQLiteStore) GetWater(ctx context.Context, id int64) (core.WaterEntry, error) {
	row := s.db.QueryRowContext(ctx, waterSelect+` WHERE id = ?`, id)
	e, err := scanWater(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return core.WaterEntry{}, ErrNotFound
	}
	if err != nil {
		return core.WaterEntry{}, fmt.Errorf("get water entry %d: %w", id, err)
	}
	return e, nil
}

func (s *SQLiteStore) ListWater(ctx context.Context) ([]core.WaterEntry, error) {
	rows, err := s.db.QueryContext(ctx, waterSelect+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list water entries: %w", err)
	}
	defer rows.Close()

	var entries []core.WaterEntry
	for rows.Next() {
		e, err := scanWater(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan water entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteWater(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "water", id)
}

const waterSelect = `SELECT id, year, volume_water, volume_wastewater, volume_rainwater,
       costs_water, costs_wastewater, costs_rainwater, payments, fixed_price, note
  FROM water`

func scanWater(scan func(...any) error) (core.WaterEntry, error) {
	var e core.WaterEntry
	err := scan(&e.ID, &e.Year, &e.VolumeWater, &e.VolumeWastewater, &e.VolumeRainwater,
		&e.CostsWater, &e.CostsWastewater, &e.CostsRainwater, &e.Payments, &e.FixedPrice, &e.Note)
	if err != nil {
		return core.WaterEntry{}, err
	}
	return e, nil
}
