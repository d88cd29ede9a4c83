package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"verbrauch/internal/core"
)

func (s *SQLiteStore) CreateOil(ctx context.Context, e core.OilEntry) (core.OilEntry, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO oil (date, volume, costs, retailer, note) VALUES (?, ?, ?, ?, ?)`,
		e.Date.String(), e.Volume, e.Costs, e.Retailer, e.Note)
	if err != nil {
		return core.OilEntry{}, fmt.Errorf("insert oil entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.OilEntry{}, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return e, nil
}

func (s *SQLiteStore) GetOil(ctx context.Context, id int64) (core.OilEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, volume, costs, retailer, note FROM oil WHERE id = ?`, id)
	e, err := scanOil(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return core.OilEntry{}, ErrNotFound
	}
	if err != nil {
		return core.OilEntry{}, fmt.Errorf("get oil entry %d: %w", id, err)
	}
	return e, nil
}

func (s *SQLiteStore) ListOil(ctx context.Context) ([]core.OilEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, volume, costs, retailer, note FROM oil ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list oil entries: %w", err)
	}
	defer rows.Close()

	var entries []core.OilEntry
	for rows.Next() {
		e, err := scanOil(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan oil entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteOil(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "oil", id)
}

// OilYearTotals sums volume and costs of all deliveries in one calendar
// year. Dates are stored as YYYY-MM-DD text, so the year is a prefix.
func (s *SQLiteStore) OilYearTotals(ctx context.Context, year int) (volume, costs float64, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(volume), 0), COALESCE(SUM(costs), 0)
		 FROM oil WHERE date LIKE ?`, strconv.Itoa(year)+"-%")
	if err := row.Scan(&volume, &costs); err != nil {
		return 0, 0, fmt.Errorf("oil year totals for %d: %w", year, err)
	}
	return volume, costs, nil
}

func (s *SQLiteStore) CreateOilFillLevel(ctx context.Context, l core.OilFillLevel) (core.OilFillLevel, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO oil_fill_levels (date, level) VALUES (?, ?)`, l.Date.String(), l.Level)
	if err != nil {
		return core.OilFillLevel{}, fmt.Errorf("insert oil fill level: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.OilFillLevel{}, fmt.Errorf("last insert id: %w", err)
	}
	l.ID = id
	return l, nil
}

func (s *SQLiteStore) ListOilFillLevels(ctx context.Context) ([]core.OilFillLevel, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, level FROM oil_fill_levels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list oil fill levels: %w", err)
	}
	defer rows.Close()

	var levels []core.OilFillLevel
	for rows.Next() {
		var l core.OilFillLevel
		var date string
		if err := rows.Scan(&l.ID, &date, &l.Level); err != nil {
			return nil, fmt.Errorf("scan oil fill level: %w", err)
		}
		if l.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse fill level date: %w", err)
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (s *SQLiteStore) DeleteOilFillLevel(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "oil_fill_levels", id)
}

func scanOil(scan func(...any) error) (core.OilEntry, error) {
	var e core.OilEntry
	var date string
	if err := scan(&e.ID, &date, &e.Volume, &e.Costs, &e.Retailer, &e.Note); err != nil {
		return core.OilEntry{}, err
	}
	var err error
	if e.Date, err = core.ParseDate(date); err != nil {
		return core.OilEntry{}, fmt.Errorf("parse date: %w", err)
	}
	return e, nil
}
