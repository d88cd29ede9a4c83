package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"verbrauch/internal/core"
)

func (s *SQLiteStore) CreateElectricity(ctx context.Context, e core.ElectricityEntry) (core.ElectricityEntry, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO electricity (time_from, time_to, usage, costs, retailer, payments, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.TimeFrom.String(), e.TimeTo.String(), e.Usage, e.Costs, e.Retailer, e.Payments, e.Note)
	if err != nil {
		return core.ElectricityEntry{}, fmt.Errorf("insert electricity entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.ElectricityEntry{}, fmt.Errorf("last insert id: %w", err)
	}
	e.ID = id
	return e, nil
}

func (s *SQLiteStore) GetElectricity(ctx context.Context, id int64) (core.ElectricityEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, time_from, time_to, usage, costs, retailer, payments, note
		 FROM electricity WHERE id = ?`, id)
	e, err := scanElectricity(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ElectricityEntry{}, ErrNotFound
	}
	if err != nil {
		return core.ElectricityEntry{}, fmt.Errorf("get electricity entry %d: %w", id, err)
	}
	return e, nil
}

func (s *SQLiteStore) ListElectricity(ctx context.Context) ([]core.ElectricityEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, time_from, time_to, usage, costs, retailer, payments, note
		 FROM electricity ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list electricity entries: %w", err)
	}
	defer rows.Close()

	var entries []core.ElectricityEntry
	for rows.Next() {
		e, err := scanElectricity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan electricity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteElectricity(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "electricity", id)
}

func scanElectricity(scan func(...any) error) (core.ElectricityEntry, error) {
	var e core.ElectricityEntry
	var from, to string
	if err := scan(&e.ID, &from, &to, &e.Usage, &e.Costs, &e.Retailer, &e.Payments, &e.Note); err != nil {
		return core.ElectricityEntry{}, err
	}
	var err error
	if e.TimeFrom, err = core.ParseDate(from); err != nil {
		return core.ElectricityEntry{}, fmt.Errorf("parse time_from: %w", err)
	}
	if e.TimeTo, err = core.ParseDate(to); err != nil {
		return core.ElectricityEntry{}, fmt.Errorf("parse time_to: %w", err)
	}
	return e, nil
}
