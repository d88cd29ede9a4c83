package storage

import (
	"context"
	"sort"
	"sync"

	"verbrauch/internal/core"
)

// MemoryStore keeps all collections in process memory. It backs local
// development without a database file and doubles as the test store.
type MemoryStore struct {
	mu          sync.Mutex
	nextID      int64
	electricity map[int64]core.ElectricityEntry
	oil         map[int64]core.OilEntry
	fillLevels  map[int64]core.OilFillLevel
	water       map[int64]core.WaterEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:      1,
		electricity: make(map[int64]core.ElectricityEntry),
		oil:         make(map[int64]core.OilEntry),
		fillLevels:  make(map[int64]core.OilFillLevel),
		water:       make(map[int64]core.WaterEntry),
	}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) assignID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MemoryStore) CreateElectricity(_ context.Context, e core.ElectricityEntry) (core.ElectricityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.assignID()
	m.electricity[e.ID] = e
	return e, nil
}

func (m *MemoryStore) GetElectricity(_ context.Context, id int64) (core.ElectricityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.electricity[id]
	if !ok {
		return core.ElectricityEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *MemoryStore) ListElectricity(_ context.Context) ([]core.ElectricityEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]core.ElectricityEntry, 0, len(m.electricity))
	for _, e := range m.electricity {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (m *MemoryStore) DeleteElectricity(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.electricity[id]; !ok {
		return false, nil
	}
	delete(m.electricity, id)
	return true, nil
}

func (m *MemoryStore) CreateOil(_ context.Context, e core.OilEntry) (core.OilEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.assignID()
	m.oil[e.ID] = e
	return e, nil
}

func (m *MemoryStore) GetOil(_ context.Context, id int64) (core.OilEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.oil[id]
	if !ok {
		return core.OilEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *MemoryStore) ListOil(_ context.Context) ([]core.OilEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]core.OilEntry, 0, len(m.oil))
	for _, e := range m.oil {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (m *MemoryStore) DeleteOil(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.oil[id]; !ok {
		return false, nil
	}
	delete(m.oil, id)
	return true, nil
}

func (m *MemoryStore) OilYearTotals(_ context.Context, year int) (volume, costs float64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.oil {
		if e.Date.Year() == year {
			volume += float64(e.Volume)
			costs += e.Costs
		}
	}
	return volume, costs, nil
}

func (m *MemoryStore) CreateOilFillLevel(_ context.Context, l core.OilFillLevel) (core.OilFillLevel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = m.assignID()
	m.fillLevels[l.ID] = l
	return l, nil
}

func (m *MemoryStore) ListOilFillLevels(_ context.Context) ([]core.OilFillLevel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	levels := make([]core.OilFillLevel, 0, len(m.fillLevels))
	for _, l := range m.fillLevels {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].ID < levels[j].ID })
	return levels, nil
}

func (m *MemoryStore) DeleteOilFillLevel(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fillLevels[id]; !ok {
		return false, nil
	}
	delete(m.fillLevels, id)
	return true, nil
}

func (m *MemoryStore) CreateWater(_ context.Context, e core.WaterEntry) (core.WaterEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.assignID()
	m.water[e.ID] = e
	return e, nil
}

func (m *MemoryStore) GetWater(_ context.Context, id int64) (core.WaterEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.water[id]
	if !ok {
		return core.WaterEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *MemoryStore) ListWater(_ context.Context) ([]core.WaterEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]core.WaterEntry, 0, len(m.water))
	for _, e := range m.water {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (m *MemoryStore) DeleteWater(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.water[id]; !ok {
		return false, nil
	}
	delete(m.water, id)
	return true, nil
}
