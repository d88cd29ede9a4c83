package services

import (
	"context"
	"errors"
	"testing"

	"verbrauch/internal/core"
	"verbrauch/internal/storage"
)

func TestOilViewsCarryYearTotals(t *testing.T) {
	svc := NewOil(storage.NewMemoryStore())
	ctx := context.Background()

	first, err := svc.Create(ctx, core.OilEntry{
		Date: core.NewDate(2023, 3, 1), Volume: 200, Costs: 300, Retailer: "A",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Price != 1.5 {
		t.Fatalf("price = %v, want 1.5", first.Price)
	}
	// The only delivery of the year so far.
	if first.YearUsage != 200 || first.YearCosts != 300 {
		t.Fatalf("year totals = (%v, %v), want (200, 300)", first.YearUsage, first.YearCosts)
	}

	if _, err := svc.Create(ctx, core.OilEntry{
		Date: core.NewDate(2023, 9, 12), Volume: 150, Costs: 250, Retailer: "B",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Year totals are recomputed on read, so the first entry now reflects
	// both deliveries.
	views, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	for _, v := range views {
		if v.Year != 2023 || v.YearUsage != 350 || v.YearCosts != 550 {
			t.Fatalf("view %d: year fields = (%d, %v, %v), want (2023, 350, 550)",
				v.ID, v.Year, v.YearUsage, v.YearCosts)
		}
	}

	got, err := svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.YearUsage != 350 || got.YearCosts != 550 {
		t.Fatalf("get year totals = (%v, %v), want (350, 550)", got.YearUsage, got.YearCosts)
	}
}

func TestOilGetNotFound(t *testing.T) {
	svc := NewOil(storage.NewMemoryStore())
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing: %v, want ErrNotFound", err)
	}
}

func TestOilFillLevelPassThrough(t *testing.T) {
	svc := NewOil(storage.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.CreateFillLevel(ctx, core.OilFillLevel{Date: core.NewDate(2023, 6, 1), Level: 62.5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	levels, err := svc.ListFillLevels(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(levels) != 1 || levels[0].Level != 62.5 {
		t.Fatalf("list = %+v, want the created reading", levels)
	}
	deleted, err := svc.DeleteFillLevel(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}
}
