package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"verbrauch/internal/core"
	"verbrauch/internal/storage"
)

func TestElectricityCreateDerivesFields(t *testing.T) {
	svc := NewElectricity(storage.NewMemoryStore())
	ctx := context.Background()

	view, err := svc.Create(ctx, core.ElectricityEntry{
		TimeFrom: core.NewDate(2023, 11, 15),
		TimeTo:   core.NewDate(2024, 2, 10),
		Usage:    870,
		Costs:    261,
		Retailer: "Stadtwerke",
		Payments: 870,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.Price != 0.3 || view.MonthlyPayment != 304.4 || view.Difference != -609 {
		t.Fatalf("derived = %+v", view.ElectricityDerived)
	}
}

func TestElectricityViewJSONIsFlat(t *testing.T) {
	svc := NewElectricity(storage.NewMemoryStore())
	ctx := context.Background()

	view, err := svc.Create(ctx, core.ElectricityEntry{
		TimeFrom: core.NewDate(2023, 1, 1),
		TimeTo:   core.NewDate(2024, 1, 1),
		Usage:    1200,
		Costs:    420,
		Retailer: "Stadtwerke",
		Payments: 400,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Stored and derived fields share one flat object.
	body := string(b)
	for _, key := range []string{`"time_from":"2023-01-01"`, `"price":0.35`, `"monthly_payment":`, `"difference":20`} {
		if !strings.Contains(body, key) {
			t.Fatalf("marshaled view %s missing %s", body, key)
		}
	}
	if strings.Contains(body, `"ElectricityEntry"`) || strings.Contains(body, `"ElectricityDerived"`) {
		t.Fatalf("marshaled view is nested: %s", body)
	}
}

func TestElectricityStatsUseFreshSnapshot(t *testing.T) {
	svc := NewElectricity(storage.NewMemoryStore())
	ctx := context.Background()

	overall, err := svc.Overall(ctx)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if overall.TotalUsage != 0 {
		t.Fatalf("empty overall = %+v", overall)
	}

	created, err := svc.Create(ctx, core.ElectricityEntry{
		TimeFrom: core.NewDate(2023, 1, 1),
		TimeTo:   core.NewDate(2024, 1, 1),
		Usage:    1200,
		Costs:    420,
		Retailer: "Stadtwerke",
		Payments: 400,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	overall, err = svc.Overall(ctx)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if overall.TotalUsage != 1200 {
		t.Fatalf("overall after create = %+v", overall)
	}

	if _, err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	overall, err = svc.Overall(ctx)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if overall.TotalUsage != 0 {
		t.Fatalf("overall after delete = %+v", overall)
	}
}
