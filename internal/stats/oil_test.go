package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"verbrauch/internal/core"
)

func oilEntries() []core.OilEntry {
	return []core.OilEntry{
		{Date: core.NewDate(2021, 5, 10), Volume: 100, Costs: 150},
		{Date: core.NewDate(2023, 3, 1), Volume: 200, Costs: 300},
		{Date: core.NewDate(2023, 9, 12), Volume: 150, Costs: 250},
	}
}

func TestOilOverallStats(t *testing.T) {
	want := OilOverall{
		TotalVolume:         450,
		TotalCosts:          700,
		NumberOfYears:       2,
		AverageYearlyVolume: 225,
		AverageYearlyCosts:  350,
	}
	if diff := cmp.Diff(want, OilOverallStats(oilEntries())); diff != "" {
		t.Fatalf("overall stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(OilOverall{}, OilOverallStats(nil)); diff != "" {
		t.Fatalf("empty input (-want +got):\n%s", diff)
	}
}

func TestOilYearlySummary(t *testing.T) {
	want := []OilYearSummary{
		{Year: 2021, TotalVolume: 100, TotalCosts: 150},
		{Year: 2023, TotalVolume: 350, TotalCosts: 550},
	}
	if diff := cmp.Diff(want, OilYearlySummary(oilEntries())); diff != "" {
		t.Fatalf("yearly summary mismatch (-want +got):\n%s", diff)
	}
}

func TestOilPriceTrend(t *testing.T) {
	want := []PricePoint{
		{Year: 2021, AveragePrice: 1.5, MinPrice: 1.5, MaxPrice: 1.5},
		{Year: 2023, AveragePrice: 1.583, MinPrice: 1.5, MaxPrice: 1.667},
	}
	if diff := cmp.Diff(want, OilPriceTrend(oilEntries())); diff != "" {
		t.Fatalf("price trend mismatch (-want +got):\n%s", diff)
	}

	zeroVolume := []core.OilEntry{{Date: core.NewDate(2022, 1, 1), Volume: 0, Costs: 80}}
	if got := OilPriceTrend(zeroVolume); len(got) != 0 {
		t.Fatalf("zero-volume delivery produced trend point %v", got)
	}
}

func TestOilYearTotals(t *testing.T) {
	volume, costs := OilYearTotals(oilEntries(), 2023)
	if volume != 350 || costs != 550 {
		t.Fatalf("2023 totals = (%v, %v), want (350, 550)", volume, costs)
	}
	volume, costs = OilYearTotals(oilEntries(), 2020)
	if volume != 0 || costs != 0 {
		t.Fatalf("empty year totals = (%v, %v), want zeros", volume, costs)
	}
}
