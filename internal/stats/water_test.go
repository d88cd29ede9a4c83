package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"verbrauch/internal/core"
)

func waterEntries() []core.WaterEntry {
	return []core.WaterEntry{
		{Year: 2022, VolumeWater: 100, VolumeWastewater: 80, VolumeRainwater: 0,
			CostsWater: 250, CostsWastewater: 300, CostsRainwater: 0, Payments: 600, FixedPrice: 60},
		{Year: 2022, VolumeWater: 50, VolumeWastewater: 40, VolumeRainwater: 20,
			CostsWater: 100, CostsWastewater: 120, CostsRainwater: 30, Payments: 300, FixedPrice: 40},
		{Year: 2023, VolumeWater: 120, VolumeWastewater: 100, VolumeRainwater: 0,
			CostsWater: 300, CostsWastewater: 330, CostsRainwater: 0, Payments: 700, FixedPrice: 60},
	}
}

func TestWaterOverallStats(t *testing.T) {
	want := WaterOverall{
		TotalVolumeWater:      270,
		TotalVolumeWastewater: 220,
		TotalVolumeRainwater:  20,
		TotalCosts:            1590,
		NumberOfYears:         2,
		AverageYearlyVolume:   135,
		AverageYearlyCosts:    795,
	}
	if diff := cmp.Diff(want, WaterOverallStats(waterEntries())); diff != "" {
		t.Fatalf("overall stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(WaterOverall{}, WaterOverallStats(nil)); diff != "" {
		t.Fatalf("empty input (-want +got):\n%s", diff)
	}
}

func TestWaterYearlySummary(t *testing.T) {
	want := []WaterYearSummary{
		{Year: 2022, VolumeWater: 150, VolumeWastewater: 120, VolumeRainwater: 20,
			CostsWater: 350, CostsWastewater: 420, CostsRainwater: 30, FixedPrice: 100, TotalCosts: 900},
		{Year: 2023, VolumeWater: 120, VolumeWastewater: 100, VolumeRainwater: 0,
			CostsWater: 300, CostsWastewater: 330, CostsRainwater: 0, FixedPrice: 60, TotalCosts: 690},
	}
	if diff := cmp.Diff(want, WaterYearlySummary(waterEntries())); diff != "" {
		t.Fatalf("yearly summary mismatch (-want +got):\n%s", diff)
	}
}

func TestWaterPriceTrend(t *testing.T) {
	want := []WaterTrendPoint{
		{
			Year:       2022,
			Water:      StreamTrend{AveragePrice: 2.25, MinPrice: 2, MaxPrice: 2.5},
			Wastewater: StreamTrend{AveragePrice: 3.375, MinPrice: 3, MaxPrice: 3.75},
			// Only the second 2022 entry has rainwater volume.
			Rainwater: StreamTrend{AveragePrice: 1.5, MinPrice: 1.5, MaxPrice: 1.5},
		},
		{
			Year:       2023,
			Water:      StreamTrend{AveragePrice: 2.5, MinPrice: 2.5, MaxPrice: 2.5},
			Wastewater: StreamTrend{AveragePrice: 3.3, MinPrice: 3.3, MaxPrice: 3.3},
			// No qualifying rainwater entries for the year.
			Rainwater: StreamTrend{},
		},
	}
	if diff := cmp.Diff(want, WaterPriceTrend(waterEntries())); diff != "" {
		t.Fatalf("price trend mismatch (-want +got):\n%s", diff)
	}
}
