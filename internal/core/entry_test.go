package core

import (
	"errors"
	"strings"
	"testing"
)

func TestElectricityEntryValidate(t *testing.T) {
	valid := ElectricityEntry{
		TimeFrom: NewDate(2023, 1, 1),
		TimeTo:   NewDate(2023, 12, 31),
		Usage:    1200,
		Costs:    400,
		Retailer: "Stadtwerke",
		Payments: 380,
	}

	cases := []struct {
		name    string
		mutate  func(e *ElectricityEntry)
		wantErr error
	}{
		{"valid", func(e *ElectricityEntry) {}, nil},
		{"zero time_from", func(e *ElectricityEntry) { e.TimeFrom = Date{} }, ErrInvalidDate},
		{"zero time_to", func(e *ElectricityEntry) { e.TimeTo = Date{} }, ErrInvalidDate},
		{"reversed period is accepted", func(e *ElectricityEntry) {
			e.TimeFrom, e.TimeTo = e.TimeTo, e.TimeFrom
		}, nil},
		{"negative usage", func(e *ElectricityEntry) { e.Usage = -1 }, ErrNegativeQuantity},
		{"negative costs", func(e *ElectricityEntry) { e.Costs = -0.01 }, ErrNegativeAmount},
		{"negative payments", func(e *ElectricityEntry) { e.Payments = -1 }, ErrNegativeAmount},
		{"blank retailer", func(e *ElectricityEntry) { e.Retailer = "   " }, ErrEmptyRetailer},
		{"note too long", func(e *ElectricityEntry) { e.Note = strings.Repeat("x", 201) }, ErrNoteTooLong},
		{"note at limit", func(e *ElectricityEntry) { e.Note = strings.Repeat("x", 200) }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestOilEntryValidate(t *testing.T) {
	valid := OilEntry{Date: NewDate(2023, 3, 1), Volume: 200, Costs: 300, Retailer: "Heizoel24"}

	cases := []struct {
		name    string
		mutate  func(e *OilEntry)
		wantErr error
	}{
		{"valid", func(e *OilEntry) {}, nil},
		{"zero date", func(e *OilEntry) { e.Date = Date{} }, ErrInvalidDate},
		{"negative volume", func(e *OilEntry) { e.Volume = -5 }, ErrNegativeQuantity},
		{"negative costs", func(e *OilEntry) { e.Costs = -1 }, ErrNegativeAmount},
		{"blank retailer", func(e *OilEntry) { e.Retailer = "" }, ErrEmptyRetailer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestOilFillLevelValidate(t *testing.T) {
	cases := []struct {
		name    string
		level   OilFillLevel
		wantErr error
	}{
		{"valid", OilFillLevel{Date: NewDate(2023, 6, 1), Level: 62.5}, nil},
		{"lower bound", OilFillLevel{Date: NewDate(2023, 6, 1), Level: 0}, nil},
		{"upper bound", OilFillLevel{Date: NewDate(2023, 6, 1), Level: 100}, nil},
		{"below range", OilFillLevel{Date: NewDate(2023, 6, 1), Level: -0.1}, ErrInvalidLevel},
		{"above range", OilFillLevel{Date: NewDate(2023, 6, 1), Level: 100.1}, ErrInvalidLevel},
		{"zero date", OilFillLevel{Level: 50}, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.level.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestWaterEntryValidate(t *testing.T) {
	valid := WaterEntry{
		Year:             2023,
		VolumeWater:      100,
		VolumeWastewater: 80,
		CostsWater:       250,
		CostsWastewater:  300,
		Payments:         600,
		FixedPrice:       60,
	}

	cases := []struct {
		name    string
		mutate  func(e *WaterEntry)
		wantErr error
	}{
		{"valid", func(e *WaterEntry) {}, nil},
		{"zero year", func(e *WaterEntry) { e.Year = 0 }, ErrInvalidYear},
		{"negative year", func(e *WaterEntry) { e.Year = -2023 }, ErrInvalidYear},
		{"negative volume", func(e *WaterEntry) { e.VolumeRainwater = -1 }, ErrNegativeQuantity},
		{"negative costs", func(e *WaterEntry) { e.CostsRainwater = -1 }, ErrNegativeAmount},
		{"negative fixed price", func(e *WaterEntry) { e.FixedPrice = -1 }, ErrNegativeAmount},
		{"note too long", func(e *WaterEntry) { e.Note = strings.Repeat("x", 201) }, ErrNoteTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDurationDays(t *testing.T) {
	e := ElectricityEntry{TimeFrom: NewDate(2023, 11, 15), TimeTo: NewDate(2024, 2, 10)}
	if got := e.DurationDays(); got != 87 {
		t.Fatalf("DurationDays() = %d, want 87", got)
	}
	reversed := ElectricityEntry{TimeFrom: NewDate(2024, 2, 10), TimeTo: NewDate(2023, 11, 15)}
	if got := reversed.DurationDays(); got != -87 {
		t.Fatalf("reversed DurationDays() = %d, want -87", got)
	}
}

func TestWaterEntryTotalCosts(t *testing.T) {
	e := WaterEntry{CostsWater: 250, CostsWastewater: 300, CostsRainwater: 50, FixedPrice: 60}
	if got := e.TotalCosts(); got != 660 {
		t.Fatalf("TotalCosts() = %v, want 660", got)
	}
}
