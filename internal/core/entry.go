package core

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidYear     = errors.New("invalid year")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrEmptyRetailer   = errors.New("empty retailer")
	ErrNoteTooLong     = errors.New("note too long (max 200 characters)")
	ErrInvalidLevel    = errors.New("fill level must be between 0 and 100")
	ErrNegativeQuantity = errors.New("negative quantity")
)

// ElectricityEntry is one electricity bill covering the period
// [TimeFrom, TimeTo). A period with TimeTo before TimeFrom is accepted
// but excluded from all duration-based calculations.
type ElectricityEntry struct {
	ID       int64   `json:"id"`
	TimeFrom Date    `json:"time_from"`
	TimeTo   Date    `json:"time_to"`
	Usage    int     `json:"usage"`
	Costs    float64 `json:"costs"`
	Retailer string  `json:"retailer"`
	Payments float64 `json:"payments"`
	Note     string  `json:"note,omitempty"`
}

// DurationDays returns the billing period length in whole days.
func (e ElectricityEntry) DurationDays() int {
	return e.TimeFrom.DaysUntil(e.TimeTo)
}

func (e ElectricityEntry) Validate() error {
	if err := e.TimeFrom.Validate(); err != nil {
		return ErrInvalidDate
	}
	if err := e.TimeTo.Validate(); err != nil {
		return ErrInvalidDate
	}
	if e.Usage < 0 {
		return ErrNegativeQuantity
	}
	if e.Costs < 0 || e.Payments < 0 {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(e.Retailer) == "" {
		return ErrEmptyRetailer
	}
	return validateNote(e.Note)
}

// OilEntry is one heating-oil delivery.
type OilEntry struct {
	ID       int64   `json:"id"`
	Date     Date    `json:"date"`
	Volume   int     `json:"volume"`
	Costs    float64 `json:"costs"`
	Retailer string  `json:"retailer"`
	Note     string  `json:"note,omitempty"`
}

func (e OilEntry) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return ErrInvalidDate
	}
	if e.Volume < 0 {
		return ErrNegativeQuantity
	}
	if e.Costs < 0 {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(e.Retailer) == "" {
		return ErrEmptyRetailer
	}
	return validateNote(e.Note)
}

// OilFillLevel is a tank fill-level reading in percent. Pass-through
// data, no derived fields.
type OilFillLevel struct {
	ID    int64   `json:"id"`
	Date  Date    `json:"date"`
	Level float64 `json:"level"`
}

func (l OilFillLevel) Validate() error {
	if err := l.Date.Validate(); err != nil {
		return ErrInvalidDate
	}
	if l.Level < 0 || l.Level > 100 {
		return ErrInvalidLevel
	}
	return nil
}

// WaterEntry is one calendar year's water billing. Years are not unique:
// several entries for the same year are summed by the aggregations.
type WaterEntry struct {
	ID               int64   `json:"id"`
	Year             int     `json:"year"`
	VolumeWater      int     `json:"volume_water"`
	VolumeWastewater int     `json:"volume_wastewater"`
	VolumeRainwater  int     `json:"volume_rainwater"`
	CostsWater       float64 `json:"costs_water"`
	CostsWastewater  float64 `json:"costs_wastewater"`
	CostsRainwater   float64 `json:"costs_rainwater"`
	Payments         float64 `json:"payments"`
	FixedPrice       float64 `json:"fixed_price"`
	Note             string  `json:"note,omitempty"`
}

func (e WaterEntry) Validate() error {
	if e.Year <= 0 {
		return ErrInvalidYear
	}
	if e.VolumeWater < 0 || e.VolumeWastewater < 0 || e.VolumeRainwater < 0 {
		return ErrNegativeQuantity
	}
	if e.CostsWater < 0 || e.CostsWastewater < 0 || e.CostsRainwater < 0 ||
		e.Payments < 0 || e.FixedPrice < 0 {
		return ErrNegativeAmount
	}
	return validateNote(e.Note)
}

// TotalCosts is the combined bill: all three streams plus the fixed price.
func (e WaterEntry) TotalCosts() float64 {
	return e.CostsWater + e.CostsWastewater + e.CostsRainwater + e.FixedPrice
}

func validateNote(note string) error {
	if len(note) > 200 {
		return ErrNoteTooLong
	}
	return nil
}
