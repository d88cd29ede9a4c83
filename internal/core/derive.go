// Package core holds the entry data model and the derived-field
// calculator. Derived fields are computed from raw entry fields at read
// time and never stored.
package core

import "github.com/shopspring/decimal"

// avgDaysPerMonth converts a daily payment rate into a monthly
// equivalent (365.25 / 12).
const avgDaysPerMonth = 30.44

// Round2 rounds a monetary value to 2 decimal places, half up.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round3 rounds a unit price to 3 decimal places, half up.
func Round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

// UnitPrice returns costs/quantity rounded to 3 decimals, or 0 when the
// quantity is zero. Division by zero is never an error here: a zero
// quantity simply has no meaningful price.
func UnitPrice(costs, quantity float64) float64 {
	if quantity == 0 {
		return 0
	}
	return Round3(costs / quantity)
}

// MonthlyPaymentOverDays converts total payments for a billing period of
// the given length into a monthly-equivalent amount. Non-positive
// durations yield 0.
func MonthlyPaymentOverDays(payments float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return Round2(payments / float64(days) * avgDaysPerMonth)
}

// MonthlyPayment12 spreads a yearly payment over 12 months.
func MonthlyPayment12(payments float64) float64 {
	return Round2(payments / 12)
}

// Difference returns costs - payments. Positive means costs exceeded
// payments.
func Difference(costs, payments float64) float64 {
	return Round2(costs - payments)
}

// ElectricityDerived are the read-time fields of an electricity entry.
type ElectricityDerived struct {
	Price          float64 `json:"price"`
	MonthlyPayment float64 `json:"monthly_payment"`
	Difference     float64 `json:"difference"`
}

// DeriveElectricity computes the derived fields for one entry. The price
// is still computed for entries with a degenerate period; only the
// monthly payment depends on the duration.
func DeriveElectricity(e ElectricityEntry) ElectricityDerived {
	return ElectricityDerived{
		Price:          UnitPrice(e.Costs, float64(e.Usage)),
		MonthlyPayment: MonthlyPaymentOverDays(e.Payments, e.DurationDays()),
		Difference:     Difference(e.Costs, e.Payments),
	}
}

// OilDerived are the read-time fields of an oil entry. YearUsage and
// YearCosts cover all oil entries in the same calendar year; the caller
// supplies them from an aggregate store query.
type OilDerived struct {
	Price     float64 `json:"price"`
	Year      int     `json:"year"`
	YearUsage float64 `json:"year_usage"`
	YearCosts float64 `json:"year_costs"`
}

func DeriveOil(e OilEntry, yearVolume, yearCosts float64) OilDerived {
	return OilDerived{
		Price:     UnitPrice(e.Costs, float64(e.Volume)),
		Year:      e.Date.Year(),
		YearUsage: Round2(yearVolume),
		YearCosts: Round2(yearCosts),
	}
}

// WaterDerived are the read-time fields of a water entry. Costs is the
// combined bill including the fixed price; the difference compares it
// against the single payments figure.
type WaterDerived struct {
	Costs           float64 `json:"costs"`
	PriceWater      float64 `json:"price_water"`
	PriceWastewater float64 `json:"price_wastewater"`
	PriceRainwater  float64 `json:"price_rainwater"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	Difference      float64 `json:"difference"`
}

func DeriveWater(e WaterEntry) WaterDerived {
	costs := e.TotalCosts()
	return WaterDerived{
		Costs:           Round2(costs),
		PriceWater:      UnitPrice(e.CostsWater, float64(e.VolumeWater)),
		PriceWastewater: UnitPrice(e.CostsWastewater, float64(e.VolumeWastewater)),
		PriceRainwater:  UnitPrice(e.CostsRainwater, float64(e.VolumeRainwater)),
		MonthlyPayment:  MonthlyPayment12(e.Payments),
		Difference:      Difference(costs, e.Payments),
	}
}
