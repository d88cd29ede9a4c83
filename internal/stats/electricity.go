// Package stats is the aggregation engine: stateless read-reduce
// functions that turn a full collection snapshot into overall totals,
// yearly summaries, and price-trend series. Empty input always yields
// zero-value output, never an error.
package stats

import (
	"sort"

	"verbrauch/internal/core"
)

const daysPerYear = 365.25

// ElectricityOverall holds lifetime totals and annualized averages.
// NumberOfYears is a continuous span in years, not a calendar-year
// count, so partial years do not skew the averages.
type ElectricityOverall struct {
	TotalUsage         float64 `json:"total_usage"`
	TotalCosts         float64 `json:"total_costs"`
	TotalPayments      float64 `json:"total_payments"`
	NumberOfYears      float64 `json:"number_of_years"`
	AverageYearlyUsage float64 `json:"average_yearly_usage"`
	AverageYearlyCosts float64 `json:"average_yearly_costs"`
}

// ElectricityOverallStats computes span-aware overall statistics.
// Entries with a non-positive duration contribute to neither the totals
// nor the span.
func ElectricityOverallStats(entries []core.ElectricityEntry) ElectricityOverall {
	var out ElectricityOverall
	var minFrom, maxTo core.Date
	valid := 0
	for _, e := range entries {
		if e.DurationDays() <= 0 {
			continue
		}
		if valid == 0 || e.TimeFrom.Before(minFrom.Time) {
			minFrom = e.TimeFrom
		}
		if valid == 0 || e.TimeTo.After(maxTo.Time) {
			maxTo = e.TimeTo
		}
		out.TotalUsage += float64(e.Usage)
		out.TotalCosts += e.Costs
		out.TotalPayments += e.Payments
		valid++
	}
	if valid == 0 {
		return ElectricityOverall{}
	}
	years := float64(minFrom.DaysUntil(maxTo)) / daysPerYear
	out.AverageYearlyUsage = core.Round2(out.TotalUsage / years)
	out.AverageYearlyCosts = core.Round2(out.TotalCosts / years)
	out.TotalUsage = core.Round2(out.TotalUsage)
	out.TotalCosts = core.Round2(out.TotalCosts)
	out.TotalPayments = core.Round2(out.TotalPayments)
	out.NumberOfYears = core.Round2(years)
	return out
}

// ElectricityYearSummary is one calendar year's prorated totals.
type ElectricityYearSummary struct {
	Year       int     `json:"year"`
	TotalUsage float64 `json:"total_usage"`
	TotalCosts float64 `json:"total_costs"`
}

// ElectricityYearlySummary groups entries by calendar year, splitting
// period-spanning entries proportionally by day count. The daily rate of
// an entry is multiplied by the days of its period [from, to) falling in
// each year, so the split parts sum back to the original totals.
// Entries with a non-positive duration are skipped.
func ElectricityYearlySummary(entries []core.ElectricityEntry) []ElectricityYearSummary {
	usageByYear := map[int]float64{}
	costsByYear := map[int]float64{}
	for _, e := range entries {
		days := e.DurationDays()
		if days <= 0 {
			continue
		}
		usageRate := float64(e.Usage) / float64(days)
		costsRate := e.Costs / float64(days)
		for year := e.TimeFrom.Year(); year <= e.TimeTo.Year(); year++ {
			overlap := overlapDays(e.TimeFrom, e.TimeTo, year)
			if overlap <= 0 {
				continue
			}
			usageByYear[year] += usageRate * float64(overlap)
			costsByYear[year] += costsRate * float64(overlap)
		}
	}
	summary := make([]ElectricityYearSummary, 0, len(usageByYear))
	for year := range usageByYear {
		summary = append(summary, ElectricityYearSummary{
			Year:       year,
			TotalUsage: core.Round2(usageByYear[year]),
			TotalCosts: core.Round2(costsByYear[year]),
		})
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Year < summary[j].Year })
	return summary
}

// overlapDays counts the days of the period [from, to) that fall in the
// given calendar year.
func overlapDays(from, to core.Date, year int) int {
	start := from
	if yearStart := core.NewDate(year, 1, 1); yearStart.After(start.Time) {
		start = yearStart
	}
	end := to
	if nextYear := core.NewDate(year+1, 1, 1); nextYear.Before(end.Time) {
		end = nextYear
	}
	return start.DaysUntil(end)
}

// PricePoint is one year of a unit-price trend series.
type PricePoint struct {
	Year         int     `json:"year"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}

// ElectricityPriceTrend returns per-year avg/min/max of costs/usage for
// entries with nonzero usage, grouped by the year of time_from, ordered
// ascending.
func ElectricityPriceTrend(entries []core.ElectricityEntry) []PricePoint {
	byYear := map[int][]float64{}
	for _, e := range entries {
		if e.Usage == 0 {
			continue
		}
		year := e.TimeFrom.Year()
		byYear[year] = append(byYear[year], e.Costs/float64(e.Usage))
	}
	return trendFromPrices(byYear)
}

func trendFromPrices(byYear map[int][]float64) []PricePoint {
	trend := make([]PricePoint, 0, len(byYear))
	for year, prices := range byYear {
		avg, min, max := priceStats(prices)
		trend = append(trend, PricePoint{
			Year:         year,
			AveragePrice: avg,
			MinPrice:     min,
			MaxPrice:     max,
		})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Year < trend[j].Year })
	return trend
}

func priceStats(prices []float64) (avg, min, max float64) {
	if len(prices) == 0 {
		return 0, 0, 0
	}
	min, max = prices[0], prices[0]
	var sum float64
	for _, p := range prices {
		sum += p
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return core.Round3(sum / float64(len(prices))), core.Round3(min), core.Round3(max)
}
