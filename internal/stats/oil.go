package stats

import (
	"sort"

	"verbrauch/internal/core"
)

// OilOverall holds lifetime oil totals. NumberOfYears is the count of
// distinct calendar years with at least one delivery.
type OilOverall struct {
	TotalVolume         float64 `json:"total_volume"`
	TotalCosts          float64 `json:"total_costs"`
	NumberOfYears       int     `json:"number_of_years"`
	AverageYearlyVolume float64 `json:"average_yearly_volume"`
	AverageYearlyCosts  float64 `json:"average_yearly_costs"`
}

func OilOverallStats(entries []core.OilEntry) OilOverall {
	if len(entries) == 0 {
		return OilOverall{}
	}
	var out OilOverall
	years := map[int]struct{}{}
	for _, e := range entries {
		out.TotalVolume += float64(e.Volume)
		out.TotalCosts += e.Costs
		years[e.Date.Year()] = struct{}{}
	}
	out.NumberOfYears = len(years)
	out.AverageYearlyVolume = core.Round2(out.TotalVolume / float64(out.NumberOfYears))
	out.AverageYearlyCosts = core.Round2(out.TotalCosts / float64(out.NumberOfYears))
	out.TotalVolume = core.Round2(out.TotalVolume)
	out.TotalCosts = core.Round2(out.TotalCosts)
	return out
}

// OilYearSummary is one calendar year's delivery totals.
type OilYearSummary struct {
	Year        int     `json:"year"`
	TotalVolume float64 `json:"total_volume"`
	TotalCosts  float64 `json:"total_costs"`
}

// OilYearlySummary groups deliveries by the calendar year of their date,
// ordered ascending.
func OilYearlySummary(entries []core.OilEntry) []OilYearSummary {
	volumeByYear := map[int]float64{}
	costsByYear := map[int]float64{}
	for _, e := range entries {
		year := e.Date.Year()
		volumeByYear[year] += float64(e.Volume)
		costsByYear[year] += e.Costs
	}
	summary := make([]OilYearSummary, 0, len(volumeByYear))
	for year := range volumeByYear {
		summary = append(summary, OilYearSummary{
			Year:        year,
			TotalVolume: core.Round2(volumeByYear[year]),
			TotalCosts:  core.Round2(costsByYear[year]),
		})
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Year < summary[j].Year })
	return summary
}

// OilPriceTrend returns per-year avg/min/max of costs/volume for
// deliveries with nonzero volume, ordered ascending.
func OilPriceTrend(entries []core.OilEntry) []PricePoint {
	byYear := map[int][]float64{}
	for _, e := range entries {
		if e.Volume == 0 {
			continue
		}
		year := e.Date.Year()
		byYear[year] = append(byYear[year], e.Costs/float64(e.Volume))
	}
	return trendFromPrices(byYear)
}

// OilYearTotals sums volume and costs of all deliveries in the given
// calendar year. Backs the per-entry year_usage/year_costs derivation.
func OilYearTotals(entries []core.OilEntry, year int) (volume, costs float64) {
	for _, e := range entries {
		if e.Date.Year() == year {
			volume += float64(e.Volume)
			costs += e.Costs
		}
	}
	return volume, costs
}
