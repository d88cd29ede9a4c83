package stats

import (
	"sort"

	"verbrauch/internal/core"
)

// WaterOverall holds lifetime water totals across all streams.
// NumberOfYears counts distinct billing years; several entries for the
// same year are summed, not counted twice.
type WaterOverall struct {
	TotalVolumeWater      float64 `json:"total_volume_water"`
	TotalVolumeWastewater float64 `json:"total_volume_wastewater"`
	TotalVolumeRainwater  float64 `json:"total_volume_rainwater"`
	TotalCosts            float64 `json:"total_costs"`
	NumberOfYears         int     `json:"number_of_years"`
	AverageYearlyVolume   float64 `json:"average_yearly_volume"`
	AverageYearlyCosts    float64 `json:"average_yearly_costs"`
}

func WaterOverallStats(entries []core.WaterEntry) WaterOverall {
	if len(entries) == 0 {
		return WaterOverall{}
	}
	var out WaterOverall
	years := map[int]struct{}{}
	for _, e := range entries {
		out.TotalVolumeWater += float64(e.VolumeWater)
		out.TotalVolumeWastewater += float64(e.VolumeWastewater)
		out.TotalVolumeRainwater += float64(e.VolumeRainwater)
		out.TotalCosts += e.TotalCosts()
		years[e.Year] = struct{}{}
	}
	out.NumberOfYears = len(years)
	out.AverageYearlyVolume = core.Round2(out.TotalVolumeWater / float64(out.NumberOfYears))
	out.AverageYearlyCosts = core.Round2(out.TotalCosts / float64(out.NumberOfYears))
	out.TotalCosts = core.Round2(out.TotalCosts)
	return out
}

// WaterYearSummary is one billing year's summed volumes and costs.
type WaterYearSummary struct {
	Year             int     `json:"year"`
	VolumeWater      int     `json:"volume_water"`
	VolumeWastewater int     `json:"volume_wastewater"`
	VolumeRainwater  int     `json:"volume_rainwater"`
	CostsWater       float64 `json:"costs_water"`
	CostsWastewater  float64 `json:"costs_wastewater"`
	CostsRainwater   float64 `json:"costs_rainwater"`
	FixedPrice       float64 `json:"fixed_price"`
	TotalCosts       float64 `json:"total_costs"`
}

// WaterYearlySummary groups entries by their year field and sums every
// stream, ordered ascending.
func WaterYearlySummary(entries []core.WaterEntry) []WaterYearSummary {
	byYear := map[int]*WaterYearSummary{}
	for _, e := range entries {
		s, ok := byYear[e.Year]
		if !ok {
			s = &WaterYearSummary{Year: e.Year}
			byYear[e.Year] = s
		}
		s.VolumeWater += e.VolumeWater
		s.VolumeWastewater += e.VolumeWastewater
		s.VolumeRainwater += e.VolumeRainwater
		s.CostsWater += e.CostsWater
		s.CostsWastewater += e.CostsWastewater
		s.CostsRainwater += e.CostsRainwater
		s.FixedPrice += e.FixedPrice
	}
	summary := make([]WaterYearSummary, 0, len(byYear))
	for _, s := range byYear {
		s.CostsWater = core.Round2(s.CostsWater)
		s.CostsWastewater = core.Round2(s.CostsWastewater)
		s.CostsRainwater = core.Round2(s.CostsRainwater)
		s.FixedPrice = core.Round2(s.FixedPrice)
		s.TotalCosts = core.Round2(s.CostsWater + s.CostsWastewater + s.CostsRainwater + s.FixedPrice)
		summary = append(summary, *s)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Year < summary[j].Year })
	return summary
}

// StreamTrend is the avg/min/max unit price of one water stream for one
// year. A stream with no qualifying entries reports all zeros.
type StreamTrend struct {
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}

// WaterTrendPoint is one year of the water price trend.
type WaterTrendPoint struct {
	Year       int         `json:"year"`
	Water      StreamTrend `json:"water"`
	Wastewater StreamTrend `json:"wastewater"`
	Rainwater  StreamTrend `json:"rainwater"`
}

// WaterPriceTrend returns per-year unit-price statistics for each
// stream. Exclusion is per stream: an entry with zero rainwater volume
// still contributes to the water and wastewater lines.
func WaterPriceTrend(entries []core.WaterEntry) []WaterTrendPoint {
	type yearPrices struct {
		water, wastewater, rainwater []float64
	}
	byYear := map[int]*yearPrices{}
	for _, e := range entries {
		p, ok := byYear[e.Year]
		if !ok {
			p = &yearPrices{}
			byYear[e.Year] = p
		}
		if e.VolumeWater != 0 {
			p.water = append(p.water, e.CostsWater/float64(e.VolumeWater))
		}
		if e.VolumeWastewater != 0 {
			p.wastewater = append(p.wastewater, e.CostsWastewater/float64(e.VolumeWastewater))
		}
		if e.VolumeRainwater != 0 {
			p.rainwater = append(p.rainwater, e.CostsRainwater/float64(e.VolumeRainwater))
		}
	}
	trend := make([]WaterTrendPoint, 0, len(byYear))
	for year, p := range byYear {
		trend = append(trend, WaterTrendPoint{
			Year:       year,
			Water:      streamTrend(p.water),
			Wastewater: streamTrend(p.wastewater),
			Rainwater:  streamTrend(p.rainwater),
		})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Year < trend[j].Year })
	return trend
}

func streamTrend(prices []float64) StreamTrend {
	avg, min, max := priceStats(prices)
	return StreamTrend{AveragePrice: avg, MinPrice: min, MaxPrice: max}
}
