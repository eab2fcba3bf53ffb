package analysis

import (
	"sort"

	"github.com/guarzo/storagemarket/internal/model"
)

// TrendPoint is the mean market price on one scrape date.
type TrendPoint struct {
	Date      string  `json:"date"`
	MarketAvg float64 `json:"market_avg"`
	Count     int     `json:"count"`
}

// TrendResult is the time series of market average prices, or an
// unavailable marker when the snapshot does not span enough dates.
type TrendResult struct {
	Available bool         `json:"available"`
	Reason    string       `json:"reason,omitempty"`
	Points    []TrendPoint `json:"points,omitempty"`
}

// PriceTrend groups priced listings by scrape date and computes the
// mean lowest price per date, ordered by date. Needs at least two
// distinct dates; with fewer it reports non-availability instead of an
// error so the rest of the pipeline keeps going.
func PriceTrend(listings []model.Listing) TrendResult {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, l := range listings {
		if !l.Priced() || l.ScrapeDate == "" {
			continue
		}
		sums[l.ScrapeDate] += *l.LowestPrice
		counts[l.ScrapeDate]++
	}

	if len(sums) < 2 {
		return TrendResult{Reason: "need at least two distinct scrape dates"}
	}

	dates := make([]string, 0, len(sums))
	for d := range sums {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]TrendPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, TrendPoint{
			Date:      d,
			MarketAvg: sums[d] / float64(counts[d]),
			Count:     counts[d],
		})
	}
	return TrendResult{Available: true, Points: points}
}
