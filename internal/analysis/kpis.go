package analysis

import (
	"github.com/guarzo/storagemarket/internal/model"
)

// KPISet holds the market-wide summary for one (snapshot, myPrice,
// estUnits) triple. Computed once, never mutated.
type KPISet struct {
	MarketAvg        float64 `json:"market_avg"`
	MarketMin        float64 `json:"market_min"`
	MarketMax        float64 `json:"market_max"`
	PriceGap         float64 `json:"price_gap"`     // marketAvg - myPrice
	PriceGapPct      float64 `json:"price_gap_pct"` // gap / marketAvg * 100
	PromoPressure    float64 `json:"promo_pressure"`
	OccIndex         float64 `json:"occ_index"`
	RecommendedPrice float64 `json:"recommended_price"`
	ExtraPerUnit     float64 `json:"extra_per_unit"`
	AnnualUplift     float64 `json:"annual_uplift"`

	MyPrice      float64 `json:"my_price"`
	EstUnits     int     `json:"est_units"`
	ListingCount int     `json:"listing_count"`
	PricedCount  int     `json:"priced_count"`
}

// ComputeKPIs reduces a snapshot into market KPIs. Price KPIs use only
// listings with a lowest price; promo pressure deliberately uses the
// full snapshot, so promo exposure does not depend on price-field
// completeness. With zero priced listings the average is undefined and
// every average-derived field falls back to 0 instead of dividing.
func ComputeKPIs(snap model.Snapshot, myPrice float64, estUnits int) KPISet {
	k := KPISet{
		MyPrice:      myPrice,
		EstUnits:     estUnits,
		ListingCount: len(snap.Listings),
	}

	if len(snap.Listings) > 0 {
		promo := 0
		for _, l := range snap.Listings {
			if l.PromoFlag {
				promo++
			}
		}
		k.PromoPressure = float64(promo) / float64(len(snap.Listings)) * 100
	}

	priced := snap.Priced()
	k.PricedCount = len(priced)
	if len(priced) == 0 {
		k.RecommendedPrice = myPrice
		return k
	}

	sum := 0.0
	k.MarketMin = *priced[0].LowestPrice
	k.MarketMax = *priced[0].LowestPrice
	for _, l := range priced {
		p := *l.LowestPrice
		sum += p
		if p < k.MarketMin {
			k.MarketMin = p
		}
		if p > k.MarketMax {
			k.MarketMax = p
		}
	}
	k.MarketAvg = sum / float64(len(priced))

	k.PriceGap = k.MarketAvg - myPrice
	if k.MarketAvg != 0 {
		k.PriceGapPct = k.PriceGap / k.MarketAvg * 100
	}

	k.OccIndex = meanDemandSignal(priced, k.MarketAvg) * 100

	k.RecommendedPrice = myPrice
	if k.MarketAvg > myPrice {
		k.RecommendedPrice = k.MarketAvg
	}
	k.ExtraPerUnit = k.RecommendedPrice - myPrice
	if k.ExtraPerUnit < 0 {
		k.ExtraPerUnit = 0
	}
	k.AnnualUplift = k.ExtraPerUnit * float64(estUnits) * 12

	return k
}
