package analysis

import (
	"sort"

	"github.com/guarzo/storagemarket/internal/model"
)

// UnderpricedListing is a competitor priced below the market average.
type UnderpricedListing struct {
	FacilityName string  `json:"facility_name"`
	LowestPrice  float64 `json:"lowest_price"`
	GapVsAvg     float64 `json:"gap_vs_avg"` // marketAvg - price, > 0
}

// TopUnderpriced ranks priced competitors by how far below the market
// average they sit and keeps the top N. Listings at or above the
// average are excluded.
func TopUnderpriced(listings []model.Listing, marketAvg float64, topN int) []UnderpricedListing {
	var out []UnderpricedListing
	for _, l := range listings {
		if !l.Priced() {
			continue
		}
		gap := marketAvg - *l.LowestPrice
		if gap <= 0 {
			continue
		}
		out = append(out, UnderpricedListing{
			FacilityName: l.FacilityName,
			LowestPrice:  *l.LowestPrice,
			GapVsAvg:     gap,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].GapVsAvg > out[j].GapVsAvg
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// DiscountDependence compares average prices inside and outside the
// promo cohort: what promo-runners charge now, what they charged before
// discounting, and what the no-promo cohort charges.
type DiscountDependence struct {
	AvgNoPromoPrice    float64 `json:"avg_no_promo_price"`
	AvgOriginalPrice   float64 `json:"avg_original_price"`   // pre-discount, promo cohort
	AvgDiscountedPrice float64 `json:"avg_discounted_price"` // current, promo cohort
	PromoCount         int     `json:"promo_count"`
	NoPromoCount       int     `json:"no_promo_count"`
}

// ComputeDiscountDependence averages prices per cohort. The promo
// cohort only counts listings that expose both the discounted and the
// pre-discount price; cohorts with no members report a 0 average.
func ComputeDiscountDependence(listings []model.Listing) DiscountDependence {
	var d DiscountDependence
	var sumDisc, sumOrig, sumNoPromo float64

	for _, l := range listings {
		if l.PromoFlag {
			if l.Priced() && l.StartingPrice != nil {
				sumDisc += *l.LowestPrice
				sumOrig += *l.StartingPrice
				d.PromoCount++
			}
		} else if l.Priced() {
			sumNoPromo += *l.LowestPrice
			d.NoPromoCount++
		}
	}

	if d.PromoCount > 0 {
		d.AvgDiscountedPrice = sumDisc / float64(d.PromoCount)
		d.AvgOriginalPrice = sumOrig / float64(d.PromoCount)
	}
	if d.NoPromoCount > 0 {
		d.AvgNoPromoPrice = sumNoPromo / float64(d.NoPromoCount)
	}
	return d
}

// OpportunityPoint places one listing in opportunity space: price
// deviation from the market average against demand signal.
type OpportunityPoint struct {
	FacilityName   string  `json:"facility_name"`
	PriceDeviation float64 `json:"price_deviation"` // price - marketAvg
	DemandSignal   float64 `json:"demand_signal"`
	Mine           bool    `json:"mine,omitempty"`
}

// OpportunityQuadrant maps priced listings into opportunity space and
// appends the operator's own point at (myPrice - avg, mean signal).
func OpportunityQuadrant(listings []model.Listing, marketAvg, myPrice float64, myLabel string) []OpportunityPoint {
	var points []OpportunityPoint
	for _, l := range listings {
		if !l.Priced() {
			continue
		}
		points = append(points, OpportunityPoint{
			FacilityName:   l.FacilityName,
			PriceDeviation: *l.LowestPrice - marketAvg,
			DemandSignal:   DemandSignal(*l.LowestPrice, marketAvg, l.PromoFlag),
		})
	}
	if len(points) == 0 {
		return points
	}

	mean := 0.0
	for _, p := range points {
		mean += p.DemandSignal
	}
	mean /= float64(len(points))

	points = append(points, OpportunityPoint{
		FacilityName:   myLabel,
		PriceDeviation: myPrice - marketAvg,
		DemandSignal:   mean,
		Mine:           true,
	})
	return points
}

// ComparisonPoint is one bar of the price comparison series.
type ComparisonPoint struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
	Mine  bool    `json:"mine,omitempty"`
}

// PriceComparison lists competitor prices in snapshot order with the
// operator appended last, ready for a bar chart or table.
func PriceComparison(listings []model.Listing, myPrice float64, myLabel string) []ComparisonPoint {
	var points []ComparisonPoint
	for _, l := range listings {
		if !l.Priced() {
			continue
		}
		points = append(points, ComparisonPoint{Label: l.FacilityName, Price: *l.LowestPrice})
	}
	return append(points, ComparisonPoint{Label: myLabel, Price: myPrice, Mine: true})
}
