package analysis

import "github.com/guarzo/storagemarket/internal/model"

// Demand signal levels. A heuristic 0-1 score approximating relative
// demand strength of a listing, derived from its price position versus
// the market average and its promo status.
const (
	SignalStrong          = 1.0 // at/above market, no discount
	SignalDiscounting     = 0.8 // at/above market but running a promo
	SignalCheap           = 0.7 // below market, not discount-dependent
	SignalDiscountReliant = 0.5 // below market and discounting, weakest
)

// DemandSignal scores one listing. The four conditions are disjoint and
// exhaustive. Every component that needs a demand signal goes through
// this function so the occupancy index, cohort matrix, and opportunity
// outputs stay consistent with each other.
func DemandSignal(price, marketAvg float64, promo bool) float64 {
	switch {
	case price >= marketAvg && !promo:
		return SignalStrong
	case price >= marketAvg && promo:
		return SignalDiscounting
	case !promo:
		return SignalCheap
	default:
		return SignalDiscountReliant
	}
}

// meanDemandSignal averages the demand signal over priced listings.
// Returns 0 when none are priced.
func meanDemandSignal(listings []model.Listing, marketAvg float64) float64 {
	sum := 0.0
	n := 0
	for _, l := range listings {
		if !l.Priced() {
			continue
		}
		sum += DemandSignal(*l.LowestPrice, marketAvg, l.PromoFlag)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
