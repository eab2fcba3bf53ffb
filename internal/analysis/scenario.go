package analysis

// ScenarioRow is one hypothetical price-change outcome.
type ScenarioRow struct {
	PriceChangePct   float64 `json:"price_change_pct"`
	NewPrice         float64 `json:"new_price"`
	EstOccupancy     float64 `json:"est_occupancy"` // percent, 0-100
	EstAnnualRevenue float64 `json:"est_annual_revenue"`
	DeltaVsCurrent   float64 `json:"delta_vs_current"`
}

// PromoRow is one row of the promo ROI snapshot.
type PromoRow struct {
	Scenario             string  `json:"scenario"`
	Price                float64 `json:"price"`
	EffectiveDiscountPct float64 `json:"effective_discount_pct"`
	EstOccupancyPct      float64 `json:"est_occupancy_pct"`
	EstAnnualRevenue     float64 `json:"est_annual_revenue"`
}

// priceChangeSteps are the fixed what-if deltas, as fractions.
var priceChangeSteps = []float64{-0.10, -0.05, 0.0, 0.03, 0.05, 0.10}

// priceElasticity: every +5% on price costs 2.5 occupancy points.
const priceElasticity = 0.5

const fallbackOccupancy = 0.9

// baselineOccupancy derives the starting occupancy from the occupancy
// index. A degenerate snapshot (index <= 0) falls back to 0.9 so the
// scenario tables stay meaningful.
func baselineOccupancy(k KPISet) float64 {
	occ := k.OccIndex / 100.0
	if occ <= 0 {
		return fallbackOccupancy
	}
	return occ
}

// PriceScenarios projects annual revenue across the fixed set of price
// changes. Occupancy moves inversely to price and is clamped to
// [0.6, 1.0]. Deterministic; no I/O.
func PriceScenarios(k KPISet, myPrice float64, estUnits int) []ScenarioRow {
	baseOcc := baselineOccupancy(k)
	currentRevenue := myPrice * float64(estUnits) * 12 * baseOcc

	rows := make([]ScenarioRow, 0, len(priceChangeSteps))
	for _, step := range priceChangeSteps {
		newPrice := myPrice * (1.0 + step)

		occ := baseOcc - step*priceElasticity
		occ = clamp(occ, 0.6, 1.0)

		revenue := newPrice * float64(estUnits) * 12 * occ
		rows = append(rows, ScenarioRow{
			PriceChangePct:   step * 100,
			NewPrice:         newPrice,
			EstOccupancy:     occ * 100,
			EstAnnualRevenue: revenue,
			DeltaVsCurrent:   revenue - currentRevenue,
		})
	}
	return rows
}

// heavyPromoDiscount is the flat dollar reduction modeled for the
// "Heavy promo" row.
const heavyPromoDiscount = 5.0

// PromoScenarios builds the fixed three-row promo ROI snapshot: no
// promo, a light promo (occupancy +5 points at the same price, nominal
// 5% discount label), and a heavy promo ($5 off, occupancy +10 points).
func PromoScenarios(k KPISet, myPrice float64, estUnits int) []PromoRow {
	baseOcc := baselineOccupancy(k)
	annual := func(price, occ float64) float64 {
		return price * float64(estUnits) * 12 * occ
	}

	lightOcc := clampMax(baseOcc+0.05, 1.0)
	heavyOcc := clampMax(baseOcc+0.10, 1.0)
	heavyPrice := myPrice - heavyPromoDiscount

	return []PromoRow{
		{
			Scenario:         "No promo",
			Price:            myPrice,
			EstOccupancyPct:  baseOcc * 100,
			EstAnnualRevenue: annual(myPrice, baseOcc),
		},
		{
			Scenario:             "Light promo",
			Price:                myPrice,
			EffectiveDiscountPct: 5.0,
			EstOccupancyPct:      lightOcc * 100,
			EstAnnualRevenue:     annual(myPrice, lightOcc),
		},
		{
			Scenario:             "Heavy promo",
			Price:                heavyPrice,
			EffectiveDiscountPct: heavyPromoDiscount / myPrice * 100,
			EstOccupancyPct:      heavyOcc * 100,
			EstAnnualRevenue:     annual(heavyPrice, heavyOcc),
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMax(v, hi float64) float64 {
	if v > hi {
		return hi
	}
	return v
}
