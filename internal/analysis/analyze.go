package analysis

import (
	"fmt"

	"github.com/guarzo/storagemarket/internal/model"
)

// Params carries the operator-supplied inputs for one analysis run.
// Labels have no effect on computation.
type Params struct {
	MyPrice  float64
	EstUnits int
	MyLabel  string // facility label in comparison outputs
	UnitType string // e.g. "10x10", reporting label only
	TopN     int    // underpriced listing cap, 0 = default
}

const defaultTopUnderpriced = 10

// Result bundles every derived output for one (snapshot, params) pair.
// All fields are recomputed fresh per run; nothing is mutated after
// Analyze returns.
type Result struct {
	KPIs               KPISet             `json:"kpis"`
	Action             Action             `json:"action"`
	PriceScenarios     []ScenarioRow      `json:"price_scenarios"`
	PromoScenarios     []PromoRow         `json:"promo_scenarios"`
	BandShares         []BandShare        `json:"band_shares"`
	DemandCohorts      CohortMatrix       `json:"demand_cohorts"`
	RatingPromo        []RatingPromoShare `json:"rating_promo"`
	Trend              TrendResult        `json:"trend"`
	TopUnderpriced     []UnderpricedListing `json:"top_underpriced"`
	DiscountDependence DiscountDependence `json:"discount_dependence"`
	Opportunity        []OpportunityPoint `json:"opportunity"`
	Comparison         []ComparisonPoint  `json:"comparison"`
}

// Analyze runs the full pipeline over one snapshot: KPIs, action
// classification, scenario tables, banding, cohorts, and trend. Pure
// with respect to the snapshot; safe to call concurrently over
// different snapshots.
func Analyze(snap model.Snapshot, p Params) (*Result, error) {
	if p.MyPrice <= 0 {
		return nil, fmt.Errorf("my price must be positive, got %.2f", p.MyPrice)
	}
	if p.EstUnits < 1 {
		return nil, fmt.Errorf("unit count must be at least 1, got %d", p.EstUnits)
	}
	if p.MyLabel == "" {
		p.MyLabel = "My Facility"
	}
	if p.TopN == 0 {
		p.TopN = defaultTopUnderpriced
	}

	k := ComputeKPIs(snap, p.MyPrice, p.EstUnits)

	return &Result{
		KPIs:               k,
		Action:             ClassifyAction(k),
		PriceScenarios:     PriceScenarios(k, p.MyPrice, p.EstUnits),
		PromoScenarios:     PromoScenarios(k, p.MyPrice, p.EstUnits),
		BandShares:         PriceBandShares(snap.Listings, k.MarketAvg),
		DemandCohorts:      DemandCohorts(snap.Listings, k.MarketAvg),
		RatingPromo:        RatingPromoMatrix(snap.Listings),
		Trend:              PriceTrend(snap.Listings),
		TopUnderpriced:     TopUnderpriced(snap.Listings, k.MarketAvg, p.TopN),
		DiscountDependence: ComputeDiscountDependence(snap.Listings),
		Opportunity:        OpportunityQuadrant(snap.Listings, k.MarketAvg, p.MyPrice, p.MyLabel),
		Comparison:         PriceComparison(snap.Listings, p.MyPrice, p.MyLabel),
	}, nil
}
