package analysis

import (
	"strings"
	"testing"

	"github.com/guarzo/storagemarket/internal/model"
)

func TestAnalyze_EndToEnd(t *testing.T) {
	snap := model.Snapshot{
		Market: "indiana/indianapolis",
		Listings: []model.Listing{
			{FacilityName: "A", LowestPrice: model.Float(50)},
			{FacilityName: "B", LowestPrice: model.Float(70)},
			{FacilityName: "C", LowestPrice: model.Float(60), PromoFlag: true},
		},
	}

	res, err := Analyze(snap, Params{MyPrice: 60, EstUnits: 10})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if abs(res.KPIs.MarketAvg-60) > 0.01 {
		t.Errorf("MarketAvg = %.2f, want 60.00", res.KPIs.MarketAvg)
	}
	if res.KPIs.PriceGap != 0 || res.KPIs.PriceGapPct != 0 {
		t.Errorf("gap = %.2f (%.2f%%), want 0", res.KPIs.PriceGap, res.KPIs.PriceGapPct)
	}
	if res.Action != ActionHold {
		t.Errorf("action = %s, want Hold", res.Action)
	}

	if len(res.PriceScenarios) != 6 || len(res.PromoScenarios) != 3 {
		t.Errorf("scenario tables: %d price rows, %d promo rows", len(res.PriceScenarios), len(res.PromoScenarios))
	}
	if len(res.BandShares) != 3 {
		t.Errorf("band shares: got %d bands", len(res.BandShares))
	}
	if res.Trend.Available {
		t.Error("trend should be unavailable without scrape dates")
	}
	if len(res.Comparison) != 4 { // 3 competitors + operator
		t.Errorf("comparison series: got %d points", len(res.Comparison))
	}
}

func TestAnalyze_ParamValidation(t *testing.T) {
	snap := model.Snapshot{}

	if _, err := Analyze(snap, Params{MyPrice: 0, EstUnits: 10}); err == nil {
		t.Error("expected error for non-positive price")
	}
	if _, err := Analyze(snap, Params{MyPrice: -5, EstUnits: 10}); err == nil {
		t.Error("expected error for negative price")
	}
	if _, err := Analyze(snap, Params{MyPrice: 60, EstUnits: 0}); err == nil {
		t.Error("expected error for zero units")
	}
}

func TestAnalyze_EmptySnapshot(t *testing.T) {
	res, err := Analyze(model.Snapshot{}, Params{MyPrice: 60, EstUnits: 10})
	if err != nil {
		t.Fatalf("empty snapshot must not fail: %v", err)
	}
	if res.KPIs.PriceGapPct != 0 {
		t.Errorf("PriceGapPct = %v, want 0", res.KPIs.PriceGapPct)
	}
	// A degenerate snapshot still produces scenario tables off the 0.9
	// occupancy fallback.
	for _, r := range res.PriceScenarios {
		if r.PriceChangePct == 0 && abs(r.EstOccupancy-90) > 0.001 {
			t.Errorf("identity occupancy = %.2f, want fallback 90.00", r.EstOccupancy)
		}
	}
}

func TestSummary(t *testing.T) {
	below := KPISet{MyPrice: 60, MarketAvg: 90, PriceGap: 30, OccIndex: 80, RecommendedPrice: 90, AnnualUplift: 7200}
	s := Summary(below, "Indianapolis", "10x10")
	if !strings.Contains(s, "below the market average") {
		t.Errorf("below-market summary missing uplift story: %q", s)
	}

	above := KPISet{MyPrice: 90, MarketAvg: 60, PriceGap: -30, PromoPressure: 40}
	s = Summary(above, "", "")
	if !strings.Contains(s, "at or above the market average") {
		t.Errorf("at/above-market summary wrong: %q", s)
	}
}

func TestReportTables_StableHeaders(t *testing.T) {
	res, err := Analyze(model.Snapshot{
		Listings: []model.Listing{{FacilityName: "A", LowestPrice: model.Float(50)}},
	}, Params{MyPrice: 60, EstUnits: 10})
	if err != nil {
		t.Fatal(err)
	}

	tables := map[string][][]string{
		"money":    ReportMoneyOnTable(res.KPIs, "10x10"),
		"price":    ReportPriceScenarios(res.PriceScenarios),
		"promo":    ReportPromoScenarios(res.PromoScenarios),
		"bands":    ReportPriceBands(res.BandShares),
		"cohorts":  ReportDemandCohorts(res.DemandCohorts),
		"rating":   ReportRatingPromo(res.RatingPromo),
		"trend":    ReportTrend(res.Trend),
		"under":    ReportTopUnderpriced(res.TopUnderpriced),
		"discount": ReportDiscountDependence(res.DiscountDependence),
	}

	for name, table := range tables {
		if len(table) == 0 || len(table[0]) == 0 {
			t.Errorf("%s: missing header row", name)
			continue
		}
		width := len(table[0])
		for i, row := range table {
			if len(row) != width {
				t.Errorf("%s: row %d has %d cells, header has %d", name, i, len(row), width)
			}
		}
	}
}
