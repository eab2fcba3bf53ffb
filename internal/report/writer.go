package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guarzo/storagemarket/internal/analysis"
)

// WriteTable writes one [][]string table to a CSV file, escaping every
// cell against formula injection.
func WriteTable(path string, table [][]string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range table {
		if err := w.Write(EscapeRow(row)); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// Result file names, stable across runs.
const (
	MoneyOnTableFile       = "money_on_table.csv"
	PriceScenariosFile     = "price_scenarios.csv"
	PromoROIFile           = "promo_roi_snapshot.csv"
	PriceBandShareFile     = "price_band_share.csv"
	DemandCohortsFile      = "demand_cohorts.csv"
	RatingPromoFile        = "rating_promo.csv"
	MarketTrendFile        = "market_trend.csv"
	TopUnderpricedFile     = "top_underpriced.csv"
	DiscountDependenceFile = "discount_dependence.csv"
)

// WriteAll exports every result table into dir. The trend table is
// skipped when the snapshot did not span enough dates.
func WriteAll(dir string, res *analysis.Result, unitType string) error {
	tables := map[string][][]string{
		MoneyOnTableFile:       analysis.ReportMoneyOnTable(res.KPIs, unitType),
		PriceScenariosFile:     analysis.ReportPriceScenarios(res.PriceScenarios),
		PromoROIFile:           analysis.ReportPromoScenarios(res.PromoScenarios),
		PriceBandShareFile:     analysis.ReportPriceBands(res.BandShares),
		DemandCohortsFile:      analysis.ReportDemandCohorts(res.DemandCohorts),
		RatingPromoFile:        analysis.ReportRatingPromo(res.RatingPromo),
		TopUnderpricedFile:     analysis.ReportTopUnderpriced(res.TopUnderpriced),
		DiscountDependenceFile: analysis.ReportDiscountDependence(res.DiscountDependence),
	}
	if res.Trend.Available {
		tables[MarketTrendFile] = analysis.ReportTrend(res.Trend)
	}

	for name, table := range tables {
		if err := WriteTable(filepath.Join(dir, name), table); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
