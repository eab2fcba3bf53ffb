package analysis

import (
	"fmt"
	"math"
	"strconv"
)

// Report builders turn derived results into [][]string tables with
// stable headers, ready for CSV export or tabular display.

func ReportKPIs(k KPISet) [][]string {
	return [][]string{
		{"Metric", "Value"},
		{"MarketAvg", money(k.MarketAvg)},
		{"MarketMin", money(k.MarketMin)},
		{"MarketMax", money(k.MarketMax)},
		{"PriceGap", fmt.Sprintf("%.2f", k.PriceGap)},
		{"PriceGapPct", pct1(k.PriceGapPct)},
		{"PromoPressure", pct1(k.PromoPressure)},
		{"OccIndex", fmt.Sprintf("%.1f", k.OccIndex)},
		{"RecommendedPrice", money(k.RecommendedPrice)},
		{"AnnualUplift", money(k.AnnualUplift)},
	}
}

// ReportMoneyOnTable is the single-row uplift summary for one unit
// type.
func ReportMoneyOnTable(k KPISet, unitType string) [][]string {
	if unitType == "" {
		unitType = "Example unit type"
	}
	return [][]string{
		{"UnitType", "YourPrice", "MarketAvgPrice", "PriceGap", "PriceGapPct", "AnnualUplift", "Units"},
		{
			unitType,
			money(k.MyPrice),
			money(k.MarketAvg),
			fmt.Sprintf("%.2f", k.PriceGap),
			pct1(k.PriceGapPct),
			money(k.AnnualUplift),
			strconv.Itoa(k.EstUnits),
		},
	}
}

func ReportPriceScenarios(rows []ScenarioRow) [][]string {
	out := [][]string{
		{"PriceChangePct", "NewPrice", "EstOccupancyPct", "EstAnnualRevenue", "DeltaVsCurrent"},
	}
	for _, r := range rows {
		out = append(out, []string{
			pct1(r.PriceChangePct),
			money(r.NewPrice),
			pct1(r.EstOccupancy),
			money(r.EstAnnualRevenue),
			fmt.Sprintf("%.2f", r.DeltaVsCurrent),
		})
	}
	return out
}

func ReportPromoScenarios(rows []PromoRow) [][]string {
	out := [][]string{
		{"Scenario", "Price", "EffectiveDiscountPct", "EstOccupancyPct", "EstAnnualRevenue"},
	}
	for _, r := range rows {
		out = append(out, []string{
			r.Scenario,
			money(r.Price),
			pct1(r.EffectiveDiscountPct),
			pct1(r.EstOccupancyPct),
			money(r.EstAnnualRevenue),
		})
	}
	return out
}

func ReportPriceBands(shares []BandShare) [][]string {
	out := [][]string{{"Band", "SharePct", "Count"}}
	for _, s := range shares {
		out = append(out, []string{s.Band, pct1(s.SharePct), strconv.Itoa(s.Count)})
	}
	return out
}

// ReportDemandCohorts flattens the distance x price matrix into one row
// per distance band, one column per price band. Empty cells stay blank.
func ReportDemandCohorts(m CohortMatrix) [][]string {
	header := append([]string{"DistanceBand"}, m.PriceBands...)
	out := [][]string{header}
	for _, db := range m.DistanceBands {
		row := []string{db}
		for _, pb := range m.PriceBands {
			cell, ok := m.Cells[db][pb]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%.2f", cell.MeanSignal))
		}
		out = append(out, row)
	}
	return out
}

func ReportRatingPromo(shares []RatingPromoShare) [][]string {
	out := [][]string{{"RatingBucket", "PromoSharePct", "Count"}}
	for _, s := range shares {
		out = append(out, []string{s.Bucket, pct1(s.PromoSharePct), strconv.Itoa(s.Count)})
	}
	return out
}

func ReportTrend(t TrendResult) [][]string {
	out := [][]string{{"Date", "MarketAvgPrice", "Listings"}}
	for _, p := range t.Points {
		out = append(out, []string{p.Date, money(p.MarketAvg), strconv.Itoa(p.Count)})
	}
	return out
}

func ReportTopUnderpriced(rows []UnderpricedListing) [][]string {
	out := [][]string{{"Facility", "LowestPrice", "GapVsAvg"}}
	for _, r := range rows {
		out = append(out, []string{r.FacilityName, money(r.LowestPrice), money(r.GapVsAvg)})
	}
	return out
}

func ReportDiscountDependence(d DiscountDependence) [][]string {
	return [][]string{
		{"Cohort", "AvgPrice", "Count"},
		{"No promo", money(d.AvgNoPromoPrice), strconv.Itoa(d.NoPromoCount)},
		{"Promo, pre-discount", money(d.AvgOriginalPrice), strconv.Itoa(d.PromoCount)},
		{"Promo, discounted", money(d.AvgDiscountedPrice), strconv.Itoa(d.PromoCount)},
	}
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(round2(v), 'f', 2, 64)
}

func pct1(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
