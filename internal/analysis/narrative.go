package analysis

import "fmt"

// Summary writes the operator-facing narrative for a KPI set: below
// market means a path toward the recommended price, at/above market
// means hold and watch promo pressure.
func Summary(k KPISet, market, unitType string) string {
	if market == "" {
		market = "your market"
	}
	if unitType == "" {
		unitType = "this unit type"
	}

	if k.PriceGap > 0 {
		return fmt.Sprintf(
			"Based on listings for %s units in %s, your price ($%.0f) is below the market average ($%.0f). "+
				"With a demand index of %.1f, you can move toward the recommended price of about $%.0f "+
				"without losing competitiveness. This single adjustment could add roughly $%.0f per year "+
				"for this unit type alone.",
			unitType, market, k.MyPrice, k.MarketAvg, k.OccIndex, k.RecommendedPrice, k.AnnualUplift)
	}

	return fmt.Sprintf(
		"Your current price ($%.0f) is at or above the market average ($%.0f) for %s in %s. "+
			"Given the current promo pressure of %.1f%%, it may be better to hold your price and focus on "+
			"amenities and service rather than increasing it further.",
		k.MyPrice, k.MarketAvg, unitType, market, k.PromoPressure)
}
