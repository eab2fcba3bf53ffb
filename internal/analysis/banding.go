package analysis

import (
	"math"
	"sort"

	"github.com/guarzo/storagemarket/internal/model"
)

// Price positioning bands relative to the market average.
const (
	BandGood  = "Good"  // within +-5% of market
	BandFair  = "Fair"  // within +-10%
	BandRisky = "Risky" // further out
)

// BandShare is the share of priced listings falling in one band.
type BandShare struct {
	Band     string  `json:"band"`
	SharePct float64 `json:"share_pct"`
	Count    int     `json:"count"`
}

// PriceBand classifies one price against the market average. Boundaries
// are inclusive: a deviation of exactly 5% is still Good.
func PriceBand(price, marketAvg float64) string {
	devPct := (price - marketAvg) / marketAvg * 100
	switch {
	case math.Abs(devPct) <= 5:
		return BandGood
	case math.Abs(devPct) <= 10:
		return BandFair
	default:
		return BandRisky
	}
}

// PriceBandShares buckets priced listings into Good/Fair/Risky and
// returns the share per band. All three bands are always present so the
// output columns stay stable across runs.
func PriceBandShares(listings []model.Listing, marketAvg float64) []BandShare {
	counts := map[string]int{}
	total := 0
	for _, l := range listings {
		if !l.Priced() || marketAvg == 0 {
			continue
		}
		counts[PriceBand(*l.LowestPrice, marketAvg)]++
		total++
	}

	shares := make([]BandShare, 0, 3)
	for _, band := range []string{BandGood, BandFair, BandRisky} {
		s := BandShare{Band: band, Count: counts[band]}
		if total > 0 {
			s.SharePct = float64(counts[band]) / float64(total) * 100
		}
		shares = append(shares, s)
	}
	return shares
}

// Distance bands for the cohort matrix.
var distanceBands = []string{"0-2 mi", "2-4 mi", "4-6 mi", "6+ mi"}

// Price bands (terciles) for the cohort matrix.
var priceBands = []string{"Cheap", "Mid", "Premium"}

func distanceBand(miles float64) string {
	switch {
	case miles <= 2:
		return distanceBands[0]
	case miles <= 4:
		return distanceBands[1]
	case miles <= 6:
		return distanceBands[2]
	default:
		return distanceBands[3]
	}
}

// CohortCell is one (distance band, price band) cell: the mean demand
// signal of the listings that fall in it.
type CohortCell struct {
	MeanSignal float64 `json:"mean_signal"`
	Count      int     `json:"count"`
}

// CohortMatrix is the distance x price demand cross-tabulation. Cells
// with no listings are absent from the map, not zero.
type CohortMatrix struct {
	DistanceBands []string                         `json:"distance_bands"`
	PriceBands    []string                         `json:"price_bands"`
	Cells         map[string]map[string]CohortCell `json:"cells"`
}

// DemandCohorts buckets listings with both a price and a distance into
// the distance x price matrix, with mean demand signal as the cell
// value. Terciles are cut at the 33rd/66th percentile of the eligible
// listings' prices; boundaries are upper-inclusive, so a listing
// exactly at a cut falls into the lower band.
func DemandCohorts(listings []model.Listing, marketAvg float64) CohortMatrix {
	m := CohortMatrix{
		DistanceBands: distanceBands,
		PriceBands:    priceBands,
		Cells:         map[string]map[string]CohortCell{},
	}

	var eligible []model.Listing
	var prices []float64
	for _, l := range listings {
		if l.Priced() && l.DistanceMiles != nil {
			eligible = append(eligible, l)
			prices = append(prices, *l.LowestPrice)
		}
	}
	if len(eligible) == 0 {
		return m
	}

	sort.Float64s(prices)
	q1 := percentile(prices, 0.33)
	q2 := percentile(prices, 0.66)

	type agg struct {
		sum float64
		n   int
	}
	sums := map[string]map[string]*agg{}

	for _, l := range eligible {
		price := *l.LowestPrice
		db := distanceBand(*l.DistanceMiles)
		pb := tercileBand(price, q1, q2)

		if sums[db] == nil {
			sums[db] = map[string]*agg{}
		}
		if sums[db][pb] == nil {
			sums[db][pb] = &agg{}
		}
		sums[db][pb].sum += DemandSignal(price, marketAvg, l.PromoFlag)
		sums[db][pb].n++
	}

	for db, row := range sums {
		m.Cells[db] = map[string]CohortCell{}
		for pb, a := range row {
			m.Cells[db][pb] = CohortCell{MeanSignal: a.sum / float64(a.n), Count: a.n}
		}
	}
	return m
}

func tercileBand(price, q1, q2 float64) string {
	switch {
	case price <= q1:
		return priceBands[0]
	case price <= q2:
		return priceBands[1]
	default:
		return priceBands[2]
	}
}

// percentile returns the q-th quantile of a sorted slice using linear
// interpolation between the two nearest ranks.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Rating buckets for the rating x promo matrix.
var ratingBuckets = []string{"<4.0", "4.0-4.5", ">4.5"}

func ratingBucket(rating float64) string {
	switch {
	case rating < 4.0:
		return ratingBuckets[0]
	case rating <= 4.5:
		return ratingBuckets[1]
	default:
		return ratingBuckets[2]
	}
}

// RatingPromoShare is one rating bucket with the share of its listings
// currently running a promo.
type RatingPromoShare struct {
	Bucket        string  `json:"bucket"`
	PromoSharePct float64 `json:"promo_share_pct"`
	Count         int     `json:"count"`
}

// RatingPromoMatrix buckets priced listings that carry a rating and
// reports the promo share per bucket. Buckets with no listings are
// omitted.
func RatingPromoMatrix(listings []model.Listing) []RatingPromoShare {
	counts := map[string]int{}
	promos := map[string]int{}
	for _, l := range listings {
		if !l.Priced() || l.Rating == nil {
			continue
		}
		b := ratingBucket(*l.Rating)
		counts[b]++
		if l.PromoFlag {
			promos[b]++
		}
	}

	var out []RatingPromoShare
	for _, b := range ratingBuckets {
		if counts[b] == 0 {
			continue
		}
		out = append(out, RatingPromoShare{
			Bucket:        b,
			PromoSharePct: float64(promos[b]) / float64(counts[b]) * 100,
			Count:         counts[b],
		})
	}
	return out
}
