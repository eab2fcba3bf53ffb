package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/guarzo/storagemarket/internal/model"
)

// Factory generates deterministic random listings and snapshots for
// tests and benchmarks.
type Factory struct {
	rand *rand.Rand
}

// NewFactory creates a factory with a seeded generator. Seed 0 uses
// the clock.
func NewFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{rand: rand.New(rand.NewSource(seed))}
}

// Listing generates one plausible competitor listing. Roughly a third
// run a promo; small slices of the population miss a price, rating, or
// distance the way scraped pages do.
func (f *Factory) Listing() model.Listing {
	l := model.Listing{
		FacilityName: fmt.Sprintf("Test Storage %d", f.rand.Intn(10000)),
		ScrapeDate:   time.Now().Format("2006-01-02"),
	}

	if f.rand.Float64() < 0.9 {
		price := 30 + f.rand.Float64()*120
		l.LowestPrice = &price
		if f.rand.Float64() < 0.35 {
			starting := price * (1.1 + f.rand.Float64()*0.4)
			l.StartingPrice = &starting
			l.PromoFlag = true
		}
	}
	if f.rand.Float64() < 0.8 {
		rating := 3.0 + f.rand.Float64()*2.0
		count := f.rand.Intn(400) + 1
		l.Rating = &rating
		l.RatingCount = &count
	}
	if f.rand.Float64() < 0.85 {
		dist := f.rand.Float64() * 8
		l.DistanceMiles = &dist
	}

	return l
}

// Snapshot generates a market snapshot with n listings.
func (f *Factory) Snapshot(n int) model.Snapshot {
	listings := make([]model.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, f.Listing())
	}
	return model.Snapshot{
		Market:    "test/market",
		UnitSize:  "10x10",
		FetchedAt: time.Now(),
		Listings:  listings,
	}
}
