package model

import "time"

// Listing is one competitor facility/unit offering parsed from a
// Storage.com search results page. Pointer fields are absent when the
// page did not carry the value.
type Listing struct {
	FacilityName  string   `json:"facility_name,omitempty"`
	RelativeURL   string   `json:"relative_url,omitempty"`
	Street        string   `json:"street,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	ZipCode       string   `json:"zip_code,omitempty"`
	AddressText   string   `json:"address_text,omitempty"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
	LowestPrice   *float64 `json:"lowest_price,omitempty"`
	StartingPrice *float64 `json:"starting_price,omitempty"`
	PriceRange    string   `json:"price_range,omitempty"`
	PromoFlag     bool     `json:"promo_flag"`
	Rating        *float64 `json:"rating,omitempty"`
	RatingCount   *int     `json:"rating_count,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	ScrapeDate    string   `json:"scrape_date,omitempty"` // YYYY-MM-DD
}

// Priced reports whether the listing carries the canonical comparison
// price. Listings without it are excluded from price-based aggregates.
func (l Listing) Priced() bool {
	return l.LowestPrice != nil
}

// Snapshot is the full set of competitor listings for one market,
// sampled at one point in time (or across several, when scrape dates
// vary). Read-only input to the analysis engine.
type Snapshot struct {
	Market    string    `json:"market,omitempty"` // e.g. "indiana/indianapolis"
	UnitSize  string    `json:"unit_size,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
	Listings  []Listing `json:"listings"`
}

// Priced returns the subset of listings with a lowest price.
func (s Snapshot) Priced() []Listing {
	out := make([]Listing, 0, len(s.Listings))
	for _, l := range s.Listings {
		if l.Priced() {
			out = append(out, l)
		}
	}
	return out
}

// Float returns a pointer to v. Convenience for building listings.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
