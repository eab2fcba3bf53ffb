package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/guarzo/storagemarket/internal/model"
)

// ldFacility is the structured-data block embedded in each facility
// card. Numeric fields arrive as either JSON numbers or strings
// depending on the page build, hence the raw types.
type ldFacility struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	PriceRange string `json:"priceRange"`
	Address    struct {
		StreetAddress   string `json:"streetAddress"`
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		PostalCode      string `json:"postalCode"`
	} `json:"address"`
	Geo struct {
		Latitude  json.RawMessage `json:"latitude"`
		Longitude json.RawMessage `json:"longitude"`
	} `json:"geo"`
	AggregateRating struct {
		RatingValue json.RawMessage `json:"ratingValue"`
		RatingCount json.RawMessage `json:"ratingCount"`
	} `json:"aggregateRating"`
}

// ParseSearchPage extracts one listing per facility card on a
// Storage.com search results page. Cards with unparseable or missing
// fields still produce a listing; the optional fields just stay nil.
func ParseSearchPage(r io.Reader, scrapeDate string) ([]model.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}

	var listings []model.Listing
	doc.Find("div.facility-card").Each(func(i int, card *goquery.Selection) {
		listings = append(listings, parseCard(card, scrapeDate))
	})
	return listings, nil
}

// ParseFile parses a saved search results page. A missing or unreadable
// file is fatal at this boundary.
func ParseFile(path, scrapeDate string) ([]model.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening search page: %w", err)
	}
	defer f.Close()
	return ParseSearchPage(f, scrapeDate)
}

func parseCard(card *goquery.Selection, scrapeDate string) model.Listing {
	l := model.Listing{ScrapeDate: scrapeDate}

	if ldText := card.Find("script[type='application/ld+json']").First().Text(); ldText != "" {
		var ld ldFacility
		if err := json.Unmarshal([]byte(strings.TrimSpace(ldText)), &ld); err == nil {
			l.FacilityName = ld.Name
			l.RelativeURL = ld.URL
			l.PriceRange = ld.PriceRange
			l.Street = ld.Address.StreetAddress
			l.City = ld.Address.AddressLocality
			l.State = ld.Address.AddressRegion
			l.ZipCode = ld.Address.PostalCode
			l.Latitude = rawFloat(ld.Geo.Latitude)
			l.Longitude = rawFloat(ld.Geo.Longitude)
			l.Rating = rawFloat(ld.AggregateRating.RatingValue)
			l.RatingCount = rawInt(ld.AggregateRating.RatingCount)
		}
	}

	if addr := strings.TrimSpace(card.Find("span.facility-address").First().Text()); addr != "" {
		l.AddressText = addr
	}

	// Distance text reads like "5 miles".
	if dist := strings.TrimSpace(card.Find("div.facility-distance span").First().Text()); dist != "" {
		if fields := strings.Fields(dist); len(fields) > 0 {
			if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
				l.DistanceMiles = &v
			}
		}
	}

	l.LowestPrice = parsePrice(card.Find("span.lowest-price").First().Text())
	l.StartingPrice = parsePrice(card.Find("span.starting-price").First().Text())

	// Promo means a crossed-out starting price above the current one.
	l.PromoFlag = l.LowestPrice != nil && l.StartingPrice != nil &&
		*l.LowestPrice < *l.StartingPrice

	return l
}

// parsePrice turns "$1,234.50" into a float, nil when absent or
// malformed.
func parsePrice(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "$", "")
	text = strings.ReplaceAll(text, ",", "")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &v
}

// rawFloat reads a JSON value that may be a number or a quoted number.
func rawFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &v
		}
	}
	return nil
}

func rawInt(raw json.RawMessage) *int {
	f := rawFloat(raw)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
