package ingest

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/guarzo/storagemarket/internal/model"
	"golang.org/x/time/rate"
)

const (
	searchBaseURL   = "https://www.storage.com/self-storage"
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	scrapeRateLimit = 1 // requests per second
)

// Client fetches Storage.com search result pages and turns them into
// market snapshots.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	debug   bool
}

// NewClient creates a rate-limited scraping client.
func NewClient() *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		limiter: rate.NewLimiter(rate.Limit(scrapeRateLimit), 1),
		baseURL: searchBaseURL,
	}
}

// SetDebug enables debug logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SetBaseURL overrides the search URL root. Used in tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// FetchMarket downloads the search results page for one market and
// parses its facility cards into a snapshot. A page with no facility
// cards is treated as a fatal acquisition failure, matching the
// missing-input policy at this boundary.
func (c *Client) FetchMarket(ctx context.Context, state, citySlug string) (*model.Snapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/", c.baseURL, state, citySlug)
	if c.debug {
		log.Printf("ingest: fetching %s", url)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search page returned status %d", resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	now := time.Now()
	listings, err := ParseSearchPage(body, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("no facility cards found for %s/%s", state, citySlug)
	}

	if c.debug {
		log.Printf("ingest: parsed %d facility cards for %s/%s", len(listings), state, citySlug)
	}

	return &model.Snapshot{
		Market:    state + "/" + citySlug,
		FetchedAt: now,
		Listings:  listings,
	}, nil
}

// decodeBody unwraps br/gzip content encodings.
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gz, nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}
