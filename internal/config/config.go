package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the operator-supplied parameters for analysis runs.
// Every computation takes these as explicit arguments; nothing reads
// the environment past Load.
type Config struct {
	MyPrice  float64 // current monthly price, required > 0
	EstUnits int     // units of this type, required >= 1
	MyLabel  string

	// Reporting labels, no effect on computation.
	ZipCode  string
	City     string
	State    string
	UnitSize string

	CachePath   string
	ReportDir   string
	RefreshSpec string // cron spec for scheduled refreshes
	Debug       bool
}

const (
	defaultEstUnits    = 20
	defaultMyLabel     = "My Facility"
	defaultCachePath   = "data/snapshots.json"
	defaultReportDir   = "reports"
	defaultRefreshSpec = "@daily"
)

// Load reads configuration from the environment, with an optional .env
// file merged in first. Validation failures are fatal: an analysis run
// without a valid price or unit count cannot produce anything useful.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := &Config{
		MyLabel:     envOr("MY_LABEL", defaultMyLabel),
		ZipCode:     os.Getenv("ZIP_CODE"),
		City:        os.Getenv("CITY"),
		State:       os.Getenv("STATE"),
		UnitSize:    envOr("UNIT_SIZE", "10x10"),
		CachePath:   envOr("CACHE_PATH", defaultCachePath),
		ReportDir:   envOr("REPORT_DIR", defaultReportDir),
		RefreshSpec: envOr("REFRESH_SPEC", defaultRefreshSpec),
		EstUnits:    defaultEstUnits,
	}

	raw := os.Getenv("MY_PRICE")
	if raw == "" {
		return nil, fmt.Errorf("MY_PRICE is required")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing MY_PRICE %q: %w", raw, err)
	}
	if price <= 0 {
		return nil, fmt.Errorf("MY_PRICE must be positive, got %v", price)
	}
	cfg.MyPrice = price

	if raw := os.Getenv("EST_UNITS"); raw != "" {
		units, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing EST_UNITS %q: %w", raw, err)
		}
		if units < 1 {
			return nil, fmt.Errorf("EST_UNITS must be at least 1, got %d", units)
		}
		cfg.EstUnits = units
	}

	if raw := os.Getenv("DEBUG"); raw != "" {
		cfg.Debug, _ = strconv.ParseBool(raw)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
