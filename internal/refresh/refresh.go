package refresh

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/guarzo/storagemarket/internal/analysis"
	"github.com/guarzo/storagemarket/internal/cache"
	"github.com/guarzo/storagemarket/internal/config"
	"github.com/guarzo/storagemarket/internal/model"
	"github.com/guarzo/storagemarket/internal/report"
	"github.com/robfig/cron/v3"
)

// Fetcher acquires a fresh market snapshot. Satisfied by ingest.Client.
type Fetcher interface {
	FetchMarket(ctx context.Context, state, citySlug string) (*model.Snapshot, error)
}

// snapshotTTL is how long a cached market snapshot stays usable
// before a scheduled run re-fetches it.
const snapshotTTL = 24 * time.Hour

// Service keeps the snapshot cache fresh and re-derives the analysis
// outputs after each fetch.
type Service struct {
	fetcher Fetcher
	store   *cache.Store
	cfg     *config.Config
	cron    *cron.Cron
}

// New creates a refresh service over a fetcher and snapshot store.
func New(fetcher Fetcher, store *cache.Store, cfg *config.Config) *Service {
	return &Service{
		fetcher: fetcher,
		store:   store,
		cfg:     cfg,
	}
}

// Start schedules recurring refreshes with the given cron spec and
// returns immediately. Stop cancels the schedule.
func (s *Service) Start(spec string) error {
	if s.cron != nil {
		return fmt.Errorf("refresh schedule already started")
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			log.Printf("refresh: scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling refresh %q: %w", spec, err)
	}

	c.Start()
	s.cron = c
	log.Printf("refresh: scheduled %q for %s/%s", spec, s.cfg.State, s.cfg.City)
	return nil
}

// Stop halts the schedule. Safe to call when never started.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

// Snapshot returns a usable snapshot for the configured market,
// preferring the cache and fetching only when stale or missing.
func (s *Service) Snapshot(ctx context.Context) (model.Snapshot, error) {
	key := cache.MarketKey(s.cfg.State, s.cfg.City, s.cfg.UnitSize)
	if snap, ok := s.store.Get(key); ok {
		if s.cfg.Debug {
			log.Printf("refresh: cache hit for %s", key)
		}
		return snap, nil
	}

	res, err := s.Refresh(ctx)
	if err != nil {
		return model.Snapshot{}, err
	}
	return res.Snapshot, nil
}

// RefreshResult bundles the snapshot with the analysis derived from it.
type RefreshResult struct {
	Snapshot model.Snapshot
	Analysis *analysis.Result
}

// Refresh fetches the configured market, caches the snapshot, runs the
// analysis pipeline, and exports the result tables.
func (s *Service) Refresh(ctx context.Context) (*RefreshResult, error) {
	start := time.Now()
	log.Printf("refresh: fetching %s/%s", s.cfg.State, s.cfg.City)

	snap, err := s.fetcher.FetchMarket(ctx, s.cfg.State, s.cfg.City)
	if err != nil {
		return nil, fmt.Errorf("fetching market: %w", err)
	}
	snap.UnitSize = s.cfg.UnitSize

	key := cache.MarketKey(s.cfg.State, s.cfg.City, s.cfg.UnitSize)
	if err := s.store.Put(key, *snap, snapshotTTL); err != nil {
		// A cache write failure is not worth losing the run over.
		log.Printf("refresh: caching snapshot failed: %v", err)
	}

	res, err := analysis.Analyze(*snap, analysis.Params{
		MyPrice:  s.cfg.MyPrice,
		EstUnits: s.cfg.EstUnits,
		MyLabel:  s.cfg.MyLabel,
		UnitType: s.cfg.UnitSize,
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing market: %w", err)
	}

	if s.cfg.ReportDir != "" {
		if err := report.WriteAll(s.cfg.ReportDir, res, s.cfg.UnitSize); err != nil {
			return nil, fmt.Errorf("exporting reports: %w", err)
		}
	}

	log.Printf("refresh: %s/%s done in %s (%d listings, action %s)",
		s.cfg.State, s.cfg.City, time.Since(start).Round(time.Millisecond),
		len(snap.Listings), res.Action)

	return &RefreshResult{Snapshot: *snap, Analysis: res}, nil
}
