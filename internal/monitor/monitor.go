// Package monitor drives one measurement run: probe every target in order
// and append each result to the store.
package monitor

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"webmon/internal/models"
	"webmon/internal/storage"
)

// Prober performs a single measurement for one site.
type Prober interface {
	Probe(ctx context.Context, site string) models.Observation
}

// Summary aggregates the outcome of one run.
type Summary struct {
	Sites       int // targets probed
	Failures    int // probes that got no response
	CacheMisses int // 200 responses not served from a cache
	RowsLost    int // observations the store refused even after its retry
}

// Monitor probes each configured site sequentially and records one
// observation per site. Per-site failures are logged and never stop the run.
type Monitor struct {
	store  storage.Storer
	prober Prober
	logger *slog.Logger
}

// New creates a Monitor.
func New(store storage.Storer, prober Prober, logger *slog.Logger) *Monitor {
	return &Monitor{
		store:  store,
		prober: prober,
		logger: logger,
	}
}

// Run probes every site in order and appends each observation to the store.
// It returns a summary of the run; it never returns an error, since a
// degraded probe or a lost row is not a run failure.
func (m *Monitor) Run(ctx context.Context, sites []string) Summary {
	summary := Summary{Sites: len(sites)}

	for _, site := range sites {
		obs := m.prober.Probe(ctx, site)

		if obs.Failed() {
			summary.Failures++
			reason := "no response"
			if obs.Error != nil {
				reason = *obs.Error
			}
			m.logger.Warn("probe failed",
				"site", site,
				"error", reason,
				"elapsed_seconds", obs.TotalSeconds,
			)
		} else {
			if obs.StatusCode == http.StatusOK && !obs.CacheHit {
				summary.CacheMisses++
			}
			m.logger.Info("probe complete",
				"site", site,
				"status", obs.StatusCode,
				"cache_hit", obs.CacheHit,
				"ttfb_seconds", round(obs.TTFBSeconds),
				"total_seconds", round(obs.TotalSeconds),
			)
		}

		if err := m.store.RecordObservation(ctx, &obs); err != nil {
			summary.RowsLost++
			m.logger.Error("failed to record observation",
				"site", site,
				"error", err,
			)
		}
	}
	return summary
}

// round trims timings to millisecond precision for log output.
func round(seconds float64) float64 {
	return float64(time.Duration(seconds*float64(time.Second)).Round(time.Millisecond)) / float64(time.Second)
}
