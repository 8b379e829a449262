// Command webmon-history prints recent observations per site from the stats
// database, newest first.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"webmon/internal/config"
	"webmon/internal/models"
	"webmon/internal/storage"
	"webmon/internal/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "webmon-history: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	limit := flag.Int("limit", cfg.HistoryLimit, "rows to print per site")
	flag.Parse()

	ctx := context.Background()
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open stats store at %s: %w", cfg.DatabasePath, err)
	}
	defer store.Close()

	sites, err := store.ListSites(ctx)
	if err != nil {
		return err
	}
	for _, site := range sites {
		observations, err := store.ListObservationsBySite(ctx, storage.ListObservationsParams{
			Site:  site,
			Limit: *limit,
		})
		if err != nil {
			return err
		}
		printSite(site, observations)
	}
	return nil
}

func printSite(site string, observations []models.Observation) {
	fmt.Println(site)
	for _, o := range observations {
		if o.Failed() {
			reason := "no response"
			if o.Error != nil {
				reason = *o.Error
			}
			fmt.Printf("  %s  FAIL  %s\n", o.ObservedAt.Format("2006-01-02 15:04:05"), reason)
			continue
		}
		cache := "miss"
		if o.CacheHit {
			cache = "hit"
		}
		fmt.Printf("  %s  %3d  cache=%-4s  ttfb=%.3fs  total=%.3fs\n",
			o.ObservedAt.Format("2006-01-02 15:04:05"), o.StatusCode, cache, o.TTFBSeconds, o.TotalSeconds)
	}
	fmt.Println()
}
