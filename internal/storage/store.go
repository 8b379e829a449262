package storage

import (
	"context"
	"time"

	"webmon/internal/models"
)

// ListObservationsParams contains parameters for listing a site's
// observations with filtering and a result limit.
type ListObservationsParams struct {
	Site  string
	Since *time.Time
	Limit int
}

// Storer defines the interface for persisting and querying observations.
// Rows are append-only: implementations never update or delete history.
type Storer interface {
	RecordObservation(ctx context.Context, obs *models.Observation) error
	ListObservationsBySite(ctx context.Context, params ListObservationsParams) ([]models.Observation, error)
	ListSites(ctx context.Context) ([]string, error)
	Close() error
}
