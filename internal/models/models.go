package models

import "time"

// StatusNoResponse is the status code recorded when a probe fails before any
// response arrives (DNS failure, connection refused, TLS error, timeout).
const StatusNoResponse = 0

// Observation is one persisted measurement row for one probe of one site.
type Observation struct {
	ID           string    `json:"id"`
	Site         string    `json:"site"`
	ObservedAt   time.Time `json:"observed_at"`
	StatusCode   int       `json:"status_code"` // StatusNoResponse when no response was received
	CacheHit     bool      `json:"cache_hit"`
	TTFBSeconds  float64   `json:"ttfb_seconds"`
	TotalSeconds float64   `json:"total_seconds"`
	Error        *string   `json:"error"` // nil on success
}

// Failed reports whether the probe never received a response.
func (o *Observation) Failed() bool {
	return o.StatusCode == StatusNoResponse
}
