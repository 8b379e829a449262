// Package probe performs a single timed HTTP GET against a site and turns
// the outcome into an observation row.
package probe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptrace"
	"strings"
	"time"

	"webmon/internal/models"
)

const userAgent = "Mozilla/5.0 (webmon)"

// Prober issues one HTTP GET per site and measures status, cache-hit
// indication, time-to-first-byte, and total load time.
type Prober struct {
	client *http.Client
}

// New creates a Prober whose requests are bounded by timeout.
func New(timeout time.Duration) *Prober {
	return &Prober{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// probeURL maps a target list entry to the URL that gets requested. Entries
// carrying an explicit http:// or https:// scheme are used as written; bare
// domains are always probed over HTTPS, with no plain-HTTP fallback.
func probeURL(site string) string {
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		return site
	}
	return "https://" + site + "/"
}

// Probe performs one GET against site and returns exactly one observation.
// It never returns an error: a transport-level failure (DNS, refused
// connection, TLS, timeout) yields a row with the no-response sentinel
// status, the failure text, and the elapsed time until the failure. The
// response body is always drained so TotalSeconds reflects full-body receipt.
func (p *Prober) Probe(ctx context.Context, site string) models.Observation {
	obs := models.Observation{
		Site:       site,
		ObservedAt: time.Now().UTC(),
		StatusCode: models.StatusNoResponse,
	}

	var start time.Time
	var firstByte time.Duration
	trace := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			firstByte = time.Since(start)
		},
	}

	req, err := http.NewRequestWithContext(httptrace.WithClientTrace(ctx, trace), http.MethodGet, probeURL(site), nil)
	if err != nil {
		msg := err.Error()
		obs.Error = &msg
		return obs
	}
	req.Header.Set("User-Agent", userAgent)

	start = time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		elapsed := time.Since(start).Seconds()
		msg := err.Error()
		obs.Error = &msg
		obs.TTFBSeconds = elapsed
		obs.TotalSeconds = elapsed
		return obs
	}
	defer resp.Body.Close()

	obs.StatusCode = resp.StatusCode
	obs.CacheHit = CacheHit(resp.Header)
	obs.TTFBSeconds = firstByte.Seconds()

	// Drain the body so the total covers the full transfer, not just headers.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		msg := err.Error()
		obs.Error = &msg
	}
	obs.TotalSeconds = time.Since(start).Seconds()
	return obs
}
