package probe

import (
	"net/http"
	"strings"
)

// Response headers inspected for cache-hit detection. Cloudflare reports
// HIT/MISS/EXPIRED/... in Cf-Cache-Status; LiteSpeed reports "hit" variants
// in X-Litespeed-Cache.
const (
	headerCloudflareCache = "Cf-Cache-Status"
	headerLitespeedCache  = "X-Litespeed-Cache"
)

// CacheHit reports whether a response was served from an intermediary cache.
// The policy is fixed: a response counts as a cache hit when either the
// Cloudflare or the LiteSpeed cache header contains "hit" (case-insensitive).
// An absent or unrecognized header value is a miss.
func CacheHit(header http.Header) bool {
	cf := strings.ToLower(header.Get(headerCloudflareCache))
	ls := strings.ToLower(header.Get(headerLitespeedCache))
	return strings.Contains(cf, "hit") || strings.Contains(ls, "hit")
}
