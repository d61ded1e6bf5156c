package sitemapgen

import (
	"time"
)

// rfc3339UTC renders t in UTC with second precision and a trailing Z,
// e.g. 2020-12-05T12:30:00Z. Callers hand the writer an already-resolved
// timestamp; any time-zone arithmetic happens upstream.
func rfc3339UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
