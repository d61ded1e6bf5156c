package sitemapgen

import "time"

// URL is one page descriptor contributing a <url> block. Loc is required and
// must already be a syntactically valid absolute URL (protocol and host); the
// protocol recommends keeping it under 2048 characters. The three optional
// fields may each independently be absent (nil).
//
// URL is a value object: construct it, don't mutate it while a generate call
// is running.
type URL struct {
	// Loc is the URL of the page, beginning with the protocol (such as
	// https) and ending with a trailing slash if the web server requires it.
	Loc string
	// LastMod is the date of last modification of the page, already
	// resolved to UTC. Rendered as RFC 3339 with second precision.
	LastMod *time.Time
	// Priority of this URL relative to other URLs on the site, 0.0 to 1.0.
	// Out-of-range values are rendered as given, not clamped.
	Priority *float32
	// ChangeFreq hints how frequently the page is likely to change.
	ChangeFreq *ChangeFreq
}

// NewURL creates an entry with only the required location.
func NewURL(loc string) URL {
	return URL{Loc: loc}
}

// WithLastMod returns a copy of the entry with the last-modification time set.
func (u URL) WithLastMod(t time.Time) URL {
	u.LastMod = &t
	return u
}

// WithPriority returns a copy of the entry with the priority set.
func (u URL) WithPriority(p float32) URL {
	u.Priority = &p
	return u
}

// WithChangeFreq returns a copy of the entry with the change frequency set.
func (u URL) WithChangeFreq(c ChangeFreq) URL {
	u.ChangeFreq = &c
	return u
}
