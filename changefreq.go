package sitemapgen

import "fmt"

// ChangeFreq hints how frequently a page is likely to change. The value is
// advisory; crawlers may not correlate it exactly to how often they visit.
type ChangeFreq int

const (
	Always ChangeFreq = iota
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
	Never
)

// changeFreqTokens holds the canonical lowercase tokens, indexed by variant.
// Tokens are plain ASCII with no XML metacharacters, so they are written to
// the document without passing through the escaper.
var changeFreqTokens = [...]string{
	Always:  "always",
	Hourly:  "hourly",
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
	Never:   "never",
}

// String returns the canonical token for the variant, e.g. "weekly".
func (c ChangeFreq) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("ChangeFreq(%d)", int(c))
	}
	return changeFreqTokens[c]
}

// IsValid reports whether c is one of the seven defined variants.
func (c ChangeFreq) IsValid() bool {
	return c >= Always && c <= Never
}

// ParseChangeFreq maps a canonical token back to its variant.
func ParseChangeFreq(s string) (ChangeFreq, error) {
	for c, token := range changeFreqTokens {
		if s == token {
			return ChangeFreq(c), nil
		}
	}
	return 0, fmt.Errorf("unknown change frequency %q", s)
}
