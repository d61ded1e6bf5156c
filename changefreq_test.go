package sitemapgen

import (
	"strings"
	"testing"
)

func TestChangeFreqTokens(t *testing.T) {
	tests := []struct {
		freq ChangeFreq
		want string
	}{
		{Always, "always"},
		{Hourly, "hourly"},
		{Daily, "daily"},
		{Weekly, "weekly"},
		{Monthly, "monthly"},
		{Yearly, "yearly"},
		{Never, "never"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.freq.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

// Tokens are written to the document without escaping, so none of them may
// contain an XML metacharacter.
func TestChangeFreqTokensEscapeSafe(t *testing.T) {
	for _, token := range changeFreqTokens {
		if strings.ContainsAny(token, `&<>'"`) {
			t.Errorf("token %q contains an XML metacharacter", token)
		}
		if token != strings.ToLower(token) {
			t.Errorf("token %q is not lowercase", token)
		}
	}
}

func TestParseChangeFreq(t *testing.T) {
	for c, token := range changeFreqTokens {
		got, err := ParseChangeFreq(token)
		if err != nil {
			t.Fatalf("ParseChangeFreq(%q): %v", token, err)
		}
		if got != ChangeFreq(c) {
			t.Errorf("ParseChangeFreq(%q) = %v, want %v", token, got, ChangeFreq(c))
		}
	}

	for _, bad := range []string{"", "sometimes", "Weekly", "montly"} {
		if _, err := ParseChangeFreq(bad); err == nil {
			t.Errorf("ParseChangeFreq(%q) should fail", bad)
		}
	}
}

func TestChangeFreqIsValid(t *testing.T) {
	if !Weekly.IsValid() {
		t.Error("Weekly should be valid")
	}
	for _, c := range []ChangeFreq{-1, ChangeFreq(len(changeFreqTokens))} {
		if c.IsValid() {
			t.Errorf("ChangeFreq(%d) should be invalid", int(c))
		}
	}
}
