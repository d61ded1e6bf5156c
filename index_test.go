package sitemapgen

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

func TestIndexGolden(t *testing.T) {
	idx := NewIndex()
	lastmod := time.Date(2023, 10, 3, 8, 0, 0, 0, time.UTC)
	idx.Add(IndexEntry{Loc: "https://example.com/sitemap-1.xml", LastMod: &lastmod})
	idx.Add(IndexEntry{Loc: "https://example.com/sitemap-2.xml"})

	want := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
    <sitemap>
        <loc>https://example.com/sitemap-1.xml</loc>
        <lastmod>2023-10-03T08:00:00Z</lastmod>
    </sitemap>
    <sitemap>
        <loc>https://example.com/sitemap-2.xml</loc>
    </sitemap>
</sitemapindex>`

	got, err := idx.String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if got != want {
		t.Errorf("document mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestIndexEmpty(t *testing.T) {
	want := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
</sitemapindex>`

	got, err := NewIndex().String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIndexEscaping(t *testing.T) {
	idx := NewIndex()
	idx.Add(IndexEntry{Loc: "https://example.com/maps?page=1&size=10"})

	got, err := idx.String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !strings.Contains(got, "<loc>https://example.com/maps?page=1&amp;size=10</loc>") {
		t.Errorf("loc not escaped:\n%s", got)
	}

	var parsed struct {
		XMLName  xml.Name `xml:"sitemapindex"`
		Sitemaps []struct {
			Loc string `xml:"loc"`
		} `xml:"sitemap"`
	}
	if err := xml.Unmarshal(idx.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
	if parsed.Sitemaps[0].Loc != "https://example.com/maps?page=1&size=10" {
		t.Errorf("round-trip mismatch: %q", parsed.Sitemaps[0].Loc)
	}
}
