package sitemapgen

import (
	"bytes"
	"io"
	"time"
	"unicode/utf8"
)

// IndexEntry references one sitemap file from a sitemap index.
type IndexEntry struct {
	Loc     string
	LastMod *time.Time
}

// Index is a sitemapindex document tying together the sitemap files of a URL
// set split across multiple files.
type Index struct {
	Sitemaps []IndexEntry
}

// NewIndex creates an empty sitemap index.
func NewIndex() *Index {
	return &Index{}
}

// Add appends a sitemap reference.
func (x *Index) Add(e IndexEntry) {
	x.Sitemaps = append(x.Sitemaps, e)
}

// Generate streams the complete XML document to w. Same write and error
// discipline as Sitemap.Generate.
func (x *Index) Generate(w io.Writer) error {
	xw := newXMLWriter(w)
	xw.writeString(xmlDecl)
	xw.line(0, `<sitemapindex xmlns="`+Xmlns+`">`)
	for i := range x.Sitemaps {
		e := &x.Sitemaps[i]
		xw.line(1, "<sitemap>")
		xw.element(2, "loc", e.Loc)
		if e.LastMod != nil {
			xw.rawElement(2, "lastmod", rfc3339UTC(*e.LastMod))
		}
		xw.line(1, "</sitemap>")
	}
	xw.line(0, "</sitemapindex>")
	return xw.err
}

// Bytes generates the document into an owned byte buffer.
func (x *Index) Bytes() []byte {
	var buf bytes.Buffer
	_ = x.Generate(&buf)
	return buf.Bytes()
}

// String generates the document as a UTF-8 string.
func (x *Index) String() (string, error) {
	b := x.Bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
