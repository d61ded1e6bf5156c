package sitemapgen

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by String when the generated bytes fail UTF-8
// validation. The writer only emits ASCII markup plus caller-supplied Go
// strings, so hitting this indicates a defect, not a runtime condition.
var ErrInvalidUTF8 = errors.New("sitemapgen: generated document is not valid UTF-8")

// Sitemap holds the url entries of one sitemap file. Entries are emitted in
// insertion order; the writer neither sorts nor deduplicates them, and the
// protocol's 50000-entry per-file ceiling is the caller's concern (split
// across files and tie them together with an Index).
type Sitemap struct {
	URLs []URL
}

// New creates an empty sitemap.
func New() *Sitemap {
	return &Sitemap{}
}

// Add appends an entry.
func (s *Sitemap) Add(u URL) {
	s.URLs = append(s.URLs, u)
}

// Generate streams the complete XML document to w. Entries are written one
// at a time, so large sitemaps never buffer in full. The first write error
// aborts generation and is returned; whatever was already written stays in
// the sink, so callers needing atomicity should generate into a buffer first
// and commit it afterwards.
func (s *Sitemap) Generate(w io.Writer) error {
	x := newXMLWriter(w)
	x.writeString(xmlDecl)
	x.line(0, `<urlset xmlns="`+Xmlns+`">`)
	for i := range s.URLs {
		writeURL(x, &s.URLs[i])
	}
	x.line(0, "</urlset>")
	return x.err
}

// Bytes generates the document into an owned byte buffer.
func (s *Sitemap) Bytes() []byte {
	var buf bytes.Buffer
	_ = s.Generate(&buf) // writes to bytes.Buffer cannot fail
	return buf.Bytes()
}

// String generates the document as a UTF-8 string. Byte and string output
// are identical content; String additionally validates the encoding and
// returns ErrInvalidUTF8 instead of handing back a corrupt document.
func (s *Sitemap) String() (string, error) {
	b := s.Bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// writeURL emits one <url> block. Child order is fixed by the consumer
// compatibility contract: loc, lastmod, priority, changefreq. Absent
// optionals are omitted entirely.
func writeURL(x *xmlWriter, u *URL) {
	x.line(1, "<url>")
	x.element(2, "loc", u.Loc)
	if u.LastMod != nil {
		x.rawElement(2, "lastmod", rfc3339UTC(*u.LastMod))
	}
	if u.Priority != nil {
		x.rawElement(2, "priority", formatPriority(*u.Priority))
	}
	if u.ChangeFreq != nil {
		x.rawElement(2, "changefreq", u.ChangeFreq.String())
	}
	x.line(1, "</url>")
}
