package sitemapgen

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Xmlns is the sitemap protocol schema namespace.
const Xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

// Child elements are indented four spaces per level; the document never nests
// deeper than two levels.
var indents = [...]string{"", "    ", "        "}

// escaper rewrites XML metacharacters in element text. Apostrophe and quote
// are not strictly required in element content, but escaping them keeps the
// text safe in attribute position as well.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// xmlWriter emits indented XML to an io.Writer. The first write error sticks
// and suppresses all further output, so generation aborts as soon as the sink
// rejects a write. The partially written document is left as-is.
type xmlWriter struct {
	w   io.Writer
	err error
}

func newXMLWriter(w io.Writer) *xmlWriter {
	return &xmlWriter{w: w}
}

func (x *xmlWriter) writeString(s string) {
	if x.err != nil {
		return
	}
	if _, err := io.WriteString(x.w, s); err != nil {
		x.err = fmt.Errorf("writing sitemap output: %w", err)
	}
}

// line writes s on a fresh line at the given depth. Every tag after the
// declaration is preceded by a newline, so the document carries no trailing
// one.
func (x *xmlWriter) line(depth int, s string) {
	x.writeString("\n" + indents[depth] + s)
}

// element writes <tag>text</tag> on its own line with the text escaped.
func (x *xmlWriter) element(depth int, tag, text string) {
	x.rawElement(depth, tag, escaper.Replace(text))
}

// rawElement writes <tag>text</tag> without escaping. Only for values the
// generator produced itself (RFC 3339 timestamps, one-decimal priorities,
// changefreq tokens), which are ASCII with no metacharacters.
func (x *xmlWriter) rawElement(depth int, tag, text string) {
	x.line(depth, "<"+tag+">"+text+"</"+tag+">")
}

// formatPriority renders a priority with exactly one fractional digit.
// Rounding is round-to-nearest with ties-to-even over the exact float32
// value, so 0.45 (stored as 0.44999999…) renders as "0.4" and the exact tie
// 0.75 as "0.8". Values outside [0.0, 1.0] are rendered as given.
func formatPriority(p float32) string {
	return strconv.FormatFloat(float64(p), 'f', 1, 32)
}
