// Package sitemapgen generates sitemap XML documents per the sitemaps.org
// protocol (schema http://www.sitemaps.org/schemas/sitemap/0.9).
//
// The package covers two document kinds:
//
//   - Sitemap: a urlset of page entries (loc, lastmod, priority, changefreq)
//   - Index: a sitemapindex referencing the sitemap files of a split URL set
//
// Serialization is done manually for precise control over output format:
// fixed child order inside <url>, four-space indentation, and XML text
// escaping applied to caller-supplied location strings. Output is
// deterministic for a fixed input.
package sitemapgen
