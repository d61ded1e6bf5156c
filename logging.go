package sitemapgen

import (
	"log"
	"os"
)

// InitLogging routes log output to stderr so a sitemap written to stdout
// stays clean.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
