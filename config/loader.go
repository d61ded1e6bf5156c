package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/sitemapgen"
)

// LoadAppConfig loads and validates an entry-list configuration file.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if cfg.Output.Kind == "" {
		cfg.Output.Kind = "sitemap"
	}
	return &cfg, nil
}

// Entries converts the configured urls to sitemap entries. lastmod values
// must be RFC 3339; they are normalized to UTC here so the writer only ever
// sees resolved timestamps.
func (c *AppConfig) Entries() ([]sitemapgen.URL, error) {
	urls := make([]sitemapgen.URL, 0, len(c.URLs))
	for i, uc := range c.URLs {
		u := sitemapgen.NewURL(uc.Loc)
		if uc.LastMod != "" {
			t, err := time.Parse(time.RFC3339, uc.LastMod)
			if err != nil {
				return nil, fmt.Errorf("urls[%d].lastmod: %w", i, err)
			}
			u = u.WithLastMod(t.UTC())
		}
		if uc.Priority != nil {
			u = u.WithPriority(*uc.Priority)
		}
		if uc.ChangeFreq != "" {
			cf, err := sitemapgen.ParseChangeFreq(uc.ChangeFreq)
			if err != nil {
				return nil, fmt.Errorf("urls[%d].changefreq: %w", i, err)
			}
			u = u.WithChangeFreq(cf)
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// IndexEntries converts the configured sitemap references to index entries.
func (c *AppConfig) IndexEntries() ([]sitemapgen.IndexEntry, error) {
	refs := make([]sitemapgen.IndexEntry, 0, len(c.Sitemaps))
	for i, sc := range c.Sitemaps {
		e := sitemapgen.IndexEntry{Loc: sc.Loc}
		if sc.LastMod != "" {
			t, err := time.Parse(time.RFC3339, sc.LastMod)
			if err != nil {
				return nil, fmt.Errorf("sitemaps[%d].lastmod: %w", i, err)
			}
			t = t.UTC()
			e.LastMod = &t
		}
		refs = append(refs, e)
	}
	return refs, nil
}
