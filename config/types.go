package config

// OutputConfig controls where and what the CLI writes.
type OutputConfig struct {
	Path string `yaml:"path"`
	Kind string `yaml:"kind" validate:"omitempty,oneof=sitemap index"`
}

// URLConfig is one sitemap entry as written in the YAML file. Optional
// fields left out of the YAML are omitted from the generated document.
type URLConfig struct {
	Loc        string   `yaml:"loc" validate:"required,url"`
	LastMod    string   `yaml:"lastmod" validate:"omitempty"`
	Priority   *float32 `yaml:"priority"`
	ChangeFreq string   `yaml:"changefreq" validate:"omitempty,oneof=always hourly daily weekly monthly yearly never"`
}

// SitemapRefConfig is one sitemap reference for an index document.
type SitemapRefConfig struct {
	Loc     string `yaml:"loc" validate:"required,url"`
	LastMod string `yaml:"lastmod" validate:"omitempty"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Output   OutputConfig       `yaml:"output"`
	URLs     []URLConfig        `yaml:"urls" validate:"dive"`
	Sitemaps []SitemapRefConfig `yaml:"sitemaps" validate:"dive"`
}
