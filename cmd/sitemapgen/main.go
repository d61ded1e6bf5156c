package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/sitemapgen"
	"github.com/theoremus-urban-solutions/sitemapgen/config"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML entry list")
	out := flag.String("out", "", "output file, - for stdout (overrides config output.path)")
	kind := flag.String("kind", "", "sitemap|index (overrides config output.kind)")
	flag.Parse()

	sitemapgen.InitLogging()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	path := cfg.Output.Path
	if *out != "" {
		path = *out
	}
	docKind := cfg.Output.Kind
	if *kind != "" {
		docKind = *kind
	}

	var w io.Writer = os.Stdout
	var f *os.File
	if path != "" && path != "-" {
		f, err = os.Create(path)
		if err != nil {
			log.Fatalf("creating %s: %v", path, err)
		}
		w = f
	}

	switch docKind {
	case "index":
		refs, err := cfg.IndexEntries()
		if err != nil {
			log.Fatalf("reading sitemap references: %v", err)
		}
		idx := sitemapgen.NewIndex()
		for _, e := range refs {
			idx.Add(e)
		}
		if err := idx.Generate(w); err != nil {
			log.Fatalf("generating sitemap index: %v", err)
		}
	case "sitemap":
		urls, err := cfg.Entries()
		if err != nil {
			log.Fatalf("reading url entries: %v", err)
		}
		sm := sitemapgen.New()
		for _, u := range urls {
			sm.Add(u)
		}
		if err := sm.Generate(w); err != nil {
			log.Fatalf("generating sitemap: %v", err)
		}
	default:
		log.Fatalf("unknown document kind %q (want sitemap or index)", docKind)
	}

	if f != nil {
		if err := f.Close(); err != nil {
			log.Fatalf("closing %s: %v", path, err)
		}
	}
}
