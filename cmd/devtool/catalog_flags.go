package main

import (
	"flag"
	"os"

	"github.com/rethesda/soulsy/internal/config"
)

// catalogFlags are the input paths shared by commands that read the catalog
type catalogFlags struct {
	items    string
	keywords string
}

func (c *catalogFlags) register(fs *flag.FlagSet) {
	items := os.Getenv("ITEMS_PATH")
	if items == "" {
		items = config.ConfigPathItems
	}
	keywords, ok := os.LookupEnv("KEYWORDS_PATH")
	if !ok {
		keywords = config.ConfigPathKeywords
	}
	fs.StringVar(&c.items, "items", items, "Path to the item catalog JSON")
	fs.StringVar(&c.keywords, "keywords", keywords, "Path to keyword overrides YAML (empty for built-in)")
}
