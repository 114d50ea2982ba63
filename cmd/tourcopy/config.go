package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/tourcopy"
	"github.com/fwojciec/tourcopy/memo"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable display limits.
type Config struct {
	// WordCeiling is the word count above which markup sections collapse.
	WordCeiling int `yaml:"wordCeiling"`

	// ListLimit is the number of list items shown while collapsed.
	ListLimit int `yaml:"listLimit"`

	// FAQVisible is the number of FAQ entries shown while collapsed.
	FAQVisible int `yaml:"faqVisible"`

	// Truncate selects the truncation policy: raw or outside-tags.
	Truncate string `yaml:"truncate"`

	// CacheSize bounds the parse result caches.
	CacheSize int `yaml:"cacheSize"`

	// FetchRate limits import requests per second to one host. Zero
	// disables limiting.
	FetchRate float64 `yaml:"fetchRate"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		WordCeiling: tourcopy.DefaultWordCeiling,
		ListLimit:   tourcopy.DefaultListLimit,
		FAQVisible:  tourcopy.DefaultFAQVisible,
		Truncate:    tourcopy.TruncateRaw.String(),
		CacheSize:   memo.DefaultCapacity,
		FetchRate:   2,
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// falls back to ~/.tourcopy/config.yaml when that file exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".tourcopy", "config.yaml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, tourcopy.Errorf(tourcopy.EINVALID, "reading config %q: %v", path, err)
	}
	return parseConfig(cfg, data)
}

func parseConfig(cfg Config, data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, tourcopy.Errorf(tourcopy.EINVALID, "parsing config: %v", err)
	}
	if cfg.WordCeiling < 0 || cfg.ListLimit < 0 || cfg.FAQVisible < 0 || cfg.CacheSize < 0 || cfg.FetchRate < 0 {
		return cfg, tourcopy.Errorf(tourcopy.EINVALID, "config limits must not be negative")
	}
	return cfg, nil
}

// Disclosure returns the disclosure settings described by the config.
func (c Config) Disclosure() (*tourcopy.Disclosure, error) {
	policy, err := tourcopy.ParseTruncatePolicy(c.Truncate)
	if err != nil {
		return nil, err
	}
	return &tourcopy.Disclosure{
		WordCeiling: c.WordCeiling,
		ListLimit:   c.ListLimit,
		Policy:      policy,
	}, nil
}
