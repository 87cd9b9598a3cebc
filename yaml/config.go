// Package yaml loads cdpchat configuration from YAML files.
package yaml

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cdpsupport/cdpchat"
)

// fileConfig mirrors cdpchat.Config with string platform keys so YAML
// files stay plain.
type fileConfig struct {
	RelevanceFloor *float64            `yaml:"relevance_floor"`
	TopK           *int                `yaml:"top_k"`
	ChunkMaxLen    *int                `yaml:"chunk_max_len"`
	ChunkOverlap   *int                `yaml:"chunk_overlap"`
	Keywords       map[string][]string `yaml:"keywords"`
	StopWords      []string            `yaml:"stop_words"`
	Sources        map[string]string   `yaml:"sources"`
}

// LoadConfig reads configuration from path, applying defaults for any
// omitted option. A missing file returns the defaults. The returned
// config is validated; malformed configuration is a fatal startup error
// for callers.
func LoadConfig(path string) (*cdpchat.Config, error) {
	cfg := cdpchat.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, cdpchat.Errorf(cdpchat.EINVALID, "invalid config file %s: %s", path, err)
	}

	if fc.RelevanceFloor != nil {
		cfg.RelevanceFloor = *fc.RelevanceFloor
	}
	if fc.TopK != nil {
		cfg.TopK = *fc.TopK
	}
	if fc.ChunkMaxLen != nil {
		cfg.ChunkMaxLen = *fc.ChunkMaxLen
	}
	if fc.ChunkOverlap != nil {
		cfg.ChunkOverlap = *fc.ChunkOverlap
	}
	if len(fc.StopWords) > 0 {
		cfg.StopWords = fc.StopWords
	}

	// Keyword lists replace defaults per platform rather than merging,
	// so a config file fully controls each platform's aliases.
	for name, words := range fc.Keywords {
		platform, err := cdpchat.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		cfg.Keywords[platform] = words
	}
	for name, source := range fc.Sources {
		platform, err := cdpchat.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		cfg.Sources[platform] = source
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
