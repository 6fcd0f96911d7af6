package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

// Config is the immutable run configuration. Scoring weights, keyword
// sets, and thresholds live here rather than as package constants so
// tests can score with alternate weight sets.
type Config struct {
	Scoring Scoring `yaml:"scoring"`
	Reply   Reply   `yaml:"reply"`
	Data    Data    `yaml:"data"`
	Server  Server  `yaml:"server"`
}

type Scoring struct {
	Weights            Weights  `yaml:"weights"`
	Keywords           []string `yaml:"keywords"`
	RecencyWindowDays  int      `yaml:"recency_window_days"`
	HighValueThreshold float64  `yaml:"high_value_threshold"`
}

// Weights are fixed design constants summing to 1.0. They are applied
// as-is; never renormalized per batch.
type Weights struct {
	Keyword   float64 `yaml:"keyword"`
	Sentiment float64 `yaml:"sentiment"`
	Influence float64 `yaml:"influence"`
	Recency   float64 `yaml:"recency"`
}

type Reply struct {
	CommissionKeywords []string `yaml:"commission_keywords"`
	GalleryKeywords    []string `yaml:"gallery_keywords"`
}

type Data struct {
	InstagramPath string `yaml:"instagram_path"`
	TwitterPath   string `yaml:"twitter_path"`
	LogPath       string `yaml:"log_path"`
}

type Server struct {
	Port int `yaml:"port"`
}

// Load reads a config YAML file, applying embedded defaults first.
func Load(path string) (*Config, error) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		return nil, fmt.Errorf("[Config] parsing embedded defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Config] reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("[Config] parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		panic(fmt.Errorf("[Config] embedded defaults invalid: %w", err))
	}
	return cfg
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
