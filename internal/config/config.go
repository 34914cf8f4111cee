package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
}

// PipelineConfig contains tunables for the consolidation and analytics pipeline
type PipelineConfig struct {
	CacheSize       int           `yaml:"cache_size" envconfig:"CACHE_SIZE"`
	CacheTTL        time.Duration `yaml:"cache_ttl" envconfig:"CACHE_TTL"`
	TopNRecipients  int           `yaml:"top_n_recipients" envconfig:"TOP_N_RECIPIENTS"`
	ClusterCount    int           `yaml:"cluster_count" envconfig:"CLUSTER_COUNT"`
	ClusterSeed     int64         `yaml:"cluster_seed" envconfig:"CLUSTER_SEED"`
	PolicySplitDate string        `yaml:"policy_split_date" envconfig:"POLICY_SPLIT_DATE"`
}

// Load layers configuration: built-in defaults, then the optional YAML
// file, then environment variables. Environment variables win over file
// values; either source may set only the fields it cares about.
func Load(configFile string) (*Config, error) {
	cfg := *Default()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("FEDSPEND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Pipeline.CacheSize < 1 {
		return fmt.Errorf("pipeline cache size must be at least 1, got %d", c.Pipeline.CacheSize)
	}
	if c.Pipeline.ClusterCount < 1 {
		return fmt.Errorf("cluster count must be at least 1, got %d", c.Pipeline.ClusterCount)
	}
	if c.Pipeline.PolicySplitDate != "" {
		if _, err := time.Parse("2006-01-02", c.Pipeline.PolicySplitDate); err != nil {
			return fmt.Errorf("invalid policy split date %q: %w", c.Pipeline.PolicySplitDate, err)
		}
	}
	return nil
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	cfg := &Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Paths:   PathsConfig{DataDir: "data", ReportsDir: "reports"},
		Pipeline: PipelineConfig{
			CacheSize:       32,
			CacheTTL:        time.Hour,
			TopNRecipients:  50,
			ClusterCount:    5,
			ClusterSeed:     42,
			PolicySplitDate: "2022-08-16",
		},
	}
	return cfg
}
