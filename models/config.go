// Package models defines the leader data structures and runtime
// configuration for the scrape pipeline.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the pipeline. Values come from an
// optional YAML file and can be overridden by CLI flags.
type Config struct {
	// BaseURL is the root of the country-leaders API.
	BaseURL string `yaml:"base_url"`

	// OutputPath is where the aggregated JSON file is written.
	OutputPath string `yaml:"output_path"`

	// LimitPerCountry caps how many leaders are kept per country.
	// Zero or negative means no limit.
	LimitPerCountry int `yaml:"limit_per_country"`

	// WorkerCount sizes the enrichment worker pool. Zero means one
	// worker per available CPU.
	WorkerCount int `yaml:"worker_count"`

	// UserAgent is sent on every outgoing request.
	UserAgent string `yaml:"user_agent"`

	// HistoryDB is the path of the SQLite run-history database.
	HistoryDB string `yaml:"history_db"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://country-leaders.onrender.com",
		OutputPath:      "leaders_data.json",
		LimitPerCountry: 2,
		WorkerCount:     0,
		UserAgent:       "leaders-pipeline/1.0",
		HistoryDB:       "leaders-pipeline.db",
	}
}

// LoadConfig reads a YAML config file, applying defaults for any field the
// file leaves unset. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultConfig().BaseURL
	}
	if config.OutputPath == "" {
		config.OutputPath = DefaultConfig().OutputPath
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultConfig().UserAgent
	}
	if config.HistoryDB == "" {
		config.HistoryDB = DefaultConfig().HistoryDB
	}

	return config, nil
}
