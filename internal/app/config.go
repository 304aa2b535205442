package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	DescriptorPath string
	ScriptArgs     []string

	Format    string // "shell" or "json"
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorPath == "" {
		return nil, errors.New("DescriptorPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
