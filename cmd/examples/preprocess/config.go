package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from PREP_* environment variables.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	// Empty means the loader defaults ("", NA, NaN).
	MissingMarkers []string `envconfig:"MISSING_MARKERS"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("PREP", &cfg); err != nil {
		return cfg, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}
