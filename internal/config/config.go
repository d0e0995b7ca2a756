// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config reads the program settings from environment variables.
// Every variable carries the CELERY_ prefix, e.g. CELERY_LOG_LEVEL.
package config

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
)

// Prefix is the environment variable prefix.
const Prefix = "CELERY"

// ErrInvalidConfig is returned when the environment holds an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings taken from the environment.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	// LogFormat is one of pretty, json or text.
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	// Prompt is shown by the interactive shell.
	Prompt string `envconfig:"PROMPT" default:"celery> "`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the level and format names.
func (c *Config) Validate() error {
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	if _, err := ctxlog.NewLogger(c.LogFormat, io.Discard); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// Logger sets the shared log level and returns a logger writing to w in the configured format.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := ctxlog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	ctxlog.LevelVar.Set(level)

	logger, err := ctxlog.NewLogger(c.LogFormat, w)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return logger, nil
}
