// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads the clbridge configuration: the log level and vendor
// status codes that extend the standard OpenCL table.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/luxfi/clbridge"
)

var (
	errEmptyCodeName = errors.New("code name must not be empty")
	errReservedCode  = errors.New("code 0 is reserved for CL_SUCCESS")
	errDuplicateCode = errors.New("duplicate code")
	errDuplicateName = errors.New("duplicate code name")
)

// Config is the top-level configuration.
type Config struct {
	LogLevel string       `yaml:"log-level"`
	Codes    []CodeConfig `yaml:"codes"`
}

// CodeConfig declares a vendor or extension status code.
type CodeConfig struct {
	Code        int32  `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration without modifying it.
func (c *Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	seen := make(map[int32]string, len(c.Codes))
	names := make(map[string]int32, len(c.Codes))
	for i, code := range c.Codes {
		if code.Name == "" {
			return fmt.Errorf("codes[%d]: %w", i, errEmptyCodeName)
		}
		if code.Code == 0 {
			return fmt.Errorf("codes[%d] %s: %w", i, code.Name, errReservedCode)
		}
		if prev, ok := seen[code.Code]; ok {
			return fmt.Errorf("codes[%d] %s: %w %d, already used by %s", i, code.Name, errDuplicateCode, code.Code, prev)
		}
		if prev, ok := names[code.Name]; ok {
			return fmt.Errorf("codes[%d] %d: %w %s, already used by %d", i, code.Code, errDuplicateName, code.Name, prev)
		}
		seen[code.Code] = code.Name
		names[code.Name] = code.Code
	}
	// Names must also stay unique against the standard codes.
	if _, err := c.Table(); err != nil {
		return err
	}
	return nil
}

// Table builds the translation table: the standard codes plus Codes.
func (c *Config) Table() (*clbridge.Table, error) {
	entries := make([]clbridge.Entry, 0, len(c.Codes))
	for _, code := range c.Codes {
		entries = append(entries, clbridge.Entry{
			Status:      clbridge.Status(code.Code),
			Name:        code.Name,
			Description: code.Description,
		})
	}
	return clbridge.NewTable(entries...)
}

// Logger builds a logger writing to stderr at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

func (c *Config) level() (zapcore.Level, error) {
	text := c.LogLevel
	if text == "" {
		text = defaultLogLevel
	}
	lvl, err := zapcore.ParseLevel(text)
	if err != nil {
		return lvl, fmt.Errorf("invalid %s: %w", LogLevelKey, err)
	}
	return lvl, nil
}
