// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	xglog "github.com/ManuGH/chairlink/internal/log"
	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	base            Device
	skipEnv         bool
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a loader layered on top of the compiled table.
func NewLoader(configPath string) *Loader {
	return NewLoaderWithBase(configPath, Compiled())
}

// NewLoaderWithBase creates a loader layered on top of base instead of the compiled table.
func NewLoaderWithBase(configPath string, base Device) *Loader {
	return &Loader{
		configPath:      configPath,
		base:            base,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// WithoutEnv disables the CHAIR_* environment layer, so Load checks the
// base and the file alone.
func (l *Loader) WithoutEnv() *Loader {
	l.skipEnv = true
	return l
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Compiled.
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env -> Validate
func (l *Loader) Load() (Device, error) {
	logger := xglog.WithComponent("config")

	// 1. Start from the compiled table
	cfg := l.base

	// 2. Load from file (if provided)
	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		l.mergeFileConfig(&cfg, fileCfg)
	}

	// 3. Override with environment variables (highest priority)
	if !l.skipEnv {
		l.mergeEnvConfig(&cfg)
	}

	// 4. Validate final configuration
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	if names := Placeholders(cfg); len(names) > 0 {
		logger.Warn().
			Str(xglog.FieldEvent, "config.placeholder").
			Strs("fields", names).
			Msg("configuration still contains placeholder values")
	}

	logger.Debug().
		Str(xglog.FieldEvent, "config.loaded").
		Str(xglog.FieldPath, l.configPath).
		Object("device", cfg).
		Msg("configuration loaded")

	return cfg, nil
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}
