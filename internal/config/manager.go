// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	xglog "github.com/ManuGH/chairlink/internal/log"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// configFileMode keeps the Wi-Fi password readable by the owner only.
const configFileMode os.FileMode = 0600

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
	}
}

// Path returns the file the manager writes to.
func (m *Manager) Path() string {
	return m.configPath
}

// Save writes the device configuration to disk.
// The write is atomic and durable: temp file, fsync, rename.
func (m *Manager) Save(d Device) error {
	logger := xglog.WithComponent("config")

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(m.configPath, renameio.WithPermissions(configFileMode))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		// renameio removes the temp file if not committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending config file")
		}
	}()

	enc := yaml.NewEncoder(pendingFile)
	enc.SetIndent(2)
	if err := enc.Encode(toFileConfig(d)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}

	logger.Info().
		Str(xglog.FieldEvent, "config.saved").
		Str(xglog.FieldPath, m.configPath).
		Str(xglog.FieldDeviceID, d.deviceID).
		Msg("configuration written")

	return nil
}
