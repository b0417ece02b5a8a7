// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"

	xglog "github.com/ManuGH/chairlink/internal/log"
	"github.com/rs/zerolog"
)

// Environment variables recognised by Loader.
const (
	EnvWiFiSSID      = "CHAIR_WIFI_SSID"
	EnvWiFiPassword  = "CHAIR_WIFI_PASSWORD"
	EnvServerAddress = "CHAIR_SERVER_ADDRESS"
	EnvDeviceID      = "CHAIR_DEVICE_ID"

	// EnvConfigPath points chairctl at a YAML deployment file.
	EnvConfigPath = "CHAIR_CONFIG"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
// The value is returned verbatim; surrounding whitespace is kept.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(xglog.WithComponent("config"), key, defaultValue)
}

// parseStringWithLogger reads an environment variable with custom logger.
func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		switch {
		case value == "":
			logger.Debug().
				Str(xglog.FieldKey, key).
				Str(xglog.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		case isSensitiveKey(key):
			// For sensitive vars, just log that it was set
			logger.Debug().
				Str(xglog.FieldKey, key).
				Str(xglog.FieldSource, "environment").
				Bool(xglog.FieldSensitive, true).
				Msg("using environment variable")
		default:
			logger.Debug().
				Str(xglog.FieldKey, key).
				Str("value", value).
				Str(xglog.FieldSource, "environment").
				Msg("using environment variable")
		}
		return value
	}
	logger.Debug().
		Str(xglog.FieldKey, key).
		Str(xglog.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}
