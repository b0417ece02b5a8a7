// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ManuGH/chairlink/internal/version"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestNew_ServiceAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf, Service: "chair-test"})

	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Warn().Str(FieldDeviceID, "chair-07").Msg("hello")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "chair-test", entry[FieldService])
	assert.Equal(t, "chair-07", entry[FieldDeviceID])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, version.Version, entry["version"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Output: &buf})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNew_EnvFallbacks(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_SERVICE", "from-env")

	var buf bytes.Buffer
	l := New(Config{Output: &buf})
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	l.Info().Msg("x")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "from-env", entry[FieldService])
}

func TestNew_DefaultService(t *testing.T) {
	t.Setenv("LOG_SERVICE", "")
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf})
	l.Info().Msg("x")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "chairlink", entry[FieldService])
}
