// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"strings"
	"testing"

	"github.com/ManuGH/chairlink/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		device     Device
		wantFields []string
	}{
		{
			name:   "lab scenario",
			device: NewDevice("LabNet", "secret123", "192.168.1.50", "chair-07"),
		},
		{
			name:   "hostname with port",
			device: NewDevice("LabNet", "secret123", "chairs.local:8080", "chair-07"),
		},
		{
			name:   "ipv6 server",
			device: NewDevice("LabNet", "secret123", "[fd00::50]:3000", "chair-07"),
		},
		{
			name:   "32 byte ssid",
			device: NewDevice(strings.Repeat("s", 32), "secret123", "192.168.1.50", "chair-07"),
		},
		{
			name:       "all empty",
			device:     Device{},
			wantFields: []string{FieldWiFiSSID, FieldWiFiPassword, FieldServerAddress, FieldDeviceID},
		},
		{
			name:       "whitespace only id",
			device:     NewDevice("LabNet", "secret123", "192.168.1.50", "   "),
			wantFields: []string{FieldDeviceID},
		},
		{
			name:       "ssid too long",
			device:     NewDevice(strings.Repeat("s", 33), "secret123", "192.168.1.50", "chair-07"),
			wantFields: []string{FieldWiFiSSID},
		},
		{
			name:       "password too long",
			device:     NewDevice("LabNet", strings.Repeat("p", 65), "192.168.1.50", "chair-07"),
			wantFields: []string{FieldWiFiPassword},
		},
		{
			name:       "placeholder server address",
			device:     NewDevice("LabNet", "secret123", PlaceholderServerAddress, "chair-07"),
			wantFields: []string{FieldServerAddress},
		},
		{
			name:       "server address with scheme",
			device:     NewDevice("LabNet", "secret123", "http://192.168.1.50", "chair-07"),
			wantFields: []string{FieldServerAddress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.device)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			var verr validate.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields())
		})
	}
}

func TestValidate_DoesNotRejectPlaceholderText(t *testing.T) {
	d := NewDevice(PlaceholderWiFiSSID, PlaceholderWiFiPassword, "10.0.0.2", PlaceholderDeviceID)
	require.NoError(t, Validate(d))
}

func TestPlaceholders(t *testing.T) {
	assert.Empty(t, Placeholders(NewDevice("LabNet", "secret123", "192.168.1.50", "chair-07")))

	// Exact match only: edited values that contain the placeholder text are fine
	assert.Empty(t, Placeholders(NewDevice("Your Wi-Fi name 2", "Password1", "192.168.1.50", "your chair name")))

	got := Placeholders(NewDevice("LabNet", PlaceholderWiFiPassword, PlaceholderServerAddress, "chair-07"))
	assert.Equal(t, []string{FieldWiFiPassword, FieldServerAddress}, got)

	assert.Equal(t, []string{FieldWiFiSSID, FieldWiFiPassword, FieldServerAddress, FieldDeviceID},
		Placeholders(Compiled()))
}

func TestCheckDeployable(t *testing.T) {
	require.NoError(t, CheckDeployable(NewDevice("LabNet", "secret123", "192.168.1.50", "chair-07")))

	err := CheckDeployable(NewDevice("LabNet", "secret123", "192.168.1.50", PlaceholderDeviceID))
	require.ErrorIs(t, err, ErrPlaceholder)
	assert.Contains(t, err.Error(), FieldDeviceID)

	// Structural errors win over placeholder reporting
	err = CheckDeployable(Compiled())
	var verr validate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotErrorIs(t, err, ErrPlaceholder)
}
