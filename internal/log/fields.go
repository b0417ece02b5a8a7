// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Configuration source fields
	FieldKey       = "key"
	FieldSource    = "source"
	FieldSensitive = "sensitive"
	FieldPath      = "path"

	// Device fields
	FieldDeviceID   = "device_id"
	FieldWiFiSSID   = "wifi_ssid"
	FieldServerAddr = "server_address"
	FieldBaseURL    = "base_url"
)
