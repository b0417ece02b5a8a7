// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"strings"

	"github.com/ManuGH/chairlink/internal/validate"
)

const (
	// MaxSSIDBytes is the 802.11 SSID length limit.
	MaxSSIDBytes = 32
	// MaxPasswordBytes covers a WPA passphrase (63) or a raw hex PSK (64).
	MaxPasswordBytes = 64
)

// Validate validates a Device using the centralized validation package.
// Placeholder values pass as long as they are syntactically valid; use
// CheckDeployable before the device touches the network.
func Validate(d Device) error {
	v := validate.New()

	v.NotEmpty(FieldWiFiSSID, d.wifiSSID)
	v.MaxBytes(FieldWiFiSSID, d.wifiSSID, MaxSSIDBytes)

	v.NotEmpty(FieldWiFiPassword, d.wifiPassword)
	v.MaxBytes(FieldWiFiPassword, d.wifiPassword, MaxPasswordBytes)

	v.HostAddress(FieldServerAddress, d.serverAddress)

	v.NotEmpty(FieldDeviceID, d.deviceID)

	return v.Err()
}

var placeholders = map[string]string{
	FieldWiFiSSID:      PlaceholderWiFiSSID,
	FieldWiFiPassword:  PlaceholderWiFiPassword,
	FieldServerAddress: PlaceholderServerAddress,
	FieldDeviceID:      PlaceholderDeviceID,
}

// Placeholders returns the names of fields still holding their instructional
// default, in declaration order.
func Placeholders(d Device) []string {
	var names []string
	for _, f := range d.Fields() {
		if f.Value == placeholders[f.Name] {
			names = append(names, f.Name)
		}
	}
	return names
}

// CheckDeployable runs Validate and additionally rejects placeholder values.
func CheckDeployable(d Device) error {
	if err := Validate(d); err != nil {
		return err
	}
	if names := Placeholders(d); len(names) > 0 {
		return fmt.Errorf("%w: %s", ErrPlaceholder, strings.Join(names, ", "))
	}
	return nil
}
