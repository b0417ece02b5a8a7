// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"

	xglog "github.com/ManuGH/chairlink/internal/log"
	"github.com/rs/zerolog"
)

// Field names used in validation errors and CLI output.
const (
	FieldWiFiSSID      = "WiFiSSID"
	FieldWiFiPassword  = "WiFiPassword"
	FieldServerAddress = "ServerAddress"
	FieldDeviceID      = "DeviceID"
)

// Device is the configuration table of one chair client.
// Values are stored exactly as given and cannot be changed after construction.
type Device struct {
	wifiSSID      string
	wifiPassword  string
	serverAddress string
	deviceID      string
}

// NewDevice builds a Device from the four deployment values.
// No validation or normalization is applied; see Validate and CheckDeployable.
func NewDevice(wifiSSID, wifiPassword, serverAddress, deviceID string) Device {
	return Device{
		wifiSSID:      wifiSSID,
		wifiPassword:  wifiPassword,
		serverAddress: serverAddress,
		deviceID:      deviceID,
	}
}

// WiFiSSID is the network the device joins at boot.
func (d Device) WiFiSSID() string { return d.wifiSSID }

// WiFiPassword is the credential for WiFiSSID.
func (d Device) WiFiPassword() string { return d.wifiPassword }

// ServerAddress is the host or IP (optionally host:port) of the control server.
func (d Device) ServerAddress() string { return d.serverAddress }

// DeviceID distinguishes this chair among the units reporting to the same server.
func (d Device) DeviceID() string { return d.deviceID }

// Field is a named configuration value.
type Field struct {
	Name      string
	Value     string
	Sensitive bool
}

// Fields returns the four values in declaration order.
func (d Device) Fields() []Field {
	return []Field{
		{Name: FieldWiFiSSID, Value: d.wifiSSID},
		{Name: FieldWiFiPassword, Value: d.wifiPassword, Sensitive: true},
		{Name: FieldServerAddress, Value: d.serverAddress},
		{Name: FieldDeviceID, Value: d.deviceID},
	}
}

// String renders the device with the password masked.
func (d Device) String() string {
	return fmt.Sprintf("Device{WiFiSSID: %q, WiFiPassword: %s, ServerAddress: %q, DeviceID: %q}",
		d.wifiSSID, maskValue(d.wifiPassword), d.serverAddress, d.deviceID)
}

// GoString keeps %#v from printing the password.
func (d Device) GoString() string {
	return "config." + d.String()
}

// MarshalZerologObject logs the device without the password.
func (d Device) MarshalZerologObject(e *zerolog.Event) {
	e.Str(xglog.FieldWiFiSSID, d.wifiSSID).
		Bool("wifi_password_set", d.wifiPassword != "").
		Str(xglog.FieldServerAddr, d.serverAddress).
		Str(xglog.FieldDeviceID, d.deviceID)
}

func maskValue(s string) string {
	if s == "" {
		return `""`
	}
	return "***"
}
