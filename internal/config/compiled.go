// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "sync"

// Instructional defaults shipped in the source. A binary built without
// -ldflags overrides carries these values.
const (
	PlaceholderWiFiSSID      = "Your Wi-Fi name"
	PlaceholderWiFiPassword  = "Password"
	PlaceholderServerAddress = "Your local IP"
	PlaceholderDeviceID      = "Your chair name"
)

// Linker-injected values (-X). Only read once, by Compiled.
var (
	buildWiFiSSID      = PlaceholderWiFiSSID
	buildWiFiPassword  = PlaceholderWiFiPassword
	buildServerAddress = PlaceholderServerAddress
	buildDeviceID      = PlaceholderDeviceID
)

var (
	compiledOnce sync.Once
	compiled     Device
)

// Compiled returns the configuration table baked into this binary.
// It is safe for concurrent use and always returns the same value.
func Compiled() Device {
	compiledOnce.Do(func() {
		compiled = NewDevice(buildWiFiSSID, buildWiFiPassword, buildServerAddress, buildDeviceID)
	})
	return compiled
}
