// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// mergeFileConfig merges file configuration into dst.
// Keys absent from the file (or set to "") keep the lower-precedence value.
func (l *Loader) mergeFileConfig(dst *Device, src *FileConfig) {
	if src.WiFi.SSID != "" {
		dst.wifiSSID = src.WiFi.SSID
	}
	if src.WiFi.Password != "" {
		dst.wifiPassword = src.WiFi.Password
	}
	if src.Server.Address != "" {
		dst.serverAddress = src.Server.Address
	}
	if src.Device.ID != "" {
		dst.deviceID = src.Device.ID
	}
}
