// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// FileConfig represents the YAML configuration structure
type FileConfig struct {
	WiFi   WiFiConfig   `yaml:"wifi"`
	Server ServerConfig `yaml:"server"`
	Device DeviceConfig `yaml:"device"`
}

// WiFiConfig holds the network the chair joins at boot
type WiFiConfig struct {
	SSID     string `yaml:"ssid,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// ServerConfig holds the control server location
type ServerConfig struct {
	Address string `yaml:"address,omitempty"` // host, IP or host:port
}

// DeviceConfig holds the chair identity
type DeviceConfig struct {
	ID string `yaml:"id,omitempty"`
}

// toFileConfig maps a Device back to its YAML representation.
func toFileConfig(d Device) FileConfig {
	return FileConfig{
		WiFi: WiFiConfig{
			SSID:     d.wifiSSID,
			Password: d.wifiPassword,
		},
		Server: ServerConfig{
			Address: d.serverAddress,
		},
		Device: DeviceConfig{
			ID: d.deviceID,
		},
	}
}
