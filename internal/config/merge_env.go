// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// mergeEnvConfig merges environment variables into cfg.
// ENV variables have the highest precedence.
func (l *Loader) mergeEnvConfig(cfg *Device) {
	cfg.wifiSSID = l.envString(EnvWiFiSSID, cfg.wifiSSID)
	cfg.wifiPassword = l.envString(EnvWiFiPassword, cfg.wifiPassword)
	cfg.serverAddress = l.envString(EnvServerAddress, cfg.serverAddress)
	cfg.deviceID = l.envString(EnvDeviceID, cfg.deviceID)
}
