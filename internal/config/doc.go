// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config holds the deployment parameters of a chair client.
//
// The four values (Wi-Fi SSID, Wi-Fi password, server address, chair ID) are
// compiled into the binary and exposed through Compiled as an immutable
// Device. Deployments that do not rebuild the binary can layer a YAML file
// and CHAIR_* environment variables on top of the compiled values with
// Loader.
//
// Build-time values are injected by the linker:
//
//	go build -ldflags "\
//	  -X github.com/ManuGH/chairlink/internal/config.buildWiFiSSID=LabNet \
//	  -X github.com/ManuGH/chairlink/internal/config.buildWiFiPassword=secret123 \
//	  -X github.com/ManuGH/chairlink/internal/config.buildServerAddress=192.168.1.50 \
//	  -X github.com/ManuGH/chairlink/internal/config.buildDeviceID=chair-07"
package config
