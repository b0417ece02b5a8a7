// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"net/url"

	pnet "github.com/ManuGH/chairlink/internal/platform/net"
)

// DefaultServerPort is used when ServerAddress carries no port.
const DefaultServerPort = 3000

const (
	socketScriptPath = "/socket.io/socket.io.js"
	chairIDsPath     = "/api/chairids"
)

// Endpoint is the control server location derived from ServerAddress.
type Endpoint struct {
	Host string
	Port int
}

// ResolveEndpoint splits the server address of d into host and port.
func ResolveEndpoint(d Device) (Endpoint, error) {
	host, port, err := pnet.SplitAddress(d.serverAddress, DefaultServerPort)
	if err != nil {
		return Endpoint{}, fmt.Errorf("server address: %w", err)
	}
	if _, err := pnet.NormalizeHost(host); err != nil {
		return Endpoint{}, fmt.Errorf("server address: %w", err)
	}
	return Endpoint{Host: host, Port: port}, nil
}

// Endpoint is shorthand for ResolveEndpoint(d).
func (d Device) Endpoint() (Endpoint, error) {
	return ResolveEndpoint(d)
}

// Authority returns host:port, bracketing IPv6 literals.
func (e Endpoint) Authority() string {
	return pnet.JoinHostPort(e.Host, e.Port)
}

// BaseURL returns the server root, e.g. http://192.168.1.50:3000.
func (e Endpoint) BaseURL() string {
	return e.url("")
}

// SocketURL returns the Socket.IO client script location.
func (e Endpoint) SocketURL() string {
	return e.url(socketScriptPath)
}

// ChairIDsURL returns the endpoint listing the chairs known to the server.
func (e Endpoint) ChairIDsURL() string {
	return e.url(chairIDsPath)
}

func (e Endpoint) url(path string) string {
	u := url.URL{Scheme: "http", Host: e.Authority(), Path: path}
	return u.String()
}
