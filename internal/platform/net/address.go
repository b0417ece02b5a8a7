// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package net holds host and address helpers shared by config and validation.
package net

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeHost validates and normalizes a host for comparison.
// The input must be a bare hostname or IP literal (brackets allowed for IPv6).
func NormalizeHost(raw string) (string, error) {
	host := raw
	if host == "" {
		return "", fmt.Errorf("host is empty")
	}
	if strings.TrimSpace(host) != host {
		return "", fmt.Errorf("host must not contain surrounding whitespace: %q", raw)
	}
	if strings.Contains(host, "://") {
		return "", fmt.Errorf("host must not include scheme: %s", raw)
	}
	if strings.Contains(host, "/") {
		return "", fmt.Errorf("host must not include path: %s", raw)
	}
	if strings.Contains(host, "@") {
		return "", fmt.Errorf("host must not include userinfo: %s", raw)
	}
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	}
	if strings.Contains(host, ":") && net.ParseIP(host) == nil {
		return "", fmt.Errorf("host must not include port: %s", raw)
	}
	if strings.Contains(host, "%") {
		return "", fmt.Errorf("host must not include zone: %s", raw)
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", fmt.Errorf("host is empty")
	}
	if ip := net.ParseIP(host); ip != nil {
		return strings.ToLower(ip.String()), nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", raw, err)
	}
	return strings.ToLower(ascii), nil
}

// SplitAddress splits a "host" or "host:port" address. A bare IPv6 literal
// (with or without brackets) is accepted as a host. When no port is present
// defaultPort is returned.
func SplitAddress(addr string, defaultPort int) (host string, port int, err error) {
	if addr == "" {
		return "", 0, fmt.Errorf("address is empty")
	}

	host, portStr, splitErr := net.SplitHostPort(addr)
	if splitErr != nil {
		// No port: plain host, bracketed IPv6 or bare IPv6 literal.
		host = addr
		if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
			host = host[1 : len(host)-1]
		} else if strings.Contains(host, ":") && net.ParseIP(host) == nil {
			return "", 0, fmt.Errorf("invalid address %q: %w", addr, splitErr)
		}
		return host, defaultPort, nil
	}

	if host == "" {
		return "", 0, fmt.Errorf("address %q has no host", addr)
	}
	port, err = strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in address %q: %w", addr, err)
	}
	if port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return host, port, nil
}

// JoinHostPort joins host and port, bracketing IPv6 literals.
func JoinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
