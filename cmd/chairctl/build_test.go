// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const configPkg = "github.com/ManuGH/chairlink/internal/config"

type buildValues struct {
	SSID, Password, Server, ID string
}

func (b buildValues) ldflags() string {
	return strings.Join([]string{
		fmt.Sprintf("-X '%s.buildWiFiSSID=%s'", configPkg, b.SSID),
		fmt.Sprintf("-X '%s.buildWiFiPassword=%s'", configPkg, b.Password),
		fmt.Sprintf("-X '%s.buildServerAddress=%s'", configPkg, b.Server),
		fmt.Sprintf("-X '%s.buildDeviceID=%s'", configPkg, b.ID),
	}, " ")
}

// buildChairctl compiles chairctl with the given table baked in.
func buildChairctl(t *testing.T, vals buildValues) string {
	t.Helper()
	binaryPath := filepath.Join(t.TempDir(), "chairctl-test")
	// #nosec G204 -- Test code: building test binary with controlled arguments
	buildCmd := exec.Command("go", "build", "-ldflags", vals.ldflags(), "-o", binaryPath, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build chairctl binary: %v\n%s", err, out)
	}
	return binaryPath
}

// compiledTable runs "show --compiled --reveal" and returns the four values.
func compiledTable(t *testing.T, binaryPath string) buildValues {
	t.Helper()
	env := make([]string, 0, len(os.Environ()))
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "CHAIR_") {
			env = append(env, e)
		}
	}

	// #nosec G204 -- Test code: running test binary with controlled arguments
	cmd := exec.Command(binaryPath, "show", "--compiled", "--reveal", "--output", "json")
	cmd.Env = env
	out, err := cmd.Output()
	require.NoError(t, err, "chairctl show --compiled")

	var tree map[string]map[string]string
	require.NoError(t, json.Unmarshal(out, &tree), "output: %s", out)
	return buildValues{
		SSID:     tree["wifi"]["ssid"],
		Password: tree["wifi"]["password"],
		Server:   tree["server"]["address"],
		ID:       tree["device"]["id"],
	}
}

func TestCompiledTable_LinkerValuesExposedUnchanged(t *testing.T) {
	tests := []struct {
		name string
		vals buildValues
	}{
		{
			name: "lab chair",
			vals: buildValues{SSID: "LabNet", Password: "secret123", Server: "192.168.1.50", ID: "chair-07"},
		},
		{
			name: "spaces and mixed case",
			vals: buildValues{SSID: "Office Lab 2.4GHz", Password: "Pa55 Word!", Server: "Chairs.Office.LAN:8080", ID: "Chair-B-03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compiledTable(t, buildChairctl(t, tt.vals))
			if diff := cmp.Diff(tt.vals, got); diff != "" {
				t.Errorf("compiled table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompiledTable_ChangingOneValueChangesOnlyThatField(t *testing.T) {
	base := buildValues{SSID: "LabNet", Password: "secret123", Server: "192.168.1.50", ID: "chair-07"}
	changed := base
	changed.ID = "chair-08"

	before := compiledTable(t, buildChairctl(t, base))
	after := compiledTable(t, buildChairctl(t, changed))

	if diff := cmp.Diff(base, before); diff != "" {
		t.Fatalf("first build mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(changed, after); diff != "" {
		t.Errorf("rebuild mismatch (-want +got):\n%s", diff)
	}
}
