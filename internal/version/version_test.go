// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	orig := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = orig[0], orig[1], orig[2] })

	Version, Commit, Date = "dev", "unknown", "unknown"
	assert.Equal(t, "dev", String())

	Version, Commit, Date = "v1.2.0", "a1b2c3d", "2025-06-01"
	assert.Equal(t, "v1.2.0 (a1b2c3d, 2025-06-01)", String())
}
