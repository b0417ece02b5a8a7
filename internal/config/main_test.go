package config

import (
	"io"
	"os"
	"strings"
	"testing"

	xglog "github.com/ManuGH/chairlink/internal/log"
)

func TestMain(m *testing.M) {
	// Unset all CHAIR vars to ensure clean test environment
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "CHAIR_") {
			kv := strings.SplitN(e, "=", 2)
			if len(kv) > 0 {
				if err := os.Unsetenv(kv[0]); err != nil {
					panic("failed to unset env: " + err.Error())
				}
			}
		}
	}

	xglog.Configure(xglog.Config{Output: io.Discard})

	os.Exit(m.Run())
}
