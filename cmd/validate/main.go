// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// validate is a CLI tool to validate chairlink YAML configuration files.
//
// Usage:
//
//	validate -f chair.yaml
//	validate --file chair.yaml --deployable
//
// Exit codes:
//   - 0: Configuration is valid
//   - 1: Configuration is invalid (parse, validation or placeholder error)
//   - 2: Usage error (missing required flag)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ManuGH/chairlink/internal/config"
	xglog "github.com/ManuGH/chairlink/internal/log"
	"github.com/ManuGH/chairlink/internal/version"
)

func main() {
	var file string
	var deployable bool
	var showVersion bool

	flag.StringVar(&file, "file", "", "path to YAML configuration file")
	flag.StringVar(&file, "f", "", "path to YAML configuration file (shorthand)")
	flag.BoolVar(&deployable, "deployable", false, "also reject unedited placeholder values")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  validate -f chair.yaml")
		fmt.Fprintln(os.Stderr, "  validate --file chair.yaml --deployable")
		os.Exit(2)
	}

	xglog.Configure(xglog.Config{Level: "warn", Service: "validate"})

	// Load configuration (strict YAML parsing + field validation).
	// The file is checked on its own: no compiled table, no CHAIR_* overrides.
	loader := config.NewLoaderWithBase(file, config.Device{}).WithoutEnv()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n", file)
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}

	if deployable {
		if err := config.CheckDeployable(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Deployment check failed for %s:\n", file)
			fmt.Fprintf(os.Stderr, "  %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("✓ %s is valid\n", file)
}
