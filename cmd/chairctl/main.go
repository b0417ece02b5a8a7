// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// chairctl inspects and generates chair client configuration.
package main

import (
	"fmt"
	"os"

	"github.com/ManuGH/chairlink/internal/config"
	xglog "github.com/ManuGH/chairlink/internal/log"
	"github.com/ManuGH/chairlink/internal/validate"
	"github.com/spf13/cobra"
)

var logLevels = []string{"debug", "info", "warn", "error"}

type rootFlags struct {
	ConfigPath string
	LogLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chairctl",
		Short:         "Inspect and generate chair client configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := validate.New()
			v.OneOf("log-level", flags.LogLevel, logLevels)
			if err := v.Err(); err != nil {
				return err
			}
			xglog.Configure(xglog.Config{
				Level:   flags.LogLevel,
				Output:  cmd.ErrOrStderr(),
				Service: "chairctl",
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", os.Getenv(config.EnvConfigPath),
		"YAML deployment file layered over the compiled values (env "+config.EnvConfigPath+")")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newEndpointsCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadDevice returns the effective configuration: compiled values, then the
// deployment file, then CHAIR_* environment overrides.
func loadDevice(flags *rootFlags) (config.Device, error) {
	d, err := config.NewLoader(flags.ConfigPath).Load()
	if err != nil {
		return config.Device{}, fmt.Errorf("load configuration: %w", err)
	}
	return d, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
