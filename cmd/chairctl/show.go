// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/chairlink/internal/config"
	"github.com/ManuGH/chairlink/internal/validate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type showFlags struct {
	Output   string
	Reveal   bool
	Compiled bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (password masked)",
		Long: `Print the effective chair configuration.

Values come from the compiled table, the deployment file (--config) and the
CHAIR_* environment variables, in increasing precedence. With --compiled only
the values baked into this binary are shown, without validation; it cannot be
combined with --config or CHAIR_CONFIG.

Examples:
  chairctl show
  chairctl show --config /etc/chair/chair.yaml --output json
  chairctl show --compiled`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validate.New()
			v.OneOf("output", flags.Output, []string{"yaml", "json"})
			if err := v.Err(); err != nil {
				return err
			}

			if flags.Compiled && root.ConfigPath != "" {
				return fmt.Errorf("--compiled and --config (or %s) are mutually exclusive", config.EnvConfigPath)
			}

			d := config.Compiled()
			if !flags.Compiled {
				var err error
				if d, err = loadDevice(root); err != nil {
					return err
				}
			}

			tree, err := config.Redacted(d, flags.Reveal)
			if err != nil {
				return err
			}
			if err := writeTree(cmd.OutOrStdout(), tree, flags.Output); err != nil {
				return err
			}

			if names := config.Placeholders(d); len(names) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: placeholder values not replaced: %s\n", strings.Join(names, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "yaml", "output format (yaml, json)")
	cmd.Flags().BoolVar(&flags.Reveal, "reveal", false, "print the Wi-Fi password in clear text")
	cmd.Flags().BoolVar(&flags.Compiled, "compiled", false, "show only the values compiled into this binary")

	return cmd
}

func writeTree(w io.Writer, tree map[string]any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	}
}
