// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ManuGH/chairlink/internal/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const generatedIDPrefix = "chair-"

type initFlags struct {
	Output     string
	SSID       string
	Password   string
	Server     string
	ID         string
	GenerateID bool
	Force      bool
}

func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a deployment file for one chair",
		Long: `Write a YAML deployment file for one chair.

The password may be passed with --password or through CHAIR_WIFI_PASSWORD,
which keeps it out of the process list. The file is written atomically with
mode 0600.

Examples:
  chairctl init -o chair.yaml --ssid LabNet --server 192.168.1.50 --id chair-07
  CHAIR_WIFI_PASSWORD=secret123 chairctl init -o chair.yaml --ssid LabNet --server 192.168.1.50 --generate-id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.ID != "" && flags.GenerateID {
				return errors.New("--id and --generate-id are mutually exclusive")
			}

			password := flags.Password
			if password == "" {
				password = os.Getenv(config.EnvWiFiPassword)
			}
			id := flags.ID
			if flags.GenerateID {
				id = newChairID()
			}

			d := config.NewDevice(flags.SSID, password, flags.Server, id)
			if err := config.CheckDeployable(d); err != nil {
				return fmt.Errorf("refusing to write %s: %w", flags.Output, err)
			}

			if !flags.Force {
				if _, err := os.Stat(flags.Output); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", flags.Output)
				}
			}

			if err := config.NewManager(flags.Output).Save(d); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote %s for %s\n", flags.Output, d.DeviceID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "file to write")
	cmd.Flags().StringVar(&flags.SSID, "ssid", "", "Wi-Fi network name")
	cmd.Flags().StringVar(&flags.Password, "password", "", "Wi-Fi password (default $"+config.EnvWiFiPassword+")")
	cmd.Flags().StringVar(&flags.Server, "server", "", "control server host or host:port")
	cmd.Flags().StringVar(&flags.ID, "id", "", "chair identifier")
	cmd.Flags().BoolVar(&flags.GenerateID, "generate-id", false, "generate a random chair identifier")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite an existing file")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("ssid")
	_ = cmd.MarkFlagRequired("server")

	return cmd
}

// newChairID returns "chair-" followed by the first block of a random UUID.
func newChairID() string {
	return generatedIDPrefix + uuid.NewString()[:8]
}
