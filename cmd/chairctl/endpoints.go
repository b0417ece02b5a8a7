// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	xglog "github.com/ManuGH/chairlink/internal/log"
	"github.com/spf13/cobra"
)

func newEndpointsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "Print the server URLs derived from the server address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDevice(root)
			if err != nil {
				return err
			}
			ep, err := d.Endpoint()
			if err != nil {
				return err
			}
			logger := xglog.WithComponent("chairctl")
			logger.Debug().
				Str(xglog.FieldDeviceID, d.DeviceID()).
				Str(xglog.FieldBaseURL, ep.BaseURL()).
				Msg("resolved server endpoint")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "device:   %s\n", d.DeviceID())
			fmt.Fprintf(out, "base:     %s\n", ep.BaseURL())
			fmt.Fprintf(out, "socket:   %s\n", ep.SocketURL())
			fmt.Fprintf(out, "chairids: %s\n", ep.ChairIDsURL())
			return nil
		},
	}
}
