/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for mentions.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/render"
	"bennypowers.dev/mentions/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for mentions.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	if format == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "mentions %s\n", version.Get())
		return nil
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := render.Structured(cmd.OutOrStdout(), f, version.Info()); err != nil {
		return fmt.Errorf("error marshaling version info: %w", err)
	}
	return nil
}
