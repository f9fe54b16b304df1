/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package plaintext provides the render command, which prints the plain
// text of raw values.
package plaintext

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/internal/logger"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Print the plain text of raw values",
	Long: `Print the plain text of each raw value, with every mention token replaced by
its display text. Use "-" to read from stdin. Without files, the files
configured in .config/mentions.yaml are rendered.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	e, err := engine.Load()
	if err != nil {
		return err
	}

	inputs, err := e.Inputs(cmd, args)
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, in := range inputs {
		logger.Debug("rendering %s", in.Name)
		sb.WriteString(e.Markup.PlainText(in.Value))
	}

	if output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
		return err
	}
	if err := engine.FileSystem.WriteFile(output, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	logger.Info("wrote %s", output)
	return nil
}
