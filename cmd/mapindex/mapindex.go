/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapindex provides the map command, which translates plain text
// offsets into raw value offsets.
package mapindex

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/markup"
)

// Cmd is the map cobra command.
var Cmd = &cobra.Command{
	Use:   "map <value> <index>",
	Short: "Map a plain text offset to a raw value offset",
	Long: `Map an offset in the plain text of a raw value to the matching offset in
the raw value. Offsets count characters, not bytes.

An offset inside a mention's display text resolves to the start or the end
of the token depending on --boundary. With --boundary none it does not
resolve and "none" is printed. Use "-" as value to read from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("boundary", "b", "start", "Resolution inside a mention: start, end, none")
	Cmd.Flags().Bool("find-start", false, "Print the plain text start of the mention containing index instead")
}

func run(cmd *cobra.Command, args []string) error {
	boundaryFlag, _ := cmd.Flags().GetString("boundary")
	findStart, _ := cmd.Flags().GetBool("find-start")

	boundary, err := markup.ParseBoundary(boundaryFlag)
	if err != nil {
		return err
	}

	e, err := engine.Load()
	if err != nil {
		return err
	}
	value, err := engine.Value(cmd, args[0])
	if err != nil {
		return err
	}
	index, err := engine.Offset(args[1], "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if findStart {
		fmt.Fprintln(out, e.Markup.FindMentionStart(value, index))
		return nil
	}

	raw, ok := e.Markup.MapPlainIndex(value, index, boundary)
	if !ok {
		fmt.Fprintln(out, "none")
		return nil
	}
	fmt.Fprintln(out, raw)
	return nil
}
