/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for mentions.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/cmd/render"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List mentions in raw values",
	Long: `List every mention found in raw values, with its id, display text, and
offsets in the raw value and in the plain text.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml")
	Cmd.Flags().String("category", "", "Only list mentions of this category")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	category, _ := cmd.Flags().GetString("category")

	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	e, err := engine.Load()
	if err != nil {
		return err
	}
	if category != "" {
		if _, err := e.Config.Category(category); err != nil {
			return err
		}
	}

	inputs, err := e.Inputs(cmd, args)
	if err != nil {
		return err
	}

	rows := make([]render.Row, 0)
	for _, in := range inputs {
		rows = append(rows, render.Rows(in.Name, e.Markup.Mentions(in.Value))...)
	}
	rows = filterRows(rows, category)

	if format == render.FormatTable {
		if err := render.Table(cmd.OutOrStdout(), rows); err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}
		return nil
	}
	return render.Structured(cmd.OutOrStdout(), format, rows)
}

// filterRows keeps the rows of one category. An empty category keeps all.
func filterRows(rows []render.Row, category string) []render.Row {
	if category == "" {
		return rows
	}
	filtered := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
