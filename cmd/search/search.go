/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for mentions.
package search

import (
	"fmt"
	"io"
	"regexp"
	"sort"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/cmd/render"
	"bennypowers.dev/mentions/suggest"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [files...]",
	Short: "Search mentions by id or display text",
	Long:  `Search the mentions of raw values by id or display text, ignoring case, with optional regex support.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("id", false, "Search ids only")
	Cmd.Flags().Bool("display", false, "Search display texts only")
	Cmd.Flags().String("category", "", "Filter by category")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml, ids")
}

func run(cmd *cobra.Command, args []string) error {
	query := args[0]
	files := args[1:]

	idOnly, _ := cmd.Flags().GetBool("id")
	displayOnly, _ := cmd.Flags().GetBool("display")
	category, _ := cmd.Flags().GetString("category")
	useRegex, _ := cmd.Flags().GetBool("regex")
	formatFlag, _ := cmd.Flags().GetString("format")

	var pattern *regexp.Regexp
	if useRegex {
		var err error
		pattern, err = regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	e, err := engine.Load()
	if err != nil {
		return err
	}
	inputs, err := e.Inputs(cmd, files)
	if err != nil {
		return err
	}

	matches := make([]render.Row, 0)
	for _, in := range inputs {
		for _, row := range render.Rows(in.Name, e.Markup.Mentions(in.Value)) {
			if category != "" && row.Category != category {
				continue
			}

			var matched bool
			switch {
			case idOnly:
				matched = matchString(row.ID, query, pattern)
			case displayOnly:
				matched = matchString(row.Display, query, pattern)
			default:
				matched = matchString(row.ID, query, pattern) ||
					matchString(row.Display, query, pattern)
			}

			if matched {
				matches = append(matches, row)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})

	out := cmd.OutOrStdout()
	if formatFlag == "ids" {
		return outputIDs(out, matches)
	}
	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if format == render.FormatTable {
		return render.Table(out, matches)
	}
	return render.Structured(out, format, matches)
}

// matchString reports whether s matches pattern, or contains query ignoring
// case when pattern is nil.
func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return suggest.Highlight(s, query).Found
}

// outputIDs prints each distinct id once.
func outputIDs(w io.Writer, rows []render.Row) error {
	seen := make(map[string]bool)
	for _, r := range rows {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		fmt.Fprintln(w, r.ID)
	}
	return nil
}
