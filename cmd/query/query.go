/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package query provides the query command, which detects trigger queries
// at a caret and completes them with mentions.
package query

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/cmd/render"
	"bennypowers.dev/mentions/config"
	"bennypowers.dev/mentions/internal/logger"
	"bennypowers.dev/mentions/suggest"
	"bennypowers.dev/mentions/trigger"
)

// ErrNoQuery is returned by --id when no trigger query is active at the caret.
var ErrNoQuery = errors.New("no trigger query at caret")

// Cmd is the query cobra command.
var Cmd = &cobra.Command{
	Use:   "query <value> [caret]",
	Short: "Detect trigger queries at a caret",
	Long: `Detect the trigger queries a user is typing at a plain text caret, such as
"@jo", and list the configured suggestions matching each query. The caret
defaults to the end of the plain text.

With --id the query is replaced by a mention of that id and the new raw
value is printed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml")
	Cmd.Flags().String("id", "", "Complete the query with a mention of this id")
	Cmd.Flags().String("display", "", "Display text for --id (default: the suggestion's label)")
	Cmd.Flags().String("category", "", "Complete the query of this category (default: the first)")
}

// result is one detected query with its suggestions.
type result struct {
	trigger.Query `yaml:",inline"`
	Suggestions   []suggest.Item `json:"suggestions" yaml:"suggestions"`
}

// insertion is the outcome of completing a query.
type insertion struct {
	Value string `json:"value" yaml:"value"`
	Caret int    `json:"caret" yaml:"caret"`
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	id, _ := cmd.Flags().GetString("id")
	display, _ := cmd.Flags().GetString("display")
	category, _ := cmd.Flags().GetString("category")

	format, err := render.ParseFormat(formatFlag)
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
	caretArg := ""
	if len(args) > 1 {
		caretArg = args[1]
	}
	caret, err := engine.Offset(caretArg, e.Markup.PlainText(value))
	if err != nil {
		return err
	}

	triggers, err := e.Config.Triggers()
	if err != nil {
		return fmt.Errorf("invalid trigger configuration: %w", err)
	}
	queries := trigger.Detect(e.Markup, value, caret, triggers)
	logger.Debug("%d queries at caret %d", len(queries), caret)

	if id != "" {
		ins, err := complete(e, value, queries, category, id, display)
		if err != nil {
			return err
		}
		if format == render.FormatTable {
			fmt.Fprintln(cmd.OutOrStdout(), ins.Value)
			return nil
		}
		return render.Structured(cmd.OutOrStdout(), format, ins)
	}

	results, list, err := suggestions(e.Config, queries)
	if err != nil {
		return err
	}
	if format == render.FormatTable {
		return table(cmd.OutOrStdout(), results, list)
	}
	return render.Structured(cmd.OutOrStdout(), format, results)
}

// suggestions filters each query's category data by the query text.
func suggestions(cfg *config.Config, queries []trigger.Query) ([]result, suggest.List, error) {
	results := make([]result, 0, len(queries))
	list := make(suggest.List, 0, len(queries))
	for _, q := range queries {
		spec, err := cfg.Category(q.Category)
		if err != nil {
			return nil, nil, err
		}
		items := suggest.Filter(spec.Data, q.Text)
		if items == nil {
			items = []suggest.Item{}
		}
		results = append(results, result{Query: q, Suggestions: items})
		list = append(list, suggest.Group{Category: q.Category, Query: q.Text, Items: items})
	}
	logger.Debug("%d suggestions", list.Count())
	return results, list, nil
}

func table(w io.Writer, results []result, list suggest.List) error {
	entries := list.Entries()
	next := 0
	for _, r := range results {
		fmt.Fprintf(w, "%s %q %d-%d\n", r.Category, r.Text, r.Start, r.End)
		for range r.Suggestions {
			entry := entries[next]
			next++
			m := suggest.Highlight(entry.Label(), entry.Query)
			fmt.Fprintf(w, "  %d  %s  (%s)\n", entry.Index, render.Highlight(m.Before, m.Match, m.After), entry.ID)
		}
	}
	return nil
}

// complete replaces the selected query with a mention of id.
func complete(e *engine.Engine, value string, queries []trigger.Query, category, id, display string) (insertion, error) {
	var q *trigger.Query
	for i := range queries {
		if category == "" || queries[i].Category == category {
			q = &queries[i]
			break
		}
	}
	if q == nil {
		return insertion{}, ErrNoQuery
	}

	spec, err := e.Config.Category(q.Category)
	if err != nil {
		return insertion{}, err
	}
	if display == "" {
		display = id
		for _, item := range spec.Data {
			if item.ID == id {
				display = item.Label()
				break
			}
		}
	}

	newValue, caret, err := e.Markup.InsertMention(value, q.Selection(), q.Category, id, display, spec.AppendSpaceOnAdd)
	if err != nil {
		return insertion{}, err
	}
	return insertion{Value: newValue, Caret: caret}, nil
}
