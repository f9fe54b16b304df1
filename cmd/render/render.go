/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/mentions/markup"
)

// Format is a structured output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (valid: table, json, yaml)", ErrUnknownFormat, s)
}

// Row holds the display values of one mention.
type Row struct {
	File           string `json:"file,omitempty" yaml:"file,omitempty"`
	Category       string `json:"category,omitempty" yaml:"category,omitempty"`
	ID             string `json:"id" yaml:"id"`
	Display        string `json:"display" yaml:"display"`
	Type           string `json:"type,omitempty" yaml:"type,omitempty"`
	Index          int    `json:"index" yaml:"index"`
	PlainTextIndex int    `json:"plainTextIndex" yaml:"plainTextIndex"`
}

// Rows converts the mentions of one input into rows.
func Rows(file string, mentions []markup.Mention) []Row {
	rows := make([]Row, 0, len(mentions))
	for _, m := range mentions {
		rows = append(rows, Row{
			File:           file,
			Category:       m.Category,
			ID:             m.ID,
			Display:        m.Display,
			Type:           m.Type,
			Index:          m.Index,
			PlainTextIndex: m.PlainTextIndex,
		})
	}
	return rows
}

// ColumnWidths calculates the width needed for the id and display columns.
func ColumnWidths(rows []Row) (id, display int) {
	id, display = 2, 7 // header widths
	for _, r := range rows {
		id = max(id, utf8.RuneCountInString(r.ID))
		display = max(display, utf8.RuneCountInString(r.Display))
	}
	return
}

// Table renders rows as aligned columns. Rows of named categories are
// grouped under a title-cased heading, in order of first appearance.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	order := make([]string, 0)
	byCategory := make(map[string][]Row)
	for _, r := range rows {
		if _, seen := byCategory[r.Category]; !seen {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	idW, displayW := ColumnWidths(rows)
	for i, category := range order {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if category != "" {
			fmt.Fprintf(w, "%s\n", TitleCase(category))
		}
		fmt.Fprintf(w, "%s  %s  %5s  %5s  %s\n", pad("ID", idW), pad("DISPLAY", displayW), "RAW", "PLAIN", "FILE")
		for _, r := range byCategory[category] {
			fmt.Fprintf(w, "%s  %s  %5d  %5d  %s\n", pad(r.ID, idW), pad(r.Display, displayW), r.Index, r.PlainTextIndex, r.File)
		}
	}
	return nil
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Structured writes v in format f. Table output is the caller's business.
func Structured(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return JSON(w, v)
	case FormatYAML:
		return YAML(w, v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// TitleCase converts a string to Title Case.
func TitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

// Highlight wraps the part of label matching a query in brackets.
func Highlight(before, match, after string) string {
	if match == "" {
		return before + after
	}
	return before + "[" + match + "]" + after
}
