/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks raw values for malformed and unknown mentions.
package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"bennypowers.dev/mentions/markup"
	"bennypowers.dev/mentions/suggest"
)

// minOpenerLength is the shortest template opener reported when it shows up
// outside a token. Single characters like "@" are ordinary text.
const minOpenerLength = 2

// Severity tells errors from warnings.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError represents a problem found in a raw value.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Index is the raw value offset of the problem.
	Index int
	// Severity is SeverityError for malformed markup.
	Severity Severity
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(":")
	}
	sb.WriteString(strconv.Itoa(e.Index))
	sb.WriteString(": ")
	sb.WriteString(e.Severity.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks value and returns the problems found, segment by segment:
//   - a category's template opener found in plain text, which usually means
//     a token that no longer matches its template
//   - a mention whose id is missing from its category's known items, when
//     known lists any
func Validate(m *markup.Markup, known map[string][]suggest.Item, value, filePath string) []ValidationError {
	openers := templateOpeners(m)

	var errs []ValidationError
	text := markup.TextFunc(func(s markup.TextSegment) {
		errs = append(errs, findOpeners(s, openers, filePath)...)
	})
	mention := markup.MentionFunc(func(mm markup.MentionMatch) {
		items := known[mm.Category]
		if len(items) == 0 || hasID(items, mm.ID) {
			return
		}
		e := ValidationError{
			FilePath: filePath,
			Index:    mm.Index,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("unknown id %q", mm.ID),
		}
		if mm.Category != "" {
			e.Message += fmt.Sprintf(" in category %q", mm.Category)
		}
		if id, ok := idForLabel(items, mm.Display); ok {
			e.Suggestion = fmt.Sprintf("did you mean %q?", id)
		}
		errs = append(errs, e)
	})
	m.Scan(value, text, mention)

	return errs
}

// opener is the literal text a category's tokens start with.
type opener struct {
	category string
	text     string
}

// templateOpeners collects the literal prefix every token of a category must
// start with, taken from the category's matching regexp so custom patterns
// are covered too.
func templateOpeners(m *markup.Markup) []opener {
	var openers []opener
	for _, name := range m.Categories() {
		p, _ := m.Pattern(name)
		prefix, _ := p.Regexp().LiteralPrefix()
		if utf8.RuneCountInString(prefix) >= minOpenerLength {
			openers = append(openers, opener{category: name, text: prefix})
		}
	}
	return openers
}

func findOpeners(s markup.TextSegment, openers []opener, filePath string) []ValidationError {
	var errs []ValidationError
	for _, o := range openers {
		rest := s.Text
		offset := 0
		for {
			i := strings.Index(rest, o.text)
			if i < 0 {
				break
			}
			e := ValidationError{
				FilePath:   filePath,
				Index:      s.Index + offset + utf8.RuneCountInString(rest[:i]),
				Severity:   SeverityError,
				Message:    fmt.Sprintf("%q does not start a valid mention", o.text),
				Suggestion: "check the token against its markup template",
			}
			if o.category != "" {
				e.Message += fmt.Sprintf(" of category %q", o.category)
			}
			errs = append(errs, e)
			offset += utf8.RuneCountInString(rest[:i+len(o.text)])
			rest = rest[i+len(o.text):]
		}
	}
	return errs
}

func hasID(items []suggest.Item, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// idForLabel finds the item whose label equals display, ignoring case.
func idForLabel(items []suggest.Item, display string) (string, bool) {
	for _, item := range items {
		if strings.EqualFold(item.Label(), display) {
			return item.ID, true
		}
	}
	return "", false
}
