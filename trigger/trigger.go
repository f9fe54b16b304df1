/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package trigger detects mention queries being typed at the caret.
//
// A query is a trigger sequence such as "@jo" that starts at the beginning of
// the text or after whitespace and runs up to the caret. An overlay uses the
// query to look up suggestions and, once one is chosen, replaces the query
// with a mention token.
package trigger

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"bennypowers.dev/mentions/markup"
)

// DefaultTrigger is used when a Config has neither Trigger nor Pattern.
const DefaultTrigger = "@"

// Sentinel errors for trigger configuration.
var (
	// ErrPatternGroups indicates a custom pattern without the two required groups.
	ErrPatternGroups = errors.New("trigger pattern needs a group for the sequence and one for the query")
)

// Config configures the trigger of one mention category.
type Config struct {
	// Category names the mention category the trigger belongs to.
	Category string
	// Trigger is the literal that starts a query, "@" by default.
	Trigger string
	// Pattern replaces the pattern derived from Trigger. Group 1 must match
	// the whole sequence and group 2 the query.
	Pattern *regexp.Regexp
	// AllowSpaceInQuery lets the query run across spaces.
	AllowSpaceInQuery bool
}

// Trigger is a compiled Config.
type Trigger struct {
	category string
	re       *regexp.Regexp
}

// Compile builds the trigger pattern for c.
func Compile(c Config) (*Trigger, error) {
	if c.Pattern != nil {
		if c.Pattern.NumSubexp() < 2 {
			return nil, fmt.Errorf("category %q: %w", c.Category, ErrPatternGroups)
		}
		return &Trigger{category: c.Category, re: c.Pattern}, nil
	}

	t := c.Trigger
	if t == "" {
		t = DefaultTrigger
	}
	esc := regexp.QuoteMeta(t)
	exclude := esc
	if !c.AllowSpaceInQuery {
		exclude = `\s` + esc
	}
	re, err := regexp.Compile(`(?:^|\s)(` + esc + `([^` + exclude + `]*))$`)
	if err != nil {
		return nil, fmt.Errorf("category %q: invalid trigger %q: %w", c.Category, t, err)
	}
	return &Trigger{category: c.Category, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(c Config) *Trigger {
	t, err := Compile(c)
	if err != nil {
		panic(err)
	}
	return t
}

// Category returns the category the trigger belongs to.
func (t *Trigger) Category() string {
	return t.category
}

// Query is a trigger sequence ending at the caret.
type Query struct {
	Category string `json:"category" yaml:"category"`
	// Text is the query without the trigger.
	Text string `json:"text" yaml:"text"`
	// Start and End delimit the whole sequence in plain text.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Selection returns the plain text range to replace with a mention.
func (q Query) Selection() markup.Selection {
	return markup.Selection{Start: q.Start, End: q.End}
}

// Detect returns the queries of all triggers that match the plain text
// between the last mention before the caret and the caret. Nothing is
// returned when the caret is inside a mention.
func Detect(m *markup.Markup, value string, caret int, triggers []*Trigger) []Query {
	pos, ok := m.MapPlainIndex(value, caret, markup.BoundaryNone)
	if !ok {
		return nil
	}

	var (
		sb    strings.Builder
		start int
	)
	m.Scan(value,
		markup.TextFunc(func(s markup.TextSegment) { sb.WriteString(s.Text) }),
		markup.MentionFunc(func(mm markup.MentionMatch) {
			sb.WriteString(mm.Display)
			if mm.End() <= pos {
				start = mm.PlainTextEnd()
			}
		}),
	)

	plain := []rune(sb.String())
	if caret > len(plain) {
		caret = len(plain)
	}
	if caret < 0 {
		caret = 0
	}
	if start > caret {
		return nil
	}
	substring := string(plain[start:caret])

	var queries []Query
	for _, t := range triggers {
		loc := t.re.FindStringSubmatchIndex(substring)
		if loc == nil || loc[2] < 0 {
			continue
		}
		seqStart := start + utf8.RuneCountInString(substring[:loc[2]])
		q := Query{
			Category: t.category,
			Start:    seqStart,
			End:      seqStart + utf8.RuneCountInString(substring[loc[2]:loc[3]]),
		}
		if loc[4] >= 0 {
			q.Text = substring[loc[4]:loc[5]]
		}
		queries = append(queries, q)
	}
	return queries
}
