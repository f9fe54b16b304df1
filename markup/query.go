/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import (
	"strings"
	"unicode/utf8"
)

// Mention is a mention found in a raw value.
type Mention struct {
	ID       string `json:"id" yaml:"id"`
	Display  string `json:"display" yaml:"display"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	// Index is the raw value offset of the token.
	Index int `json:"index" yaml:"index"`
	// PlainTextIndex is the plain text offset of the display text.
	PlainTextIndex int `json:"plainTextIndex" yaml:"plainTextIndex"`
}

// PlainText returns value with every token replaced by its display text.
func (m *Markup) PlainText(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	m.Scan(value,
		TextFunc(func(s TextSegment) { sb.WriteString(s.Text) }),
		MentionFunc(func(mm MentionMatch) { sb.WriteString(mm.Display) }),
	)
	return sb.String()
}

// Mentions returns the mentions of value in order of appearance.
func (m *Markup) Mentions(value string) []Mention {
	var mentions []Mention
	m.Scan(value, nil, MentionFunc(func(mm MentionMatch) {
		mentions = append(mentions, Mention{
			ID:             mm.ID,
			Display:        mm.Display,
			Type:           mm.Type,
			Category:       mm.Category,
			Index:          mm.Index,
			PlainTextIndex: mm.PlainTextIndex,
		})
	}))
	return mentions
}

// EndOfLastMention returns the plain text offset just past the last mention,
// or 0 when value has none.
func (m *Markup) EndOfLastMention(value string) int {
	end := 0
	m.Scan(value, nil, MentionFunc(func(mm MentionMatch) {
		end = mm.PlainTextIndex + utf8.RuneCountInString(mm.Display)
	}))
	return end
}
