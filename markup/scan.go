/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import "unicode/utf8"

// TextSegment is a run of literal text between mention tokens.
type TextSegment struct {
	// Text is the literal text, identical in both spaces.
	Text string
	// Index is the raw value offset of the segment.
	Index int
	// PlainTextIndex is the plain text offset of the segment.
	PlainTextIndex int
}

// MentionMatch is one mention token found in a raw value.
type MentionMatch struct {
	// Markup is the whole token as it appears in the raw value.
	Markup string
	// Index is the raw value offset of the token.
	Index int
	// PlainTextIndex is the plain text offset where the display text starts.
	PlainTextIndex int

	ID       string
	Display  string
	Type     string
	Category string
}

// End returns the raw value offset just past the token.
func (m MentionMatch) End() int {
	return m.Index + utf8.RuneCountInString(m.Markup)
}

// PlainTextEnd returns the plain text offset just past the display text.
func (m MentionMatch) PlainTextEnd() int {
	return m.PlainTextIndex + utf8.RuneCountInString(m.Display)
}

// TextVisitor receives the literal segments of a scan.
type TextVisitor interface {
	VisitText(TextSegment)
}

// MentionVisitor receives the mention tokens of a scan.
type MentionVisitor interface {
	VisitMention(MentionMatch)
}

// TextFunc adapts a function to a TextVisitor.
type TextFunc func(TextSegment)

// VisitText calls f(s).
func (f TextFunc) VisitText(s TextSegment) { f(s) }

// MentionFunc adapts a function to a MentionVisitor.
type MentionFunc func(MentionMatch)

// VisitMention calls f(m).
func (f MentionFunc) VisitMention(m MentionMatch) { f(m) }

// Scan walks value once from left to right. The gap before every token is
// passed to text, even when empty, followed by the token itself to mention.
// A non-empty tail after the last token is passed to text. Either visitor may
// be nil.
//
// Every other query is a pair of visitors over Scan, so they always agree on
// where segments begin and end.
func (m *Markup) Scan(value string, text TextVisitor, mention MentionVisitor) {
	var (
		bytePos  int // byte offset just past the previous token
		rawPos   int // rune offset matching bytePos
		plainPos int
	)

	for _, loc := range m.re.FindAllStringSubmatchIndex(value, -1) {
		gap := value[bytePos:loc[0]]
		gapLen := utf8.RuneCountInString(gap)
		if text != nil {
			text.VisitText(TextSegment{Text: gap, Index: rawPos, PlainTextIndex: plainPos})
		}
		rawPos += gapLen
		plainPos += gapLen

		c, id, display, typ := m.extract(value, loc)
		token := value[loc[0]:loc[1]]
		if mention != nil {
			mention.VisitMention(MentionMatch{
				Markup:         token,
				Index:          rawPos,
				PlainTextIndex: plainPos,
				ID:             id,
				Display:        display,
				Type:           typ,
				Category:       c.name,
			})
		}
		rawPos += utf8.RuneCountInString(token)
		plainPos += utf8.RuneCountInString(display)
		bytePos = loc[1]
	}

	if bytePos < len(value) && text != nil {
		text.VisitText(TextSegment{Text: value[bytePos:], Index: rawPos, PlainTextIndex: plainPos})
	}
}
