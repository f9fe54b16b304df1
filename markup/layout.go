/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import (
	"strconv"
	"unicode/utf8"
)

// Selection is a plain text range.
type Selection struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Collapsed reports whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// SegmentKind distinguishes literal text from mentions in a layout.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentMention
)

// String returns the string representation of the kind.
func (k SegmentKind) String() string {
	if k == SegmentMention {
		return "mention"
	}
	return "text"
}

// Segment is one piece of a highlighter layout.
type Segment struct {
	Kind SegmentKind
	// Text is the literal text, or the display text of a mention.
	Text string
	// Key is stable across re-layouts of the same value. Mentions use
	// "<id>_<n>" where n counts earlier mentions with the same id; the
	// caret segment uses "caret".
	Key string
	// Caret marks the segment that begins at a collapsed selection.
	Caret bool

	ID       string
	Type     string
	Category string
}

// Layout splits value into the segments an overlay needs to outline mentions
// behind an input. For a collapsed selection the text segment holding the
// caret is split in two and the second half is marked with Caret. When the
// caret follows a trailing mention an empty caret segment is appended.
func (m *Markup) Layout(value string, sel Selection) []Segment {
	caret := -1
	if sel.Collapsed() {
		caret, _ = m.MapPlainIndex(value, sel.Start, BoundaryStart)
	}

	var (
		segments    []Segment
		textKey     int
		mentionKeys = map[string]int{}
		placed      bool
	)

	pushText := func(s string, atCaret bool) {
		if s == "" && !atCaret {
			return
		}
		key := strconv.Itoa(textKey)
		if atCaret {
			key = "caret"
		}
		segments = append(segments, Segment{
			Kind:  SegmentText,
			Text:  s,
			Key:   key,
			Caret: atCaret,
		})
	}

	text := TextFunc(func(s TextSegment) {
		n := utf8.RuneCountInString(s.Text)
		if !placed && caret >= s.Index && caret <= s.Index+n {
			split := caret - s.Index
			runes := []rune(s.Text)
			pushText(string(runes[:split]), false)
			pushText(string(runes[split:]), true)
			placed = true
		} else {
			pushText(s.Text, false)
		}
		textKey++
	})

	mention := MentionFunc(func(mm MentionMatch) {
		n := mentionKeys[mm.ID]
		mentionKeys[mm.ID] = n + 1
		segments = append(segments, Segment{
			Kind:     SegmentMention,
			Text:     mm.Display,
			Key:      mm.ID + "_" + strconv.Itoa(n),
			ID:       mm.ID,
			Type:     mm.Type,
			Category: mm.Category,
		})
	})

	m.Scan(value, text, mention)

	if caret >= 0 && !placed {
		pushText("", true)
	}
	return segments
}
