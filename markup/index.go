/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import (
	"fmt"
	"unicode/utf8"
)

// Boundary decides where a plain text offset inside a mention maps to.
type Boundary int

const (
	// BoundaryStart maps to the first rune of the token.
	BoundaryStart Boundary = iota
	// BoundaryEnd maps just past the last rune of the token.
	BoundaryEnd
	// BoundaryNone reports the offset as unmappable.
	BoundaryNone
)

// String returns the string representation of the boundary.
func (b Boundary) String() string {
	switch b {
	case BoundaryStart:
		return "start"
	case BoundaryEnd:
		return "end"
	case BoundaryNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseBoundary returns the boundary named by s.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "start", "START":
		return BoundaryStart, nil
	case "end", "END":
		return BoundaryEnd, nil
	case "none", "null", "NULL":
		return BoundaryNone, nil
	default:
		return BoundaryStart, fmt.Errorf("unrecognized boundary %q", s)
	}
}

// MapPlainIndex returns the raw value offset for a plain text offset. An
// offset inside a mention's display text snaps to the token according to b;
// with BoundaryNone the second result is false instead. Offsets at or past
// the end of the plain text map to the end of value. Negative offsets are
// treated as 0.
func (m *Markup) MapPlainIndex(value string, plainIndex int, b Boundary) (int, bool) {
	if plainIndex < 0 {
		plainIndex = 0
	}

	var (
		result   int
		resolved bool
		ok       = true
	)

	text := TextFunc(func(s TextSegment) {
		if resolved {
			return
		}
		if s.PlainTextIndex+utf8.RuneCountInString(s.Text) >= plainIndex {
			result = s.Index + plainIndex - s.PlainTextIndex
			resolved = true
		}
	})
	mention := MentionFunc(func(mm MentionMatch) {
		if resolved {
			return
		}
		if mm.PlainTextEnd() > plainIndex {
			resolved = true
			switch b {
			case BoundaryNone:
				ok = false
			case BoundaryEnd:
				result = mm.End()
			default:
				result = mm.Index
			}
		}
	})

	m.Scan(value, text, mention)

	if !resolved {
		return utf8.RuneCountInString(value), true
	}
	return result, ok
}

// FindMentionStart returns the plain text offset where the mention enclosing
// plainIndex starts, or plainIndex when it is not inside a mention.
func (m *Markup) FindMentionStart(value string, plainIndex int) int {
	result := plainIndex
	m.Scan(value, nil, MentionFunc(func(mm MentionMatch) {
		if mm.PlainTextIndex <= plainIndex && mm.PlainTextEnd() > plainIndex {
			result = mm.PlainTextIndex
		}
	}))
	return result
}
