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

// Unknown marks a selection offset the input control did not report.
const Unknown = -1

// Change describes a plain text edit as reported by an input control.
type Change struct {
	// PlainText is the plain text after the edit.
	PlainText string
	// StartBefore and EndBefore are the selection before the edit, or Unknown.
	StartBefore int
	EndBefore   int
	// EndAfter is the selection end (the caret) after the edit.
	EndAfter int
}

// CaretChange describes an edit where only the caret after the edit is known.
func CaretChange(plainText string, endAfter int) Change {
	return Change{PlainText: plainText, StartBefore: Unknown, EndBefore: Unknown, EndAfter: endAfter}
}

// ApplyChange returns the raw value that corresponds to c applied to value.
//
// The edit is inferred from the plain text before and after and the
// selection offsets. Tokens outside the edited range are kept unchanged; a
// token touched by the edit, even partially, is removed entirely. When the
// input control silently corrected more than the reported range
// (autocapitalisation, autocompletion, composed characters) the edit is
// recovered from the first difference between the expected and the actual
// plain text. ApplyChange never fails; inconsistent offsets still yield a
// well-formed raw value.
func (m *Markup) ApplyChange(value string, c Change) string {
	oldPlain := m.PlainText(value)
	if oldPlain == c.PlainText {
		return value
	}

	newRunes := []rune(c.PlainText)
	lengthDelta := utf8.RuneCountInString(oldPlain) - len(newRunes)

	startBefore, endBefore, endAfter := c.StartBefore, c.EndBefore, c.EndAfter
	if startBefore < 0 {
		startBefore = endAfter + lengthDelta
	}
	if endBefore < 0 {
		endBefore = startBefore
	}

	// A composed character replaces the rune before the caret without moving it.
	if startBefore == endBefore && endBefore == endAfter && lengthDelta == 0 {
		startBefore--
	}

	insert := runeSlice(newRunes, startBefore, endAfter)

	spliceStart := min(startBefore, endAfter)
	spliceEnd := endBefore
	if startBefore == endAfter {
		// forward delete with a collapsed caret
		spliceEnd = max(endBefore, startBefore+lengthDelta)
	}

	raw := []rune(value)
	mappedStart, _ := m.MapPlainIndex(value, spliceStart, BoundaryStart)
	mappedEnd, _ := m.MapPlainIndex(value, spliceEnd, BoundaryEnd)

	_, startOK := m.MapPlainIndex(value, spliceStart, BoundaryNone)
	_, endOK := m.MapPlainIndex(value, spliceEnd, BoundaryNone)
	willRemoveMention := !startOK || !endOK

	result := splice(raw, mappedStart, mappedEnd, insert)
	if willRemoveMention {
		return result
	}

	control := []rune(m.PlainText(result))
	if string(control) == c.PlainText {
		return result
	}

	// The control changed more than the selection says; find the real edit.
	spliceStart = commonPrefix(newRunes, control)
	insert = runeSlice(newRunes, spliceStart, endAfter)

	tail := runeSlice(newRunes, endAfter, len(newRunes))
	at := strings.LastIndex(oldPlain, tail)
	if at < 0 {
		return result
	}
	spliceEnd = utf8.RuneCountInString(oldPlain[:at])

	mappedStart, _ = m.MapPlainIndex(value, spliceStart, BoundaryStart)
	mappedEnd, _ = m.MapPlainIndex(value, spliceEnd, BoundaryEnd)
	return splice(raw, mappedStart, mappedEnd, insert)
}

// splice replaces s[start:end) with insert. Offsets are clamped into range
// and an end before start deletes nothing.
func splice(s []rune, start, end int, insert string) string {
	start = clamp(start, 0, len(s))
	end = clamp(end, start, len(s))

	var sb strings.Builder
	sb.Grow(len(s) + len(insert))
	sb.WriteString(string(s[:start]))
	sb.WriteString(insert)
	sb.WriteString(string(s[end:]))
	return sb.String()
}

// runeSlice returns s[i:j) with both offsets clamped into range.
func runeSlice(s []rune, i, j int) string {
	i = clamp(i, 0, len(s))
	j = clamp(j, 0, len(s))
	if i >= j {
		return ""
	}
	return string(s[i:j])
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
