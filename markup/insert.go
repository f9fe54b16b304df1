/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import "unicode/utf8"

// InsertMention replaces the plain text range query, typically a trigger
// followed by the typed query, with a token of the named category. It returns
// the new raw value and the plain text caret just past the inserted mention
// (and the optional trailing space).
//
// This is a programmatic insertion; it does not go through ApplyChange.
func (m *Markup) InsertMention(value string, query Selection, name, id, display string, appendSpace bool) (string, int, error) {
	token, err := m.Token(name, id, display)
	if err != nil {
		return value, query.Start, err
	}
	if appendSpace {
		token += " "
	}

	start, _ := m.MapPlainIndex(value, query.Start, BoundaryStart)
	end := start + query.End - query.Start
	result := splice([]rune(value), start, end, token)

	caret := query.Start + utf8.RuneCountInString(m.Display(name, id, display))
	m.Scan(result, nil, MentionFunc(func(mm MentionMatch) {
		if mm.Index == start {
			caret = mm.PlainTextEnd()
		}
	}))
	if appendSpace {
		caret++
	}
	return result, caret, nil
}
