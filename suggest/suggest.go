/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package suggest models the suggestion list shown for mention queries.
//
// Suggestions are grouped by mention category. The list is addressed by a
// single flat index across all groups, the way an overlay shows them.
package suggest

import "golang.org/x/text/cases"

// Item is one suggestion candidate.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
}

// Label returns the text shown for the item. Items without a display text
// (or without an id) show the id.
func (i Item) Label() string {
	if i.ID == "" || i.Display == "" {
		return i.ID
	}
	return i.Display
}

// Group holds the suggestions of one category for one query.
type Group struct {
	Category string `json:"category" yaml:"category"`
	Query    string `json:"query" yaml:"query"`
	Items    []Item `json:"items" yaml:"items"`
}

// Entry is an item together with the group it belongs to.
type Entry struct {
	Item
	Category string
	Query    string
	// Index is the position across all groups.
	Index int
}

// Key identifies the entry among all entries of a list.
func (e Entry) Key() string {
	return e.Category + "-" + e.ID
}

// List is the suggestion list for all categories with an active query.
type List []Group

// Count returns the number of items across all groups.
func (l List) Count() int {
	n := 0
	for _, g := range l {
		n += len(g.Items)
	}
	return n
}

// At returns the entry at flat index i.
func (l List) At(i int) (Entry, bool) {
	if i < 0 {
		return Entry{}, false
	}
	offset := 0
	for _, g := range l {
		if i < offset+len(g.Items) {
			return Entry{Item: g.Items[i-offset], Category: g.Category, Query: g.Query, Index: i}, true
		}
		offset += len(g.Items)
	}
	return Entry{}, false
}

// Entries returns every entry in display order.
func (l List) Entries() []Entry {
	entries := make([]Entry, 0, l.Count())
	for _, g := range l {
		for _, item := range g.Items {
			entries = append(entries, Entry{Item: item, Category: g.Category, Query: g.Query, Index: len(entries)})
		}
	}
	return entries
}

// Match splits a display text around the first occurrence of a query.
type Match struct {
	Before string
	Match  string
	After  string
	Found  bool
}

// Highlight finds query in display, ignoring case. When the query does not
// occur the whole display ends up in Before.
func Highlight(display, query string) Match {
	fold := cases.Fold()
	d := []rune(display)
	q := []rune(query)
	want := fold.String(query)

	for i := 0; i+len(q) <= len(d); i++ {
		if fold.String(string(d[i:i+len(q)])) == want {
			return Match{
				Before: string(d[:i]),
				Match:  string(d[i : i+len(q)]),
				After:  string(d[i+len(q):]),
				Found:  true,
			}
		}
	}
	return Match{Before: display}
}

// Filter returns the items whose label contains query, ignoring case.
func Filter(items []Item, query string) []Item {
	var matched []Item
	for _, item := range items {
		if Highlight(item.Label(), query).Found {
			matched = append(matched, item)
		}
	}
	return matched
}
