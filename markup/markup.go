/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package markup keeps a raw value with embedded mention tokens and the
// plain text shown to the user in step.
//
// A raw value such as "Hi @[John Doe](user1)!" holds mention tokens built
// from a markup template. Its plain text, "Hi John Doe!", is what an input
// control displays and edits. Markup converts between the two: rendering plain
// text, listing mentions, mapping offsets between the two spaces, and turning a
// plain text edit back into a raw value without ever leaving a token half
// edited.
//
// All offsets are counted in runes. Every operation is pure; a *Markup is
// immutable and safe for concurrent use.
package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// DisplayTransform computes the text shown for a mention.
type DisplayTransform func(id, display, typ string) string

// Category configures one kind of mention.
type Category struct {
	// Name identifies the category. It may be empty when there is only one.
	Name string
	// Template is the markup template, e.g. "@[__display__](__id__)".
	Template string
	// Regexp optionally replaces the regexp derived from Template.
	Regexp *regexp.Regexp
	// Transform optionally changes the displayed text.
	Transform DisplayTransform
}

type category struct {
	name      string
	pattern   *Pattern
	transform DisplayTransform
	// group is the submatch index wrapping this category in the merged
	// regexp, or 0 when the category's own regexp is used.
	group int
}

// Markup is the engine for a set of mention categories.
type Markup struct {
	categories []category
	byName     map[string]int
	re         *regexp.Regexp
}

// New compiles categories into a Markup. With more than one category the
// patterns are merged into a single alternation, so one pass over a raw value
// finds the tokens of every category.
func New(categories ...Category) (*Markup, error) {
	if len(categories) == 0 {
		return nil, &ConfigError{Err: ErrNoCategories}
	}

	m := &Markup{byName: make(map[string]int, len(categories))}
	for i, c := range categories {
		if _, dup := m.byName[c.Name]; dup {
			return nil, &ConfigError{Category: c.Name, Err: ErrDuplicateCategory}
		}
		p, err := Compile(c.Template, c.Regexp)
		if err != nil {
			if ce, ok := err.(*ConfigError); ok {
				ce.Category = c.Name
			}
			return nil, err
		}
		m.byName[c.Name] = i
		m.categories = append(m.categories, category{
			name:      c.Name,
			pattern:   p,
			transform: c.Transform,
		})
	}

	if len(m.categories) == 1 {
		m.re = m.categories[0].pattern.re
		return m, nil
	}

	parts := make([]string, len(m.categories))
	group := 1
	for i := range m.categories {
		m.categories[i].group = group
		parts[i] = "(" + m.categories[i].pattern.re.String() + ")"
		group += 1 + m.categories[i].pattern.re.NumSubexp()
	}
	re, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("%w: %v", ErrConfiguration, err)}
	}
	m.re = re
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(categories ...Category) *Markup {
	m, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return m
}

// Single is shorthand for a Markup with one unnamed category.
func Single(template string) (*Markup, error) {
	return New(Category{Template: template})
}

// Categories returns the configured category names in order.
func (m *Markup) Categories() []string {
	names := make([]string, len(m.categories))
	for i, c := range m.categories {
		names[i] = c.name
	}
	return names
}

// Pattern returns the compiled pattern of the named category.
func (m *Markup) Pattern(name string) (*Pattern, bool) {
	i, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return m.categories[i].pattern, true
}

// Token builds a markup token with the named category's template. The
// category name is used as the type.
func (m *Markup) Token(name, id, display string) (string, error) {
	i, ok := m.byName[name]
	if !ok {
		return "", &ConfigError{Category: name, Err: ErrUnknownCategory}
	}
	return m.categories[i].pattern.Token(id, display, name), nil
}

// Display returns the text shown for a mention of the named category built
// with Token. The transform sees the type a scan of that token would report:
// the category name when the template has __type__, "" otherwise.
func (m *Markup) Display(name, id, display string) string {
	i, ok := m.byName[name]
	if !ok || m.categories[i].transform == nil {
		return display
	}
	c := &m.categories[i]
	typ := ""
	if _, ok := c.pattern.slots.Type.Get(); ok {
		typ = name
	}
	return c.transform(id, display, typ)
}

// extract resolves the category and fields of one match. loc holds the byte
// index pairs returned by FindAllStringSubmatchIndex.
func (m *Markup) extract(value string, loc []int) (c *category, id, display, typ string) {
	c = &m.categories[0]
	if len(m.categories) > 1 {
		for i := range m.categories {
			g := m.categories[i].group
			if loc[2*g] >= 0 {
				c = &m.categories[i]
				break
			}
		}
	}

	sub := func(s Slot) string {
		k := c.group + int(s)
		if c.group > 0 && s > Slot(c.pattern.re.NumSubexp()) {
			return ""
		}
		if 2*k+1 >= len(loc) || loc[2*k] < 0 {
			return ""
		}
		return value[loc[2*k]:loc[2*k+1]]
	}

	id = sub(c.pattern.slots.ID)
	display = sub(c.pattern.slots.Display)
	if s, ok := c.pattern.slots.Type.Get(); ok {
		typ = sub(s)
	}
	if c.transform != nil {
		display = c.transform(id, display, typ)
	}
	return c, id, display, typ
}
