/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Placeholders recognised in markup templates.
const (
	IDPlaceholder      = "__id__"
	DisplayPlaceholder = "__display__"
	TypePlaceholder    = "__type__"
)

// placeholderPattern is what every placeholder compiles to.
const placeholderPattern = "(.+?)"

// Field names a mention field addressable through a Pattern.
type Field string

const (
	FieldID      Field = "id"
	FieldDisplay Field = "display"
	FieldType    Field = "type"
)

// Slot is a submatch index of a compiled pattern. Slot 0 is the whole match.
type Slot int

// OptionalSlot is a Slot that may be absent.
type OptionalSlot struct {
	slot  Slot
	valid bool
}

// SomeSlot returns a present OptionalSlot.
func SomeSlot(s Slot) OptionalSlot {
	return OptionalSlot{slot: s, valid: true}
}

// Get returns the slot and whether it is present.
func (o OptionalSlot) Get() (Slot, bool) {
	return o.slot, o.valid
}

// Slots maps mention fields to submatch indices.
type Slots struct {
	ID      Slot
	Display Slot
	Type    OptionalSlot
}

// Pattern is a compiled markup template.
type Pattern struct {
	template string
	re       *regexp.Regexp
	slots    Slots
}

// Compile turns a markup template into a Pattern. When custom is non-nil it is
// used for matching instead of the regexp derived from the template; the
// template then only decides which capture group yields which field.
func Compile(template string, custom *regexp.Regexp) (*Pattern, error) {
	idPos := strings.Index(template, IDPlaceholder)
	displayPos := strings.Index(template, DisplayPlaceholder)
	typePos := strings.Index(template, TypePlaceholder)

	if idPos < 0 && displayPos < 0 {
		return nil, &ConfigError{Template: template, Err: ErrMissingPlaceholder}
	}

	re := custom
	if re == nil {
		src := regexp.QuoteMeta(template)
		src = strings.Replace(src, DisplayPlaceholder, placeholderPattern, 1)
		src = strings.Replace(src, IDPlaceholder, placeholderPattern, 1)
		src = strings.Replace(src, TypePlaceholder, placeholderPattern, 1)
		var err error
		re, err = regexp.Compile(src)
		if err != nil {
			return nil, &ConfigError{Template: template, Err: fmt.Errorf("%w: %v", ErrConfiguration, err)}
		}
	}

	return &Pattern{
		template: template,
		re:       re,
		slots:    slotsFor(idPos, displayPos, typePos, re.NumSubexp()),
	}, nil
}

// MustCompile is like Compile but panics if the template is invalid.
func MustCompile(template string, custom *regexp.Regexp) *Pattern {
	p, err := Compile(template, custom)
	if err != nil {
		panic(err)
	}
	return p
}

// slotsFor assigns capture groups by the textual order of the placeholders.
// Positions are byte offsets into the template, negative when absent.
func slotsFor(idPos, displayPos, typePos, groups int) Slots {
	if groups == 0 {
		return Slots{ID: 0, Display: 0}
	}

	var present []int
	for _, pos := range []int{idPos, displayPos, typePos} {
		if pos >= 0 {
			present = append(present, pos)
		}
	}
	sort.Ints(present)

	slotOf := func(pos int) Slot {
		return Slot(sort.SearchInts(present, pos) + 1)
	}

	if idPos < 0 {
		idPos = displayPos
	}
	if displayPos < 0 {
		displayPos = idPos
	}

	slots := Slots{
		ID:      slotOf(idPos),
		Display: slotOf(displayPos),
	}
	if typePos >= 0 {
		slots.Type = SomeSlot(slotOf(typePos))
	}
	return slots
}

// Template returns the markup template the pattern was compiled from.
func (p *Pattern) Template() string {
	return p.template
}

// Regexp returns the matching regexp.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// Slots returns the field to submatch mapping.
func (p *Pattern) Slots() Slots {
	return p.slots
}

// SlotOf returns the submatch index yielding field. The type field is absent
// when the template has no __type__ placeholder.
func (p *Pattern) SlotOf(field Field) (OptionalSlot, error) {
	switch field {
	case FieldID:
		return SomeSlot(p.slots.ID), nil
	case FieldDisplay:
		return SomeSlot(p.slots.Display), nil
	case FieldType:
		return p.slots.Type, nil
	default:
		return OptionalSlot{}, &ConfigError{Template: p.template, Field: string(field), Err: ErrInvalidField}
	}
}

// Token builds a markup token for this pattern's template.
func (p *Pattern) Token(id, display, typ string) string {
	return BuildToken(p.template, id, display, typ)
}

// BuildToken substitutes the first occurrence of each placeholder in template.
// Repeated placeholders after the first are left as they are.
func BuildToken(template, id, display, typ string) string {
	result := strings.Replace(template, IDPlaceholder, id, 1)
	result = strings.Replace(result, DisplayPlaceholder, display, 1)
	return strings.Replace(result, TypePlaceholder, typ, 1)
}
