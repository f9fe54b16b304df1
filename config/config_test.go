/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"testing"

	"bennypowers.dev/mentions/suggest"
	"bennypowers.dev/mentions/testutil"
	"bennypowers.dev/mentions/trigger"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	m, err := cfg.Markup()
	if err != nil {
		t.Fatalf("Markup() error: %v", err)
	}
	if got := m.PlainText("Hi @[John Doe](user1)!"); got != "Hi John Doe!" {
		t.Errorf("PlainText() = %q, want %q", got, "Hi John Doe!")
	}

	triggers, err := cfg.Triggers()
	if err != nil {
		t.Fatalf("Triggers() error: %v", err)
	}
	if len(triggers) != 1 {
		t.Fatalf("expected 1 trigger, got %d", len(triggers))
	}

	queries := trigger.Detect(m, "Hi @jo", 6, triggers)
	if len(queries) != 1 || queries[0].Text != "jo" {
		t.Errorf("Detect() = %+v, want one query 'jo'", queries)
	}
}

func TestConfig_Markup(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := cfg.Markup()
	if err != nil {
		t.Fatalf("Markup() error: %v", err)
	}

	value := "@[John](u1) fixed [#1234567] and [#12]"
	if got, want := m.PlainText(value), "@John fixed 123… and 12"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}

	mentions := m.Mentions(value)
	if len(mentions) != 3 {
		t.Fatalf("expected 3 mentions, got %d", len(mentions))
	}
	if mentions[1].Category != "issue" || mentions[1].ID != "1234567" {
		t.Errorf("unexpected issue mention: %+v", mentions[1])
	}
}

func TestConfig_TypePlaceholder(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")
	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := cfg.Markup()
	if err != nil {
		t.Fatalf("Markup() error: %v", err)
	}

	mentions := m.Mentions("cc @[Ann Lee](team:u1)")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	got := mentions[0]
	if got.ID != "u1" || got.Display != "Ann Lee" || got.Type != "team" {
		t.Errorf("unexpected mention: %+v", got)
	}
}

func TestConfig_Category(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec, err := cfg.Category("issue")
	if err != nil {
		t.Fatalf("Category() error: %v", err)
	}
	if spec.Trigger != "#" {
		t.Errorf("expected trigger '#', got %q", spec.Trigger)
	}

	if _, err := cfg.Category("nope"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategorySpec_InvalidRegex(t *testing.T) {
	spec := CategorySpec{Name: "bad", Markup: "__id__", Regex: "("}
	if _, err := spec.Category(); err == nil {
		t.Error("expected error for invalid regex")
	}
}

func TestCategorySpec_Transform(t *testing.T) {
	tests := []struct {
		name     string
		spec     CategorySpec
		expected string
	}{
		{"display template", CategorySpec{Display: "@__display__ (__id__)"}, "@Ann Lee (u1)"},
		{"truncated", CategorySpec{MaxDisplayLength: 4}, "Ann…"},
		{"short enough", CategorySpec{MaxDisplayLength: 7}, "Ann Lee"},
		{"template then truncate", CategorySpec{Display: "@__display__", MaxDisplayLength: 5}, "@Ann…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform := tt.spec.Transform()
			if transform == nil {
				t.Fatal("expected a transform")
			}
			if got := transform("u1", "Ann Lee", ""); got != tt.expected {
				t.Errorf("transform() = %q, want %q", got, tt.expected)
			}
		})
	}

	if (CategorySpec{}).Transform() != nil {
		t.Error("expected nil transform without display or maxDisplayLength")
	}
}

func TestTriggers_PerCategory(t *testing.T) {
	cfg := &Config{Categories: []CategorySpec{{Name: "a", Markup: "__id__", Trigger: "@"}, {Name: "b", Markup: "#__id__", Trigger: "#", AllowSpaceInQuery: true}}}
	triggers, err := cfg.Triggers()
	if err != nil {
		t.Fatalf("Triggers() error: %v", err)
	}
	if triggers[0].Category() != "a" || triggers[1].Category() != "b" {
		t.Errorf("unexpected trigger categories: %s, %s", triggers[0].Category(), triggers[1].Category())
	}
}

func TestConfig_Known(t *testing.T) {
	cfg := &Config{Categories: []CategorySpec{
		{Name: "user", Markup: "@[__display__](__id__)", Data: []suggest.Item{{ID: "u1"}}},
		{Name: "tag", Markup: "#[__display__](__id__)"},
	}}

	known := cfg.Known()
	if len(known) != 1 {
		t.Fatalf("expected data for 1 category, got %d", len(known))
	}
	if items := known["user"]; len(items) != 1 || items[0].ID != "u1" {
		t.Errorf("unexpected user data: %+v", items)
	}
}
