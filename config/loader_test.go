/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"reflect"
	"testing"

	"bennypowers.dev/mentions/internal/mapfs"
	"bennypowers.dev/mentions/testutil"
)

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Files) != 1 || cfg.Files[0] != "notes/today.txt" {
		t.Errorf("expected files [notes/today.txt], got %v", cfg.Files)
	}

	if len(cfg.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cfg.Categories))
	}

	user := cfg.Categories[0]
	if user.Name != "user" || user.Markup != "@[__display__](__id__)" {
		t.Errorf("unexpected user category: %+v", user)
	}
	if !user.AppendSpaceOnAdd {
		t.Error("expected appendSpaceOnAdd for user")
	}
	if user.Display != "@__display__" {
		t.Errorf("expected display '@__display__', got %q", user.Display)
	}

	issue := cfg.Categories[1]
	if issue.Regex != `\[#(\d+)\]` {
		t.Errorf("expected regex %q, got %q", `\[#(\d+)\]`, issue.Regex)
	}
	if issue.Trigger != "#" {
		t.Errorf("expected trigger '#', got %q", issue.Trigger)
	}
	if issue.MaxDisplayLength != 4 {
		t.Errorf("expected maxDisplayLength 4, got %d", issue.MaxDisplayLength)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cfg.Categories))
	}
	user := cfg.Categories[0]
	if !user.AllowSpaceInQuery {
		t.Error("expected allowSpaceInQuery")
	}
	if len(user.Data) != 2 {
		t.Fatalf("expected 2 data items, got %d", len(user.Data))
	}
	if user.Data[0].ID != "u1" || user.Data[0].Display != "Ann Lee" {
		t.Errorf("unexpected first item: %+v", user.Data[0])
	}
	if user.Data[1].Label() != "u2" {
		t.Errorf("expected label 'u2' for item without display, got %q", user.Data[1].Label())
	}
}

func TestLoad_ShorthandCategory(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/shorthand", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config from mentions.yml, got nil")
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Markup != "{{__id__}}" {
		t.Errorf("expected one category with markup '{{__id__}}', got %+v", cfg.Categories)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	def := LoadOrDefault(mfs, "/project")
	if len(def.Categories) != 1 || def.Categories[0].Markup != DefaultMarkup {
		t.Errorf("expected default config, got %+v", def)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/mentions.yaml", "categories: [unclosed", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Error("expected parse error")
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg.Categories[0].Markup != DefaultMarkup {
		t.Errorf("expected LoadOrDefault to fall back to defaults, got %+v", cfg)
	}
}

func TestLoad_PriorityOrder(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/mentions.json", `{"categories": ["json:__id__"]}`, 0644)
	mfs.AddFile("/project/.config/mentions.yaml", "categories: ['yaml:__id__']\n", 0644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Categories[0].Markup != "yaml:__id__" {
		t.Errorf("expected .yaml to win over .json, got %q", cfg.Categories[0].Markup)
	}
}

func TestExpandFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("ExpandFiles() error: %v", err)
	}

	want := []string{
		"/project/notes/a.txt",
		"/project/notes/deep/b.txt",
		"/project/README.md",
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ExpandFiles() = %v, want %v", files, want)
	}
}

func TestExpandFiles_MissingDirectory(t *testing.T) {
	cfg := &Config{Files: []string{"missing/*.txt"}}

	files, err := cfg.ExpandFiles(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("ExpandFiles() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestContainsGlob(t *testing.T) {
	tests := []struct {
		pattern  string
		expected bool
	}{
		{"notes/a.txt", false},
		{"notes/*.txt", true},
		{"notes/?.txt", true},
		{"notes/[ab].txt", true},
		{"notes/{a,b}.txt", true},
	}
	for _, tt := range tests {
		if got := containsGlob(tt.pattern); got != tt.expected {
			t.Errorf("containsGlob(%q) = %v, want %v", tt.pattern, got, tt.expected)
		}
	}
}
