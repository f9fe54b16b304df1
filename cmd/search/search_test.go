/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package search

import (
	"regexp"
	"testing"

	"github.com/spf13/viper"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/testutil"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		query    string
		pattern  *regexp.Regexp
		expected bool
	}{
		{"simple match", "John Doe", "doe", nil, true},
		{"case insensitive", "JOHN", "john", nil, true},
		{"no match", "John Doe", "jane", nil, false},
		{"empty query", "John Doe", "", nil, true},
		{"empty string", "", "query", nil, false},
		{"accented", "José", "JOSÉ", nil, true},
		{"regex match", "user1", "", regexp.MustCompile(`^user\d$`), true},
		{"regex no match", "rel", "", regexp.MustCompile(`^user`), false},
		{"regex case sensitive", "John", "", regexp.MustCompile(`john`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchString(tt.s, tt.query, tt.pattern)
			if got != tt.expected {
				t.Errorf("matchString(%q, %q, pattern) = %v, want %v", tt.s, tt.query, got, tt.expected)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	prevFS, prevRoot := engine.FileSystem, engine.RootDir
	engine.FileSystem = testutil.NewFixtureFS(t, "fixtures/cli", "/project")
	engine.RootDir = "/project"
	t.Cleanup(func() {
		engine.FileSystem, engine.RootDir = prevFS, prevRoot
		viper.Reset()
	})

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"id or display", []string{"J", "-f", "ids"}, "user1\nuser2\n"},
		{"ids sorted", []string{"e", "-f", "ids"}, "rel\nuser1\nuser2\n"},
		{"display only", []string{"user", "--display", "-f", "ids"}, ""},
		{"id only", []string{"user", "--id", "-f", "ids"}, "user1\nuser2\n"},
		{"category", []string{"e", "--category", "tag", "-f", "ids"}, "rel\n"},
		{"regex", []string{`^user\d$`, "--regex", "-f", "ids"}, "user1\nuser2\n"},
		{"explicit file", []string{"j", "/project/notes/greeting.txt", "-f", "ids"}, "user1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := testutil.RunCommand(t, Cmd, "", tt.args...)
			if err != nil {
				t.Fatalf("search %v failed: %v", tt.args, err)
			}
			if out != tt.expected {
				t.Errorf("search %v = %q, want %q", tt.args, out, tt.expected)
			}
		})
	}

	t.Run("invalid regex", func(t *testing.T) {
		if _, err := testutil.RunCommand(t, Cmd, "", "(", "--regex"); err == nil {
			t.Error("expected error for invalid regex")
		}
	})
}
