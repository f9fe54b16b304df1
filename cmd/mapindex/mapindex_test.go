/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapindex

import (
	"testing"

	"github.com/spf13/viper"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/internal/mapfs"
	"bennypowers.dev/mentions/testutil"
)

const greeting = "Hi @[John Doe](user1), welcome!"

func TestMap(t *testing.T) {
	prev := engine.FileSystem
	engine.FileSystem = mapfs.New()
	t.Cleanup(func() {
		engine.FileSystem = prev
		viper.Reset()
	})

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"before mention", []string{greeting, "2"}, "2\n"},
		{"inside mention start", []string{greeting, "5"}, "3\n"},
		{"inside mention end", []string{greeting, "5", "--boundary", "end"}, "21\n"},
		{"inside mention none", []string{greeting, "5", "-b", "none"}, "none\n"},
		{"after mention", []string{greeting, "12"}, "22\n"},
		{"end of text", []string{greeting, "21"}, "31\n"},
		{"find start inside", []string{greeting, "5", "--find-start"}, "3\n"},
		{"find start outside", []string{greeting, "1", "--find-start"}, "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := testutil.RunCommand(t, Cmd, "", tt.args...)
			if err != nil {
				t.Fatalf("map %v failed: %v", tt.args, err)
			}
			if out != tt.expected {
				t.Errorf("map %v = %q, want %q", tt.args, out, tt.expected)
			}
		})
	}
}

func TestMap_Errors(t *testing.T) {
	prev := engine.FileSystem
	engine.FileSystem = mapfs.New()
	t.Cleanup(func() {
		engine.FileSystem = prev
		viper.Reset()
	})

	tests := []struct {
		name string
		args []string
	}{
		{"bad boundary", []string{greeting, "1", "--boundary", "middle"}},
		{"bad index", []string{greeting, "x"}},
		{"missing index", []string{greeting}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := testutil.RunCommand(t, Cmd, "", tt.args...); err == nil {
				t.Errorf("map %v: expected error", tt.args)
			}
		})
	}
}
