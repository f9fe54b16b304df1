/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"os"
	"testing"

	"bennypowers.dev/mentions/internal/logger"
	"bennypowers.dev/mentions/testutil"
)

func TestRoot_MarkupFlag(t *testing.T) {
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	out, err := testutil.RunCommand(t, rootCmd, "", "--markup", "[[__id__]]", "token", "42", "ignored")
	if err != nil {
		t.Fatalf("mentions token failed: %v", err)
	}
	if out != "[[42]]\n" {
		t.Errorf("mentions --markup token = %q, want %q", out, "[[42]]\n")
	}
}

func TestRoot_MarkupEnv(t *testing.T) {
	t.Setenv("MENTIONS_MARKUP", "<__display__>")

	out, err := testutil.RunCommand(t, rootCmd, "<Ann> and <Bob>", "render", "-")
	if err != nil {
		t.Fatalf("mentions render failed: %v", err)
	}
	if out != "Ann and Bob" {
		t.Errorf("mentions render = %q, want %q", out, "Ann and Bob")
	}
}

func TestRoot_QuietAndVerbose(t *testing.T) {
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})

	if _, err := testutil.RunCommand(t, rootCmd, "", "--quiet", "--verbose", "version"); err == nil {
		t.Error("expected error when --quiet and --verbose are combined")
	}
}

func TestRoot_Commands(t *testing.T) {
	want := map[string]bool{
		"render": false, "list": false, "map": false, "apply": false,
		"token": false, "query": false, "search": false, "validate": false, "version": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected subcommand %q", name)
		}
	}
}
