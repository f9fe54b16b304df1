/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/cmd/render"
	"bennypowers.dev/mentions/config"
	"bennypowers.dev/mentions/internal/logger"
	"bennypowers.dev/mentions/testutil"
)

func useFixture(t *testing.T) {
	t.Helper()
	prevFS, prevRoot := engine.FileSystem, engine.RootDir
	engine.FileSystem = testutil.NewFixtureFS(t, "fixtures/cli", "/project")
	engine.RootDir = "/project"
	logger.SetOutput(io.Discard)
	t.Cleanup(func() {
		engine.FileSystem, engine.RootDir = prevFS, prevRoot
		logger.SetOutput(os.Stderr)
		viper.Reset()
	})
}

func TestFilterRows(t *testing.T) {
	rows := []render.Row{
		{ID: "user1", Category: "user"},
		{ID: "rel", Category: "tag"},
		{ID: "user2", Category: "user"},
	}

	t.Run("no filter", func(t *testing.T) {
		if got := filterRows(rows, ""); len(got) != 3 {
			t.Errorf("expected 3 rows, got %d", len(got))
		}
	})

	t.Run("by category", func(t *testing.T) {
		got := filterRows(rows, "user")
		if len(got) != 2 {
			t.Fatalf("expected 2 user rows, got %d", len(got))
		}
		for _, r := range got {
			if r.Category != "user" {
				t.Errorf("expected category user, got %s", r.Category)
			}
		}
	})
}

func TestList_JSON(t *testing.T) {
	useFixture(t)

	out, err := testutil.RunCommand(t, Cmd, "", "--format", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	testutil.CheckGolden(t, "golden/list.json", []byte(out))
}

func TestList_Table(t *testing.T) {
	useFixture(t)

	out, err := testutil.RunCommand(t, Cmd, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	userAt := strings.Index(out, "User\n")
	tagAt := strings.Index(out, "Tag\n")
	if userAt < 0 || tagAt < 0 {
		t.Fatalf("expected User and Tag headings, got:\n%s", out)
	}
	if userAt > tagAt {
		t.Errorf("expected categories in order of first appearance, got:\n%s", out)
	}
	for _, want := range []string{"user1", "John Doe", "user2", "Jane Roe", "rel", "release"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestList_Category(t *testing.T) {
	useFixture(t)

	out, err := testutil.RunCommand(t, Cmd, "", "--category", "tag", "--format", "yaml")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := `- file: /project/notes/tags.txt
  category: tag
  id: rel
  display: release
  index: 8
  plainTextIndex: 8
`
	if out != want {
		t.Errorf("list --category tag =\n%s\nwant\n%s", out, want)
	}
}

func TestList_UnknownCategory(t *testing.T) {
	useFixture(t)

	_, err := testutil.RunCommand(t, Cmd, "", "--category", "nope")
	if !errors.Is(err, config.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestList_InvalidFormat(t *testing.T) {
	useFixture(t)

	_, err := testutil.RunCommand(t, Cmd, "", "--format", "css")
	if !errors.Is(err, render.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestList_Stdin(t *testing.T) {
	useFixture(t)

	out, err := testutil.RunCommand(t, Cmd, "no mentions here", "-f", "json", "-")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "[]\n" {
		t.Errorf("list = %q, want %q", out, "[]\n")
	}
}
