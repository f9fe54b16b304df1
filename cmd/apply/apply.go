/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package apply provides the apply command, which replays plain text edits
// onto a raw value.
package apply

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/fs"
	"bennypowers.dev/mentions/internal/logger"
	"bennypowers.dev/mentions/markup"
)

// ErrNoEdit is returned when neither --text nor --script describes an edit.
var ErrNoEdit = errors.New("nothing to apply: pass --text or --script")

// Cmd is the apply cobra command.
var Cmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply plain text edits to a raw value",
	Long: `Apply an edit made to the plain text of a raw value, the way a text input
reports it, and print the resulting raw value.

A single edit is given with flags:

  mentions apply --value "Hi @[John](u1)" --text "Hi Jon" --after 5

A script replays several edits in order:

  value: "Hi @[John](u1)"
  edits:
    - text: "Hi John!"
    - text: "Hi Jon!"
      after: 5

Omitted selection offsets are unknown and inferred; an omitted "after"
puts the caret at the end of the new plain text.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("value", "", `Raw value before the edit ("-" reads stdin)`)
	Cmd.Flags().String("text", "", "Plain text after the edit")
	Cmd.Flags().Int("after", markup.Unknown, "Caret after the edit (default: end of text)")
	Cmd.Flags().Int("start-before", markup.Unknown, "Selection start before the edit")
	Cmd.Flags().Int("end-before", markup.Unknown, "Selection end before the edit")
	Cmd.Flags().String("script", "", "YAML or JSON file with a value and a list of edits")
	Cmd.Flags().Bool("trace", false, "Print the raw value after every edit")
}

// Script is a raw value and the edits to replay on it.
type Script struct {
	Value string `yaml:"value" json:"value"`
	Edits []Edit `yaml:"edits" json:"edits"`
}

// Edit is one plain text edit. Nil offsets are unknown.
type Edit struct {
	Text        string `yaml:"text" json:"text"`
	After       *int   `yaml:"after" json:"after"`
	StartBefore *int   `yaml:"startBefore" json:"startBefore"`
	EndBefore   *int   `yaml:"endBefore" json:"endBefore"`
}

// Change converts the edit into a markup change.
func (e Edit) Change() markup.Change {
	c := markup.CaretChange(e.Text, utf8.RuneCountInString(e.Text))
	if e.After != nil {
		c.EndAfter = *e.After
	}
	if e.StartBefore != nil {
		c.StartBefore = *e.StartBefore
	}
	if e.EndBefore != nil {
		c.EndBefore = *e.EndBefore
	}
	return c
}

// LoadScript reads a script file. JSON files may contain comments.
func LoadScript(filesystem fs.FileSystem, path string) (*Script, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(jsonc.ToJSON(data), script)
	default:
		err = yaml.Unmarshal(data, script)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return script, nil
}

func run(cmd *cobra.Command, args []string) error {
	scriptPath, _ := cmd.Flags().GetString("script")
	trace, _ := cmd.Flags().GetBool("trace")

	script, err := scriptFromFlags(cmd, scriptPath)
	if err != nil {
		return err
	}
	if len(script.Edits) == 0 {
		return ErrNoEdit
	}

	e, err := engine.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	value := script.Value
	for i, edit := range script.Edits {
		change := edit.Change()
		value = e.Markup.ApplyChange(value, change)
		logger.Debug("edit %d %+v -> %q", i+1, change, value)
		if trace {
			fmt.Fprintf(out, "%d: %s\n", i+1, value)
		}
	}
	if !trace {
		fmt.Fprintln(out, value)
	}
	return nil
}

// scriptFromFlags builds the script from --script, or a one-edit script from
// the edit flags. --value overrides the script's value.
func scriptFromFlags(cmd *cobra.Command, scriptPath string) (*Script, error) {
	flags := cmd.Flags()

	script := &Script{}
	if scriptPath != "" {
		loaded, err := LoadScript(engine.FileSystem, scriptPath)
		if err != nil {
			return nil, err
		}
		script = loaded
	}

	if flags.Changed("value") {
		raw, _ := flags.GetString("value")
		value, err := engine.Value(cmd, raw)
		if err != nil {
			return nil, err
		}
		script.Value = value
	}

	if flags.Changed("text") {
		text, _ := flags.GetString("text")
		edit := Edit{Text: text}
		for name, dst := range map[string]**int{
			"after":        &edit.After,
			"start-before": &edit.StartBefore,
			"end-before":   &edit.EndBefore,
		} {
			if flags.Changed(name) {
				n, _ := flags.GetInt(name)
				*dst = &n
			}
		}
		script.Edits = append(script.Edits, edit)
	}

	return script, nil
}
