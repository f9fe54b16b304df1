/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package engine loads the markup configuration shared by all commands and
// reads their inputs.
package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mentions/config"
	"bennypowers.dev/mentions/fs"
	"bennypowers.dev/mentions/internal/logger"
	"bennypowers.dev/mentions/markup"
)

// Stdin is the argument that stands for standard input.
const Stdin = "-"

// ErrNoInputs is returned when neither arguments nor configured files name
// any input.
var ErrNoInputs = errors.New("no input files: pass files or configure files in .config/mentions.yaml")

// FileSystem is the filesystem commands read from and write to.
var FileSystem fs.FileSystem = fs.NewOSFileSystem()

// RootDir is the directory searched for configuration.
var RootDir = "."

// Engine bundles the effective configuration and the markup built from it.
type Engine struct {
	Config *config.Config
	Markup *markup.Markup
}

// Input is one raw value and where it came from.
type Input struct {
	Name  string
	Value string
}

// Load reads the configuration and applies the --markup override.
func Load() (*Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if tmpl := viper.GetString("markup"); tmpl != "" {
		logger.Debug("markup override %q replaces %d configured categories", tmpl, len(cfg.Categories))
		cfg.Categories = []config.CategorySpec{{Markup: tmpl}}
	}

	m, err := cfg.Markup()
	if err != nil {
		return nil, fmt.Errorf("invalid markup configuration: %w", err)
	}
	return &Engine{Config: cfg, Markup: m}, nil
}

func loadConfig() (*config.Config, error) {
	if path := viper.GetString("config"); path != "" {
		cfg, err := config.LoadFile(FileSystem, path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		logger.Debug("loaded config from %s", path)
		return cfg, nil
	}

	cfg, err := config.Load(FileSystem, RootDir)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		logger.Debug("no config found in %s, using defaults", RootDir)
		return config.Default(), nil
	}
	return cfg, nil
}

// Inputs reads the raw values named by args. Without args the files
// configured in Files are used. Unreadable files are skipped with a warning.
func (e *Engine) Inputs(cmd *cobra.Command, args []string) ([]Input, error) {
	names := args
	if len(names) == 0 {
		expanded, err := e.Config.ExpandFiles(FileSystem, RootDir)
		if err != nil {
			return nil, fmt.Errorf("error expanding configured files: %w", err)
		}
		names = expanded
	}
	if len(names) == 0 {
		return nil, ErrNoInputs
	}

	inputs := make([]Input, 0, len(names))
	for _, name := range names {
		var data []byte
		var err error
		if name == Stdin {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = FileSystem.ReadFile(name)
		}
		if err != nil {
			logger.Warn("error reading %s: %v", name, err)
			continue
		}
		inputs = append(inputs, Input{Name: name, Value: string(data)})
	}
	return inputs, nil
}

// Value returns arg, or standard input when arg is "-".
func Value(cmd *cobra.Command, arg string) (string, error) {
	if arg != Stdin {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

// Offset parses a plain text offset argument. An empty arg means the end of
// plain.
func Offset(arg, plain string) (int, error) {
	if arg == "" {
		return utf8.RuneCountInString(plain), nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", arg, err)
	}
	return n, nil
}
