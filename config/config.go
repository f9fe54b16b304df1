/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for mention markup tooling.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/mentions/markup"
	"bennypowers.dev/mentions/suggest"
	"bennypowers.dev/mentions/trigger"
)

// DefaultMarkup is the template used when no category is configured.
const DefaultMarkup = "@[__display__](__id__)"

// ErrUnknownCategory indicates a category name missing from the config.
var ErrUnknownCategory = errors.New("no such category in config")

// Config represents the mentions configuration.
type Config struct {
	// Files specifies raw value files to process (paths or globs).
	Files []string `yaml:"files" json:"files"`

	// Categories configures the mention kinds. Defaults to one category
	// using DefaultMarkup.
	Categories []CategorySpec `yaml:"categories" json:"categories"`
}

// CategorySpec configures one mention category.
// It can be written as a bare markup string or as an object.
type CategorySpec struct {
	// Name identifies the category.
	Name string `yaml:"name" json:"name"`

	// Markup is the markup template, e.g. "@[__display__](__id__)".
	Markup string `yaml:"markup" json:"markup"`

	// Regex optionally replaces the pattern derived from Markup.
	Regex string `yaml:"regex" json:"regex"`

	// Trigger starts a query for this category. Empty means "@".
	Trigger string `yaml:"trigger" json:"trigger"`

	// AllowSpaceInQuery lets queries contain spaces.
	AllowSpaceInQuery bool `yaml:"allowSpaceInQuery" json:"allowSpaceInQuery"`

	// AppendSpaceOnAdd appends a space after inserted mentions.
	AppendSpaceOnAdd bool `yaml:"appendSpaceOnAdd" json:"appendSpaceOnAdd"`

	// Display is a template for the shown text, using the same placeholders
	// as Markup, e.g. "@__display__".
	Display string `yaml:"display" json:"display"`

	// MaxDisplayLength truncates the shown text (0 disables truncation).
	MaxDisplayLength int `yaml:"maxDisplayLength" json:"maxDisplayLength"`

	// Data lists static suggestion candidates.
	Data []suggest.Item `yaml:"data" json:"data"`
}

// UnmarshalYAML handles both string and object forms for CategorySpec.
func (s *CategorySpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Markup = node.Value
		return nil
	}

	type rawCategorySpec CategorySpec
	return node.Decode((*rawCategorySpec)(s))
}

// UnmarshalJSON handles both string and object forms for CategorySpec.
func (s *CategorySpec) UnmarshalJSON(data []byte) error {
	var m string
	if err := json.Unmarshal(data, &m); err == nil {
		s.Markup = m
		return nil
	}

	type rawCategorySpec CategorySpec
	return json.Unmarshal(data, (*rawCategorySpec)(s))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Files:      nil,
		Categories: []CategorySpec{{Markup: DefaultMarkup}},
	}
}

// categories returns the configured categories, or the default one.
func (c *Config) categories() []CategorySpec {
	if len(c.Categories) == 0 {
		return Default().Categories
	}
	return c.Categories
}

// Category returns the named category spec.
func (c *Config) Category(name string) (CategorySpec, error) {
	for _, spec := range c.categories() {
		if spec.Name == name {
			return spec, nil
		}
	}
	return CategorySpec{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Markup builds the markup engine for all configured categories.
func (c *Config) Markup() (*markup.Markup, error) {
	specs := c.categories()
	categories := make([]markup.Category, 0, len(specs))
	for _, spec := range specs {
		category, err := spec.Category()
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return markup.New(categories...)
}

// Triggers compiles the trigger of every configured category.
func (c *Config) Triggers() ([]*trigger.Trigger, error) {
	specs := c.categories()
	triggers := make([]*trigger.Trigger, 0, len(specs))
	for _, spec := range specs {
		t, err := trigger.Compile(trigger.Config{
			Category:          spec.Name,
			Trigger:           spec.Trigger,
			AllowSpaceInQuery: spec.AllowSpaceInQuery,
		})
		if err != nil {
			return nil, err
		}
		triggers = append(triggers, t)
	}
	return triggers, nil
}

// Category converts s into a markup category.
func (s CategorySpec) Category() (markup.Category, error) {
	category := markup.Category{
		Name:      s.Name,
		Template:  s.Markup,
		Transform: s.Transform(),
	}
	if s.Regex != "" {
		re, err := regexp.Compile(s.Regex)
		if err != nil {
			return markup.Category{}, fmt.Errorf("category %q: invalid regex: %w", s.Name, err)
		}
		category.Regexp = re
	}
	return category, nil
}

// Transform returns the display transform described by Display and
// MaxDisplayLength, or nil when neither is set.
func (s CategorySpec) Transform() markup.DisplayTransform {
	if s.Display == "" && s.MaxDisplayLength <= 0 {
		return nil
	}
	tmpl, limit := s.Display, s.MaxDisplayLength
	return func(id, display, typ string) string {
		if tmpl != "" {
			display = markup.BuildToken(tmpl, id, display, typ)
		}
		if limit > 0 && utf8.RuneCountInString(display) > limit {
			display = string([]rune(display)[:limit-1]) + "…"
		}
		return display
	}
}

// Known returns the suggestion data of every category that lists any, keyed
// by category name.
func (c *Config) Known() map[string][]suggest.Item {
	known := make(map[string][]suggest.Item)
	for _, spec := range c.categories() {
		if len(spec.Data) > 0 {
			known[spec.Name] = spec.Data
		}
	}
	return known
}
