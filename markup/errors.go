/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import (
	"errors"
	"strings"
)

// ErrConfiguration is matched by every error returned while compiling
// templates or assembling a Markup.
var ErrConfiguration = errors.New("markup configuration error")

// Sentinel errors for markup configuration.
var (
	// ErrMissingPlaceholder indicates a template has neither __id__ nor __display__.
	ErrMissingPlaceholder = errors.New("template must contain __id__ or __display__")

	// ErrInvalidField indicates a field name other than id, display or type.
	ErrInvalidField = errors.New("field must be 'id', 'display', or 'type'")

	// ErrNoCategories indicates New was called without categories.
	ErrNoCategories = errors.New("at least one category is required")

	// ErrDuplicateCategory indicates two categories share a name.
	ErrDuplicateCategory = errors.New("duplicate category name")

	// ErrUnknownCategory indicates a category name that was never configured.
	ErrUnknownCategory = errors.New("unknown category")
)

// ConfigError describes a template or category that cannot be used.
type ConfigError struct {
	// Category is the category name, if known.
	Category string
	// Template is the offending markup template.
	Template string
	// Field is the requested field name for ErrInvalidField.
	Field string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	if e.Category != "" {
		sb.WriteString("category ")
		sb.WriteString(e.Category)
		sb.WriteString(": ")
	}
	if e.Template != "" {
		sb.WriteString("markup `")
		sb.WriteString(e.Template)
		sb.WriteString("`: ")
	}
	if e.Field != "" {
		sb.WriteString("field ")
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString(ErrConfiguration.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports every ConfigError as an ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
