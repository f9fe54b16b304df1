/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for mentions.
package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/validator"
)

// ErrValidation is returned when any input has problems.
var ErrValidation = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate raw values against the markup configuration",
	Long: `Validate the markup configuration and the raw values using it. Text that
starts like a mention but does not match its template is an error. Mentions
whose id is missing from their category's configured data are warnings.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet := viper.GetBool("quiet")

	e, err := engine.Load()
	if err != nil {
		return err
	}
	if _, err := e.Config.Triggers(); err != nil {
		return fmt.Errorf("invalid trigger configuration: %w", err)
	}

	inputs, err := e.Inputs(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	known := e.Config.Known()
	failed := false

	for _, in := range inputs {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", in.Name)
		}

		problems := validator.Validate(e.Markup, known, in.Value, in.Name)
		for i := range problems {
			p := &problems[i]
			fmt.Fprintln(cmd.ErrOrStderr(), p.Error())
			if p.Severity == validator.SeverityError || strict {
				failed = true
			}
		}

		if !quiet {
			fmt.Fprintf(out, "  %d mentions, %d problems\n", len(e.Markup.Mentions(in.Value)), len(problems))
		}
	}

	if failed {
		return ErrValidation
	}
	if !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}
