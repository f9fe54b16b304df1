/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the token command, which builds markup tokens.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/mentions/cmd/engine"
	"bennypowers.dev/mentions/markup"
)

// Cmd is the token cobra command.
var Cmd = &cobra.Command{
	Use:   "token <id> <display>",
	Short: "Build a markup token",
	Long: `Build the markup token for a mention by substituting id, display and type
into a category's markup template. The type defaults to the category name.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("type", "t", "", "Value for the __type__ placeholder (default: category name)")
	Cmd.Flags().String("category", "", "Category whose template to use (default: the first)")
}

func run(cmd *cobra.Command, args []string) error {
	typ, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")

	e, err := engine.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("category") {
		category = e.Markup.Categories()[0]
	}

	id, display := args[0], args[1]

	var tok string
	if cmd.Flags().Changed("type") {
		p, ok := e.Markup.Pattern(category)
		if !ok {
			return &markup.ConfigError{Category: category, Err: markup.ErrUnknownCategory}
		}
		tok = p.Token(id, display, typ)
	} else {
		tok, err = e.Markup.Token(category, id, display)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
