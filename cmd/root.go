/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for mentions.
package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mentions/cmd/apply"
	"bennypowers.dev/mentions/cmd/list"
	"bennypowers.dev/mentions/cmd/mapindex"
	"bennypowers.dev/mentions/cmd/plaintext"
	"bennypowers.dev/mentions/cmd/query"
	"bennypowers.dev/mentions/cmd/search"
	"bennypowers.dev/mentions/cmd/token"
	"bennypowers.dev/mentions/cmd/validate"
	"bennypowers.dev/mentions/cmd/version"
	"bennypowers.dev/mentions/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mentions",
	Short: "Inspect and edit text carrying mention markup",
	Long: `mentions works with raw values in which mentions are stored as markup tokens,
such as "Hi @[John Doe](user1)!". It renders the plain text a user sees, lists
mentions, maps caret positions, and replays plain text edits onto raw values.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("markup", "m", "", "Markup template, replaces the configured categories (env MENTIONS_MARKUP)")
	flags.StringP("config", "c", "", "Config file (default: .config/mentions.{yaml,yml,json})")
	flags.BoolP("quiet", "q", false, "Suppress warnings")
	flags.BoolP("verbose", "v", false, "Print debug output")

	for _, name := range []string{"markup", "config", "quiet", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("mentions")
	viper.AutomaticEnv()

	rootCmd.AddCommand(plaintext.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mapindex.Cmd)
	rootCmd.AddCommand(apply.Cmd)
	rootCmd.AddCommand(token.Cmd)
	rootCmd.AddCommand(query.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	quiet := viper.GetBool("quiet")
	verbose := viper.GetBool("verbose")
	if quiet && verbose {
		return errors.New("--quiet and --verbose cannot be used together")
	}
	if quiet {
		logger.SetOutput(io.Discard)
	}
	logger.SetVerbose(verbose)
	return nil
}
