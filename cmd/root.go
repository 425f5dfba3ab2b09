// Package cmd provides the CLI commands for daygrid.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/output"
	"github.com/manav03panchal/daygrid/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "daygrid",
	Short: "A single-day time journal in five-minute slots",
	Long: `daygrid keeps a grid of 288 five-minute slots for today. Type what you
did into a slot, rate it from -2 to 2, and see how the day scored.

Run without arguments to open the interactive grid.

Examples:
  daygrid
  daygrid open --events calendar.yaml
  daygrid stats --entry '9am=standup@1' --entry '9:15am=email@-1'
  daygrid export --input journal_export_2026-10-19.csv
  daygrid slot 14:30`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		case "cli":
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		ctx.Log.Debug("command started", logging.KeyOperation, cmd.CommandPath())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			err := ctx.Close()
			ctx = nil
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open today's grid
		return runOpen(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "",
		"Output format: cli, json, plain (default: saved preference or cli)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.RegisterFlagCompletionFunc("format", completeFormats)
	rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("daygrid %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Based on Zeit (https://github.com/mrusme/zeit)")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		msg := runtime.FormatError(err, false)
		ctx.JSONFormatter().PrintError(runtime.ErrorStatus(err), err.Error(), msg)
	} else {
		debug := flagDebug
		if ctx != nil {
			debug = ctx.Debug
		}
		os.Stderr.WriteString("Error: " + runtime.FormatError(err, debug) + "\n")
	}
	if ctx != nil {
		ctx.Close()
		ctx = nil
	}
	os.Exit(1)
}
