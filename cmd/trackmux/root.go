package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)
	flags := &remuxFlags{}

	rootCmd := &cobra.Command{
		Use:   "trackmux -i INPUT [-i INPUT...] [stream flags] [-n TITLE]",
		Short: "Re-assemble audio and subtitle streams into a Matroska file",
		Long: `trackmux extracts the selected audio streams (re-encoded to Opus) and
subtitle streams from one or more inputs, then muxes them with the primary
input's video into a single Matroska file.

Without --name, trackmux runs ffmpeg over the inputs only so their streams
can be inspected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemux(cmd, ctx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")
	flags.register(rootCmd)

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
