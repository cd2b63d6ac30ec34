package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackmux/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether ffmpeg and mkvmerge can be found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(toolRequirements(cfg, false))

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range dependencyLines(statuses, colorize) {
				fmt.Fprintln(out, line)
			}

			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				location := s.Path
				if !s.Available {
					location = "-"
				}
				rows = append(rows, []string{s.Name, s.Command, location, s.Description})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Path", "Purpose"}, rows, nil))

			return deps.Require(statuses)
		},
	}
}
