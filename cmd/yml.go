package cmd

import (
	"lincloud/core/startup"

	"github.com/spf13/cobra"
)

func newYmlCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "yml [FILE...]",
		Short: "Start from configuration files",
		Long: `Starts the server from configuration files.
Configuration files are not read yet; the default configuration is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(cmd.Context(), opts, startup.FileBased{Files: args})
		},
	}
}
