package cmd

import (
	"lincloud/core/startup"

	"github.com/spf13/cobra"
)

func newDefCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "def",
		Short: "Start with the default configuration",
		Long:  `Starts the server on every interface, port 8136, serving ./lin_home.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(cmd.Context(), opts, startup.UseDefaults{})
		},
	}
}
