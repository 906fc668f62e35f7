package cmd

import (
	"fmt"
	"os"

	"lincloud/core/apperror"
	"lincloud/core/logger"

	"github.com/spf13/cobra"
)

// options holds flags shared by every subcommand.
type options struct {
	// daemon is accepted for compatibility; linc always runs in the
	// foreground.
	daemon bool
}

// NewRootCmd builds the linc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "linc",
		Short: "Local content server",
		Long: `linc serves a local directory over HTTP on one or more interfaces.
Pick a startup mode: explicit flags (cli), configuration files (yml) or defaults (def).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opts.daemon, "daemon", false, "run as a daemon (accepted, currently ignored)")

	root.AddCommand(newCliCmd(opts), newYmlCmd(opts), newDefCmd(opts))
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// Console format with ISO8601 timestamps, like the service logs
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			apperror.LogChain(l, err)
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
