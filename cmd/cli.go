package cmd

import (
	"fmt"
	"net/netip"

	"lincloud/core/startup"

	"github.com/spf13/cobra"
)

// DefaultCLIPort is the --port default in cli mode.
const DefaultCLIPort uint16 = 8080

func newCliCmd(opts *options) *cobra.Command {
	var (
		interfaces []string
		port       uint16
	)

	cmd := &cobra.Command{
		Use:   "cli [PATH]",
		Short: "Start with explicit interfaces, port and path",
		Long: `Starts the server on the given interfaces and port, serving PATH.
Without --interfaces every IPv4 and IPv6 interface is used. Port 0 picks a free port.
Without PATH ./linc_home is served.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := explicitRequest(interfaces, port, args)
			if err != nil {
				return err
			}
			return runService(cmd.Context(), opts, req)
		},
	}

	cmd.Flags().StringArrayVarP(&interfaces, "interfaces", "i", nil, "IP address to listen on (repeatable)")
	cmd.Flags().Uint16VarP(&port, "port", "p", DefaultCLIPort, "port to listen on, 0 for any free port")
	return cmd
}

// explicitRequest validates the cli mode flags into a startup request.
func explicitRequest(rawInterfaces []string, port uint16, args []string) (startup.Explicit, error) {
	interfaces, err := parseInterfaces(rawInterfaces)
	if err != nil {
		return startup.Explicit{}, err
	}

	req := startup.Explicit{Interfaces: interfaces, Port: port}
	if len(args) > 0 {
		req.Path = args[0]
	}
	return req, nil
}

func parseInterfaces(raw []string) ([]netip.Addr, error) {
	out := make([]netip.Addr, 0, len(raw))
	for _, s := range raw {
		ip, err := netip.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("invalid interface %q: %w", s, err)
		}
		out = append(out, ip)
	}
	return out, nil
}
