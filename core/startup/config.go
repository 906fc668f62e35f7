package startup

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"
)

const (
	// DefaultPort is the port used in default mode.
	DefaultPort uint16 = 8136
	// DefaultPath is the served directory used in default mode.
	DefaultPath = "./lin_home"
	// ExplicitDefaultPath is the served directory used in explicit mode
	// when no path argument is given.
	ExplicitDefaultPath = "./linc_home"
)

// DefaultInterfaces returns the IPv6 and IPv4 wildcard addresses, in that
// order, meaning "listen on every interface".
func DefaultInterfaces() []netip.Addr {
	return []netip.Addr{netip.IPv6Unspecified(), netip.IPv4Unspecified()}
}

// ServiceConfig is the fully resolved configuration of the service.
// The zero value is not valid; use NewServiceConfig or Default.
type ServiceConfig struct {
	interfaces []netip.Addr
	port       uint16
	path       string
}

// NewServiceConfig validates and builds a ServiceConfig. The interfaces
// slice is copied.
func NewServiceConfig(interfaces []netip.Addr, port uint16, path string) (ServiceConfig, error) {
	if len(interfaces) == 0 {
		return ServiceConfig{}, errors.New("service config: no interfaces")
	}
	for i, ip := range interfaces {
		if !ip.IsValid() {
			return ServiceConfig{}, fmt.Errorf("service config: interface %d is not a valid address", i)
		}
	}
	if port == 0 {
		return ServiceConfig{}, errors.New("service config: port is unresolved")
	}
	if path == "" {
		return ServiceConfig{}, errors.New("service config: path is empty")
	}
	return ServiceConfig{
		interfaces: slices.Clone(interfaces),
		port:       port,
		path:       path,
	}, nil
}

// Default returns the configuration used in default mode.
func Default() ServiceConfig {
	return ServiceConfig{
		interfaces: DefaultInterfaces(),
		port:       DefaultPort,
		path:       DefaultPath,
	}
}

// Interfaces returns a copy of the addresses to listen on.
func (c ServiceConfig) Interfaces() []netip.Addr {
	return slices.Clone(c.interfaces)
}

// Port returns the port to listen on.
func (c ServiceConfig) Port() uint16 {
	return c.port
}

// Path returns the directory to serve. It is not canonicalized.
func (c ServiceConfig) Path() string {
	return c.path
}

func (c ServiceConfig) String() string {
	return fmt.Sprintf("interfaces=%v port=%d path=%s", c.interfaces, c.port, c.path)
}
