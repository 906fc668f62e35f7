package startup

import (
	"fmt"
	"net"
	"net/netip"

	"lincloud/core/apperror"
)

// PortFinder obtains a port that is free at the time of the call.
type PortFinder interface {
	FreePort() (uint16, error)
}

// LocalPortFinder finds free ports by letting the OS pick one on the
// loopback interface.
type LocalPortFinder struct{}

// FreePort binds 127.0.0.1:0, reads the assigned port and releases it.
func (LocalPortFinder) FreePort() (uint16, error) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer ln.Close()

	addr, ok := ln.Addr().(*net.TCPAddr)
	if !ok || addr.Port == 0 {
		return 0, fmt.Errorf("unexpected listener address %v", ln.Addr())
	}
	return uint16(addr.Port), nil
}

// NormalizeInterfaces returns interfaces unchanged, or the default
// wildcard pair when it is empty.
func NormalizeInterfaces(interfaces []netip.Addr) []netip.Addr {
	if len(interfaces) == 0 {
		return DefaultInterfaces()
	}
	return interfaces
}

// ResolvePort returns port unchanged unless it is zero, in which case a
// free port is obtained from finder.
func ResolvePort(port uint16, finder PortFinder) (uint16, error) {
	if port != 0 {
		return port, nil
	}
	p, err := finder.FreePort()
	if err != nil {
		return 0, apperror.PortAllocation(err)
	}
	if p == 0 {
		return 0, apperror.PortAllocation(fmt.Errorf("port finder returned port 0"))
	}
	return p, nil
}

// ResolvePath returns path, or fallback when path is empty.
func ResolvePath(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
