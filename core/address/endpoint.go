package address

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"lincloud/core/apperror"
)

var loopbackV4 = netip.AddrFrom4([4]byte{127, 0, 0, 1})

// Endpoint is one interface resolved into a bindable socket address and
// its display form.
type Endpoint struct {
	// Interface is the logical interface the endpoint was derived from.
	Interface netip.Addr
	// Bind is the socket address to listen on.
	Bind netip.AddrPort
	// Display is the host as shown to users, bracketed for IPv6.
	Display string
}

// HostPort returns the display host joined with the port.
func (e Endpoint) HostPort() string {
	return e.Display + ":" + strconv.Itoa(int(e.Bind.Port()))
}

// URL returns the endpoint as a URL with the given scheme. A zone
// separator is escaped as %25 (RFC 6874).
func (e Endpoint) URL(scheme string) string {
	host := e.Display
	if e.Interface.Zone() != "" {
		host = strings.Replace(host, "%", "%25", 1)
	}
	return scheme + "://" + host + ":" + strconv.Itoa(int(e.Bind.Port()))
}

// Network returns "tcp4" or "tcp6" depending on the bind address family.
// IPv4-mapped IPv6 addresses listen as IPv4.
func (e Endpoint) Network() string {
	if e.Bind.Addr().Unmap().Is4() {
		return "tcp4"
	}
	return "tcp6"
}

// ListenAddress returns the address handed to the OS, with IPv4-mapped
// addresses unmapped to match Network.
func (e Endpoint) ListenAddress() string {
	return netip.AddrPortFrom(e.Bind.Addr().Unmap(), e.Bind.Port()).String()
}

// DisplayHost returns how ip is shown to users.
func DisplayHost(ip netip.Addr) string {
	switch {
	case ip == netip.IPv4Unspecified():
		return loopbackV4.String()
	case ip.Is6():
		return "[" + ip.String() + "]"
	default:
		return ip.String()
	}
}

// Translate resolves every interface with port into an Endpoint. If any
// interface fails to parse, no endpoints are returned.
func Translate(interfaces []netip.Addr, port uint16) ([]Endpoint, error) {
	endpoints := make([]Endpoint, 0, len(interfaces))
	for _, ip := range interfaces {
		raw := net.JoinHostPort(ip.String(), strconv.Itoa(int(port)))
		bind, err := netip.ParseAddrPort(raw)
		if err != nil {
			return nil, apperror.Parse(fmt.Sprintf("%q as socket address", raw), err)
		}
		endpoints = append(endpoints, Endpoint{
			Interface: ip,
			Bind:      bind,
			Display:   DisplayHost(ip),
		})
	}
	return endpoints, nil
}

// URLs returns the URL of every endpoint.
func URLs(endpoints []Endpoint, scheme string) []string {
	urls := make([]string, len(endpoints))
	for i, e := range endpoints {
		urls[i] = e.URL(scheme)
	}
	return urls
}
