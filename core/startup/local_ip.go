package startup

import (
	"net"
	"net/netip"
)

// preferredOutboundIP returns the local address the OS would use to reach
// the internet. No packet is sent; dialing UDP only selects a route.
func preferredOutboundIP() (netip.Addr, bool) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return netip.Addr{}, false
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return netip.Addr{}, false
	}
	ip, ok := netip.AddrFromSlice(addr.IP)
	if !ok {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}
