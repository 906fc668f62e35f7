// Package address translates logical interfaces into socket addresses a
// listener can bind, together with the host form shown to users.
//
// The IPv4 wildcard 0.0.0.0 is displayed as 127.0.0.1 so printed URLs can
// be opened on every platform, while the socket keeps the wildcard. IPv6
// hosts are displayed in brackets.
package address
