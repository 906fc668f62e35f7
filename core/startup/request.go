package startup

import "net/netip"

// Request is a parsed startup request. It is one of Explicit, FileBased or
// UseDefaults.
type Request interface {
	startupRequest()
}

// Explicit is the request built from command line flags.
type Explicit struct {
	// Interfaces to listen on. Empty means every interface.
	Interfaces []netip.Addr
	// Port to listen on. Zero means any free port.
	Port uint16
	// Path to serve. Empty means ExplicitDefaultPath.
	Path string
}

// FileBased is the request naming one or more configuration files.
type FileBased struct {
	Files []string
}

// UseDefaults requests the default configuration.
type UseDefaults struct{}

func (Explicit) startupRequest()    {}
func (FileBased) startupRequest()   {}
func (UseDefaults) startupRequest() {}
