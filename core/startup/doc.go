// Package startup turns a parsed startup request into a fully resolved
// ServiceConfig.
//
// Three request variants exist, mirroring the three command line modes:
//
//   - Explicit: interfaces, port and path from flags; missing values are
//     filled in (all interfaces, a free port, ./linc_home).
//   - FileBased: a list of configuration files. The files are
//     acknowledged but not read yet; the default configuration is used.
//   - UseDefaults: the default configuration.
//
// # Resolvers
//
// NormalizeInterfaces, ResolvePort and ResolvePath each fill in a single
// field. ResolvePort is the only one that can fail, when the PortFinder
// cannot obtain a free port.
//
// # Usage
//
//	b := startup.NewBuilder(logger)
//	cfg, err := b.Build(startup.Explicit{Port: 0})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Port())
package startup
