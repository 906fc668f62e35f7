// Package server holds the HTTP server settings that are not part of the
// resolved service configuration.
//
// Interfaces, port and served path come from the command line (see
// core/startup). This package covers the rest: the shutdown grace period,
// the optional API key and whether directories are listed.
package server
