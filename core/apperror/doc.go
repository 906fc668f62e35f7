// Package apperror defines the closed set of failures the linc bootstrap can
// report.
//
// Every failure carries the operation that was attempted and the
// underlying cause, and renders as a multi-line chain:
//
//	Failed to bind server
//	caused by: listen tcp4 0.0.0.0:8136: bind: address already in use
//
// # Kinds
//
//   - KindPortAllocation: no free local port could be obtained.
//   - KindPathResolution: the served directory is missing or inaccessible.
//   - KindParse: a socket address string failed to parse.
//   - KindBind: the OS refused to bind one of the requested addresses.
//   - KindConfigFile: reserved for configuration file failures.
//
// None of these are retried. They bubble up to the command layer, which
// logs the chain with LogChain and exits non-zero.
package apperror
