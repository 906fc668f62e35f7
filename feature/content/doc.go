// Package content serves the resolved directory over HTTP.
//
// Files are served from the canonical root at "/". Directory listings are
// enabled unless turned off through SERVER_BROWSE=false.
//
// # Components
//
//   - Service: holds the root directory and logger.
//   - Handler: registers the static route and the not found fallback.
//   - Loader: registers the feature with the application.
package content
