package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// ShutdownTimeoutSeconds is the grace period given to in-flight
	// requests on shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"3"`
	// ApiKey, when set, is required on every request.
	ApiKey string `mapstructure:"api_key" default:""`
	// Browse enables directory listings for the served path.
	Browse bool `mapstructure:"browse" default:"true"`
}

// ShutdownTimeout returns the grace period, falling back to three seconds
// when unset or invalid.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
