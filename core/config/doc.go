// Package config loads the ambient settings of linc.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags.
// These settings never change where linc listens or what it serves; that
// is resolved from the command line by core/startup.
//
// # Configuration Structure
//
//   - Server: shutdown grace period, optional API key, directory browsing
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.ShutdownTimeout())
package config
