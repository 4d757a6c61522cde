// Package config provides configuration management for the bridge.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Stash: GraphQL endpoint, API key, retry and cache settings
//   - Source: platform metadata database connection
//   - Archive: media archive bucket credentials
//   - Sync: platform label and worker pool bounds
//   - Server: status HTTP server settings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Stash.URL)
package config
