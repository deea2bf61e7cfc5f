// Package config provides configuration management for cmdb-sync.
//
// It utilizes Viper for loading configuration from an optional cmdb-sync.yaml in the
// config directory, an optional .env file and environment variables, the latter
// taking precedence. Defaults come from the `default` struct tags. LoadConfig
// rejects an unknown inventory source or field profile.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, report reuse)
//   - Database: MySQL mirror of the registry tables
//   - Storage: S3/MinIO bucket holding registry exports
//   - Log: Logging level and format
//   - NetIM: monitoring platform API
//   - ServiceNow: registry table API
//   - Inventory: registry source selection and comparison options
//
// Environment keys are the upper-cased section and key joined by an underscore,
// e.g. NETIM_HOST or INVENTORY_VALIDATE_ADDRESSES.
//
// # Credentials Files
//
// LoadCredentials reads the YAML credentials files accepted on the command line
// (hostname, username, password and, for the registry, include/exclude filters).
// A missing file is not an error; the caller prompts for what is still missing.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.NetIM.Host)
package config
