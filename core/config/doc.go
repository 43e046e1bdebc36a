// Package config provides configuration management for h3sed.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// h3sed.yaml next to it and environment variables. Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: logging level and format
//   - Savefile: recognized file extensions and backup behaviour
//   - Catalog: directory of YAML version plugins and the fallback version
//   - Diff: colors, column width and unified diff context
//
// Environment variables use the section as prefix, e.g. LOG_LEVEL or
// CATALOG_PLUGIN_DIR.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.FallbackVersion)
package config
