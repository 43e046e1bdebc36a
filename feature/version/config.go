package version

// Config holds configuration for version plugins.
type Config struct {
	// PluginDir is the directory scanned for YAML version plugins.
	// Empty disables external plugins.
	PluginDir string `mapstructure:"plugin_dir" default:""`

	// FallbackVersion is used when no version signature matches a savefile.
	// Empty refuses such files.
	FallbackVersion string `mapstructure:"fallback_version" default:"sod"`
}
