package savefile

// Config holds configuration for savefile handling.
type Config struct {
	// Extensions lists the file extensions treated as savefiles when scanning directories.
	Extensions []string `mapstructure:"extensions" default:".GM1,.GM2,.GM3,.GM4,.GM5,.GM6,.GM7,.GM8,.GMH,.CGM"`
	// Backup indicates whether a copy of the savefile is kept before it is overwritten.
	Backup bool `mapstructure:"backup" default:"true"`
}
