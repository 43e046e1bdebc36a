package diff

// Config holds configuration for diff rendering.
type Config struct {
	// Color enables colored output in the two-column view.
	Color bool `mapstructure:"color" default:"true"`

	// ColumnWidth is the width of each column in the two-column view.
	ColumnWidth int `mapstructure:"column_width" default:"40"`

	// Context is the number of unchanged lines around each unified diff hunk.
	Context int `mapstructure:"context" default:"3"`
}
