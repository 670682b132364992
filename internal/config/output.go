package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON game records
	Format OutputFormat

	// UseColour renders boards with ANSI colours
	UseColour bool

	// ShowFEN adds the position string after every ply in text output
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  TextFormat,
		ShowFEN: true,
	}
}
