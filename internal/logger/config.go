package logger

// Config holds the logger configuration.
type Config struct {
	// Level is the minimum logging level: debug, info, warn, error, fatal.
	Level string `mapstructure:"level"`
	// Encoding is the log output format: console or json.
	Encoding string `mapstructure:"encoding"`
	// Development enables colored, human-friendly output.
	Development bool `mapstructure:"development"`
}
