// Package config loads and watches the dumber-addons configuration.
package config

import "github.com/bnema/dumber-addons/internal/domain/build"

// Config represents the complete configuration for dumber-addons.
type Config struct {
	App      AppConfig      `mapstructure:"app" toml:"app" json:"app"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Dialogs  DialogsConfig  `mapstructure:"dialogs" toml:"dialogs" json:"dialogs"`
}

// AppConfig describes the host application shown in dialog text.
type AppConfig struct {
	// Name is substituted into the incompatible-extension message.
	Name string `mapstructure:"name" toml:"name" json:"name" jsonschema:"description=Application name used in dialog text"`
}

// DatabaseConfig holds the addon database settings.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/dumber-addons/addons.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty" jsonschema:"description=SQLite database path"`
}

// LogFormat selects the log output encoding.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LoggingConfig controls log verbosity and format.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format LogFormat `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=json"`
}

// DialogsConfig controls the terminal dialog surface.
type DialogsConfig struct {
	// AltScreen renders dialogs on the alternate screen buffer.
	AltScreen bool `mapstructure:"alt_screen" toml:"alt_screen" json:"alt_screen"`
	// AccentColor is a lipgloss color (ANSI index or hex) for titles and the focused button.
	AccentColor string `mapstructure:"accent_color" toml:"accent_color" json:"accent_color" jsonschema:"description=ANSI color index or #rrggbb"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: build.DefaultAppName,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		Dialogs: DialogsConfig{
			AltScreen:   false,
			AccentColor: "212",
		},
	}
}
