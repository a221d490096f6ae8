package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateApp(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDialogs(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateApp(config *Config) []string {
	if config.App.Name == "" {
		return []string{"app.name must not be empty"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "off":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error or disabled (got %q)", config.Logging.Level)}
	}
}

func validateDialogs(config *Config) []string {
	color := config.Dialogs.AccentColor
	if color == "" || hexColorPattern.MatchString(color) {
		return nil
	}
	if n, err := strconv.Atoi(color); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return []string{fmt.Sprintf("dialogs.accent_color must be an ANSI index (0-255) or #rrggbb (got %q)", color)}
}
