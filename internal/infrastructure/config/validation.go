package config

import (
	"fmt"
	"strconv"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePlayer(config)...)
	validationErrors = append(validationErrors, validatePreview(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validatePlayer(config *Config) []string {
	var validationErrors []string

	switch config.Player.Protocol {
	case "", "http", "https":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("player.protocol must be http or https (got %q)", config.Player.Protocol))
	}

	if strings.ContainsAny(config.Player.HostName, "/:?#") {
		validationErrors = append(validationErrors, "player.host_name must be a bare host name without scheme, port or path")
	}

	if config.Player.Port != "" {
		port, err := strconv.Atoi(config.Player.Port)
		if err != nil || port < 1 || port > 65535 {
			validationErrors = append(validationErrors, "player.port must be a number between 1 and 65535")
		}
	}

	if config.Player.TimeoutMs < 0 {
		validationErrors = append(validationErrors, "player.timeout_ms must be non-negative")
	}

	for i, h := range config.Player.Headers {
		if strings.TrimSpace(h.Key) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("player.headers[%d].key must not be empty", i))
		}
	}
	return validationErrors
}

func validatePreview(config *Config) []string {
	if config.Preview.EvalTimeoutMs < 0 {
		return []string{"preview.eval_timeout_ms must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}

	switch strings.ToLower(config.Logging.Format) {
	case "console", "text", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of console, text, json (got %q)", config.Logging.Format))
	}

	if config.Logging.File != "" && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}
