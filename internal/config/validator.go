package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "cooking.auto_advance_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCooking()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateVoice()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateCooking validates the CookingConfig
func (c *Config) validateCooking() []ValidationError {
	var errors []ValidationError

	if c.Cooking.AutoAdvanceSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "cooking.auto_advance_seconds",
			Value:   c.Cooking.AutoAdvanceSeconds,
			Message: "must be at least 1",
		})
	}

	// An overlong countdown defeats the point of hands-free mode
	const maxAutoAdvanceSeconds = 300
	if c.Cooking.AutoAdvanceSeconds > maxAutoAdvanceSeconds {
		errors = append(errors, ValidationError{
			Field:   "cooking.auto_advance_seconds",
			Value:   c.Cooking.AutoAdvanceSeconds,
			Message: fmt.Sprintf("exceeds maximum of %d", maxAutoAdvanceSeconds),
		})
	}

	const minTickIntervalMs = 10
	if c.Cooking.TickIntervalMs < minTickIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "cooking.tick_interval_ms",
			Value:   c.Cooking.TickIntervalMs,
			Message: fmt.Sprintf("must be at least %d", minTickIntervalMs),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.BannerSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "tui.banner_seconds",
			Value:   c.TUI.BannerSeconds,
			Message: "must be at least 1",
		})
	}

	return errors
}

// validateVoice validates the VoiceConfig
func (c *Config) validateVoice() []ValidationError {
	var errors []ValidationError

	if c.Voice.Enabled && strings.TrimSpace(c.Voice.WakeWord) == "" {
		errors = append(errors, ValidationError{
			Field:   "voice.wake_word",
			Value:   c.Voice.WakeWord,
			Message: "must not be empty when voice is enabled",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" {
		valid := false
		for _, level := range ValidLogLevels() {
			if c.Logging.Level == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, ValidationError{
				Field:   "logging.level",
				Value:   c.Logging.Level,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
			})
		}
	}

	return errors
}
