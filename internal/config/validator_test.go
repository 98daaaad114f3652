package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return Default()
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	if errs := validConfig().Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidateCooking(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "zero auto advance",
			mutate:    func(c *Config) { c.Cooking.AutoAdvanceSeconds = 0 },
			wantField: "cooking.auto_advance_seconds",
		},
		{
			name:      "negative auto advance",
			mutate:    func(c *Config) { c.Cooking.AutoAdvanceSeconds = -5 },
			wantField: "cooking.auto_advance_seconds",
		},
		{
			name:      "excessive auto advance",
			mutate:    func(c *Config) { c.Cooking.AutoAdvanceSeconds = 301 },
			wantField: "cooking.auto_advance_seconds",
		},
		{
			name:      "tick interval too small",
			mutate:    func(c *Config) { c.Cooking.TickIntervalMs = 5 },
			wantField: "cooking.tick_interval_ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidateTUI(t *testing.T) {
	cfg := validConfig()
	cfg.TUI.Theme = "rainbow"
	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "tui.theme" {
		t.Errorf("Validate() = %v, want one tui.theme error", errs)
	}

	// Empty theme means default and is accepted
	cfg = validConfig()
	cfg.TUI.Theme = ""
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("empty theme rejected: %v", errs)
	}

	cfg = validConfig()
	cfg.TUI.BannerSeconds = 0
	errs = cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "tui.banner_seconds" {
		t.Errorf("Validate() = %v, want one tui.banner_seconds error", errs)
	}
}

func TestValidateVoice(t *testing.T) {
	cfg := validConfig()
	cfg.Voice.Enabled = true
	cfg.Voice.WakeWord = "   "
	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "voice.wake_word" {
		t.Errorf("Validate() = %v, want one voice.wake_word error", errs)
	}

	// A blank wake word is fine while voice is disabled
	cfg.Voice.Enabled = false
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("disabled voice still validated wake word: %v", errs)
	}
}

func TestValidateLogging(t *testing.T) {
	for _, level := range ValidLogLevels() {
		cfg := validConfig()
		cfg.Logging.Level = level
		if errs := cfg.Validate(); len(errs) != 0 {
			t.Errorf("level %q rejected: %v", level, errs)
		}
	}

	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "logging.level" {
		t.Errorf("Validate() = %v, want one logging.level error", errs)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "cooking.auto_advance_seconds", Value: 0, Message: "must be at least 1"},
		{Field: "logging.level", Value: "loud", Message: "must be one of: debug, info, warn, error"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("Error() = %q, want a count header", msg)
	}
	if !strings.Contains(msg, "cooking.auto_advance_seconds") {
		t.Errorf("Error() = %q, missing first field", msg)
	}

	single := ValidationErrors{errs[0]}
	if got := single.Error(); strings.Contains(got, "validation errors") {
		t.Errorf("single error should not carry a count header: %q", got)
	}

	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty ValidationErrors.Error() = %q, want empty", got)
	}
}
