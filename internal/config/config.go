package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete souschef configuration
type Config struct {
	Cooking CookingConfig `mapstructure:"cooking"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Recipes RecipesConfig `mapstructure:"recipes"`
	Pantry  PantryConfig  `mapstructure:"pantry"`
	Voice   VoiceConfig   `mapstructure:"voice"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CookingConfig controls session behavior while cooking
type CookingConfig struct {
	// AutoAdvanceSeconds is the hands-free countdown before the session
	// moves to the next step (default: 10)
	AutoAdvanceSeconds int `mapstructure:"auto_advance_seconds"`
	// TickIntervalMs is the shared clock period in milliseconds. All
	// timers and the auto-advance countdown decrement on this interval
	// (default: 1000)
	TickIntervalMs int `mapstructure:"tick_interval_ms"`
	// ConfirmRepeatDeduction requires explicit confirmation before
	// deducting ingredients a second time for the same session (default: true)
	ConfirmRepeatDeduction bool `mapstructure:"confirm_repeat_deduction"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ShowStepList shows the full step list beside the current step
	ShowStepList bool `mapstructure:"show_step_list"`
	// BannerSeconds is how long milestone and completion banners stay on
	// screen before auto-dismissing (default: 4)
	BannerSeconds int `mapstructure:"banner_seconds"`
}

// RecipesConfig controls where recipes are loaded from
type RecipesConfig struct {
	// Dir is the recipe library directory. Empty means <config dir>/recipes
	Dir string `mapstructure:"dir"`
	// Watch reloads the library when recipe files change on disk (default: true)
	Watch bool `mapstructure:"watch"`
}

// PantryConfig controls the ingredient stock store
type PantryConfig struct {
	// Enabled turns on pantry tracking and post-session deduction
	Enabled bool `mapstructure:"enabled"`
	// Path is the pantry YAML file. Empty means <config dir>/pantry.yaml
	Path string `mapstructure:"path"`
}

// VoiceConfig controls the voice command adapter
type VoiceConfig struct {
	// Enabled turns on the phrase-to-action adapter
	Enabled bool `mapstructure:"enabled"`
	// WakeWord is the prefix stripped from recognized phrases (default: "hey chef")
	WakeWord string `mapstructure:"wake_word"`
}

// LoggingConfig controls structured log output
type LoggingConfig struct {
	// Enabled turns file logging on or off
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level to log: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the log directory. Empty means <config dir>/logs
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Cooking: CookingConfig{
			AutoAdvanceSeconds:     10,
			TickIntervalMs:         1000,
			ConfirmRepeatDeduction: true,
		},
		TUI: TUIConfig{
			Theme:         "default",
			ShowStepList:  true,
			BannerSeconds: 4,
		},
		Recipes: RecipesConfig{
			Dir:   "", // Empty means use default: <config dir>/recipes
			Watch: true,
		},
		Pantry: PantryConfig{
			Enabled: false,
			Path:    "", // Empty means use default: <config dir>/pantry.yaml
		},
		Voice: VoiceConfig{
			Enabled:  false,
			WakeWord: "hey chef",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "", // Empty means use default: <config dir>/logs
		},
	}
}

// TickInterval returns the clock period as a time.Duration
func (c *CookingConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// BannerDuration returns the banner display time as a time.Duration
func (c *TUIConfig) BannerDuration() time.Duration {
	return time.Duration(c.BannerSeconds) * time.Second
}

// ResolveDir returns the recipe directory, resolving the empty default
// against the config dir
func (c *RecipesConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "recipes")
}

// ResolvePath returns the pantry file path, resolving the empty default
// against the config dir
func (c *PantryConfig) ResolvePath() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Join(ConfigDir(), "pantry.yaml")
}

// ResolveDir returns the log directory, resolving the empty default
// against the config dir
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Cooking defaults
	viper.SetDefault("cooking.auto_advance_seconds", defaults.Cooking.AutoAdvanceSeconds)
	viper.SetDefault("cooking.tick_interval_ms", defaults.Cooking.TickIntervalMs)
	viper.SetDefault("cooking.confirm_repeat_deduction", defaults.Cooking.ConfirmRepeatDeduction)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_step_list", defaults.TUI.ShowStepList)
	viper.SetDefault("tui.banner_seconds", defaults.TUI.BannerSeconds)

	// Recipes defaults
	viper.SetDefault("recipes.dir", defaults.Recipes.Dir)
	viper.SetDefault("recipes.watch", defaults.Recipes.Watch)

	// Pantry defaults
	viper.SetDefault("pantry.enabled", defaults.Pantry.Enabled)
	viper.SetDefault("pantry.path", defaults.Pantry.Path)

	// Voice defaults
	viper.SetDefault("voice.enabled", defaults.Voice.Enabled)
	viper.SetDefault("voice.wake_word", defaults.Voice.WakeWord)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "souschef")
	}
	// Fall back to ~/.config/souschef
	home, err := os.UserHomeDir()
	if err != nil {
		return ".souschef"
	}
	return filepath.Join(home, ".config", "souschef")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidThemes returns the list of valid TUI theme names
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// IsValidTheme checks if the given theme name is valid
func IsValidTheme(theme string) bool {
	for _, valid := range ValidThemes() {
		if theme == valid {
			return true
		}
	}
	return false
}
