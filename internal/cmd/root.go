package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"souschef/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "souschef",
	Short: "Guided cooking sessions in your terminal",
	Long: `Souschef walks you through a recipe step by step: it detects timers in
the instructions, runs extra timers for the stove's other pans, paces you
through hands-free, and keeps your pantry stock up to date when the meal
is done.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/souschef/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/souschef")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SOUSCHEF")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SOUSCHEF_COOKING_AUTO_ADVANCE_SECONDS for cooking.auto_advance_seconds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig returns the validated configuration for a command run.
func loadConfig() (*config.Config, error) {
	return config.Load()
}
