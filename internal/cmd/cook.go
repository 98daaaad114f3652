package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"souschef/internal/config"
	"souschef/internal/cooking"
	"souschef/internal/event"
	"souschef/internal/logging"
	"souschef/internal/pantry"
	"souschef/internal/recipe"
	"souschef/internal/tui"
	"souschef/internal/tui/styles"
)

var cookCmd = &cobra.Command{
	Use:   "cook <recipe>",
	Short: "Start a guided cooking session",
	Long: `Start a guided cooking session for a recipe. The argument is either a
recipe name from the library (see "souschef recipes") or a path to a
recipe YAML file.`,
	Args: cobra.ExactArgs(1),
	RunE: runCook,
}

func init() {
	rootCmd.AddCommand(cookCmd)
}

func runCook(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	rec, err := resolveRecipe(cfg, args[0], logger)
	if err != nil {
		return err
	}

	gateway, err := buildGateway(cfg, logger)
	if err != nil {
		return err
	}

	styles.Apply(styles.GetTheme(cfg.TUI.Theme))

	controller, err := cooking.NewController(rec, event.NewBus(), cooking.Options{
		TickInterval:       cfg.Cooking.TickInterval(),
		AutoAdvanceSeconds: cfg.Cooking.AutoAdvanceSeconds,
		Gateway:            gateway,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	controller.Start()

	app := tui.New(controller, tui.ModelOptions{
		BannerDuration: cfg.TUI.BannerDuration(),
	})
	return app.Run()
}

// resolveRecipe loads a recipe by library name or by path.
func resolveRecipe(cfg *config.Config, arg string, logger *logging.Logger) (*recipe.Recipe, error) {
	if strings.ContainsAny(arg, "/\\") || strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		if _, err := os.Stat(arg); err == nil {
			return recipe.Load(arg)
		}
	}

	lib := recipe.NewLibrary(cfg.Recipes.ResolveDir(), logger)
	if err := lib.Reload(); err != nil {
		return nil, err
	}
	defer lib.Close()

	rec, err := lib.Get(arg)
	if err != nil {
		return nil, fmt.Errorf("recipe %q not found in %s (try \"souschef recipes\"): %w",
			arg, cfg.Recipes.ResolveDir(), err)
	}
	return rec, nil
}

// buildGateway wires the pantry store when enabled, or a no-op sink.
func buildGateway(cfg *config.Config, logger *logging.Logger) (cooking.DeductionGateway, error) {
	if !cfg.Pantry.Enabled {
		return cooking.NopGateway(), nil
	}
	store, err := pantry.Open(cfg.Pantry.ResolvePath(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open pantry: %w", err)
	}
	return store, nil
}

// newLogger builds the configured logger, or a nop logger when file
// logging is off.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
}
