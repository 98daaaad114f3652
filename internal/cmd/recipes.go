package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"souschef/internal/logging"
	"souschef/internal/recipe"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List the recipe library",
	Long:  `List every recipe in the configured recipe directory.`,
	RunE:  runRecipes,
}

func init() {
	rootCmd.AddCommand(recipesCmd)
}

func runRecipes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lib := recipe.NewLibrary(cfg.Recipes.ResolveDir(), logging.NopLogger())
	if err := lib.Reload(); err != nil {
		return err
	}
	defer lib.Close()

	keys := lib.Keys()
	if len(keys) == 0 {
		fmt.Printf("No recipes found in %s\n", cfg.Recipes.ResolveDir())
		fmt.Println("Drop recipe YAML files there and run this again.")
		return nil
	}

	fmt.Printf("%d recipes in %s:\n\n", len(keys), cfg.Recipes.ResolveDir())
	for _, key := range keys {
		rec, err := lib.Get(key)
		if err != nil {
			continue
		}
		fmt.Printf("  %-24s %s (%d steps, serves %d)\n",
			key, rec.Name, len(rec.Steps), rec.Servings)
	}
	return nil
}
