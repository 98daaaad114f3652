package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"souschef/internal/logging"
	"souschef/internal/pantry"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Inspect and stock the pantry",
	Long:  `Show the tracked ingredient stock, or add to it with "pantry add".`,
	RunE:  runPantryShow,
}

var pantryAddCmd = &cobra.Command{
	Use:   "add <name> <quantity> [unit]",
	Short: "Add stock for an ingredient",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runPantryAdd,
}

func init() {
	pantryCmd.AddCommand(pantryAddCmd)
	rootCmd.AddCommand(pantryCmd)
}

func openPantry() (*pantry.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return pantry.Open(cfg.Pantry.ResolvePath(), logging.NopLogger())
}

func runPantryShow(cmd *cobra.Command, args []string) error {
	store, err := openPantry()
	if err != nil {
		return err
	}

	items := store.Items()
	if len(items) == 0 {
		fmt.Println("Pantry is empty. Stock it with \"souschef pantry add\".")
		return nil
	}

	for _, item := range items {
		fmt.Printf("  %-24s %g %s\n", item.Name, item.Quantity, item.Unit)
	}
	return nil
}

func runPantryAdd(cmd *cobra.Command, args []string) error {
	store, err := openPantry()
	if err != nil {
		return err
	}

	quantity, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("quantity %q is not a number", args[1])
	}
	unit := ""
	if len(args) == 3 {
		unit = args[2]
	}

	if err := store.Add(args[0], quantity, unit); err != nil {
		return err
	}
	fmt.Printf("Stocked %g %s %s\n", quantity, unit, args[0])
	return nil
}
