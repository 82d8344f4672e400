package main

import (
	"encoding/json"
	"fmt"
	"os"

	"household-calc/internal/data"

	"github.com/spf13/cobra"
)

var (
	flagTaxTable    string
	flagBudgetTable string
)

var rootCmd = &cobra.Command{
	Use:           "household-calc",
	Short:         "Household tax, budget and borrowing calculator",
	Long:          "Compute income tax, a minimal survival budget and the largest affordable mortgage from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTaxTable, "tax-table", data.DefaultTaxTablePath, "Tax reference document (.json, .yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagBudgetTable, "budget-table", data.DefaultBudgetTablePath, "Budget reference document (.json, .yaml or .toml)")
}

func loadTables() (*data.Tables, error) {
	tables, err := data.LoadTables(flagTaxTable, flagBudgetTable)
	if err != nil {
		return nil, fmt.Errorf("loading reference tables: %w", err)
	}
	return tables, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// optionalFloat returns nil unless the flag was set explicitly.
func optionalFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
