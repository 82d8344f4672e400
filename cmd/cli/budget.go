package main

import (
	"fmt"

	"household-calc/internal/api/models"
	"household-calc/internal/budget"

	"github.com/spf13/cobra"
)

var (
	flagAdults int
	flagKids   int
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Minimal survival budget by category for a household",
	RunE:  runBudget,
}

func init() {
	addHouseholdFlags(budgetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func addHouseholdFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagAdults, "adults", 1, "Adults in the household (1-10)")
	cmd.Flags().IntVar(&flagKids, "kids", 0, "Children in the household (0-10)")
}

func validateHousehold() error {
	if flagAdults < 1 || flagAdults > 10 {
		return fmt.Errorf("--adults must be between 1 and 10, got %d", flagAdults)
	}
	if flagKids < 0 || flagKids > 10 {
		return fmt.Errorf("--kids must be between 0 and 10, got %d", flagKids)
	}
	return nil
}

func runBudget(_ *cobra.Command, _ []string) error {
	if err := validateHousehold(); err != nil {
		return err
	}
	tables, err := loadTables()
	if err != nil {
		return err
	}
	res := budget.NewAllocator(tables.Budget).Allocate(flagAdults, flagKids)
	return printJSON(models.NewBudgetResponse(res))
}
