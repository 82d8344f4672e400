package main

import (
	"household-calc/internal/api/models"
	"household-calc/internal/budget"
	"household-calc/internal/plan"
	"household-calc/internal/tax"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Tax, budget and borrowing in one pass with the resulting cash flow",
	Long: "Computes take-home pay, the household's survival budget, and the largest loan whose " +
		"payment fits both the DTI ratios and the surplus left after the budget.",
	RunE: runPlan,
}

func init() {
	addTaxFlags(planCmd)
	addHouseholdFlags(planCmd)
	addLoanFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	taxIn, err := taxInputFromFlags()
	if err != nil {
		return err
	}
	if err := validateHousehold(); err != nil {
		return err
	}
	loan, err := loanRequest(cmd)
	if err != nil {
		return err
	}
	tables, err := loadTables()
	if err != nil {
		return err
	}

	logger := cliLogger()
	defer func() { _ = logger.Sync() }()

	planner := plan.NewPlanner(tax.NewCalculator(tables.Tax, logger), budget.NewAllocator(tables.Budget))
	res, err := planner.Run(plan.Input{
		Tax:    taxIn,
		Adults: flagAdults,
		Kids:   flagKids,
		Borrow: loan,
	})
	if err != nil {
		return err
	}
	return printJSON(models.NewPlanResponse(res))
}
