package main

import (
	"fmt"

	"household-calc/internal/api/models"
	"household-calc/internal/borrow"

	"github.com/spf13/cobra"
)

var (
	flagOtherDebt       float64
	flagRate            float64
	flagTerm            int
	flagTaxesInsurance  float64
	flagPreset          string
	flagFrontEnd        float64
	flagBackEnd         float64
	flagUseTakehome     bool
	flagMonthlyTakehome float64
	flagSurplusLimit    float64
)

var borrowCmd = &cobra.Command{
	Use:   "borrow",
	Short: "Largest affordable loan principal under DTI and surplus limits",
	RunE:  runBorrow,
}

func init() {
	borrowCmd.Flags().Float64Var(&flagIncome, "income", 0, "Annual gross income")
	addLoanFlags(borrowCmd)
	borrowCmd.Flags().Float64Var(&flagMonthlyTakehome, "monthly-takehome", 0, "Monthly take-home pay, used with --use-takehome")
	borrowCmd.Flags().Float64Var(&flagSurplusLimit, "surplus-limit", 0, "Cap the monthly P&I at this surplus")
	_ = borrowCmd.MarkFlagRequired("income")
	rootCmd.AddCommand(borrowCmd)
}

// addLoanFlags registers the loan terms shared by borrow and plan.
func addLoanFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagOtherDebt, "other-debt", 0, "Other monthly debt payments")
	cmd.Flags().Float64Var(&flagRate, "rate", 0, "Annual interest rate as a fraction, e.g. 0.065")
	cmd.Flags().IntVar(&flagTerm, "term", 30, "Loan term in years")
	cmd.Flags().Float64Var(&flagTaxesInsurance, "taxes-insurance", 0, "Monthly property taxes and insurance")
	cmd.Flags().StringVar(&flagPreset, "preset", "conventional", "DTI preset: conventional, fha or va")
	cmd.Flags().Float64Var(&flagFrontEnd, "front-end", 0, "Front-end ratio, overrides the preset")
	cmd.Flags().Float64Var(&flagBackEnd, "back-end", 0, "Back-end ratio, overrides the preset")
	cmd.Flags().BoolVar(&flagUseTakehome, "use-takehome", false, "Apply the ratios to take-home instead of gross income")
	_ = cmd.MarkFlagRequired("rate")
}

// loanRequest builds the loan terms from flags. Explicit ratios override the
// preset.
func loanRequest(cmd *cobra.Command) (borrow.Request, error) {
	if flagTerm < 1 {
		return borrow.Request{}, fmt.Errorf("--term must be at least 1, got %d", flagTerm)
	}
	if flagRate < 0 || flagOtherDebt < 0 || flagTaxesInsurance < 0 {
		return borrow.Request{}, fmt.Errorf("rate, other debt and taxes must be non-negative")
	}

	preset, err := borrow.LookupPreset(flagPreset)
	if err != nil {
		return borrow.Request{}, err
	}
	front, back := preset.FrontEnd, preset.BackEnd
	if cmd.Flags().Changed("front-end") {
		front = flagFrontEnd
	}
	if cmd.Flags().Changed("back-end") {
		back = flagBackEnd
	}
	if front < 0 || front > 1 || back < 0 || back > 1 {
		return borrow.Request{}, fmt.Errorf("ratios must be within [0, 1]")
	}

	return borrow.Request{
		OtherMonthlyDebt:      flagOtherDebt,
		RateAnnual:            flagRate,
		TermYears:             flagTerm,
		TaxesInsuranceMonthly: flagTaxesInsurance,
		FrontEndRatio:         front,
		BackEndRatio:          back,
		UseTakehome:           flagUseTakehome,
	}, nil
}

func runBorrow(cmd *cobra.Command, _ []string) error {
	if flagIncome < 0 {
		return fmt.Errorf("--income must be non-negative")
	}
	req, err := loanRequest(cmd)
	if err != nil {
		return err
	}
	req.AnnualIncome = flagIncome
	req.MonthlyTakehome = optionalFloat(cmd, "monthly-takehome", flagMonthlyTakehome)
	req.SurplusLimit = optionalFloat(cmd, "surplus-limit", flagSurplusLimit)

	return printJSON(models.NewBorrowResponse(borrow.Calculate(req)))
}
