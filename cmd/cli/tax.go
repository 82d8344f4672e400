package main

import (
	"fmt"
	"os"

	"household-calc/internal/api/models"
	"household-calc/internal/model"
	"household-calc/internal/tax"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagIncome       float64
	flagFilingStatus string
	flagStateRate    float64
	flagStateCode    string
	flagCSV          string
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Federal and state income tax with take-home pay",
	RunE:  runTax,
}

func init() {
	addTaxFlags(taxCmd)
	taxCmd.Flags().StringVar(&flagCSV, "csv", "", "Write the per-bracket breakdown to this CSV file")
	rootCmd.AddCommand(taxCmd)
}

// addTaxFlags registers the tax inputs shared by tax and plan.
func addTaxFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagIncome, "income", 0, "Annual gross income")
	cmd.Flags().StringVar(&flagFilingStatus, "filing-status", string(model.FilingSingle), "single, married_joint or head_of_household")
	cmd.Flags().Float64Var(&flagStateRate, "state-rate", 0, "Manual flat state rate, used when --state is not given")
	cmd.Flags().StringVar(&flagStateCode, "state", "", "Two-letter state code")
	_ = cmd.MarkFlagRequired("income")
}

func taxInputFromFlags() (tax.Input, error) {
	status := model.FilingStatus(flagFilingStatus)
	if !status.Valid() {
		return tax.Input{}, fmt.Errorf("invalid filing status %q", flagFilingStatus)
	}
	if flagIncome < 0 || flagStateRate < 0 {
		return tax.Input{}, fmt.Errorf("income and state rate must be non-negative")
	}
	in := tax.Input{
		AnnualIncome: flagIncome,
		FilingStatus: status,
		StateRate:    flagStateRate,
	}
	if flagStateCode != "" {
		code := flagStateCode
		in.StateCode = &code
	}
	return in, nil
}

// cliLogger reports unresolved state codes on stderr.
func cliLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runTax(cmd *cobra.Command, _ []string) error {
	in, err := taxInputFromFlags()
	if err != nil {
		return err
	}
	tables, err := loadTables()
	if err != nil {
		return err
	}

	logger := cliLogger()
	defer func() { _ = logger.Sync() }()

	res, err := tax.NewCalculator(tables.Tax, logger).Calc(in)
	if err != nil {
		return err
	}

	if flagCSV != "" {
		sections := map[string][]tax.BracketRow{"federal": res.FederalBreakdown}
		if code := tax.NormalizeStateCode(in.StateCode); code != nil && len(res.State.Breakdown) > 0 {
			sections[*code] = res.State.Breakdown
		}
		if err := tax.WriteBreakdownCSV(flagCSV, sections); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", flagCSV)
	}
	return printJSON(models.NewTaxResponse(res))
}
