package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukfiscal/taxdrag/internal/calculation"
)

func newTaxCommand(opts *globalOptions) *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:     "tax INCOME [INCOME...]",
		Short:   "Show the income tax due on individual incomes",
		Example: "  taxdrag tax 30000 110000 150000",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd, opts, nil)
			if err != nil {
				return err
			}
			if scale <= 0 {
				return fmt.Errorf("threshold scale must be positive, got %v", scale)
			}
			params := cfg.Policy.Scale(scale)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%12s %12s %12s %10s %10s %10s %12s %9s\n",
				"Income", "Allowance", "Taxable", "Basic", "Higher", "Additional", "Total", "Marginal")
			for _, arg := range args {
				income, err := strconv.ParseFloat(arg, 64)
				if err != nil || income < 0 {
					return fmt.Errorf("invalid income %q", arg)
				}
				b := calculation.Breakdown(income, params)
				fmt.Fprintf(out, "%12.2f %12.2f %12.2f %10.2f %10.2f %10.2f %12.2f %8.0f%%\n",
					b.Income, b.EffectiveAllowance, b.Taxable, b.BasicTax, b.HigherTax, b.AdditionalTax, b.Total,
					calculation.EffectiveMarginalRate(income, params)*100)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "threshold-scale", 1, "multiply every threshold by this factor")
	return cmd
}
