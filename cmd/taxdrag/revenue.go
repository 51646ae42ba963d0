package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukfiscal/taxdrag/internal/domain"
	"github.com/ukfiscal/taxdrag/internal/output"
	"github.com/ukfiscal/taxdrag/pkg/currency"
	"github.com/ukfiscal/taxdrag/pkg/taxyear"
)

func newRevenueCommand(opts *globalOptions) *cobra.Command {
	m := &modelOptions{}
	var (
		scenario  string
		offset    int
		allowance float64
		basic     float64
		higher    float64
		scale     float64
	)

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Aggregate revenue for one set of thresholds and income scale",
		Long: `revenue integrates the tax schedule once. Either name a scenario and a
year offset, or give thresholds and an income scale directly; explicit
threshold flags override the configured base-year policy.`,
		Example: `  taxdrag revenue
  taxdrag revenue --scenario cpi_uprated --offset 3
  taxdrag revenue --personal-allowance 15000 --scale 1.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd, opts, m)
			if err != nil {
				return err
			}

			params := cfg.Policy
			incomeScale := 1.0
			label := cfg.BaseTaxYear()
			if scenario != "" {
				s, err := parseScenario(scenario)
				if err != nil {
					return err
				}
				g := cfg.Assumptions.FactorsAt(offset)
				params = s.Thresholds(cfg.Policy, g)
				incomeScale = g.Wage
				label = fmt.Sprintf("%s %s", taxyear.Label(cfg.BaseYear+offset), s.Label())
			}
			flags := cmd.Flags()
			if flags.Changed("personal-allowance") {
				params.PersonalAllowance = allowance
			}
			if flags.Changed("basic-limit") {
				params.BasicRateLimit = basic
			}
			if flags.Changed("higher-limit") {
				params.HigherRateLimit = higher
			}
			if flags.Changed("scale") {
				incomeScale = scale
			}

			engine, flush, err := newEngine(cfg, opts)
			if err != nil {
				return err
			}
			defer flush()

			raw, err := engine.Revenue(params, incomeScale)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", label)
			fmt.Fprintf(out, "Thresholds: personal allowance %s, basic rate limit %s, higher rate limit %s\n",
				output.FormatPounds(params.PersonalAllowance), output.FormatPounds(params.BasicRateLimit), output.FormatPounds(params.HigherRateLimit))
			fmt.Fprintf(out, "Income scale: %.4f\n", incomeScale)
			fmt.Fprintf(out, "Revenue: %s (%.4f)\n", currency.NewBillions(raw).Format(), raw)
			return nil
		},
	}
	addModelFlags(cmd, m)
	cmd.Flags().StringVar(&scenario, "scenario", "", "scenario: frozen, cpi_uprated, wage_uprated, rpi_uprated")
	cmd.Flags().IntVar(&offset, "offset", 0, "years after the base year (with --scenario)")
	cmd.Flags().Float64Var(&allowance, "personal-allowance", 0, "personal allowance in pounds")
	cmd.Flags().Float64Var(&basic, "basic-limit", 0, "basic rate limit in pounds")
	cmd.Flags().Float64Var(&higher, "higher-limit", 0, "higher rate limit in pounds")
	cmd.Flags().Float64Var(&scale, "scale", 1, "cumulative income growth factor")
	return cmd
}

func parseScenario(name string) (domain.Scenario, error) {
	for _, s := range domain.AllScenarios {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown scenario %q", name)
}
