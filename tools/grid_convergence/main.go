package main

import (
	"fmt"
	"os"

	"github.com/ukfiscal/taxdrag/internal/calculation"
	"github.com/ukfiscal/taxdrag/internal/domain"
	"github.com/ukfiscal/taxdrag/pkg/currency"
)

// Prints base-year and final-year frozen revenue at several grid resolutions
// to check the rounded figures are stable.
func main() {
	cfg := domain.DefaultConfiguration()
	final := cfg.Assumptions.FactorsAt(cfg.Assumptions.ProjectionYears)

	fmt.Printf("%10s %14s %8s %14s %8s %10s\n", "points", "base", "rounded", "final frozen", "rounded", "tail")
	for _, points := range []int{5_000, 20_000, 50_000, 100_000, 200_000, 400_000} {
		cfg.Distribution.GridPoints = points
		engine, err := calculation.NewCalculationEngine(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		base, err := engine.BaseRevenue()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		frozen, err := engine.Revenue(cfg.Policy, final.Wage)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%10d %14.6f %8s %14.6f %8s %10.3e\n",
			points, base, currency.NewBillions(base), frozen, currency.NewBillions(frozen), engine.Grid.TailWeight())
	}
}
