package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukfiscal/taxdrag/internal/calculation"
	"github.com/ukfiscal/taxdrag/internal/config"
	"github.com/ukfiscal/taxdrag/internal/domain"
	"github.com/ukfiscal/taxdrag/internal/logging"
	"github.com/ukfiscal/taxdrag/pkg/taxyear"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
}

// modelOptions override configuration values when their flag is set.
type modelOptions struct {
	baseYear   string
	taxpayers  int64
	gridPoints int
	cpi        float64
	rpi        float64
	wage       float64
	years      int
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "taxdrag",
		Short: "Project UK income tax revenue under frozen and uprated thresholds",
		Long: `taxdrag estimates aggregate UK income tax revenue by integrating the
per-taxpayer tax schedule against a lognormal income distribution, then
projects it under frozen, CPI, wage and RPI uprated thresholds.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file (defaults to the 2024/25 reference run)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "env file with TAXDRAG_* overrides; skipped when missing")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format: console or json")

	root.AddCommand(
		newProjectCommand(opts),
		newRevenueCommand(opts),
		newTaxCommand(opts),
		newInitConfigCommand(),
	)
	return root
}

// addModelFlags registers the flags that override configuration values.
func addModelFlags(cmd *cobra.Command, m *modelOptions) {
	def := domain.DefaultConfiguration()
	cmd.Flags().StringVar(&m.baseYear, "base-year", def.BaseTaxYear(), "base tax year, e.g. 2024/25")
	cmd.Flags().Int64Var(&m.taxpayers, "taxpayers", def.Taxpayers, "number of income taxpayers")
	cmd.Flags().IntVar(&m.gridPoints, "grid-points", def.Distribution.GridPoints, "quadrature grid resolution")
	cmd.Flags().Float64Var(&m.cpi, "cpi", def.Assumptions.CPIRate, "annual CPI inflation (fraction)")
	cmd.Flags().Float64Var(&m.rpi, "rpi", def.Assumptions.RPIRate, "annual RPI inflation (fraction)")
	cmd.Flags().Float64Var(&m.wage, "wage", def.Assumptions.WageRate, "annual wage growth (fraction)")
	cmd.Flags().IntVar(&m.years, "years", def.Assumptions.ProjectionYears, "projection horizon in years")
}

// loadConfiguration resolves defaults, then the config file, then the
// environment, then any flags the user set explicitly.
func loadConfiguration(cmd *cobra.Command, opts *globalOptions, m *modelOptions) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg := domain.DefaultConfiguration()
	if opts.configFile != "" {
		loaded, err := parser.LoadFromFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := parser.ApplyEnvironment(cfg, opts.envFile); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if m != nil {
		flags := cmd.Flags()
		if flags.Changed("base-year") {
			year, err := taxyear.Parse(m.baseYear)
			if err != nil {
				return nil, err
			}
			cfg.BaseYear = year
		}
		if flags.Changed("taxpayers") {
			cfg.Taxpayers = m.taxpayers
		}
		if flags.Changed("grid-points") {
			cfg.Distribution.GridPoints = m.gridPoints
		}
		if flags.Changed("cpi") {
			cfg.Assumptions.CPIRate = m.cpi
		}
		if flags.Changed("rpi") {
			cfg.Assumptions.RPIRate = m.rpi
		}
		if flags.Changed("wage") {
			cfg.Assumptions.WageRate = m.wage
		}
		if flags.Changed("years") {
			cfg.Assumptions.ProjectionYears = m.years
		}
	}

	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// newEngine builds the calculation engine with a zap-backed logger. The
// returned function flushes the logger.
func newEngine(cfg *domain.Configuration, opts *globalOptions) (*calculation.CalculationEngine, func(), error) {
	logger, err := logging.New(logging.Options{Level: opts.logLevel, Format: opts.logFormat})
	if err != nil {
		return nil, nil, err
	}
	flush := func() { _ = logger.Sync() }

	engine, err := calculation.NewCalculationEngine(cfg)
	if err != nil {
		flush()
		return nil, nil, err
	}
	engine.SetLogger(logger.With("base_year", cfg.BaseTaxYear()))
	return engine, flush, nil
}
