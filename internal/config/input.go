package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ukfiscal/taxdrag/internal/domain"
	"github.com/ukfiscal/taxdrag/pkg/taxyear"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by ApplyEnvironment.
const (
	EnvBaseYear        = "TAXDRAG_BASE_YEAR"
	EnvTaxpayers       = "TAXDRAG_TAXPAYERS"
	EnvCPIRate         = "TAXDRAG_CPI_RATE"
	EnvRPIRate         = "TAXDRAG_RPI_RATE"
	EnvWageRate        = "TAXDRAG_WAGE_RATE"
	EnvProjectionYears = "TAXDRAG_PROJECTION_YEARS"
	EnvGridPoints      = "TAXDRAG_GRID_POINTS"
)

var envKeys = []string{
	EnvBaseYear, EnvTaxpayers, EnvCPIRate, EnvRPIRate, EnvWageRate, EnvProjectionYears, EnvGridPoints,
}

// Grid resolution bounds. Below the minimum the rounded output is no longer
// stable; above the maximum a run takes too long to be interactive.
const (
	MinGridPoints = 1_000
	MaxGridPoints = 5_000_000
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their 2024/25 defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ApplyEnvironment overrides config from TAXDRAG_* variables. Values are read
// from the given env files first (missing files are skipped) and then from
// the process environment, which wins.
func (ip *InputParser) ApplyEnvironment(config *domain.Configuration, envFiles ...string) error {
	vars := map[string]string{}
	for _, f := range envFiles {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	for _, key := range envKeys {
		raw, ok := vars[key]
		if !ok || raw == "" {
			continue
		}
		if err := applyEnvValue(config, key, raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func applyEnvValue(config *domain.Configuration, key, raw string) error {
	switch key {
	case EnvBaseYear:
		year, err := taxyear.Parse(raw)
		if err != nil {
			return err
		}
		config.BaseYear = year
	case EnvTaxpayers:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		config.Taxpayers = n
	case EnvProjectionYears:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		config.Assumptions.ProjectionYears = n
	case EnvGridPoints:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		config.Distribution.GridPoints = n
	default:
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid rate %q", raw)
		}
		switch key {
		case EnvCPIRate:
			config.Assumptions.CPIRate = rate
		case EnvRPIRate:
			config.Assumptions.RPIRate = rate
		case EnvWageRate:
			config.Assumptions.WageRate = rate
		}
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}
	if config.BaseYear < 1990 || config.BaseYear > 2100 {
		return fmt.Errorf("base year must be between 1990 and 2100, got %d", config.BaseYear)
	}
	if config.Taxpayers <= 0 {
		return fmt.Errorf("taxpayers must be positive")
	}

	if err := config.Policy.Validate(); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}

	if err := ip.validateDistribution(&config.Distribution); err != nil {
		return fmt.Errorf("distribution validation failed: %w", err)
	}

	if err := config.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	return nil
}

// validateDistribution checks the calibration and grid settings
func (ip *InputParser) validateDistribution(d *domain.DistributionSettings) error {
	if d.MedianIncome <= 0 {
		return fmt.Errorf("median income must be positive")
	}
	if d.MeanIncome <= d.MedianIncome {
		return fmt.Errorf("mean income (%.0f) must exceed median income (%.0f) for a lognormal fit", d.MeanIncome, d.MedianIncome)
	}
	if d.MinIncome <= 0 {
		return fmt.Errorf("min income must be positive")
	}
	if d.MaxIncome <= d.MinIncome {
		return fmt.Errorf("max income must exceed min income")
	}
	if d.MaxIncome <= d.MeanIncome {
		return fmt.Errorf("max income (%.0f) must exceed mean income (%.0f)", d.MaxIncome, d.MeanIncome)
	}
	if d.GridPoints < MinGridPoints || d.GridPoints > MaxGridPoints {
		return fmt.Errorf("grid points must be between %d and %d, got %d", MinGridPoints, MaxGridPoints, d.GridPoints)
	}
	return nil
}

// CreateExampleConfiguration returns the 2024/25 reference configuration.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return domain.DefaultConfiguration()
}

// SaveConfiguration writes config as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
