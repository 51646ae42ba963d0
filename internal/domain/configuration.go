package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukfiscal/taxdrag/pkg/taxyear"
)

// EconomicAssumptions are the annual growth rates driving the projection.
// Rates are fractions (0.025 == 2.5%).
type EconomicAssumptions struct {
	CPIRate         float64 `yaml:"cpi_rate" json:"cpi_rate"`                 // thresholds in the CPI scenario
	RPIRate         float64 `yaml:"rpi_rate" json:"rpi_rate"`                 // RPI scenario and spending baseline
	WageRate        float64 `yaml:"wage_rate" json:"wage_rate"`               // income growth, identical in every scenario
	ProjectionYears int     `yaml:"projection_years" json:"projection_years"` // years after the base year
}

// DefaultEconomicAssumptions: BoE CPI target, RPI ~1pp above CPI, OBR central AWE forecast.
func DefaultEconomicAssumptions() EconomicAssumptions {
	return EconomicAssumptions{
		CPIRate:         0.025,
		RPIRate:         0.035,
		WageRate:        0.040,
		ProjectionYears: 5,
	}
}

// ErrInvalidAssumptions is returned for unusable growth rates or horizons.
var ErrInvalidAssumptions = errors.New("invalid economic assumptions")

// MaxProjectionYears bounds the horizon.
const MaxProjectionYears = 50

// Validate requires finite rates above -100% and a horizon in
// [0, MaxProjectionYears]. Rates are not otherwise bounded.
func (ea EconomicAssumptions) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"cpi_rate", ea.CPIRate},
		{"rpi_rate", ea.RPIRate},
		{"wage_rate", ea.WageRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidAssumptions, r.name)
		}
		if r.value <= -1 {
			return fmt.Errorf("%w: %s must be greater than -100%%, got %.4f", ErrInvalidAssumptions, r.name, r.value)
		}
	}
	if ea.ProjectionYears < 0 || ea.ProjectionYears > MaxProjectionYears {
		return fmt.Errorf("%w: projection years must be between 0 and %d, got %d",
			ErrInvalidAssumptions, MaxProjectionYears, ea.ProjectionYears)
	}
	return nil
}

// GenerateAssumptions renders the assumptions block printed above reports.
func (ea EconomicAssumptions) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Annual wage growth (AWE): %.1f%% [identical across all scenarios]", ea.WageRate*100),
		fmt.Sprintf("Annual CPI inflation: %.1f%%", ea.CPIRate*100),
		fmt.Sprintf("Annual RPI inflation: %.1f%% [spending growth proxy]", ea.RPIRate*100),
		fmt.Sprintf("Projection horizon: %d years", ea.ProjectionYears),
	}
}

// DistributionSettings calibrates the lognormal income model and controls the
// quadrature grid.
type DistributionSettings struct {
	MedianIncome float64 `yaml:"median_income" json:"median_income"`
	MeanIncome   float64 `yaml:"mean_income" json:"mean_income"`
	MinIncome    float64 `yaml:"min_income" json:"min_income"`
	MaxIncome    float64 `yaml:"max_income" json:"max_income"`
	GridPoints   int     `yaml:"grid_points" json:"grid_points"`
}

// DefaultDistributionSettings is calibrated to ONS ASHE 2024 (median ~£35k,
// mean ~£42k).
func DefaultDistributionSettings() DistributionSettings {
	return DistributionSettings{
		MedianIncome: 35_000,
		MeanIncome:   42_000,
		MinIncome:    1,
		MaxIncome:    600_000,
		GridPoints:   200_000,
	}
}

// Configuration is the full set of inputs for one run.
type Configuration struct {
	BaseYear     int                  `yaml:"base_year" json:"base_year"`
	Taxpayers    int64                `yaml:"taxpayers" json:"taxpayers"`
	Policy       TaxParameters        `yaml:"policy" json:"policy"`
	Distribution DistributionSettings `yaml:"distribution" json:"distribution"`
	Assumptions  EconomicAssumptions  `yaml:"assumptions" json:"assumptions"`
}

// DefaultConfiguration returns the 2024/25 reference run. HMRC estimates
// 34.7 million income taxpayers for 2024.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		BaseYear:     2024,
		Taxpayers:    34_700_000,
		Policy:       DefaultTaxParameters(),
		Distribution: DefaultDistributionSettings(),
		Assumptions:  DefaultEconomicAssumptions(),
	}
}

// BaseTaxYear returns the label of the base year, e.g. "2024/25".
func (c *Configuration) BaseTaxYear() string {
	return taxyear.Label(c.BaseYear)
}

// GrowthFactors are the cumulative (1+r)^t factors for one projection year.
type GrowthFactors struct {
	Wage float64
	CPI  float64
	RPI  float64
}

// FactorsAt returns the growth factors t years after the base year.
func (ea EconomicAssumptions) FactorsAt(t int) GrowthFactors {
	n := float64(t)
	return GrowthFactors{
		Wage: math.Pow(1+ea.WageRate, n),
		CPI:  math.Pow(1+ea.CPIRate, n),
		RPI:  math.Pow(1+ea.RPIRate, n),
	}
}
