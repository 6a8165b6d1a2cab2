package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SimulationOptions carries the run controls that are not part of either
// loan product.
type SimulationOptions struct {
	StartDate civil.Date `yaml:"start_date" json:"start_date"`

	// HorizonDays caps the day-by-day walk. Zero selects the default
	// thirty-year horizon.
	HorizonDays int `yaml:"horizon_days,omitempty" json:"horizon_days,omitempty"`

	ExtraMonthlyPrincipal decimal.Decimal `yaml:"extra_monthly_principal,omitempty" json:"extra_monthly_principal,omitempty"`

	// IncludeSchedule keeps the month-by-month baseline schedule on the
	// result for formatters that print it.
	IncludeSchedule bool `yaml:"include_schedule,omitempty" json:"include_schedule,omitempty"`
}

func (o *SimulationOptions) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		StartDate             string `yaml:"start_date"`
		HorizonDays           int    `yaml:"horizon_days"`
		ExtraMonthlyPrincipal string `yaml:"extra_monthly_principal"`
		IncludeSchedule       bool   `yaml:"include_schedule"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if aux.StartDate != "" {
		d, err := civil.ParseDate(aux.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date %q: %w", aux.StartDate, err)
		}
		o.StartDate = d
	}
	var err error
	if o.ExtraMonthlyPrincipal, err = parseDecimalField("extra_monthly_principal", aux.ExtraMonthlyPrincipal); err != nil {
		return err
	}
	o.HorizonDays = aux.HorizonDays
	o.IncludeSchedule = aux.IncludeSchedule
	return nil
}

// Configuration is the top-level YAML document accepted by the CLI.
type Configuration struct {
	Mortgage    MortgageDetails      `yaml:"mortgage" json:"mortgage"`
	CashFlow    CashFlowAnalysis     `yaml:"cash_flow" json:"cash_flow"`
	Traditional TraditionalLoanTerms `yaml:"traditional_loan" json:"traditional_loan"`
	Simulation  SimulationOptions    `yaml:"simulation" json:"simulation"`
}

// ToSimulationInput flattens the configuration into the engine's input form.
func (c *Configuration) ToSimulationInput() SimulationInput {
	return SimulationInput{
		Mortgage:              c.Mortgage,
		CashFlow:              c.CashFlow,
		Traditional:           c.Traditional,
		StartDate:             c.Simulation.StartDate,
		HorizonDays:           c.Simulation.HorizonDays,
		ExtraMonthlyPrincipal: c.Simulation.ExtraMonthlyPrincipal,
	}
}
