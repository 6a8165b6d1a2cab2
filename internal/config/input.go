package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/simulation"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/dateutil"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The same checks
// run again inside the engine; validating here reports problems at load time
// with the file still in hand.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Simulation.StartDate.IsZero() {
		return fmt.Errorf("simulation start_date is required")
	}

	if err := simulation.ValidateInput(config.ToSimulationInput()); err != nil {
		return fmt.Errorf("simulation inputs validation failed: %w", err)
	}

	if err := ip.validateTraditionalTerms(&config.Traditional); err != nil {
		return fmt.Errorf("traditional loan validation failed: %w", err)
	}

	return nil
}

// validateTraditionalTerms validates the fixed-rate baseline terms
func (ip *InputParser) validateTraditionalTerms(terms *domain.TraditionalLoanTerms) error {
	if !terms.AnnualRate.IsPositive() {
		return fmt.Errorf("annual rate must be positive")
	}
	if terms.TermMonths < 0 {
		return fmt.Errorf("term months cannot be negative")
	}
	if terms.MonthlyPayment != nil && !terms.MonthlyPayment.IsPositive() {
		return fmt.Errorf("monthly payment must be positive when provided")
	}
	return nil
}

// CreateExampleConfiguration creates the reference scenario: a 650k facility
// against a 6.5% thirty-year fixed baseline.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	monthlyPayment := decimal.RequireFromString("4167.14")

	return &domain.Configuration{
		Mortgage: domain.MortgageDetails{
			StartingBalance: decimal.NewFromInt(650000),
			InterestRate:    decimal.RequireFromString("0.08201"),
			PropertyValue:   decimal.NewFromInt(1000000),
			LoanToValue:     decimal.RequireFromString("0.80"),
		},
		CashFlow: domain.CashFlowAnalysis{
			MonthlyIncome:    decimal.NewFromInt(12000),
			MonthlyExpenses:  decimal.RequireFromString("7192.14"),
			DepositFrequency: domain.FrequencyMonthly,
		},
		Traditional: domain.TraditionalLoanTerms{
			AnnualRate:     decimal.RequireFromString("0.065"),
			MonthlyPayment: &monthlyPayment,
			TermMonths:     360,
		},
		Simulation: domain.SimulationOptions{
			StartDate: dateutil.MustParseDate("2025-06-01"),
		},
	}
}
