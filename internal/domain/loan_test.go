package domain

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFrequency(t *testing.T) {
	for _, f := range AllFrequencies() {
		parsed, err := ParseFrequency(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	parsed, err := ParseFrequency("  Bi-Weekly  ")
	assert.Error(t, err)
	assert.Empty(t, parsed)

	parsed, err = ParseFrequency(" BIWEEKLY ")
	require.NoError(t, err)
	assert.Equal(t, FrequencyBiweekly, parsed)

	_, err = ParseFrequency("daily")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized deposit frequency")
}

func TestFrequencyValid(t *testing.T) {
	assert.True(t, FrequencyMonthly.Valid())
	assert.True(t, FrequencySemiMonthly.Valid())
	assert.False(t, Frequency("fortnightly").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestConfigurationUnmarshalYAML(t *testing.T) {
	doc := `
mortgage:
  starting_balance: 650000
  interest_rate: 0.08201
  property_value: 1000000
  loan_to_value: 0.80
cash_flow:
  monthly_income: 12000
  monthly_expenses: 7192.14
  deposit_frequency: monthly
traditional_loan:
  annual_rate: 0.065
  monthly_payment: 4167.14
simulation:
  start_date: 2025-06-01
  horizon_days: 11020
`
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	assert.True(t, cfg.Mortgage.StartingBalance.Equal(decimal.NewFromInt(650000)),
		"starting balance parsed as %s", cfg.Mortgage.StartingBalance)
	assert.Equal(t, "0.08201", cfg.Mortgage.InterestRate.String())
	assert.Equal(t, "0.8", cfg.Mortgage.LoanToValue.String())
	assert.Equal(t, "7192.14", cfg.CashFlow.MonthlyExpenses.String())
	assert.Equal(t, FrequencyMonthly, cfg.CashFlow.DepositFrequency)

	require.NotNil(t, cfg.Traditional.MonthlyPayment)
	assert.Equal(t, "4167.14", cfg.Traditional.MonthlyPayment.String())
	assert.Equal(t, 0, cfg.Traditional.TermMonths)

	assert.Equal(t, civil.Date{Year: 2025, Month: 6, Day: 1}, cfg.Simulation.StartDate)
	assert.Equal(t, 11020, cfg.Simulation.HorizonDays)
	assert.Nil(t, cfg.Mortgage.ARM)
}

func TestConfigurationUnmarshalARMAndExtras(t *testing.T) {
	doc := `
mortgage:
  starting_balance: 450000
  interest_rate: 0.075
  property_value: 600000
  loan_to_value: 0.75
  homestead_switch: true
  arm:
    index_rate: 0.043
    margin: 0.035
cash_flow:
  monthly_income: 9000
  monthly_expenses: 5000
  deposit_frequency: biweekly
traditional_loan:
  annual_rate: 0.0625
  term_months: 240
simulation:
  start_date: 2024-01-01
  extra_monthly_principal: 250
  include_schedule: true
`
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	require.NotNil(t, cfg.Mortgage.ARM)
	assert.Equal(t, "0.043", cfg.Mortgage.ARM.IndexRate.String())
	assert.Equal(t, "0.035", cfg.Mortgage.ARM.Margin.String())
	assert.True(t, cfg.Mortgage.HomesteadSwitch)

	assert.Nil(t, cfg.Traditional.MonthlyPayment)
	assert.Equal(t, 240, cfg.Traditional.TermMonths)

	assert.Equal(t, "250", cfg.Simulation.ExtraMonthlyPrincipal.String())
	assert.True(t, cfg.Simulation.IncludeSchedule)
}

func TestConfigurationUnmarshalBadValues(t *testing.T) {
	badDate := `
simulation:
  start_date: June 1st 2025
`
	var cfg Configuration
	err := yaml.Unmarshal([]byte(badDate), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start_date")

	badDecimal := `
mortgage:
  starting_balance: lots
`
	err = yaml.Unmarshal([]byte(badDecimal), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid starting_balance")
}

func TestToSimulationInput(t *testing.T) {
	cfg := Configuration{
		Mortgage: MortgageDetails{
			StartingBalance: decimal.NewFromInt(650000),
			InterestRate:    decimal.NewFromFloat(0.08201),
		},
		CashFlow: CashFlowAnalysis{
			MonthlyIncome:    decimal.NewFromInt(12000),
			MonthlyExpenses:  decimal.NewFromFloat(7192.14),
			DepositFrequency: FrequencyMonthly,
		},
		Traditional: TraditionalLoanTerms{
			AnnualRate: decimal.NewFromFloat(0.065),
		},
		Simulation: SimulationOptions{
			StartDate:             civil.Date{Year: 2025, Month: 6, Day: 1},
			HorizonDays:           365,
			ExtraMonthlyPrincipal: decimal.NewFromInt(100),
		},
	}

	input := cfg.ToSimulationInput()
	assert.True(t, input.Mortgage.StartingBalance.Equal(cfg.Mortgage.StartingBalance))
	assert.Equal(t, cfg.CashFlow.DepositFrequency, input.CashFlow.DepositFrequency)
	assert.Equal(t, cfg.Simulation.StartDate, input.StartDate)
	assert.Equal(t, 365, input.HorizonDays)
	assert.True(t, input.ExtraMonthlyPrincipal.Equal(decimal.NewFromInt(100)))
}
