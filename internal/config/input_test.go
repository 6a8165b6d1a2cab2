package config

import (
	"os"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := `
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
  term_months: 360
simulation:
  start_date: 2025-06-01
  extra_monthly_principal: 250
`

	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "650000", config.Mortgage.StartingBalance.String())
	assert.Equal(t, "0.08201", config.Mortgage.InterestRate.String())
	assert.Equal(t, domain.FrequencyMonthly, config.CashFlow.DepositFrequency)
	require.NotNil(t, config.Traditional.MonthlyPayment)
	assert.Equal(t, "4167.14", config.Traditional.MonthlyPayment.String())
	assert.Equal(t, 360, config.Traditional.TermMonths)
	assert.Equal(t, civil.Date{Year: 2025, Month: 6, Day: 1}, config.Simulation.StartDate)
	assert.Equal(t, "250", config.Simulation.ExtraMonthlyPrincipal.String())
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	// Tab indentation is invalid YAML
	testConfig := `
mortgage:
	starting_balance: 650000
	interest_rate: "not-closed
`

	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	testConfig := `
mortgage:
  starting_balance: -650000
  interest_rate: 0.08201
  property_value: 1000000
  loan_to_value: 0.80
cash_flow:
  monthly_income: 12000
  monthly_expenses: 7192.14
  deposit_frequency: monthly
traditional_loan:
  annual_rate: 0.065
simulation:
  start_date: 2025-06-01
`

	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "starting_balance")
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}

func TestValidateConfiguration_MissingStartDate(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Simulation.StartDate = civil.Date{}

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "start_date is required")
}

func TestValidateConfiguration_BadMortgage(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Mortgage.InterestRate = decimal.RequireFromString("0.30")

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "simulation inputs validation failed")
	assert.Contains(t, err.Error(), "interest_rate")
}

func TestValidateConfiguration_BadFrequency(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.CashFlow.DepositFrequency = "fortnightly"

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized deposit frequency")
}

func TestValidateTraditionalTerms_ZeroRate(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Traditional.AnnualRate = decimal.Zero

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "annual rate must be positive")
}

func TestValidateTraditionalTerms_NegativeTerm(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Traditional.TermMonths = -12

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "term months cannot be negative")
}

func TestValidateTraditionalTerms_ZeroPayment(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	zero := decimal.Zero
	config.Traditional.MonthlyPayment = &zero

	err := parser.ValidateConfiguration(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "monthly payment must be positive")
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	assert.Equal(t, "650000", config.Mortgage.StartingBalance.String())
	assert.Equal(t, "0.08201", config.Mortgage.InterestRate.String())
	assert.Equal(t, "0.8", config.Mortgage.LoanToValue.String())
	assert.Equal(t, "12000", config.CashFlow.MonthlyIncome.String())
	assert.Equal(t, "7192.14", config.CashFlow.MonthlyExpenses.String())
	assert.Equal(t, domain.FrequencyMonthly, config.CashFlow.DepositFrequency)
	require.NotNil(t, config.Traditional.MonthlyPayment)
	assert.Equal(t, "4167.14", config.Traditional.MonthlyPayment.String())
	assert.Equal(t, civil.Date{Year: 2025, Month: 6, Day: 1}, config.Simulation.StartDate)

	// The shipped example must pass its own validation.
	assert.NoError(t, parser.ValidateConfiguration(config))

	input := config.ToSimulationInput()
	assert.Equal(t, config.Mortgage.StartingBalance, input.Mortgage.StartingBalance)
	assert.Equal(t, config.Simulation.StartDate, input.StartDate)
}
