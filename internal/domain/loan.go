package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Frequency identifies how often deposits land on the facility.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencySemiMonthly Frequency = "semi-monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencySemiAnnual  Frequency = "semi-annual"
	FrequencyAnnual      Frequency = "annual"
)

// AllFrequencies returns the recognized deposit frequencies, shortest period first.
func AllFrequencies() []Frequency {
	return []Frequency{
		FrequencyWeekly,
		FrequencyBiweekly,
		FrequencySemiMonthly,
		FrequencyMonthly,
		FrequencyQuarterly,
		FrequencySemiAnnual,
		FrequencyAnnual,
	}
}

// ParseFrequency normalizes and validates a frequency string.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencySemiMonthly, FrequencyMonthly,
		FrequencyQuarterly, FrequencySemiAnnual, FrequencyAnnual:
		return f, nil
	}
	return "", fmt.Errorf("unrecognized deposit frequency %q", s)
}

// Valid reports whether f is one of the recognized frequencies.
func (f Frequency) Valid() bool {
	_, err := ParseFrequency(string(f))
	return err == nil
}

// ARMTerms holds the adjustable-rate parameters applied at each January 1 reset.
type ARMTerms struct {
	IndexRate decimal.Decimal `yaml:"index_rate" json:"index_rate"`
	Margin    decimal.Decimal `yaml:"margin" json:"margin"`
}

// UnmarshalYAML decodes rate fields from their raw scalar text so plain YAML
// numbers keep their exact decimal value.
func (a *ARMTerms) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		IndexRate string `yaml:"index_rate"`
		Margin    string `yaml:"margin"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	var err error
	if a.IndexRate, err = parseDecimalField("index_rate", aux.IndexRate); err != nil {
		return err
	}
	if a.Margin, err = parseDecimalField("margin", aux.Margin); err != nil {
		return err
	}
	return nil
}

// MortgageDetails describes the All-In-One facility under evaluation.
// Produced upstream from user/operator input.
type MortgageDetails struct {
	StartingBalance decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	InterestRate    decimal.Decimal `yaml:"interest_rate" json:"interest_rate"` // annual, e.g. 0.08201
	PropertyValue   decimal.Decimal `yaml:"property_value" json:"property_value"`
	LoanToValue     decimal.Decimal `yaml:"loan_to_value" json:"loan_to_value"`
	ARM             *ARMTerms       `yaml:"arm,omitempty" json:"arm,omitempty"`
	HomesteadSwitch bool            `yaml:"homestead_switch,omitempty" json:"homestead_switch,omitempty"`
}

func (m *MortgageDetails) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		StartingBalance string    `yaml:"starting_balance"`
		InterestRate    string    `yaml:"interest_rate"`
		PropertyValue   string    `yaml:"property_value"`
		LoanToValue     string    `yaml:"loan_to_value"`
		ARM             *ARMTerms `yaml:"arm"`
		HomesteadSwitch bool      `yaml:"homestead_switch"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	var err error
	if m.StartingBalance, err = parseDecimalField("starting_balance", aux.StartingBalance); err != nil {
		return err
	}
	if m.InterestRate, err = parseDecimalField("interest_rate", aux.InterestRate); err != nil {
		return err
	}
	if m.PropertyValue, err = parseDecimalField("property_value", aux.PropertyValue); err != nil {
		return err
	}
	if m.LoanToValue, err = parseDecimalField("loan_to_value", aux.LoanToValue); err != nil {
		return err
	}
	m.ARM = aux.ARM
	m.HomesteadSwitch = aux.HomesteadSwitch
	return nil
}

// CashFlowAnalysis carries the monthly aggregates detected upstream by the
// statement-categorization subsystem. The engine treats it as ground truth.
type CashFlowAnalysis struct {
	MonthlyIncome    decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	DepositFrequency Frequency       `yaml:"deposit_frequency" json:"deposit_frequency"`
}

func (c *CashFlowAnalysis) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		MonthlyIncome    string `yaml:"monthly_income"`
		MonthlyExpenses  string `yaml:"monthly_expenses"`
		DepositFrequency string `yaml:"deposit_frequency"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	var err error
	if c.MonthlyIncome, err = parseDecimalField("monthly_income", aux.MonthlyIncome); err != nil {
		return err
	}
	if c.MonthlyExpenses, err = parseDecimalField("monthly_expenses", aux.MonthlyExpenses); err != nil {
		return err
	}
	c.DepositFrequency = Frequency(aux.DepositFrequency)
	return nil
}

// TraditionalLoanTerms describes the fixed-rate baseline. When MonthlyPayment
// is nil the amortizer derives it from the annuity formula over TermMonths.
type TraditionalLoanTerms struct {
	AnnualRate     decimal.Decimal  `yaml:"annual_rate" json:"annual_rate"`
	MonthlyPayment *decimal.Decimal `yaml:"monthly_payment,omitempty" json:"monthly_payment,omitempty"`
	TermMonths     int              `yaml:"term_months,omitempty" json:"term_months,omitempty"` // 0 means the 360-month default
}

func (t *TraditionalLoanTerms) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		AnnualRate     string  `yaml:"annual_rate"`
		MonthlyPayment *string `yaml:"monthly_payment"`
		TermMonths     int     `yaml:"term_months"`
	}
	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	var err error
	if t.AnnualRate, err = parseDecimalField("annual_rate", aux.AnnualRate); err != nil {
		return err
	}
	if aux.MonthlyPayment != nil {
		val, err := decimal.NewFromString(*aux.MonthlyPayment)
		if err != nil {
			return fmt.Errorf("invalid monthly_payment %q: %w", *aux.MonthlyPayment, err)
		}
		t.MonthlyPayment = &val
	}
	t.TermMonths = aux.TermMonths
	return nil
}

// parseDecimalField parses a raw YAML scalar into a decimal, treating an
// absent field as zero.
func parseDecimalField(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	return d, nil
}
