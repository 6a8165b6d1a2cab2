package domain

import (
	"github.com/shopspring/decimal"
)

// AmortizationRow is one month of the fixed-rate baseline schedule.
type AmortizationRow struct {
	Month              int             `json:"month"`
	BalanceStart       decimal.Decimal `json:"balance_start"`
	Payment            decimal.Decimal `json:"payment"`
	Interest           decimal.Decimal `json:"interest"`
	Principal          decimal.Decimal `json:"principal"`
	BalanceEnd         decimal.Decimal `json:"balance_end"`
	CumulativeInterest decimal.Decimal `json:"cumulative_interest"`
}

// TraditionalLoanSummary aggregates the fixed-rate baseline schedule.
type TraditionalLoanSummary struct {
	MonthlyPayment    decimal.Decimal   `json:"monthly_payment"`
	PaymentDerived    bool              `json:"payment_derived"`
	MonthsToPayoff    int               `json:"months_to_payoff"`
	TotalInterestPaid decimal.Decimal   `json:"total_interest_paid"`
	TotalPaid         decimal.Decimal   `json:"total_paid"`
	Schedule          []AmortizationRow `json:"schedule,omitempty"`
}

// LoanComparison holds the head-to-head verdict between the two products.
// Savings are signed; a negative value means the traditional loan wins.
type LoanComparison struct {
	InterestSavings   decimal.Decimal `json:"interest_savings"`
	MonthsSaved       int             `json:"months_saved"`
	PercentageSavings decimal.Decimal `json:"percentage_savings"`
}

// SimulationResult is the top-level artifact of one comparison run: the
// input, both product projections, and the verdict. The daily ledger rides
// along for formatters but stays out of the JSON envelope.
type SimulationResult struct {
	Input       SimulationInput        `json:"input"`
	Traditional TraditionalLoanSummary `json:"traditional_loan"`
	AllInOne    SimulationSummary      `json:"all_in_one_loan"`
	Comparison  LoanComparison         `json:"comparison"`

	Days []DailyResult `json:"-"`
}
