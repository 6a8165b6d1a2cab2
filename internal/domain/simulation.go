package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// SimulationInput is the fully resolved input handed to the simulation
// engine. All knobs are explicit; the engine reads nothing from the
// environment.
type SimulationInput struct {
	Mortgage    MortgageDetails      `yaml:"mortgage" json:"mortgage"`
	CashFlow    CashFlowAnalysis     `yaml:"cash_flow" json:"cash_flow"`
	Traditional TraditionalLoanTerms `yaml:"traditional_loan" json:"traditional_loan"`

	StartDate civil.Date `yaml:"start_date" json:"start_date"`

	// HorizonDays caps the day-by-day walk. Zero selects the default
	// thirty-year horizon.
	HorizonDays int `yaml:"horizon_days,omitempty" json:"horizon_days,omitempty"`

	// ExtraMonthlyPrincipal is an optional additional paydown applied on the
	// first of each month.
	ExtraMonthlyPrincipal decimal.Decimal `yaml:"extra_monthly_principal,omitempty" json:"extra_monthly_principal,omitempty"`
}

// CalendarDay is one precomputed entry of the simulation calendar.
type CalendarDay struct {
	Index          int        `json:"index"`
	Date           civil.Date `json:"date"`
	DayOfMonth     int        `json:"day_of_month"`
	DaysInMonth    int        `json:"days_in_month"`
	IsMonthEnd     bool       `json:"is_month_end"`
	IsJanuaryFirst bool       `json:"is_january_first"`
	MonthsElapsed  int        `json:"months_elapsed"`
}

// PostedInterestEntry is a posted interest charge waiting out its grace
// period before payment.
type PostedInterestEntry struct {
	PostedDate civil.Date      `json:"posted_date"`
	DueDate    civil.Date      `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
}

// DailyResult is the per-day ledger row emitted by the engine.
type DailyResult struct {
	DayIndex        int             `json:"day_index"`
	Date            civil.Date      `json:"date"`
	BalanceStart    decimal.Decimal `json:"balance_start"`
	Deposit         decimal.Decimal `json:"deposit"`
	Withdrawal      decimal.Decimal `json:"withdrawal"`
	ExtraPrincipal  decimal.Decimal `json:"extra_principal"`
	NetCashFlow     decimal.Decimal `json:"net_cash_flow"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	InterestAccrued decimal.Decimal `json:"interest_accrued"`
	InterestPosted  decimal.Decimal `json:"interest_posted"`
	InterestPaid    decimal.Decimal `json:"interest_paid"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	BalanceEnd      decimal.Decimal `json:"balance_end"`
}

// SimulationSummary aggregates one simulated facility run.
type SimulationSummary struct {
	PaidOff           bool            `json:"paid_off"`
	NonViable         bool            `json:"non_viable"`
	PayoffDayIndex    int             `json:"payoff_day_index"` // -1 when the horizon was exhausted
	PayoffDate        *civil.Date     `json:"payoff_date,omitempty"`
	MonthsToPayoff    int             `json:"months_to_payoff"` // 0 when the horizon was exhausted
	DaysSimulated     int             `json:"days_simulated"`
	MonthsSimulated   int             `json:"months_simulated"`
	EndingBalance     decimal.Decimal `json:"ending_balance"`
	PeakBalance       decimal.Decimal `json:"peak_balance"`
	TotalInterestPaid decimal.Decimal `json:"total_interest_paid"`
	TotalDeposits     decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals  decimal.Decimal `json:"total_withdrawals"`

	// HomesteadSwitchDayIndex records when the facility crossed twenty-five
	// years of age, or -1 if it never did.
	HomesteadSwitchDayIndex int `json:"homestead_switch_day_index"`
}

// SimulationRun bundles the full ledger with its summary.
type SimulationRun struct {
	Days    []DailyResult     `json:"days"`
	Summary SimulationSummary `json:"summary"`
}
