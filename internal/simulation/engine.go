package simulation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/dateutil"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/moneyutil"
)

const (
	// PaymentDelayDays is the statement lag between posting accumulated
	// interest and deducting its payment from the balance.
	PaymentDelayDays = 21

	// HomesteadSwitchMonths is the facility age at which the homestead
	// amortization switch arms. The switch only raises a flag; the
	// re-amortization itself is not part of the product yet.
	HomesteadSwitchMonths = 300
)

var maxAnnualRate = decimal.RequireFromString("0.25")

// SimulationEngine runs the day-by-day all-in-one facility simulation.
// The engine holds no per-run state, so one engine may serve many runs;
// concurrent callers should still construct one engine each.
type SimulationEngine struct {
	Logger Logger
}

// NewSimulationEngine creates an engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. Passing nil restores the no-op
// logger.
func (e *SimulationEngine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// ValidateInput checks every precondition before a run starts. A run either
// fails here or completes; the per-day arithmetic never fails.
func ValidateInput(input domain.SimulationInput) error {
	m := input.Mortgage
	if !m.StartingBalance.IsPositive() {
		return &ValidationError{Field: "starting_balance",
			Reason: fmt.Sprintf("must be positive, got %s", m.StartingBalance)}
	}
	if !m.InterestRate.IsPositive() || m.InterestRate.GreaterThan(maxAnnualRate) {
		return &ValidationError{Field: "interest_rate",
			Reason: fmt.Sprintf("must be greater than 0 and at most %s, got %s", maxAnnualRate, m.InterestRate)}
	}
	if m.ARM != nil {
		if m.ARM.IndexRate.IsNegative() || m.ARM.Margin.IsNegative() {
			return &ValidationError{Field: "arm",
				Reason: "index rate and margin must not be negative"}
		}
		reset := m.ARM.IndexRate.Add(m.ARM.Margin)
		if !reset.IsPositive() || reset.GreaterThan(maxAnnualRate) {
			return &ValidationError{Field: "arm",
				Reason: fmt.Sprintf("index plus margin must be greater than 0 and at most %s, got %s", maxAnnualRate, reset)}
		}
	}
	if m.PropertyValue.IsNegative() {
		return &ValidationError{Field: "property_value",
			Reason: fmt.Sprintf("must not be negative, got %s", m.PropertyValue)}
	}
	if m.LoanToValue.IsNegative() || m.LoanToValue.GreaterThan(decimal.NewFromInt(1)) {
		return &ValidationError{Field: "loan_to_value",
			Reason: fmt.Sprintf("must be between 0 and 1, got %s", m.LoanToValue)}
	}
	if input.CashFlow.MonthlyIncome.IsNegative() {
		return &ValidationError{Field: "monthly_income",
			Reason: fmt.Sprintf("must not be negative, got %s", input.CashFlow.MonthlyIncome)}
	}
	if input.CashFlow.MonthlyExpenses.IsNegative() {
		return &ValidationError{Field: "monthly_expenses",
			Reason: fmt.Sprintf("must not be negative, got %s", input.CashFlow.MonthlyExpenses)}
	}
	if _, err := domain.ParseFrequency(string(input.CashFlow.DepositFrequency)); err != nil {
		return &ValidationError{Field: "deposit_frequency", Reason: err.Error()}
	}
	if !input.StartDate.IsValid() {
		return &ValidationError{Field: "start_date",
			Reason: fmt.Sprintf("must be a valid calendar date, got %s", input.StartDate)}
	}
	if input.HorizonDays < 0 {
		return &ValidationError{Field: "horizon_days",
			Reason: fmt.Sprintf("must not be negative, got %d", input.HorizonDays)}
	}
	if input.ExtraMonthlyPrincipal.IsNegative() {
		return &ValidationError{Field: "extra_monthly_principal",
			Reason: fmt.Sprintf("must not be negative, got %s", input.ExtraMonthlyPrincipal)}
	}
	return nil
}

// Run walks the calendar one day at a time and returns the full ledger with
// its summary. Identical input always produces an identical ledger.
func (e *SimulationEngine) Run(ctx context.Context, input domain.SimulationInput) (*domain.SimulationRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	horizon := input.HorizonDays
	if horizon == 0 {
		horizon = DefaultHorizonDays
	}
	frequency, _ := domain.ParseFrequency(string(input.CashFlow.DepositFrequency))

	calendar := GenerateCalendar(input.StartDate, horizon)
	rates := NewRateSchedule(input.StartDate, input.Mortgage.InterestRate, input.Mortgage.ARM)
	creditModel := CreditLimitModel{
		PropertyValue: input.Mortgage.PropertyValue,
		LoanToValue:   input.Mortgage.LoanToValue,
	}
	detector := NewPayoffDetector()

	e.Logger.Infof("starting all-in-one simulation: balance=%s rate=%s start=%s horizon=%d days",
		input.Mortgage.StartingBalance.StringFixed(2), input.Mortgage.InterestRate, input.StartDate, horizon)

	summary := domain.SimulationSummary{
		PayoffDayIndex:          -1,
		HomesteadSwitchDayIndex: -1,
	}

	netMonthly := input.CashFlow.MonthlyIncome.Sub(input.CashFlow.MonthlyExpenses).Add(input.ExtraMonthlyPrincipal)
	if netMonthly.IsNegative() {
		summary.NonViable = true
		e.Logger.Warnf("monthly cash flow is negative (%s): the facility cannot pay off", netMonthly.StringFixed(2))
	}

	balance := input.Mortgage.StartingBalance
	currentRate := input.Mortgage.InterestRate
	unposted := decimal.Zero
	var pending []domain.PostedInterestEntry
	days := make([]domain.DailyResult, 0, len(calendar))
	lastMonths := 0

	for _, day := range calendar {
		balanceStart := balance

		// 1. January 1 ARM reset (never on day zero).
		if rates.ResetsOn(day) {
			reset := rates.RateOn(day)
			if !reset.Equal(currentRate) {
				e.Logger.Debugf("ARM reset on %s: rate %s -> %s", day.Date, currentRate, reset)
			}
			currentRate = reset
		}

		// 2. One-time homestead switch flag at twenty-five years.
		if input.Mortgage.HomesteadSwitch && summary.HomesteadSwitchDayIndex < 0 &&
			day.MonthsElapsed >= HomesteadSwitchMonths {
			summary.HomesteadSwitchDayIndex = day.Index
			e.Logger.Infof("homestead switch armed on %s (month %d)", day.Date, day.MonthsElapsed)
		}

		// 3. Net today's scheduled cash flow.
		deposit := DepositOn(day, input.CashFlow.MonthlyIncome, frequency)
		withdrawal := WithdrawalOn(day, input.CashFlow.MonthlyExpenses)
		extra := ExtraPrincipalOn(day, input.ExtraMonthlyPrincipal)
		net := deposit.Sub(withdrawal).Add(extra)

		// 4. Refresh the declining credit ceiling.
		creditLimit := creditModel.Limit(day.MonthsElapsed)

		// 5. Cash flow offsets the balance before interest accrues. This
		// ordering is the whole point of the product: a deposit shields the
		// balance from interest the day it lands.
		interim := balance.Sub(net)

		// 6. Accrue daily interest on the interim balance, never negative.
		accrued := decimal.Zero
		if interim.Sign() > 0 {
			accrued = interim.Mul(moneyutil.DailyRate(currentRate))
		}
		unposted = unposted.Add(accrued)

		// 7. On the last day of the month, capitalize the accumulated
		// interest and schedule its payment for twenty-one days out.
		posted := decimal.Zero
		if day.IsMonthEnd && unposted.Sign() > 0 {
			posted = unposted
			balance = balance.Add(posted)
			pending = append(pending, domain.PostedInterestEntry{
				PostedDate: day.Date,
				DueDate:    day.Date.AddDays(PaymentDelayDays),
				Amount:     posted,
			})
			unposted = decimal.Zero
			e.Logger.Debugf("posted %s interest on %s, due %s", posted.StringFixed(2), day.Date, pending[len(pending)-1].DueDate)
		}

		// 8. Pay interest that has served its statement lag.
		paid := decimal.Zero
		for len(pending) > 0 && pending[0].DueDate == day.Date {
			entry := pending[0]
			pending = pending[1:]
			balance = balance.Sub(entry.Amount)
			paid = paid.Add(entry.Amount)
			summary.TotalInterestPaid = summary.TotalInterestPaid.Add(entry.Amount)
			e.Logger.Debugf("paid %s interest on %s (posted %s)", entry.Amount.StringFixed(2), day.Date, entry.PostedDate)
		}

		// 9. Apply the day's net cash flow to the real balance.
		balance = balance.Sub(net)

		// 10. Clamp and terminate on payoff.
		balance = detector.Observe(day, balance)

		summary.TotalDeposits = summary.TotalDeposits.Add(deposit).Add(extra)
		summary.TotalWithdrawals = summary.TotalWithdrawals.Add(withdrawal)
		summary.PeakBalance = moneyutil.Max(summary.PeakBalance, balance)
		lastMonths = day.MonthsElapsed

		days = append(days, domain.DailyResult{
			DayIndex:        day.Index,
			Date:            day.Date,
			BalanceStart:    balanceStart,
			Deposit:         deposit,
			Withdrawal:      withdrawal,
			ExtraPrincipal:  extra,
			NetCashFlow:     net,
			InterestRate:    currentRate,
			InterestAccrued: accrued,
			InterestPosted:  posted,
			InterestPaid:    paid,
			CreditLimit:     creditLimit,
			AvailableCredit: creditLimit.Sub(balance),
			BalanceEnd:      balance,
		})

		if detector.Detected() {
			break
		}
	}

	summary.DaysSimulated = len(days)
	summary.MonthsSimulated = lastMonths + 1
	summary.EndingBalance = days[len(days)-1].BalanceEnd
	if detector.Detected() {
		summary.PaidOff = true
		summary.PayoffDayIndex = detector.DayIndex()
		payoffDate := detector.Date()
		summary.PayoffDate = &payoffDate
		summary.MonthsToPayoff = dateutil.MonthsBetween(input.StartDate, payoffDate) + 1
		e.Logger.Infof("facility paid off on %s after %d days, %s interest paid",
			payoffDate, summary.DaysSimulated, summary.TotalInterestPaid.StringFixed(2))
	} else {
		e.Logger.Infof("horizon exhausted after %d days, ending balance %s, %s interest paid",
			summary.DaysSimulated, summary.EndingBalance.StringFixed(2), summary.TotalInterestPaid.StringFixed(2))
	}

	return &domain.SimulationRun{Days: days, Summary: summary}, nil
}
