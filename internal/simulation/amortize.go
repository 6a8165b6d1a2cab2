package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/moneyutil"
)

// DefaultTermMonths caps the baseline amortization schedule at thirty years.
const DefaultTermMonths = 360

var one = decimal.NewFromInt(1)

// TraditionalAmortizer computes the fixed-rate monthly baseline on the same
// principal the facility starts with. It runs independently of the daily
// engine.
type TraditionalAmortizer struct {
	Principal decimal.Decimal
	Terms     domain.TraditionalLoanTerms
}

// NewTraditionalAmortizer builds an amortizer for the given principal and
// loan terms.
func NewTraditionalAmortizer(principal decimal.Decimal, terms domain.TraditionalLoanTerms) *TraditionalAmortizer {
	return &TraditionalAmortizer{Principal: principal, Terms: terms}
}

// DerivePayment computes the level annuity payment that retires principal
// over termMonths at the given monthly rate, rounded up to the next cent so
// the schedule cannot undershoot the payoff.
func DerivePayment(principal, monthlyRate decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	if monthlyRate.IsZero() {
		return moneyutil.RoundUpCents(principal.Div(decimal.NewFromInt(int64(termMonths))))
	}
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(termMonths)))
	return moneyutil.RoundUpCents(principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one)))
}

// Run produces the month-by-month schedule and its summary. It fails with a
// ValidationError when the payment cannot amortize the loan at all, and with
// a ConvergenceError when the balance survives the full term.
func (a *TraditionalAmortizer) Run() (*domain.TraditionalLoanSummary, error) {
	if !a.Principal.IsPositive() {
		return nil, &ValidationError{Field: "starting_balance",
			Reason: fmt.Sprintf("must be positive, got %s", a.Principal)}
	}
	if !a.Terms.AnnualRate.IsPositive() || a.Terms.AnnualRate.GreaterThan(maxAnnualRate) {
		return nil, &ValidationError{Field: "annual_rate",
			Reason: fmt.Sprintf("must be greater than 0 and at most %s, got %s", maxAnnualRate, a.Terms.AnnualRate)}
	}
	if a.Terms.TermMonths < 0 {
		return nil, &ValidationError{Field: "term_months",
			Reason: fmt.Sprintf("must not be negative, got %d", a.Terms.TermMonths)}
	}
	term := a.Terms.TermMonths
	if term == 0 {
		term = DefaultTermMonths
	}

	monthlyRate := moneyutil.MonthlyRate(a.Terms.AnnualRate)

	payment := decimal.Zero
	derived := false
	if a.Terms.MonthlyPayment != nil {
		payment = *a.Terms.MonthlyPayment
	} else {
		payment = DerivePayment(a.Principal, monthlyRate, term)
		derived = true
	}
	if !payment.IsPositive() {
		return nil, &ValidationError{Field: "monthly_payment",
			Reason: fmt.Sprintf("must be positive, got %s", payment)}
	}

	firstInterest := moneyutil.RoundCents(a.Principal.Mul(monthlyRate))
	if !payment.GreaterThan(firstInterest) {
		return nil, &ValidationError{Field: "monthly_payment",
			Reason: fmt.Sprintf("payment %s does not exceed first-month interest %s, the loan would never amortize",
				payment.StringFixed(2), firstInterest.StringFixed(2))}
	}

	balance := a.Principal
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero
	schedule := make([]domain.AmortizationRow, 0, term)

	for month := 1; month <= term; month++ {
		interest := moneyutil.RoundCents(balance.Mul(monthlyRate))
		pay := moneyutil.Min(payment, balance.Add(interest))
		principal := pay.Sub(interest)
		end := balance.Sub(principal)

		totalInterest = totalInterest.Add(interest)
		totalPaid = totalPaid.Add(pay)
		schedule = append(schedule, domain.AmortizationRow{
			Month:              month,
			BalanceStart:       balance,
			Payment:            pay,
			Interest:           interest,
			Principal:          principal,
			BalanceEnd:         end,
			CumulativeInterest: totalInterest,
		})
		balance = end

		if balance.Sign() <= 0 {
			return &domain.TraditionalLoanSummary{
				MonthlyPayment:    payment,
				PaymentDerived:    derived,
				MonthsToPayoff:    month,
				TotalInterestPaid: totalInterest,
				TotalPaid:         totalPaid,
				Schedule:          schedule,
			}, nil
		}
	}

	return nil, &ConvergenceError{TermMonths: term, RemainingBalance: balance}
}
