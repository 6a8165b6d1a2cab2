package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// Average weeks and fortnights per month, matching how lenders quote
// paycheck-frequency conversions.
var (
	weeksPerMonth      = decimal.RequireFromString("4.33")
	fortnightsPerMonth = decimal.RequireFromString("2.17")
	two                = decimal.NewFromInt(2)
	three              = decimal.NewFromInt(3)
	six                = decimal.NewFromInt(6)
	twelve             = decimal.NewFromInt(12)
)

// DepositOn returns the deposit landing on the given day. Deposits post in
// lump sums on fixed anchors: interval frequencies count from day zero,
// day-of-month frequencies anchor on the 1st (and the 15th for semi-monthly).
// The sum over any full period equals the configured monthly income scaled
// to the frequency.
func DepositOn(day domain.CalendarDay, monthlyIncome decimal.Decimal, freq domain.Frequency) decimal.Decimal {
	switch freq {
	case domain.FrequencyWeekly:
		if day.Index%7 == 0 {
			return monthlyIncome.Div(weeksPerMonth)
		}
	case domain.FrequencyBiweekly:
		if day.Index%14 == 0 {
			return monthlyIncome.Div(fortnightsPerMonth)
		}
	case domain.FrequencySemiMonthly:
		if day.DayOfMonth == 1 || day.DayOfMonth == 15 {
			return monthlyIncome.Div(two)
		}
	case domain.FrequencyMonthly:
		if day.DayOfMonth == 1 {
			return monthlyIncome
		}
	case domain.FrequencyQuarterly:
		if day.DayOfMonth == 1 && day.MonthsElapsed%3 == 0 {
			return monthlyIncome.Mul(three)
		}
	case domain.FrequencySemiAnnual:
		if day.DayOfMonth == 1 && day.MonthsElapsed%6 == 0 {
			return monthlyIncome.Mul(six)
		}
	case domain.FrequencyAnnual:
		if day.DayOfMonth == 1 && day.MonthsElapsed%12 == 0 {
			return monthlyIncome.Mul(twelve)
		}
	}
	return decimal.Zero
}

// WithdrawalOn returns the expense draw for the given day. Expenses spread
// evenly across every day of the calendar month, deliberately different from
// the lump-sum deposit policy.
func WithdrawalOn(day domain.CalendarDay, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if monthlyExpenses.IsZero() {
		return decimal.Zero
	}
	return monthlyExpenses.Div(decimal.NewFromInt(int64(day.DaysInMonth)))
}

// ExtraPrincipalOn returns the optional extra principal lump applied on the
// first of each month.
func ExtraPrincipalOn(day domain.CalendarDay, extraMonthly decimal.Decimal) decimal.Decimal {
	if day.DayOfMonth == 1 && extraMonthly.IsPositive() {
		return extraMonthly
	}
	return decimal.Zero
}
