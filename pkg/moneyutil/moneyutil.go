package moneyutil

import (
	"github.com/shopspring/decimal"
)

var (
	daysPerYear    = decimal.NewFromInt(365)
	monthsPerYear  = decimal.NewFromInt(12)
	centsPerDollar = decimal.NewFromInt(100)
)

// DailyRate converts an annual rate to the daily rate used for interest
// accrual. The year is always treated as 365 days, leap years included.
func DailyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(daysPerYear)
}

// MonthlyRate converts an annual rate to a monthly rate
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(monthsPerYear)
}

// RoundCents rounds an amount to the nearest cent, halves away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundUpCents rounds an amount up to the next cent
func RoundUpCents(d decimal.Decimal) decimal.Decimal {
	return d.Mul(centsPerDollar).Ceil().Div(centsPerDollar)
}

// Min returns the minimum of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
