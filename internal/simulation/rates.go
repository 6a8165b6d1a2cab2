package simulation

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// RateSchedule resolves the annual interest rate in force on each simulated
// day. Without ARM terms the contract rate holds for the whole run. With ARM
// terms the rate resets to index plus margin on every January 1 after the
// first simulated day.
type RateSchedule struct {
	start civil.Date
	base  decimal.Decimal
	arm   *domain.ARMTerms
}

// NewRateSchedule builds the rate schedule for a run starting at start.
func NewRateSchedule(start civil.Date, base decimal.Decimal, arm *domain.ARMTerms) RateSchedule {
	return RateSchedule{start: start, base: base, arm: arm}
}

// ResetsOn reports whether an ARM reset fires on the given day. A run that
// begins on January 1 does not reset on day zero.
func (s RateSchedule) ResetsOn(day domain.CalendarDay) bool {
	return s.arm != nil && day.IsJanuaryFirst && day.Index > 0
}

// RateOn returns the annual rate in force on the given day.
func (s RateSchedule) RateOn(day domain.CalendarDay) decimal.Decimal {
	if s.arm == nil {
		return s.base
	}
	if day.Date.Year > s.start.Year {
		return s.arm.IndexRate.Add(s.arm.Margin)
	}
	return s.base
}
