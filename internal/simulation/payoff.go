package simulation

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// PayoffDetector watches the end-of-day balance and records the first day it
// reaches zero. The engine stops iterating once a payoff is detected.
type PayoffDetector struct {
	detected bool
	dayIndex int
	date     civil.Date
}

// NewPayoffDetector returns a detector with no payoff recorded.
func NewPayoffDetector() *PayoffDetector {
	return &PayoffDetector{dayIndex: -1}
}

// Observe inspects the end-of-day balance, clamping a non-positive value to
// zero and recording the payoff day on the first occurrence. It returns the
// clamped balance.
func (p *PayoffDetector) Observe(day domain.CalendarDay, balance decimal.Decimal) decimal.Decimal {
	if balance.Sign() > 0 {
		return balance
	}
	if !p.detected {
		p.detected = true
		p.dayIndex = day.Index
		p.date = day.Date
	}
	return decimal.Zero
}

// Detected reports whether a payoff has been observed.
func (p *PayoffDetector) Detected() bool { return p.detected }

// DayIndex returns the payoff day index, or -1 if no payoff occurred.
func (p *PayoffDetector) DayIndex() int { return p.dayIndex }

// Date returns the payoff date. Only meaningful when Detected reports true.
func (p *PayoffDetector) Date() civil.Date { return p.date }
