package simulation

import (
	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/moneyutil"
)

// CreditWindowMonths is the contractual draw window over which the credit
// line compresses linearly to zero.
const CreditWindowMonths = 240

var creditWindow = decimal.NewFromInt(CreditWindowMonths)

// CreditLimitModel computes the available credit ceiling as a pure function
// of elapsed months. It is independent of the actual balance and is used
// only for available-credit reporting.
type CreditLimitModel struct {
	PropertyValue decimal.Decimal
	LoanToValue   decimal.Decimal
}

// Limit returns the credit ceiling for the given month offset, floored at
// zero once the draw window has fully closed. Monotonically non-increasing
// in monthsElapsed.
func (m CreditLimitModel) Limit(monthsElapsed int) decimal.Decimal {
	remaining := CreditWindowMonths - monthsElapsed
	if remaining <= 0 {
		return decimal.Zero
	}
	fraction := decimal.NewFromInt(int64(remaining)).Div(creditWindow)
	return moneyutil.RoundCents(m.PropertyValue.Mul(m.LoanToValue).Mul(fraction))
}
