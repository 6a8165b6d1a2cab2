package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports a simulation input that failed a precondition.
// Validation happens before any day is simulated, so a run either fails
// immediately or completes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConvergenceError reports a fixed-payment amortization schedule that did
// not retire the balance within its term. It signals a configuration defect,
// not a slow payoff.
type ConvergenceError struct {
	TermMonths       int
	RemainingBalance decimal.Decimal
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("amortization did not converge: %s still outstanding after %d months",
		e.RemainingBalance.StringFixed(2), e.TermMonths)
}
