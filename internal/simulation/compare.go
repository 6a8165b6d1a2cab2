package simulation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Compare reduces the two product summaries into the head-to-head verdict.
// Savings keep their sign: a facility that costs more than the baseline
// shows negative savings instead of being hidden.
func Compare(trad domain.TraditionalLoanSummary, aio domain.SimulationSummary) domain.LoanComparison {
	aioMonths := aio.MonthsToPayoff
	if !aio.PaidOff {
		// Without a payoff the whole simulated span counts against the
		// facility.
		aioMonths = aio.MonthsSimulated
	}

	savings := trad.TotalInterestPaid.Sub(aio.TotalInterestPaid)
	percentage := decimal.Zero
	if trad.TotalInterestPaid.Sign() > 0 {
		percentage = savings.Div(trad.TotalInterestPaid).Mul(hundred)
	}

	return domain.LoanComparison{
		InterestSavings:   savings,
		MonthsSaved:       trad.MonthsToPayoff - aioMonths,
		PercentageSavings: percentage,
	}
}

// RunComparison runs the daily facility simulation and the fixed-rate
// baseline on the same inputs, then reduces both into the final result.
func (e *SimulationEngine) RunComparison(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error) {
	run, err := e.Run(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("all-in-one simulation failed: %w", err)
	}

	amortizer := NewTraditionalAmortizer(input.Mortgage.StartingBalance, input.Traditional)
	trad, err := amortizer.Run()
	if err != nil {
		return nil, fmt.Errorf("traditional amortization failed: %w", err)
	}

	comparison := Compare(*trad, run.Summary)
	e.Logger.Infof("comparison complete: interest savings %s (%s%%), months saved %d",
		comparison.InterestSavings.StringFixed(2), comparison.PercentageSavings.StringFixed(1), comparison.MonthsSaved)

	return &domain.SimulationResult{
		Input:       input,
		Traditional: *trad,
		AllInOne:    run.Summary,
		Comparison:  comparison,
		Days:        run.Days,
	}, nil
}
