package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// Recommendation encapsulates the verdict of the product comparison.
type Recommendation struct {
	Product           string
	InterestSavings   decimal.Decimal
	MonthsSaved       int
	PercentageSavings decimal.Decimal

	// Caveat is set when the headline numbers need qualification, for
	// example when the facility never paid off inside the horizon.
	Caveat string
}

// AnalyzeComparison decides which product costs less over its life.
// Extracted from embedded console logic for testability.
func AnalyzeComparison(result *domain.SimulationResult) Recommendation {
	rec := Recommendation{
		InterestSavings:   result.Comparison.InterestSavings,
		MonthsSaved:       result.Comparison.MonthsSaved,
		PercentageSavings: result.Comparison.PercentageSavings,
	}

	switch {
	case result.AllInOne.NonViable:
		rec.Product = "traditional"
		rec.Caveat = "monthly expenses exceed income; the facility balance can never pay down"
	case !result.AllInOne.PaidOff:
		rec.Product = "traditional"
		rec.Caveat = fmt.Sprintf("the facility did not pay off within the %d simulated days; its interest total is open-ended",
			result.AllInOne.DaysSimulated)
	case rec.InterestSavings.IsPositive():
		rec.Product = "all-in-one"
	case rec.InterestSavings.IsNegative():
		rec.Product = "traditional"
	default:
		rec.Product = "even"
	}
	return rec
}
