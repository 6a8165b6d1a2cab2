package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// DefaultAssumptions lists the modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest accrues daily on the net balance (actual/365, leap years included)",
	"Accrued interest posts to principal on the last day of each month",
	"Posted interest is paid out of the facility 21 days after posting",
	"Deposits offset the balance the same day they land; expenses draw down daily",
	"The credit limit declines linearly to zero over 240 months",
	"The fixed-rate baseline compounds monthly with interest rounded to cents",
}

// GenerateAssumptions builds the assumptions list from the actual input values.
func GenerateAssumptions(input *domain.SimulationInput) []string {
	out := []string{
		fmt.Sprintf("Facility rate: %s%% annually", input.Mortgage.InterestRate.Mul(decimalHundred)),
		fmt.Sprintf("Baseline rate: %s%% annually", input.Traditional.AnnualRate.Mul(decimalHundred)),
		fmt.Sprintf("Deposit frequency: %s", input.CashFlow.DepositFrequency),
	}
	if input.Mortgage.ARM != nil {
		out = append(out, fmt.Sprintf("ARM reset each January 1 to index %s%% plus margin %s%%",
			input.Mortgage.ARM.IndexRate.Mul(decimalHundred), input.Mortgage.ARM.Margin.Mul(decimalHundred)))
	}
	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
