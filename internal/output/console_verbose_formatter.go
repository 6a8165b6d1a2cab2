package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// ConsoleVerboseFormatter renders the full comparison report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	banner := strings.Repeat("=", 81)

	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf, "ALL-IN-ONE LOAN VS TRADITIONAL MORTGAGE ANALYSIS")
	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(&result.Input) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeInputSummary(&buf, result)
	writeTraditionalSection(&buf, &result.Traditional)
	writeAllInOneSection(&buf, &result.AllInOne)
	writeHeadToHead(&buf, result)
	if len(result.Traditional.Schedule) > 0 {
		writeAnnualSchedule(&buf, result.Traditional.Schedule)
	}

	rec := AnalyzeComparison(result)
	fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
	fmt.Fprintln(&buf, "=========================")
	fmt.Fprintf(&buf, "Best product: %s\n", rec.Product)
	fmt.Fprintf(&buf, "Interest Savings: %s (%s)\n", FormatCurrency(rec.InterestSavings), FormatPercentage(rec.PercentageSavings))
	fmt.Fprintf(&buf, "Months Saved: %s\n", FormatMonths(rec.MonthsSaved))
	if rec.Caveat != "" {
		fmt.Fprintf(&buf, "Note: %s\n", rec.Caveat)
	}

	return buf.Bytes(), nil
}

func writeInputSummary(buf *bytes.Buffer, result *domain.SimulationResult) {
	input := result.Input
	fmt.Fprintln(buf, "INPUT SUMMARY")
	fmt.Fprintln(buf, "=============")
	fmt.Fprintf(buf, "%-24s %s\n", "Starting Balance:", FormatCurrency(input.Mortgage.StartingBalance))
	fmt.Fprintf(buf, "%-24s %s%%\n", "Facility Rate:", input.Mortgage.InterestRate.Mul(decimalHundred))
	if input.Mortgage.ARM != nil {
		fmt.Fprintf(buf, "%-24s index %s%% + margin %s%%\n", "ARM Reset (Jan 1):",
			input.Mortgage.ARM.IndexRate.Mul(decimalHundred), input.Mortgage.ARM.Margin.Mul(decimalHundred))
	}
	fmt.Fprintf(buf, "%-24s %s\n", "Property Value:", FormatCurrency(input.Mortgage.PropertyValue))
	fmt.Fprintf(buf, "%-24s %s%%\n", "Loan-To-Value:", input.Mortgage.LoanToValue.Mul(decimalHundred))
	fmt.Fprintf(buf, "%-24s %s\n", "Monthly Income:", FormatCurrency(input.CashFlow.MonthlyIncome))
	fmt.Fprintf(buf, "%-24s %s\n", "Monthly Expenses:", FormatCurrency(input.CashFlow.MonthlyExpenses))
	fmt.Fprintf(buf, "%-24s %s\n", "Deposit Frequency:", input.CashFlow.DepositFrequency)
	if !input.ExtraMonthlyPrincipal.IsZero() {
		fmt.Fprintf(buf, "%-24s %s\n", "Extra Principal:", FormatCurrency(input.ExtraMonthlyPrincipal))
	}
	fmt.Fprintf(buf, "%-24s %s\n", "Start Date:", input.StartDate)
	fmt.Fprintln(buf)
}

func writeTraditionalSection(buf *bytes.Buffer, trad *domain.TraditionalLoanSummary) {
	fmt.Fprintln(buf, "TRADITIONAL FIXED-RATE BASELINE")
	fmt.Fprintln(buf, "===============================")
	payment := FormatCurrency(trad.MonthlyPayment)
	if trad.PaymentDerived {
		payment += " (derived)"
	}
	fmt.Fprintf(buf, "%-24s %s\n", "Monthly Payment:", payment)
	fmt.Fprintf(buf, "%-24s %s\n", "Months to Payoff:", FormatMonths(trad.MonthsToPayoff))
	fmt.Fprintf(buf, "%-24s %s\n", "Total Interest Paid:", FormatCurrency(trad.TotalInterestPaid))
	fmt.Fprintf(buf, "%-24s %s\n", "Total Paid:", FormatCurrency(trad.TotalPaid))
	fmt.Fprintln(buf)
}

func writeAllInOneSection(buf *bytes.Buffer, aio *domain.SimulationSummary) {
	fmt.Fprintln(buf, "ALL-IN-ONE FACILITY")
	fmt.Fprintln(buf, "===================")
	fmt.Fprintf(buf, "%-24s %t\n", "Paid Off:", aio.PaidOff)
	if aio.PaidOff && aio.PayoffDate != nil {
		fmt.Fprintf(buf, "%-24s %s\n", "Payoff Date:", *aio.PayoffDate)
		fmt.Fprintf(buf, "%-24s %s\n", "Months to Payoff:", FormatMonths(aio.MonthsToPayoff))
	} else {
		fmt.Fprintf(buf, "%-24s %s\n", "Ending Balance:", FormatCurrency(aio.EndingBalance))
	}
	fmt.Fprintf(buf, "%-24s %d\n", "Days Simulated:", aio.DaysSimulated)
	fmt.Fprintf(buf, "%-24s %s\n", "Total Interest Paid:", FormatCurrency(aio.TotalInterestPaid))
	fmt.Fprintf(buf, "%-24s %s\n", "Peak Balance:", FormatCurrency(aio.PeakBalance))
	fmt.Fprintf(buf, "%-24s %s\n", "Total Deposits:", FormatCurrency(aio.TotalDeposits))
	fmt.Fprintf(buf, "%-24s %s\n", "Total Withdrawals:", FormatCurrency(aio.TotalWithdrawals))
	if aio.NonViable {
		fmt.Fprintln(buf, "WARNING: monthly cash flow is negative; the facility can never pay off")
	}
	if aio.HomesteadSwitchDayIndex >= 0 {
		fmt.Fprintf(buf, "%-24s day %d\n", "Homestead Switch:", aio.HomesteadSwitchDayIndex)
	}
	fmt.Fprintln(buf)
}

func writeHeadToHead(buf *bytes.Buffer, result *domain.SimulationResult) {
	fmt.Fprintln(buf, "HEAD TO HEAD")
	fmt.Fprintln(buf, "============")
	fmt.Fprintf(buf, "%-30s %15s %15s %15s\n", "COMPONENT", "TRADITIONAL", "ALL-IN-ONE", "DIFFERENCE")
	fmt.Fprintln(buf, strings.Repeat("-", 80))

	aioMonths := result.AllInOne.MonthsToPayoff
	if !result.AllInOne.PaidOff {
		aioMonths = result.AllInOne.MonthsSimulated
	}
	fmt.Fprintf(buf, "%-30s %15d %15d %15d\n", "Months to Payoff",
		result.Traditional.MonthsToPayoff, aioMonths, aioMonths-result.Traditional.MonthsToPayoff)
	cmpLine(buf, "Total Interest Paid", result.Traditional.TotalInterestPaid, result.AllInOne.TotalInterestPaid)
	fmt.Fprintln(buf)
}

// cmpLine prints one table row; the difference column is all-in-one minus
// traditional, so a negative value favors the facility.
func cmpLine(buf *bytes.Buffer, label string, trad, aio decimal.Decimal) {
	diff := aio.Sub(trad)
	fmt.Fprintf(buf, "%-30s %15s %15s %15s\n", label, FormatCurrency(trad), FormatCurrency(aio), FormatCurrency(diff))
}

// writeAnnualSchedule condenses the monthly baseline schedule to one row per
// year plus the final month.
func writeAnnualSchedule(buf *bytes.Buffer, schedule []domain.AmortizationRow) {
	fmt.Fprintln(buf, "BASELINE AMORTIZATION (ANNUAL VIEW)")
	fmt.Fprintln(buf, "===================================")
	fmt.Fprintf(buf, "%6s %15s %13s %13s %18s %15s\n", "Month", "Balance Start", "Payment", "Interest", "Cumulative Int", "Balance End")
	for i, row := range schedule {
		if row.Month%12 != 1 && i != len(schedule)-1 {
			continue
		}
		fmt.Fprintf(buf, "%6d %15s %13s %13s %18s %15s\n", row.Month,
			FormatCurrency(row.BalanceStart), FormatCurrency(row.Payment), FormatCurrency(row.Interest),
			FormatCurrency(row.CumulativeInterest), FormatCurrency(row.BalanceEnd))
	}
	fmt.Fprintln(buf)
}
