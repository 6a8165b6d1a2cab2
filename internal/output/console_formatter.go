package output

import (
	"bytes"
	"fmt"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LOAN COMPARISON SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Starting Balance: %s\n", FormatCurrency(result.Input.Mortgage.StartingBalance))
	fmt.Fprintln(&buf)

	trad := result.Traditional
	fmt.Fprintf(&buf, "traditional: Payment=%s Months=%d Interest=%s\n",
		FormatCurrency(trad.MonthlyPayment), trad.MonthsToPayoff, FormatCurrency(trad.TotalInterestPaid))

	aio := result.AllInOne
	if aio.PaidOff {
		fmt.Fprintf(&buf, "all-in-one: Months=%d Interest=%s Peak=%s\n",
			aio.MonthsToPayoff, FormatCurrency(aio.TotalInterestPaid), FormatCurrency(aio.PeakBalance))
	} else {
		fmt.Fprintf(&buf, "all-in-one: NotPaidOff Months=%d Interest=%s Balance=%s\n",
			aio.MonthsSimulated, FormatCurrency(aio.TotalInterestPaid), FormatCurrency(aio.EndingBalance))
	}

	rec := AnalyzeComparison(result)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n",
		rec.Product, FormatCurrency(rec.InterestSavings), FormatPercentage(rec.PercentageSavings))
	if rec.Caveat != "" {
		fmt.Fprintf(&buf, "Note: %s\n", rec.Caveat)
	}
	return buf.Bytes(), nil
}
