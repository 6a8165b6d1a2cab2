package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one wide row per run).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TraditionalMonths", "TraditionalInterest", "TraditionalTotalPaid", "AllInOnePaidOff", "AllInOneMonths", "AllInOneInterest", "AllInOnePeakBalance", "InterestSavings", "MonthsSaved", "PercentageSavings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	aioMonths := result.AllInOne.MonthsToPayoff
	if !result.AllInOne.PaidOff {
		aioMonths = result.AllInOne.MonthsSimulated
	}
	row := []string{
		intToString(result.Traditional.MonthsToPayoff),
		result.Traditional.TotalInterestPaid.StringFixed(2),
		result.Traditional.TotalPaid.StringFixed(2),
		boolToString(result.AllInOne.PaidOff),
		intToString(aioMonths),
		result.AllInOne.TotalInterestPaid.StringFixed(2),
		result.AllInOne.PeakBalance.StringFixed(2),
		result.Comparison.InterestSavings.StringFixed(2),
		intToString(result.Comparison.MonthsSaved),
		result.Comparison.PercentageSavings.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
