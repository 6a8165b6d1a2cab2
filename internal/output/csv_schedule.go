package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// CSVScheduleExporter exports the month-by-month baseline amortization
// schedule.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "schedule-csv" }

func (c CSVScheduleExporter) Format(result *domain.SimulationResult) ([]byte, error) {
	if len(result.Traditional.Schedule) == 0 {
		return nil, fmt.Errorf("result carries no amortization schedule; enable include_schedule")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "BalanceStart", "Payment", "Interest", "Principal", "BalanceEnd", "CumulativeInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range result.Traditional.Schedule {
		record := []string{
			intToString(row.Month),
			row.BalanceStart.StringFixed(2),
			row.Payment.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Principal.StringFixed(2),
			row.BalanceEnd.StringFixed(2),
			row.CumulativeInterest.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
