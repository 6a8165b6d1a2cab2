package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// CSVDetailedExporter exports the facility's day-by-day ledger, one row per
// simulated day.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"DayIndex", "Date", "BalanceStart", "Deposit", "Withdrawal", "ExtraPrincipal", "NetCashFlow", "InterestRate", "InterestAccrued", "InterestPosted", "InterestPaid", "CreditLimit", "AvailableCredit", "BalanceEnd"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, day := range result.Days {
		row := []string{
			intToString(day.DayIndex),
			day.Date.String(),
			day.BalanceStart.StringFixed(2),
			day.Deposit.StringFixed(2),
			day.Withdrawal.StringFixed(2),
			day.ExtraPrincipal.StringFixed(2),
			day.NetCashFlow.StringFixed(2),
			day.InterestRate.String(),
			day.InterestAccrued.StringFixed(2),
			day.InterestPosted.StringFixed(2),
			day.InterestPaid.StringFixed(2),
			day.CreditLimit.StringFixed(2),
			day.AvailableCredit.StringFixed(2),
			day.BalanceEnd.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
