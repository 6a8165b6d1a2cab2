package simulation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/dateutil"
)

func depositDays(calendar []domain.CalendarDay, income decimal.Decimal, freq domain.Frequency) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal)
	for _, day := range calendar {
		amount := DepositOn(day, income, freq)
		if !amount.IsZero() {
			out[day.Index] = amount
		}
	}
	return out
}

// TestMonthlyDeposits tests that monthly income lands once per calendar
// month, always on the 1st
func TestMonthlyDeposits(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 365)
	income := decimal.NewFromInt(12000)

	deposits := depositDays(calendar, income, domain.FrequencyMonthly)
	require.Len(t, deposits, 12)
	for index, amount := range deposits {
		assert.Equal(t, 1, calendar[index].DayOfMonth,
			"monthly deposit landed on day-of-month %d", calendar[index].DayOfMonth)
		assert.True(t, amount.Equal(income), "monthly deposit of %s", amount)
	}
}

// TestWeeklyDeposits tests the every-7th-day anchor starting at day zero
func TestWeeklyDeposits(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 365)
	income := decimal.NewFromInt(4330)

	deposits := depositDays(calendar, income, domain.FrequencyWeekly)
	require.Len(t, deposits, 53) // indices 0, 7, ..., 364

	expected := income.Div(decimal.RequireFromString("4.33"))
	for index, amount := range deposits {
		assert.Zero(t, index%7, "weekly deposit on index %d", index)
		assert.True(t, amount.Equal(expected), "weekly deposit %s, want %s", amount, expected)
	}
	// 4330 / 4.33 is exactly 1000.
	assert.True(t, deposits[0].Equal(decimal.NewFromInt(1000)))
}

// TestBiweeklyDeposits tests the every-14th-day anchor
func TestBiweeklyDeposits(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 365)
	income := decimal.NewFromInt(2170)

	deposits := depositDays(calendar, income, domain.FrequencyBiweekly)
	require.Len(t, deposits, 27) // indices 0, 14, ..., 364
	for index, amount := range deposits {
		assert.Zero(t, index%14, "biweekly deposit on index %d", index)
		assert.True(t, amount.Equal(decimal.NewFromInt(1000)), "biweekly deposit %s", amount)
	}
}

// TestSemiMonthlyDeposits tests the 1st-and-15th anchors with half amounts
func TestSemiMonthlyDeposits(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 365)
	income := decimal.NewFromInt(8000)

	deposits := depositDays(calendar, income, domain.FrequencySemiMonthly)
	require.Len(t, deposits, 24)
	for index, amount := range deposits {
		dom := calendar[index].DayOfMonth
		assert.True(t, dom == 1 || dom == 15, "semi-monthly deposit on day-of-month %d", dom)
		assert.True(t, amount.Equal(decimal.NewFromInt(4000)), "semi-monthly deposit %s", amount)
	}
}

// TestLongPeriodDeposits tests quarterly, semi-annual, and annual scaling
func TestLongPeriodDeposits(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 365)
	income := decimal.NewFromInt(1000)

	quarterly := depositDays(calendar, income, domain.FrequencyQuarterly)
	require.Len(t, quarterly, 4) // Jun 1, Sep 1, Dec 1, Mar 1
	for index, amount := range quarterly {
		assert.Equal(t, 1, calendar[index].DayOfMonth)
		assert.Zero(t, calendar[index].MonthsElapsed%3)
		assert.True(t, amount.Equal(decimal.NewFromInt(3000)), "quarterly deposit %s", amount)
	}

	semiAnnual := depositDays(calendar, income, domain.FrequencySemiAnnual)
	require.Len(t, semiAnnual, 2) // Jun 1, Dec 1
	for _, amount := range semiAnnual {
		assert.True(t, amount.Equal(decimal.NewFromInt(6000)))
	}

	annual := depositDays(calendar, income, domain.FrequencyAnnual)
	require.Len(t, annual, 1) // day zero only inside one year
	assert.True(t, annual[0].Equal(decimal.NewFromInt(12000)))
}

// TestZeroIncome tests that a zero income never produces deposits
func TestZeroIncome(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 90)
	for _, freq := range domain.AllFrequencies() {
		deposits := depositDays(calendar, decimal.Zero, freq)
		assert.Empty(t, deposits, "frequency %s produced deposits", freq)
	}
}

// TestWithdrawalsSpreadEvenly tests the daily expense draw within each month
func TestWithdrawalsSpreadEvenly(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 61)
	expenses := decimal.RequireFromString("7192.14")

	// June: 30 days, exact division.
	june := WithdrawalOn(calendar[0], expenses)
	assert.Equal(t, "239.738", june.String())

	// July: 31 days, different daily amount.
	july := WithdrawalOn(calendar[30], expenses)
	assert.True(t, july.LessThan(june))

	// Each month's draws sum back to the monthly amount within tolerance.
	sum := decimal.Zero
	for _, day := range calendar[:30] {
		sum = sum.Add(WithdrawalOn(day, expenses))
	}
	assert.True(t, sum.Equal(expenses), "June draws sum to %s", sum)

	sum = decimal.Zero
	for _, day := range calendar[30:61] {
		sum = sum.Add(WithdrawalOn(day, expenses))
	}
	tolerance := decimal.New(1, -10)
	assert.True(t, sum.Sub(expenses).Abs().LessThan(tolerance), "July draws sum to %s", sum)

	assert.True(t, WithdrawalOn(calendar[0], decimal.Zero).IsZero())
}

// TestExtraPrincipal tests the optional first-of-month principal lump
func TestExtraPrincipal(t *testing.T) {
	calendar := GenerateCalendar(dateutil.MustParseDate("2025-06-01"), 61)
	extra := decimal.NewFromInt(250)

	assert.True(t, ExtraPrincipalOn(calendar[0], extra).Equal(extra))
	assert.True(t, ExtraPrincipalOn(calendar[1], extra).IsZero())
	assert.True(t, ExtraPrincipalOn(calendar[30], extra).Equal(extra)) // July 1
	assert.True(t, ExtraPrincipalOn(calendar[0], decimal.Zero).IsZero())
}
