package simulation

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
	"github.com/mhansen003/all-in-one-loan-simulator-sub001/pkg/dateutil"
)

// DefaultHorizonDays spans a touch over thirty years so any realistic loan
// term fits regardless of how many leap years the run crosses.
const DefaultHorizonDays = 11020

// GenerateCalendar produces the ordered day sequence for one run. Day zero
// is the start date itself. The same start date and length always produce an
// identical sequence.
func GenerateCalendar(start civil.Date, days int) []domain.CalendarDay {
	calendar := make([]domain.CalendarDay, days)
	date := start
	for i := 0; i < days; i++ {
		calendar[i] = domain.CalendarDay{
			Index:          i,
			Date:           date,
			DayOfMonth:     date.Day,
			DaysInMonth:    dateutil.DaysInMonth(date.Year, date.Month),
			IsMonthEnd:     dateutil.IsLastDayOfMonth(date),
			IsJanuaryFirst: date.Month == time.January && date.Day == 1,
			MonthsElapsed:  dateutil.MonthsBetween(start, date),
		}
		date = date.AddDays(1)
	}
	return calendar
}
