package salary

import (
	"strings"
	"time"
)

// MonthLayout renders a payroll month as "May 2025".
const MonthLayout = "January 2006"

// Month identifies a payroll period. Its label is the key salary records are
// stored under.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "<FullMonthName> <FourDigitYear>" label. Month names
// are matched case-insensitively.
func ParseMonth(label string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.Join(strings.Fields(label), " "))
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month t falls in, in t's own location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
}

func (m Month) String() string {
	return m.Label()
}

// Range returns [start, end): midnight of the first day of the month up to
// midnight of the first day of the next month, in loc.
func (m Month) Range(loc *time.Location) (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start, end
}
