package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	millisPerHour  = decimal.NewFromInt(int64(time.Hour / time.Millisecond))
	minutesPerHour = decimal.NewFromInt(60)
)

// DayHours holds the hours of one shift. Raw and Net are not clamped: an Out
// recorded before its In yields negative hours and no overtime.
type DayHours struct {
	Raw      decimal.Decimal
	Net      decimal.Decimal
	Overtime decimal.Decimal
}

func ComputeHours(in, out time.Time, breakMinutes int, standardHours decimal.Decimal) DayHours {
	raw := decimal.NewFromInt(out.Sub(in).Milliseconds()).Div(millisPerHour)
	net := raw.Sub(decimal.NewFromInt(int64(breakMinutes)).Div(minutesPerHour))

	overtime := decimal.Zero
	if net.GreaterThan(standardHours) {
		overtime = net.Sub(standardHours)
	}

	return DayHours{Raw: raw, Net: net, Overtime: overtime}
}
