package salary

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/attendance"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
)

const (
	PolicyFirstRecorded  = "first_recorded"
	PolicyEarliestLatest = "earliest_latest"
)

// DailyPair is the resolved shift of one calendar day.
type DailyPair struct {
	Date         time.Time // local midnight
	In           time.Time
	Out          time.Time
	BreakMinutes int
}

// PairPolicy picks the In and Out punches of one day. Punches arrive in
// recorded order. ok is false when the day has no usable pair.
type PairPolicy func(punches []attendance.Attendance) (pair DailyPair, ok bool)

func PairPolicyByName(name string) (PairPolicy, error) {
	switch name {
	case "", PolicyFirstRecorded:
		return FirstRecorded, nil
	case PolicyEarliestLatest:
		return EarliestInLatestOut, nil
	default:
		return nil, fmt.Errorf("%w: %q", salary.ErrUnknownPairPolicy, name)
	}
}

// FirstRecorded uses the first In, the first Out and the first Break in
// recorded order, regardless of their timestamps. Later punches of the same
// status are ignored.
func FirstRecorded(punches []attendance.Attendance) (DailyPair, bool) {
	in := firstPunch(punches, attendance.StatusIn)
	out := firstPunch(punches, attendance.StatusOut)
	if in == nil || out == nil {
		return DailyPair{}, false
	}

	pair := DailyPair{In: in.Timestamp, Out: out.Timestamp}
	if brk := firstPunch(punches, attendance.StatusBreak); brk != nil {
		pair.BreakMinutes = brk.BreakDuration
	}
	return pair, true
}

// EarliestInLatestOut spans the earliest In to the latest Out and deducts
// every Break punch of the day.
func EarliestInLatestOut(punches []attendance.Attendance) (DailyPair, bool) {
	var (
		pair          DailyPair
		hasIn, hasOut bool
	)
	for _, p := range punches {
		switch p.Status {
		case attendance.StatusIn:
			if !hasIn || p.Timestamp.Before(pair.In) {
				pair.In = p.Timestamp
				hasIn = true
			}
		case attendance.StatusOut:
			if !hasOut || p.Timestamp.After(pair.Out) {
				pair.Out = p.Timestamp
				hasOut = true
			}
		case attendance.StatusBreak:
			pair.BreakMinutes += p.BreakDuration
		}
	}
	if !hasIn || !hasOut {
		return DailyPair{}, false
	}
	return pair, true
}

func firstPunch(punches []attendance.Attendance, status attendance.Status) *attendance.Attendance {
	for i := range punches {
		if punches[i].Status == status {
			return &punches[i]
		}
	}
	return nil
}

// ResolveDays groups punches by their calendar date in loc and runs each day
// through policy. Days come back in the order their first punch appears;
// days without a pair are dropped.
func ResolveDays(punches []attendance.Attendance, loc *time.Location, policy PairPolicy) []DailyPair {
	var dates []time.Time
	byDate := make(map[time.Time][]attendance.Attendance)

	for _, p := range punches {
		local := p.Timestamp.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		if _, seen := byDate[day]; !seen {
			dates = append(dates, day)
		}
		byDate[day] = append(byDate[day], p)
	}

	pairs := make([]DailyPair, 0, len(dates))
	for _, day := range dates {
		pair, ok := policy(byDate[day])
		if !ok {
			continue
		}
		pair.Date = day
		pairs = append(pairs, pair)
	}
	return pairs
}
