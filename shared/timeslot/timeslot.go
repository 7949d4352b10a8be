package timeslot

import (
	"fmt"
	"time"

	"atrium/shared/failure"
)

const (
	clockLayout      = "15:04"
	minutesPerHour   = 60
	minutesPerDay    = 24 * 60
	DateLayout       = "2006-01-02"
	ErrMsgInvalid    = "start time must be before end time"
	ErrMsgBadClock   = "time must be in HH:MM format"
	ErrMsgOutOfRange = "time must be within a single day"
)

// Interval is a half-open time range [Start, End) expressed in minutes since
// midnight. Touching intervals do not overlap.
type Interval struct {
	Start int
	End   int
}

// New builds an Interval from minute offsets. It fails when the range is
// empty, inverted, or reaches outside a single day.
func New(start, end int) (Interval, error) {
	if start < 0 || end > minutesPerDay {
		return Interval{}, failure.BadRequestFromString(ErrMsgOutOfRange) // nolint:wrapcheck
	}

	if start >= end {
		return Interval{}, failure.BadRequestFromString(ErrMsgInvalid) // nolint:wrapcheck
	}

	return Interval{Start: start, End: end}, nil
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(value string) (int, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, failure.BadRequestFromString(ErrMsgBadClock) // nolint:wrapcheck
	}

	return parsed.Hour()*minutesPerHour + parsed.Minute(), nil
}

// Parse builds an Interval from two "HH:MM" strings.
func Parse(start, end string) (Interval, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}

	endMin, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}

	return New(startMin, endMin)
}

// FromTimes builds an Interval from two time-of-day values, ignoring the date
// component.
func FromTimes(start, end time.Time) (Interval, error) {
	return New(
		start.Hour()*minutesPerHour+start.Minute(),
		end.Hour()*minutesPerHour+end.Minute(),
	)
}

// Overlaps reports whether two half-open intervals share any minute.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether the given minute offset falls inside the interval.
func (i Interval) Contains(minute int) bool {
	return minute >= i.Start && minute < i.End
}

// StartClock returns the interval start formatted as "HH:MM".
func (i Interval) StartClock() string {
	return formatClock(i.Start)
}

// EndClock returns the interval end formatted as "HH:MM".
func (i Interval) EndClock() string {
	return formatClock(i.End)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.StartClock(), i.EndClock())
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/minutesPerHour, minute%minutesPerHour)
}
