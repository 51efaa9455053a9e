package clock

import (
	"fmt"
	"time"
)

// CivilTime is one reading of the configured civil timezone: the weekday
// (Monday-first, 0..6) plus wall-clock hour and minute.
type CivilTime struct {
	WeekdayIdx int
	Hour       int
	Minute     int
}

// MinuteOfDay returns the reading as minutes since local midnight.
func (c CivilTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// Clock supplies the current civil time. It exists so tests can pin
// "Friday 23:59" without touching the system clock.
type Clock interface {
	Now() (CivilTime, error)
}

// ZoneClock reads the system clock in one fixed IANA timezone.
type ZoneClock struct {
	loc *time.Location
}

// NewZoneClock resolves the timezone once at construction.
func NewZoneClock(tzName string) (*ZoneClock, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", tzName, err)
	}
	return &ZoneClock{loc: loc}, nil
}

func (z *ZoneClock) Now() (CivilTime, error) {
	if z == nil || z.loc == nil {
		return CivilTime{}, fmt.Errorf("zone clock not initialized")
	}
	t := time.Now().In(z.loc)
	return FromTime(t), nil
}

// FromTime converts a time.Time into a civil reading. Go weekdays are
// Sunday-first so the index is rotated to Monday-first.
func FromTime(t time.Time) CivilTime {
	return CivilTime{
		WeekdayIdx: (int(t.Weekday()) + 6) % 7,
		Hour:       t.Hour(),
		Minute:     t.Minute(),
	}
}

// MockClock returns a fixed reading, or a fixed error.
// e.g. "Pretend it is Friday at 23:59".
type MockClock struct {
	Reading CivilTime
	Err     error
}

func (m MockClock) Now() (CivilTime, error) {
	if m.Err != nil {
		return CivilTime{}, m.Err
	}
	return m.Reading, nil
}
