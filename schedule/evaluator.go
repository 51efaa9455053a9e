// Package schedule is the weekly-hours evaluation engine: it turns a
// venue's WeeklySchedule plus one civil-time reading into an open/closed
// state with countdowns, a compact display summary, and sort keys.
// Every function here is pure and total: malformed or partial schedule
// data degrades to a closed result, never to an error or a panic.
package schedule

import (
	"github.com/Patrick-M8/tabelog-map/clock"
	"github.com/Patrick-M8/tabelog-map/models/hours"
)

const minutesPerDay = 24 * 60

// candidate is one segment under evaluation. Carried marks a previous
// day's midnight-crossing segment still active in today's early hours.
type candidate struct {
	seg     hours.Segment
	carried bool
}

// Evaluate computes the open/closed state of a schedule at the given civil
// instant. Today's own segments are checked first in list order, then the
// previous day's midnight-crossers; the first in-window segment wins.
// Schedules are assumed non-overlapping, so no further resolution applies.
func Evaluate(ws *hours.WeeklySchedule, now clock.CivilTime) hours.EvaluationResult {
	if ws == nil || now.WeekdayIdx < 0 || now.WeekdayIdx > 6 {
		return hours.Closed()
	}
	nowMin := now.MinuteOfDay()
	today := ws.Day(now.WeekdayIdx)
	prevDay := ws.Day((now.WeekdayIdx + 6) % 7)

	candidates := make([]candidate, 0, len(today)+2)
	for _, seg := range today {
		candidates = append(candidates, candidate{seg: seg})
	}
	for _, seg := range prevDay {
		if seg.CrossesMidnight {
			candidates = append(candidates, candidate{seg: seg, carried: true})
		}
	}

	for _, c := range candidates {
		openMin, err := hours.ClockMinutes(c.seg.Open)
		if err != nil {
			continue
		}
		closeMin, err := hours.ClockMinutes(c.seg.Close)
		if err != nil {
			continue
		}

		var inWindow bool
		var closesIn int
		if !c.seg.CrossesMidnight {
			// Zero-length or inverted same-day segments are invalid.
			if openMin >= closeMin {
				continue
			}
			// Boundary is half-open: [open, close).
			inWindow = openMin <= nowMin && nowMin < closeMin
			closesIn = closeMin - nowMin
		} else {
			// The segment spans the day boundary. open == close
			// degenerates to always-in-window: open 24h from open.
			inWindow = nowMin >= openMin || nowMin < closeMin
			if nowMin >= openMin {
				closesIn = (minutesPerDay - nowMin) + closeMin
			} else {
				closesIn = closeMin - nowMin
			}
		}
		if !inWindow {
			continue
		}

		seg := c.seg
		return hours.EvaluationResult{
			Status:                 hours.StatusOpen,
			ClosesInMin:            &closesIn,
			LOInMin:                lastOrderIn(c.seg, openMin, nowMin),
			ActiveSegment:          &seg,
			CrossedFromPreviousDay: c.carried,
		}
	}

	// No candidate matched. Look for the first future opening among
	// today's own segments; carried segments already started so they
	// are never "upcoming".
	result := hours.Closed()
	for _, seg := range today {
		openMin, err := hours.ClockMinutes(seg.Open)
		if err != nil {
			continue
		}
		if openMin > nowMin {
			opensIn := openMin - nowMin
			result.OpensInMin = &opensIn
			break
		}
	}
	return result
}

// lastOrderIn computes the minutes until the effective last-order cutoff
// of the active segment, using the earliest present sub-time and the same
// crossing-aware arithmetic as the close countdown. A cutoff that already
// passed yields nil; countdowns are never negative.
func lastOrderIn(seg hours.Segment, openMin, nowMin int) *int {
	if seg.LastOrder.Empty() {
		return nil
	}
	loMin := -1
	for _, s := range []string{seg.LastOrder.Generic, seg.LastOrder.Food, seg.LastOrder.Drinks} {
		if s == "" {
			continue
		}
		m, err := hours.ClockMinutes(s)
		if err != nil {
			continue
		}
		if loMin < 0 || m < loMin {
			loMin = m
		}
	}
	if loMin < 0 {
		return nil
	}

	var in int
	if !seg.CrossesMidnight {
		closeMin, err := hours.ClockMinutes(seg.Close)
		if err != nil || loMin > closeMin || loMin < nowMin {
			return nil
		}
		in = loMin - nowMin
		return &in
	}

	if nowMin >= openMin {
		// Evening side of the boundary.
		if loMin >= openMin {
			if loMin < nowMin {
				return nil
			}
			in = loMin - nowMin
		} else {
			// Cutoff falls after midnight.
			in = (minutesPerDay - nowMin) + loMin
		}
		return &in
	}

	// Morning side: an evening cutoff already passed yesterday.
	if loMin >= openMin || loMin < nowMin {
		return nil
	}
	in = loMin - nowMin
	return &in
}
