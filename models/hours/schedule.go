package hours

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DayKeys lists the weekday keys Monday-first. Index into this slice is the
// canonical weekday index used across the evaluator and the clock.
var DayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// DayAbbr maps a day key to its display abbreviation.
var DayAbbr = map[string]string{
	"mon": "Mon", "tue": "Tue", "wed": "Wed", "thu": "Thu",
	"fri": "Fri", "sat": "Sat", "sun": "Sun",
}

// LastOrder holds the optional last-order sub-times of a segment. The
// effective last-order instant is the earliest of whichever are present.
type LastOrder struct {
	Generic string `json:"generic,omitempty"`
	Food    string `json:"food,omitempty"`
	Drinks  string `json:"drinks,omitempty"`
}

// Empty reports whether no sub-time is present.
func (lo *LastOrder) Empty() bool {
	return lo == nil || (lo.Generic == "" && lo.Food == "" && lo.Drinks == "")
}

// Segment is one contiguous opening interval within a single civil day.
// Open and Close are wall-clock "HH:MM" strings; CrossesMidnight means the
// close falls on the following calendar day.
type Segment struct {
	Open            string     `json:"open"`
	Close           string     `json:"close"`
	CrossesMidnight bool       `json:"crosses_midnight"`
	LastOrder       *LastOrder `json:"last_order"`
}

// DaySegments is one day's ordered segment list. The upstream dataset
// sometimes encodes a fully-closed day as the literal string "closed"
// instead of an array, so unmarshalling tolerates both shapes.
type DaySegments []Segment

// UnmarshalJSON accepts an array of segments, the string "closed", or null.
func (d *DaySegments) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*d = nil
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		// Any string value means "no segments today".
		*d = nil
		return nil
	}
	var segs []Segment
	if err := json.Unmarshal(data, &segs); err != nil {
		return err
	}
	*d = segs
	return nil
}

// WeeklySchedule is the weekly recurring opening schedule of one venue:
// an ordered segment list per weekday. A nil or empty day means closed
// all day. Insertion order within a day is significant.
type WeeklySchedule struct {
	Mon DaySegments `json:"mon"`
	Tue DaySegments `json:"tue"`
	Wed DaySegments `json:"wed"`
	Thu DaySegments `json:"thu"`
	Fri DaySegments `json:"fri"`
	Sat DaySegments `json:"sat"`
	Sun DaySegments `json:"sun"`
}

// Day returns the segment list for the Monday-first weekday index.
// Out-of-range indexes yield an empty day.
func (w *WeeklySchedule) Day(idx int) DaySegments {
	if w == nil {
		return nil
	}
	switch idx {
	case 0:
		return w.Mon
	case 1:
		return w.Tue
	case 2:
		return w.Wed
	case 3:
		return w.Thu
	case 4:
		return w.Fri
	case 5:
		return w.Sat
	case 6:
		return w.Sun
	}
	return nil
}

// SetDay replaces the segment list for the Monday-first weekday index.
func (w *WeeklySchedule) SetDay(idx int, segs DaySegments) {
	switch idx {
	case 0:
		w.Mon = segs
	case 1:
		w.Tue = segs
	case 2:
		w.Wed = segs
	case 3:
		w.Thu = segs
	case 4:
		w.Fri = segs
	case 5:
		w.Sat = segs
	case 6:
		w.Sun = segs
	}
}

// ClockMinutes parses a "HH:MM" wall-clock string into minutes since
// midnight. Hour 24 wraps to 0, matching the upstream dataset where
// "24:00" marks midnight.
func ClockMinutes(s string) (int, error) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("malformed clock hour %q: %w", s, err)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("malformed clock minute %q: %w", s, err)
	}
	if hour == 24 {
		hour = 0
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}
