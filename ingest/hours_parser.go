// Package ingest is the data-ingestion boundary: it validates the raw
// records produced by the external scraping pipeline exactly once,
// producing fully-typed venues so nothing downstream probes loose JSON.
package ingest

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Patrick-M8/tabelog-map/models/hours"
	"github.com/Patrick-M8/tabelog-map/models/venue"
)

var (
	rangeRE = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-–~]\s*(\d{1,2}:\d{2})`)
	loRE    = regexp.MustCompile(`(?i)L\.?\s*O\.?\s*(?:(Foods?|Drinks?)\s*)?(\d{1,2}:\d{2})`)
	loNorm  = regexp.MustCompile(`(?i)L\.?\s*\.?O\.?`)
	spaceRE = regexp.MustCompile(`\s+`)
	dayPair = regexp.MustCompile(`([A-Za-z]{3,9})\s*-\s*([A-Za-z]{3,9})`)
)

var dayAliases = map[string]string{
	"mon": "mon", "monday": "mon",
	"tue": "tue", "tuesday": "tue",
	"wed": "wed", "wednesday": "wed",
	"thu": "thu", "thursday": "thu",
	"fri": "fri", "friday": "fri",
	"sat": "sat", "saturday": "sat",
	"sun": "sun", "sunday": "sun",
}

var specialKeys = map[string]string{
	"public holiday":            "public_holiday",
	"day before public holiday": "day_before_public_holiday",
	"day after public holiday":  "day_after_public_holiday",
}

// Exceptions collects schedule information that does not fit the weekly
// grid: free-form policies ("Open year-round") and the segments attached
// to special day kinds like public holidays.
type Exceptions struct {
	Policies []string
	Special  map[string][]hours.Segment
}

// normalizeHoursText folds the scraper's dash and "L.O." spellings into
// one canonical form before the regexes run.
func normalizeHoursText(s string) string {
	r := strings.NewReplacer("〜", "-", "–", "-", "—", "-", "～", "-", " to ", "-")
	s = r.Replace(s)
	s = spaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
	return loNorm.ReplaceAllString(s, "LO")
}

// looseMinutes converts "HH:MM" without range validation; the parser only
// needs it to decide whether a range crosses midnight. Hour 24 wraps to 0.
func looseMinutes(t string) int {
	h, m, found := strings.Cut(t, ":")
	if !found {
		return 0
	}
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	if hour == 24 {
		hour = 0
	}
	return hour*60 + minute
}

// ParseTimeRanges extracts every "HH:MM-HH:MM" range from a detail text
// as segments, attributing each "LO HH:MM" sub-time to the range it
// follows. A close at or before its open marks a midnight crossing.
func ParseTimeRanges(dtl string) []hours.Segment {
	text := normalizeHoursText(dtl)
	ranges := rangeRE.FindAllStringSubmatchIndex(text, -1)
	los := loRE.FindAllStringSubmatchIndex(text, -1)

	segs := make([]hours.Segment, 0, len(ranges))
	for i, r := range ranges {
		open := text[r[2]:r[3]]
		close := text[r[4]:r[5]]
		seg := hours.Segment{
			Open:            open,
			Close:           close,
			CrossesMidnight: looseMinutes(close) <= looseMinutes(open),
		}

		rangeStart := r[0]
		nextRangeStart := len(text) + 1
		if i+1 < len(ranges) {
			nextRangeStart = ranges[i+1][0]
		}
		lo := &hours.LastOrder{}
		for _, l := range los {
			if l[0] < rangeStart || l[0] >= nextRangeStart {
				continue
			}
			kind := ""
			if l[2] >= 0 {
				kind = strings.ToLower(text[l[2]:l[3]])
			}
			t := text[l[4]:l[5]]
			switch {
			case kind == "":
				lo.Generic = t
			case strings.HasPrefix(kind, "drink"):
				lo.Drinks = t
			default:
				lo.Food = t
			}
		}
		if !lo.Empty() {
			seg.LastOrder = lo
		}
		segs = append(segs, seg)
	}
	return segs
}

// splitDayTitle resolves a raw day title ("Mon", "Sat, Sun", "Mon-Fri",
// "Public Holiday") into weekday keys plus special flags. Day ranges may
// wrap around the week end. Unrecognized chunks are kept as raw titles.
func splitDayTitle(title string) (days []string, special map[string]bool, rawTitles []string) {
	special = map[string]bool{}
	if title == "" {
		return nil, special, nil
	}
	for _, chunk := range strings.Split(title, ",") {
		chunk = strings.TrimSpace(chunk)
		key := strings.ToLower(chunk)
		if day, ok := dayAliases[key]; ok {
			days = append(days, day)
			continue
		}
		if sk, ok := specialKeys[key]; ok {
			special[sk] = true
			continue
		}
		normalized := strings.NewReplacer(" to ", "-", "–", "-", "—", "-").Replace(key)
		if m := dayPair.FindStringSubmatch(normalized); m != nil {
			a := resolveDayAlias(m[1])
			b := resolveDayAlias(m[2])
			ia, ib := dayIndex(a), dayIndex(b)
			if ia >= 0 && ib >= 0 {
				if ia <= ib {
					days = append(days, hours.DayKeys[ia:ib+1]...)
				} else {
					days = append(days, hours.DayKeys[ia:]...)
					days = append(days, hours.DayKeys[:ib+1]...)
				}
				continue
			}
		}
		rawTitles = append(rawTitles, chunk)
	}
	return days, special, rawTitles
}

func resolveDayAlias(s string) string {
	s = strings.ToLower(s)
	if day, ok := dayAliases[s]; ok {
		return day
	}
	if len(s) >= 3 {
		return s[:3]
	}
	return s
}

func dayIndex(day string) int {
	for i, d := range hours.DayKeys {
		if d == day {
			return i
		}
	}
	return -1
}

// BuildSchedule assembles a WeeklySchedule from the raw hours rows. A day
// explicitly marked closed stays closed even when a later row names it
// again. Rows whose title never resolves to a weekday become policies.
func BuildSchedule(entries []venue.HoursEntry, notes *venue.HoursNotes) (*hours.WeeklySchedule, Exceptions) {
	weekly := &hours.WeeklySchedule{}
	exceptions := Exceptions{Special: map[string][]hours.Segment{}}
	closedDays := map[string]bool{}

	for _, entry := range entries {
		days, special, rawTitles := splitDayTitle(entry.DayTitle())
		dtl := entry.Detail()
		dtlLower := strings.ToLower(strings.TrimSpace(dtl))

		explicitClosed := dtlLower == "closed" ||
			(strings.Contains(dtlLower, "closed") && !rangeRE.MatchString(dtlLower))
		if explicitClosed {
			for _, day := range days {
				closedDays[day] = true
				weekly.SetDay(dayIndex(day), nil)
			}
			continue
		}

		blocks := ParseTimeRanges(dtl)
		for _, day := range days {
			if closedDays[day] {
				continue
			}
			idx := dayIndex(day)
			weekly.SetDay(idx, append(weekly.Day(idx), blocks...))
		}

		if len(rawTitles) > 0 {
			sorted := append([]string(nil), rawTitles...)
			sort.Strings(sorted)
			exceptions.Policies = append(exceptions.Policies, sorted...)
		}
		for sk := range special {
			exceptions.Special[sk] = append(exceptions.Special[sk], blocks...)
		}
	}

	if notes != nil && notes.ClosedOn != "" {
		exceptions.Policies = append(exceptions.Policies, notes.ClosedOn)
	}
	return weekly, exceptions
}

// PolicyChips normalizes the free-form policies into the short chips the
// map frontend shows.
func PolicyChips(policies []string) []string {
	chips := make([]string, 0, len(policies))
	for _, p := range policies {
		low := strings.ToLower(p)
		switch {
		case strings.Contains(low, "open year"):
			chips = append(chips, "Open year-round")
		case strings.Contains(low, "not fixed") || strings.Contains(low, "irregular"):
			chips = append(chips, "Hours vary")
		case strings.Contains(low, "new year"):
			chips = append(chips, "New Year hours differ")
		default:
			chips = append(chips, p)
		}
	}
	return chips
}
