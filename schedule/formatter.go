package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Patrick-M8/tabelog-map/models/hours"
)

// CompactToday renders today's own segment list into one display line:
// "11:00–14:00 (LO 13:30) · Break 14:00–17:00 · 17:00–22:00".
// Carried segments are not shown; a day with no segments is "Closed".
func CompactToday(ws *hours.WeeklySchedule, weekdayIdx int) string {
	var segs hours.DaySegments
	if ws != nil {
		segs = ws.Day(weekdayIdx)
	}
	if len(segs) == 0 {
		return "Closed"
	}
	parts := make([]string, 0, len(segs)*2-1)
	for i, seg := range segs {
		if i > 0 {
			parts = append(parts, fmt.Sprintf("Break %s–%s", segs[i-1].Close, seg.Open))
		}
		parts = append(parts, rangeLabel(seg))
	}
	return strings.Join(parts, " · ")
}

// rangeLabel renders one segment, appending last-order sub-times when
// present. The generic sub-time only shows when food/drinks are absent.
func rangeLabel(seg hours.Segment) string {
	label := fmt.Sprintf("%s–%s", seg.Open, seg.Close)
	lo := seg.LastOrder
	if lo.Empty() {
		return label
	}
	var parts []string
	if lo.Food != "" {
		parts = append(parts, "Food "+lo.Food)
	}
	if lo.Drinks != "" {
		parts = append(parts, "Drinks "+lo.Drinks)
	}
	if len(parts) == 0 && lo.Generic != "" {
		parts = append(parts, lo.Generic)
	}
	if len(parts) == 0 {
		return label
	}
	return label + " (LO " + strings.Join(parts, " / ") + ")"
}

// WeekCompact renders the whole week grouped by identical day signatures:
// "Mon–Fri 11:00–14:00 · 17:00–22:00; Sat, Sun closed".
func WeekCompact(ws *hours.WeeklySchedule) string {
	daysBySig := map[string][]string{}
	segsBySig := map[string]hours.DaySegments{}
	var sigOrder []string
	for idx, day := range hours.DayKeys {
		var segs hours.DaySegments
		if ws != nil {
			segs = ws.Day(idx)
		}
		sig := daySignature(segs)
		if _, seen := daysBySig[sig]; !seen {
			sigOrder = append(sigOrder, sig)
		}
		daysBySig[sig] = append(daysBySig[sig], day)
		segsBySig[sig] = segs
	}
	var pieces []string
	for _, sig := range sigOrder {
		label := groupDays(daysBySig[sig])
		if sig == "closed" {
			pieces = append(pieces, label+" closed")
			continue
		}
		labels := make([]string, 0, len(segsBySig[sig]))
		for _, seg := range segsBySig[sig] {
			labels = append(labels, rangeLabel(seg))
		}
		pieces = append(pieces, label+" "+strings.Join(labels, " · "))
	}
	return strings.Join(pieces, "; ")
}

// daySignature builds a comparison key for one day's segments so equal
// days collapse into one weekly line.
func daySignature(segs hours.DaySegments) string {
	if len(segs) == 0 {
		return "closed"
	}
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		var loSig []string
		if !seg.LastOrder.Empty() {
			if seg.LastOrder.Drinks != "" {
				loSig = append(loSig, "drinks:"+seg.LastOrder.Drinks)
			}
			if seg.LastOrder.Food != "" {
				loSig = append(loSig, "food:"+seg.LastOrder.Food)
			}
			if seg.LastOrder.Generic != "" {
				loSig = append(loSig, "generic:"+seg.LastOrder.Generic)
			}
		}
		parts = append(parts, fmt.Sprintf("%s-%s|%s", seg.Open, seg.Close, strings.Join(loSig, ";")))
	}
	return strings.Join(parts, "||")
}

// groupDays compresses a day-key list into display ranges:
// [mon tue wed fri] -> "Mon–Wed, Fri".
func groupDays(days []string) string {
	if len(days) == 0 {
		return ""
	}
	idx := map[string]int{}
	for i, d := range hours.DayKeys {
		idx[d] = i
	}
	sorted := append([]string(nil), days...)
	sort.Slice(sorted, func(i, j int) bool { return idx[sorted[i]] < idx[sorted[j]] })

	var runs [][]string
	run := []string{sorted[0]}
	for _, d := range sorted[1:] {
		if idx[d] == idx[run[len(run)-1]]+1 {
			run = append(run, d)
		} else {
			runs = append(runs, run)
			run = []string{d}
		}
	}
	runs = append(runs, run)

	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		if len(r) == 1 {
			parts = append(parts, hours.DayAbbr[r[0]])
		} else {
			parts = append(parts, fmt.Sprintf("%s–%s", hours.DayAbbr[r[0]], hours.DayAbbr[r[len(r)-1]]))
		}
	}
	return strings.Join(parts, ", ")
}

// FormatNextChange renders the countdown of an evaluation as a short
// status line: "LO in 25m · Closes in 40m" or "Opens in 2h 5m".
func FormatNextChange(res hours.EvaluationResult) string {
	if res.IsOpen() {
		var parts []string
		if res.LOInMin != nil && *res.LOInMin > 0 {
			parts = append(parts, fmt.Sprintf("LO in %dm", *res.LOInMin))
		}
		if res.ClosesInMin != nil {
			parts = append(parts, fmt.Sprintf("Closes in %dm", *res.ClosesInMin))
		}
		if len(parts) == 0 {
			return "Open"
		}
		return strings.Join(parts, " · ")
	}
	if res.OpensInMin == nil {
		return "Closed"
	}
	oi := *res.OpensInMin
	if oi < 60 {
		return fmt.Sprintf("Opens in %dm", oi)
	}
	h, m := oi/60, oi%60
	if m == 0 {
		return fmt.Sprintf("Opens in %dh", h)
	}
	return fmt.Sprintf("Opens in %dh %dm", h, m)
}
