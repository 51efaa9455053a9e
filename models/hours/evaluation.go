package hours

// Evaluation statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// EvaluationResult is the derived open/closed state of one venue at one
// civil instant. It is ephemeral value data: recomputed on every call,
// never cached across ticks.
type EvaluationResult struct {
	Status                 string   `json:"status"`
	ClosesInMin            *int     `json:"closes_in_min,omitempty"`
	LOInMin                *int     `json:"lo_in_min,omitempty"`
	OpensInMin             *int     `json:"opens_in_min,omitempty"`
	ActiveSegment          *Segment `json:"segment,omitempty"`
	CrossedFromPreviousDay bool     `json:"crossed_from_previous_day,omitempty"`
}

// IsOpen reports whether the result carries the open status.
func (r EvaluationResult) IsOpen() bool {
	return r.Status == StatusOpen
}

// Closed is the degraded result used whenever the schedule or the clock
// reading cannot be evaluated: closed, with every countdown absent.
func Closed() EvaluationResult {
	return EvaluationResult{Status: StatusClosed}
}
