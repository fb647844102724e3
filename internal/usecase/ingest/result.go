package ingest

import (
	"fmt"
	"strings"
)

// RowFailure is one rejected spreadsheet row. Row is the 1-based sheet row,
// Context names the natural keys of the row when known.
type RowFailure struct {
	Row     int
	Context string
	Reason  string
}

func (f RowFailure) String() string {
	if f.Context == "" {
		return fmt.Sprintf("Row %d: %s", f.Row, f.Reason)
	}
	return fmt.Sprintf("Row %d (%s): %s", f.Row, f.Context, f.Reason)
}

// Result is the outcome of one upload; failures never abort the batch.
type Result struct {
	Mode      string
	Succeeded int
	Failures  []RowFailure
}

var summaries = map[string]struct{ success, verb string }{
	ModeRequests: {"Successfully uploaded %d requests.", "upload"},
	ModeUpdates:  {"Successfully updated %d request details.", "process"},
	ModeManHours: {"Successfully uploaded/updated %d actual man-hours entries.", "process"},
}

// Message is the human-readable summary returned to the uploader.
func (r Result) Message() string {
	s := summaries[r.Mode]
	msg := fmt.Sprintf(s.success, r.Succeeded)
	if len(r.Failures) > 0 {
		msg += fmt.Sprintf(" Failed to %s %d rows due to errors: %s", s.verb, len(r.Failures), strings.Join(r.FailedRows(), "; "))
	}
	return msg
}

func (r Result) FailedRows() []string {
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.String()
	}
	return out
}
