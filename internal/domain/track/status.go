package track

import "math"

// Status is the derived per-step state.
type Status string

const (
	StatusPending Status = "pending"
	StatusTodo    Status = "todo"
	StatusDone    Status = "done"
	StatusReject  Status = "reject"
)

// Normalize collapses a raw stored status string into one of the four step
// states. Total over arbitrary input and idempotent: Normalize(Normalize(x))
// == Normalize(x) for every x.
func Normalize(raw string) Status {
	switch raw {
	case "done":
		return StatusDone
	case "todo", "progress":
		return StatusTodo
	case "reject", "rejected":
		return StatusReject
	default:
		return StatusPending
	}
}

// Progress returns the completion percentage for a step-status map,
// round(100 * done / 7).
func Progress(statuses map[Step]Status) int {
	done := 0
	for _, st := range statuses {
		if st == StatusDone {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(StepCount)))
}

// StatusLabel is the user-facing badge text for a step state.
func StatusLabel(s Status) string {
	switch s {
	case StatusDone:
		return "Selesai"
	case StatusTodo:
		return "Sedang Dikerjakan"
	case StatusReject:
		return "Ditolak"
	default:
		return "Terkunci"
	}
}

// Expandable reports whether a step in the given state may be opened by the
// client. Pending steps are locked.
func Expandable(s Status) bool {
	return s != StatusPending
}
