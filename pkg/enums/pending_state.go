package enums

import "fmt"

// PendingState marks which follow-up answer the conversation is waiting on.
type PendingState string

const (
	PendingNone            PendingState = "none"
	PendingJobSelect       PendingState = "job_select"
	PendingStatAllocation  PendingState = "stat_allocation"
	PendingAdventureSelect PendingState = "adventure_select"
)

var validPendingStates = []PendingState{
	PendingNone,
	PendingJobSelect,
	PendingStatAllocation,
	PendingAdventureSelect,
}

// String implements fmt.Stringer.
func (p PendingState) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PendingState.
func (p PendingState) IsValid() bool {
	for _, candidate := range validPendingStates {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePendingState converts raw input into a PendingState.
func ParsePendingState(value string) (PendingState, error) {
	for _, candidate := range validPendingStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pending state %q", value)
}
