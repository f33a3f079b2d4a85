package enums

import "fmt"

// Job is the character class a player picks once.
type Job string

const (
	JobWarrior Job = "warrior"
	JobMage    Job = "mage"
	JobNinja   Job = "ninja"
)

var validJobs = []Job{
	JobWarrior,
	JobMage,
	JobNinja,
}

// String implements fmt.Stringer.
func (j Job) String() string {
	return string(j)
}

// IsValid reports whether the value is a known Job.
func (j Job) IsValid() bool {
	for _, candidate := range validJobs {
		if candidate == j {
			return true
		}
	}
	return false
}

// ParseJob converts raw input into a Job.
func ParseJob(value string) (Job, error) {
	for _, candidate := range validJobs {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid job %q", value)
}
