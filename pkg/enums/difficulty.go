package enums

import "fmt"

// Difficulty selects how risky an adventure run is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

var validDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return string(d)
}

// IsValid reports whether the value is a known Difficulty.
func (d Difficulty) IsValid() bool {
	for _, candidate := range validDifficulties {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDifficulty converts raw input into a Difficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	for _, candidate := range validDifficulties {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q", value)
}
