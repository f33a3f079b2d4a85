package enums

import (
	"fmt"
	"strings"
)

// Stat names one of the five allocatable attributes.
type Stat string

const (
	StatHP  Stat = "hp"
	StatATK Stat = "atk"
	StatINT Stat = "int"
	StatSPD Stat = "spd"
	StatLUK Stat = "luk"
)

var validStats = []Stat{
	StatHP,
	StatATK,
	StatINT,
	StatSPD,
	StatLUK,
}

// String implements fmt.Stringer.
func (s Stat) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Stat.
func (s Stat) IsValid() bool {
	for _, candidate := range validStats {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStat converts raw input into a Stat. Input is matched
// case-insensitively since players type stat names by hand.
func ParseStat(value string) (Stat, error) {
	normalized := strings.ToLower(value)
	for _, candidate := range validStats {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stat %q", value)
}
