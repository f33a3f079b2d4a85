package progression

import "github.com/minsukang/idlequest-backend/pkg/enums"

// Stat ceilings. Allocation clamps against these and adventure level
// gains clamp at LevelCap.
const (
	LevelCap = 99
	HPCap    = 999
	ATKCap   = 99
	INTCap   = 99
	SPDCap   = 99
	LUKCap   = 999
)

// AttendanceFatigueReward is the fatigue granted by one daily check-in.
const AttendanceFatigueReward = 30

// AdventureInput carries the record fields one adventure reads.
type AdventureInput struct {
	Difficulty enums.Difficulty
	Level      int
	Fatigue    int
	LUK        int
}

// AdventureResult is the state delta one adventure produces.
type AdventureResult struct {
	LevelsGained     int
	StatPointsGained int
	GoldGained       int
	FatigueSpent     int
}

// AllocationInput describes one stat-allocation request.
type AllocationInput struct {
	Stat      enums.Stat
	Requested int
	Current   int
	Available int
}

// AllocationResult reports how much of an allocation actually landed.
// PointsUsed can be less than requested when the stat hit its ceiling;
// the overflow is forfeited, not refunded.
type AllocationResult struct {
	NewValue   int
	PointsUsed int
}

// EnhanceInput carries the fields weapon enhancement reads.
type EnhanceInput struct {
	WeaponLevel int
	Gold        int
}

// EnhanceResult reports one paid enhancement attempt. Cost is deducted
// whether or not the roll succeeded.
type EnhanceResult struct {
	Success     bool
	Cost        int
	SuccessRate int
}
