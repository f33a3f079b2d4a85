package progression

import "github.com/minsukang/idlequest-backend/pkg/enums"

// MainStat returns the stat a job's combat power scales from. Players
// without a job fall back to ATK.
func MainStat(job *enums.Job) enums.Stat {
	if job == nil {
		return enums.StatATK
	}
	switch *job {
	case enums.JobMage:
		return enums.StatINT
	case enums.JobNinja:
		return enums.StatSPD
	default:
		return enums.StatATK
	}
}

// CombatPower weighs the job's main stat at triple value and adds the
// other two offensive stats on top of HP. Luck never contributes.
func CombatPower(hp, atk, intStat, spd int, job *enums.Job) int {
	main := atk
	switch MainStat(job) {
	case enums.StatINT:
		main = intStat
	case enums.StatSPD:
		main = spd
	}
	return hp + 3*main + (atk + intStat + spd - main)
}

// CapFor returns the ceiling a stat clamps to during allocation.
func CapFor(stat enums.Stat) int {
	switch stat {
	case enums.StatHP:
		return HPCap
	case enums.StatLUK:
		return LUKCap
	default:
		return ATKCap
	}
}

// AllocateStat validates and applies one allocation request. Requests
// above the available pool are rejected outright; requests that carry a
// stat past its ceiling land clamped, and only the points actually used
// are charged.
func AllocateStat(in AllocationInput) (AllocationResult, error) {
	if in.Requested <= 0 {
		return AllocationResult{}, ErrAmountNotPositive
	}
	if in.Requested > in.Available {
		return AllocationResult{}, ErrNotEnoughPoints
	}

	limit := CapFor(in.Stat)
	newValue := in.Current + in.Requested
	if newValue > limit {
		newValue = limit
	}
	if newValue < 1 {
		newValue = 1
	}

	return AllocationResult{
		NewValue:   newValue,
		PointsUsed: newValue - in.Current,
	}, nil
}
