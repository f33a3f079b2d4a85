package progression

import (
	"errors"
	"testing"

	"github.com/minsukang/idlequest-backend/pkg/enums"
)

func jobPtr(j enums.Job) *enums.Job {
	return &j
}

func TestMainStat(t *testing.T) {
	if got := MainStat(nil); got != enums.StatATK {
		t.Fatalf("jobless main stat = %s, want atk", got)
	}
	if got := MainStat(jobPtr(enums.JobWarrior)); got != enums.StatATK {
		t.Fatalf("warrior main stat = %s, want atk", got)
	}
	if got := MainStat(jobPtr(enums.JobMage)); got != enums.StatINT {
		t.Fatalf("mage main stat = %s, want int", got)
	}
	if got := MainStat(jobPtr(enums.JobNinja)); got != enums.StatSPD {
		t.Fatalf("ninja main stat = %s, want spd", got)
	}
}

func TestCombatPower(t *testing.T) {
	cases := []struct {
		name string
		job  *enums.Job
		want int
	}{
		{"jobless treats atk as main", nil, 23},
		{"warrior", jobPtr(enums.JobWarrior), 23},
		{"mage", jobPtr(enums.JobMage), 25},
		{"ninja", jobPtr(enums.JobNinja), 27},
	}

	// hp=10 atk=2 int=3 spd=4; luck must never contribute.
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CombatPower(10, 2, 3, 4, tc.job); got != tc.want {
				t.Fatalf("CombatPower = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAllocateStatRejections(t *testing.T) {
	if _, err := AllocateStat(AllocationInput{Stat: enums.StatHP, Requested: 0, Current: 1, Available: 10}); !errors.Is(err, ErrAmountNotPositive) {
		t.Fatalf("zero amount: expected ErrAmountNotPositive, got %v", err)
	}
	if _, err := AllocateStat(AllocationInput{Stat: enums.StatHP, Requested: -3, Current: 1, Available: 10}); !errors.Is(err, ErrAmountNotPositive) {
		t.Fatalf("negative amount: expected ErrAmountNotPositive, got %v", err)
	}
	if _, err := AllocateStat(AllocationInput{Stat: enums.StatATK, Requested: 10, Current: 5, Available: 9}); !errors.Is(err, ErrNotEnoughPoints) {
		t.Fatalf("over-request: expected ErrNotEnoughPoints, got %v", err)
	}
}

func TestAllocateStatAppliesAndClamps(t *testing.T) {
	cases := []struct {
		name string
		in   AllocationInput
		want AllocationResult
	}{
		{
			"plain allocation",
			AllocationInput{Stat: enums.StatATK, Requested: 5, Current: 50, Available: 10},
			AllocationResult{NewValue: 55, PointsUsed: 5},
		},
		{
			"hp clamps at 999 and forfeits overflow",
			AllocationInput{Stat: enums.StatHP, Requested: 10, Current: 995, Available: 10},
			AllocationResult{NewValue: 999, PointsUsed: 4},
		},
		{
			"luk clamps at 999",
			AllocationInput{Stat: enums.StatLUK, Requested: 100, Current: 950, Available: 100},
			AllocationResult{NewValue: 999, PointsUsed: 49},
		},
		{
			"spd clamps at 99",
			AllocationInput{Stat: enums.StatSPD, Requested: 3, Current: 98, Available: 5},
			AllocationResult{NewValue: 99, PointsUsed: 1},
		},
		{
			"already at cap uses nothing",
			AllocationInput{Stat: enums.StatINT, Requested: 1, Current: 99, Available: 2},
			AllocationResult{NewValue: 99, PointsUsed: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AllocateStat(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("AllocateStat(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCapFor(t *testing.T) {
	if got := CapFor(enums.StatHP); got != HPCap {
		t.Fatalf("hp cap = %d, want %d", got, HPCap)
	}
	if got := CapFor(enums.StatLUK); got != LUKCap {
		t.Fatalf("luk cap = %d, want %d", got, LUKCap)
	}
	if got := CapFor(enums.StatATK); got != ATKCap {
		t.Fatalf("atk cap = %d, want %d", got, ATKCap)
	}
}
