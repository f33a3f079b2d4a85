// Package progression implements the idle-RPG math: combat power, level
// rolls, adventures, stat allocation, enhancement, and attendance. Every
// function is pure given its inputs and the injected random source; the
// package never touches the record store.
package progression

import (
	"errors"

	"github.com/minsukang/idlequest-backend/pkg/enums"
	"github.com/minsukang/idlequest-backend/pkg/rng"
)

// Engine evaluates the outcomes that consume random draws.
type Engine struct {
	src rng.Source
}

// NewEngine builds an engine around the given random source.
func NewEngine(src rng.Source) (*Engine, error) {
	if src == nil {
		return nil, errors.New("random source is required")
	}
	return &Engine{src: src}, nil
}

// FatigueCost returns the fatigue an adventure at the difficulty burns.
func FatigueCost(difficulty enums.Difficulty) int {
	switch difficulty {
	case enums.DifficultyEasy:
		return 1
	case enums.DifficultyNormal:
		return 2
	default:
		return 3
	}
}

func goldBase(difficulty enums.Difficulty) int {
	switch difficulty {
	case enums.DifficultyEasy:
		return 10
	case enums.DifficultyNormal:
		return 20
	default:
		return 35
	}
}

// LevelUpRoll returns the levels gained by one adventure, 0 to 2. A
// single draw is compared against cumulative windows: the double-gain
// window sits below the single-gain window, so the +2 check always runs
// first and the outcomes are not independent coin flips.
func (e *Engine) LevelUpRoll(difficulty enums.Difficulty, luk int) int {
	r := e.src.Float64()
	bonus := float64(luk) / 10000

	switch difficulty {
	case enums.DifficultyEasy:
		if r < 0.30+bonus {
			return 1
		}
		return 0
	case enums.DifficultyNormal:
		return cumulativeRoll(r, 0.10+bonus, 0.40+bonus)
	default:
		return cumulativeRoll(r, 0.30+bonus, 0.70+bonus)
	}
}

func cumulativeRoll(r, pDouble, pSingle float64) int {
	if r < pDouble {
		return 2
	}
	if r < pDouble+pSingle {
		return 1
	}
	return 0
}

// ResolveAdventure runs one adventure: spends fatigue, rolls level gains
// (clamped at LevelCap), draws one [1,10] stat point grant per level
// actually granted, and draws the gold payout. Insufficient fatigue
// fails before any draw is consumed.
func (e *Engine) ResolveAdventure(in AdventureInput) (AdventureResult, error) {
	cost := FatigueCost(in.Difficulty)
	if in.Fatigue < cost {
		return AdventureResult{}, ErrNotEnoughFatigue
	}

	inc := e.LevelUpRoll(in.Difficulty, in.LUK)
	if in.Level+inc > LevelCap {
		inc = LevelCap - in.Level
	}

	points := 0
	for i := 0; i < inc; i++ {
		points += e.src.Intn(10) + 1
	}

	gold := goldBase(in.Difficulty) + e.src.Intn(6)

	return AdventureResult{
		LevelsGained:     inc,
		StatPointsGained: points,
		GoldGained:       gold,
		FatigueSpent:     cost,
	}, nil
}

// EnhanceCost returns the gold price of attempting an enhancement at the
// current weapon level.
func EnhanceCost(weaponLevel int) int {
	return 50 + 25*weaponLevel
}

// EnhanceSuccessRate returns the success percentage at the current
// weapon level, floored at 10.
func EnhanceSuccessRate(weaponLevel int) int {
	rate := 70 - 10*weaponLevel
	if rate < 10 {
		return 10
	}
	return rate
}

// EnhanceWeapon attempts one enhancement. The cost check happens before
// the draw; once paid, the roll decides success but the gold is spent
// either way.
func (e *Engine) EnhanceWeapon(in EnhanceInput) (EnhanceResult, error) {
	cost := EnhanceCost(in.WeaponLevel)
	if in.Gold < cost {
		return EnhanceResult{}, ErrNotEnoughGold
	}

	rate := EnhanceSuccessRate(in.WeaponLevel)
	roll := e.src.Intn(100) + 1

	return EnhanceResult{
		Success:     roll <= rate,
		Cost:        cost,
		SuccessRate: rate,
	}, nil
}
