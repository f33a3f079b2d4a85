package progression

import (
	"errors"
	"testing"

	"github.com/minsukang/idlequest-backend/pkg/enums"
	"github.com/minsukang/idlequest-backend/pkg/rng"
)

// scriptedSource replays queued draws and records how many were consumed.
type scriptedSource struct {
	floats     []float64
	ints       []int
	floatCalls int
	intCalls   int
}

func (s *scriptedSource) Float64() float64 {
	if s.floatCalls >= len(s.floats) {
		panic("scripted source exhausted float draws")
	}
	v := s.floats[s.floatCalls]
	s.floatCalls++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if s.intCalls >= len(s.ints) {
		panic("scripted source exhausted int draws")
	}
	v := s.ints[s.intCalls]
	s.intCalls++
	if v < 0 || v >= n {
		panic("scripted draw out of range for Intn")
	}
	return v
}

func newScriptedEngine(t *testing.T, src *scriptedSource) *Engine {
	t.Helper()
	engine, err := NewEngine(src)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNewEngineRequiresSource(t *testing.T) {
	if _, err := NewEngine(nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLevelUpRollWindows(t *testing.T) {
	cases := []struct {
		name       string
		difficulty enums.Difficulty
		luk        int
		draw       float64
		want       int
	}{
		{"easy low draw gains one", enums.DifficultyEasy, 0, 0.299, 1},
		{"easy high draw gains none", enums.DifficultyEasy, 0, 0.301, 0},
		{"easy luck widens window", enums.DifficultyEasy, 1000, 0.399, 1},
		{"easy beyond luck window", enums.DifficultyEasy, 1000, 0.401, 0},
		{"normal double window", enums.DifficultyNormal, 0, 0.099, 2},
		{"normal single window", enums.DifficultyNormal, 0, 0.101, 1},
		{"normal top of single window", enums.DifficultyNormal, 0, 0.499, 1},
		{"normal miss", enums.DifficultyNormal, 0, 0.501, 0},
		{"normal extreme luck always doubles", enums.DifficultyNormal, 9999, 0.97, 2},
		{"hard double window", enums.DifficultyHard, 0, 0.299, 2},
		{"hard single window", enums.DifficultyHard, 0, 0.301, 1},
		{"hard never misses", enums.DifficultyHard, 0, 0.9999, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newScriptedEngine(t, &scriptedSource{floats: []float64{tc.draw}})
			if got := engine.LevelUpRoll(tc.difficulty, tc.luk); got != tc.want {
				t.Fatalf("LevelUpRoll(%s, luk=%d) with draw %f = %d, want %d",
					tc.difficulty, tc.luk, tc.draw, got, tc.want)
			}
		})
	}
}

func TestResolveAdventureInsufficientFatigue(t *testing.T) {
	src := &scriptedSource{}
	engine := newScriptedEngine(t, src)

	_, err := engine.ResolveAdventure(AdventureInput{
		Difficulty: enums.DifficultyHard,
		Level:      10,
		Fatigue:    2,
		LUK:        0,
	})
	if !errors.Is(err, ErrNotEnoughFatigue) {
		t.Fatalf("expected ErrNotEnoughFatigue, got %v", err)
	}
	if src.floatCalls != 0 || src.intCalls != 0 {
		t.Fatalf("no draws may be consumed on rejection, got %d floats %d ints",
			src.floatCalls, src.intCalls)
	}
}

func TestResolveAdventureGrantsLevelPointsAndGold(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.0}, ints: []int{4, 3}}
	engine := newScriptedEngine(t, src)

	result, err := engine.ResolveAdventure(AdventureInput{
		Difficulty: enums.DifficultyEasy,
		Level:      1,
		Fatigue:    1,
		LUK:        0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := AdventureResult{LevelsGained: 1, StatPointsGained: 5, GoldGained: 13, FatigueSpent: 1}
	if result != want {
		t.Fatalf("unexpected result %+v, want %+v", result, want)
	}
}

func TestResolveAdventureDoubleLevel(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.05}, ints: []int{9, 0, 5}}
	engine := newScriptedEngine(t, src)

	result, err := engine.ResolveAdventure(AdventureInput{
		Difficulty: enums.DifficultyNormal,
		Level:      10,
		Fatigue:    5,
		LUK:        0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := AdventureResult{LevelsGained: 2, StatPointsGained: 11, GoldGained: 25, FatigueSpent: 2}
	if result != want {
		t.Fatalf("unexpected result %+v, want %+v", result, want)
	}
}

func TestResolveAdventureClampsAtLevelCap(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.0}, ints: []int{2}}
	engine := newScriptedEngine(t, src)

	result, err := engine.ResolveAdventure(AdventureInput{
		Difficulty: enums.DifficultyHard,
		Level:      LevelCap,
		Fatigue:    3,
		LUK:        0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.LevelsGained != 0 || result.StatPointsGained != 0 {
		t.Fatalf("capped player must gain no levels or points, got %+v", result)
	}
	if result.GoldGained != 37 {
		t.Fatalf("gold should still pay out at the cap, got %d", result.GoldGained)
	}
}

func TestResolveAdventurePartialClampNearCap(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.0}, ints: []int{7, 1}}
	engine := newScriptedEngine(t, src)

	result, err := engine.ResolveAdventure(AdventureInput{
		Difficulty: enums.DifficultyHard,
		Level:      LevelCap - 1,
		Fatigue:    3,
		LUK:        0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := AdventureResult{LevelsGained: 1, StatPointsGained: 8, GoldGained: 36, FatigueSpent: 3}
	if result != want {
		t.Fatalf("unexpected result %+v, want %+v", result, want)
	}
}

func TestEnhanceWeaponInsufficientGold(t *testing.T) {
	src := &scriptedSource{}
	engine := newScriptedEngine(t, src)

	_, err := engine.EnhanceWeapon(EnhanceInput{WeaponLevel: 0, Gold: 49})
	if !errors.Is(err, ErrNotEnoughGold) {
		t.Fatalf("expected ErrNotEnoughGold, got %v", err)
	}
	if src.intCalls != 0 {
		t.Fatal("no draw may be consumed when the cost check fails")
	}
}

func TestEnhanceWeaponRollBoundary(t *testing.T) {
	// Intn draw 69 becomes roll 70, exactly at the level-0 success rate.
	engine := newScriptedEngine(t, &scriptedSource{ints: []int{69}})
	result, err := engine.EnhanceWeapon(EnhanceInput{WeaponLevel: 0, Gold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Cost != 50 || result.SuccessRate != 70 {
		t.Fatalf("expected boundary success, got %+v", result)
	}

	engine = newScriptedEngine(t, &scriptedSource{ints: []int{70}})
	result, err = engine.EnhanceWeapon(EnhanceInput{WeaponLevel: 0, Gold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatalf("roll one past the rate must fail, got %+v", result)
	}
}

func TestEnhanceCostAndRateCurves(t *testing.T) {
	if got := EnhanceCost(0); got != 50 {
		t.Fatalf("cost at +0 = %d, want 50", got)
	}
	if got := EnhanceCost(3); got != 125 {
		t.Fatalf("cost at +3 = %d, want 125", got)
	}
	if got := EnhanceSuccessRate(0); got != 70 {
		t.Fatalf("rate at +0 = %d, want 70", got)
	}
	if got := EnhanceSuccessRate(6); got != 10 {
		t.Fatalf("rate at +6 = %d, want 10", got)
	}
	if got := EnhanceSuccessRate(20); got != 10 {
		t.Fatalf("rate floors at 10, got %d", got)
	}
}

func TestLevelUpRollDistribution(t *testing.T) {
	source, err := rng.New(12345)
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	engine, err := NewEngine(source)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	const trials = 20000

	easyOnes := 0
	for i := 0; i < trials; i++ {
		if engine.LevelUpRoll(enums.DifficultyEasy, 0) == 1 {
			easyOnes++
		}
	}
	if easyOnes < 5500 || easyOnes > 6500 {
		t.Fatalf("easy single-level rate drifted: %d/%d", easyOnes, trials)
	}

	normalTwos, normalOnes := 0, 0
	for i := 0; i < trials; i++ {
		switch engine.LevelUpRoll(enums.DifficultyNormal, 0) {
		case 2:
			normalTwos++
		case 1:
			normalOnes++
		}
	}
	if normalTwos < 1700 || normalTwos > 2300 {
		t.Fatalf("normal double-level rate drifted: %d/%d", normalTwos, trials)
	}
	if normalOnes < 7500 || normalOnes > 8500 {
		t.Fatalf("normal single-level rate drifted: %d/%d", normalOnes, trials)
	}

	for i := 0; i < trials; i++ {
		if engine.LevelUpRoll(enums.DifficultyHard, 0) == 0 {
			t.Fatal("hard difficulty covers the whole draw range and can never miss")
		}
	}
}
