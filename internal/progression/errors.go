package progression

import "errors"

var (
	ErrNotEnoughFatigue  = errors.New("not enough fatigue")
	ErrAmountNotPositive = errors.New("allocation amount must be positive")
	ErrNotEnoughPoints   = errors.New("not enough stat points")
	ErrNotEnoughGold     = errors.New("not enough gold")
	ErrAlreadyClaimed    = errors.New("attendance already claimed today")
)
