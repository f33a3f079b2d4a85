package players

import (
	"fmt"

	"github.com/minsukang/idlequest-backend/internal/progression"
	"github.com/minsukang/idlequest-backend/pkg/enums"
	"go.uber.org/multierr"
)

// Each mutation gets its own update type so the record invariants are
// checked at the persistence boundary instead of trusting every caller.
// Values are absolute (the caller computes them under the player lock),
// never deltas.

// AdventureUpdate persists everything one resolved adventure changes.
// Pending is cleared in the same statement.
type AdventureUpdate struct {
	Level      int
	Gold       int
	StatPoints int
	Fatigue    int
}

func (u AdventureUpdate) validate() error {
	var err error
	if u.Level < 1 || u.Level > progression.LevelCap {
		err = multierr.Append(err, fmt.Errorf("level %d out of range", u.Level))
	}
	if u.Gold < 0 {
		err = multierr.Append(err, fmt.Errorf("gold %d negative", u.Gold))
	}
	if u.StatPoints < 0 {
		err = multierr.Append(err, fmt.Errorf("stat points %d negative", u.StatPoints))
	}
	if u.Fatigue < 0 {
		err = multierr.Append(err, fmt.Errorf("fatigue %d negative", u.Fatigue))
	}
	return err
}

// StatUpdate persists one allocation outcome. Pending is cleared in the
// same statement.
type StatUpdate struct {
	Stat       enums.Stat
	Value      int
	StatPoints int
}

func (u StatUpdate) validate() error {
	var err error
	if !u.Stat.IsValid() {
		err = multierr.Append(err, fmt.Errorf("unknown stat %q", u.Stat))
	} else if u.Value < 1 || u.Value > progression.CapFor(u.Stat) {
		err = multierr.Append(err, fmt.Errorf("%s value %d out of range", u.Stat, u.Value))
	}
	if u.StatPoints < 0 {
		err = multierr.Append(err, fmt.Errorf("stat points %d negative", u.StatPoints))
	}
	return err
}

// EnhanceUpdate persists one enhancement attempt. Gold moves on both
// outcomes; weapon level only on success.
type EnhanceUpdate struct {
	Gold        int
	WeaponLevel int
}

func (u EnhanceUpdate) validate() error {
	var err error
	if u.Gold < 0 {
		err = multierr.Append(err, fmt.Errorf("gold %d negative", u.Gold))
	}
	if u.WeaponLevel < 0 {
		err = multierr.Append(err, fmt.Errorf("weapon level %d negative", u.WeaponLevel))
	}
	return err
}

// AttendanceUpdate persists one daily check-in grant.
type AttendanceUpdate struct {
	Fatigue int
	Date    string
}

func (u AttendanceUpdate) validate() error {
	var err error
	if u.Fatigue < 0 {
		err = multierr.Append(err, fmt.Errorf("fatigue %d negative", u.Fatigue))
	}
	if u.Date == "" {
		err = multierr.Append(err, fmt.Errorf("attendance date is empty"))
	}
	return err
}
