package players

import (
	"context"
	"errors"
	"fmt"

	"github.com/minsukang/idlequest-backend/pkg/db"
	"github.com/minsukang/idlequest-backend/pkg/db/models"
	"github.com/minsukang/idlequest-backend/pkg/enums"
	"gorm.io/gorm"
)

// ErrJobTaken reports an AssignJob call against a record whose job was
// already set.
var ErrJobTaken = errors.New("job already assigned")

// Repository exposes player-record persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a players repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate loads the record for id, inserting a fresh one with default
// values on first contact.
func (r *Repository) GetOrCreate(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err == nil {
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	player = models.Player{
		ID:      id,
		Level:   1,
		Gold:    100,
		HP:      1,
		ATK:     1,
		INT:     1,
		SPD:     1,
		LUK:     1,
		Pending: enums.PendingNone,
	}
	if createErr := r.db.WithContext(ctx).Create(&player).Error; createErr != nil {
		// Another instance can win the first-contact insert.
		if db.IsUniqueViolation(createErr, "") {
			if retryErr := r.db.WithContext(ctx).First(&player, "id = ?", id).Error; retryErr == nil {
				return &player, nil
			}
		}
		return nil, createErr
	}
	return &player, nil
}

// SetPending moves the record into the given continuation state.
func (r *Repository) SetPending(ctx context.Context, id string, pending enums.PendingState) error {
	return r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", id).
		UpdateColumn("pending", pending).Error
}

// ClearPending returns the record to the no-continuation state.
func (r *Repository) ClearPending(ctx context.Context, id string) error {
	return r.SetPending(ctx, id, enums.PendingNone)
}

// AssignJob sets the job on a record that has none and clears pending in
// the same statement. The job column is write-once: a zero-row update
// means it was already set and ErrJobTaken is returned.
func (r *Repository) AssignJob(ctx context.Context, id string, job enums.Job) error {
	result := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ? AND job IS NULL", id).
		Updates(map[string]any{
			"job":     job,
			"pending": enums.PendingNone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobTaken
	}
	return nil
}

// ApplyAdventure persists a resolved adventure as one atomic update and
// clears pending.
func (r *Repository) ApplyAdventure(ctx context.Context, id string, update AdventureUpdate) error {
	if err := update.validate(); err != nil {
		return fmt.Errorf("adventure update for %s: %w", id, err)
	}
	return r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"level":       update.Level,
			"gold":        update.Gold,
			"stat_points": update.StatPoints,
			"fatigue":     update.Fatigue,
			"pending":     enums.PendingNone,
		}).Error
}

// ApplyStatAllocation persists one allocation outcome and clears pending.
func (r *Repository) ApplyStatAllocation(ctx context.Context, id string, update StatUpdate) error {
	if err := update.validate(); err != nil {
		return fmt.Errorf("stat update for %s: %w", id, err)
	}
	return r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", id).
		Updates(map[string]any{
			update.Stat.String(): update.Value,
			"stat_points":        update.StatPoints,
			"pending":            enums.PendingNone,
		}).Error
}

// ApplyEnhancement persists one enhancement attempt. Pending is not
// involved: enhancement runs as a direct command.
func (r *Repository) ApplyEnhancement(ctx context.Context, id string, update EnhanceUpdate) error {
	if err := update.validate(); err != nil {
		return fmt.Errorf("enhance update for %s: %w", id, err)
	}
	return r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"gold":         update.Gold,
			"weapon_level": update.WeaponLevel,
		}).Error
}

// ApplyAttendance persists one daily check-in grant.
func (r *Repository) ApplyAttendance(ctx context.Context, id string, update AttendanceUpdate) error {
	if err := update.validate(); err != nil {
		return fmt.Errorf("attendance update for %s: %w", id, err)
	}
	return r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fatigue":            update.Fatigue,
			"last_attendance_on": update.Date,
		}).Error
}
