package players

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/minsukang/idlequest-backend/pkg/db/models"
	"github.com/minsukang/idlequest-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPlayersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Player{}))
	return db
}

func TestGetOrCreateAppliesDefaults(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, player.ID)
	assert.Equal(t, 1, player.Level)
	assert.Equal(t, 100, player.Gold)
	assert.Equal(t, 0, player.WeaponLevel)
	assert.Nil(t, player.Job)
	assert.Equal(t, 0, player.StatPoints)
	assert.Equal(t, 1, player.HP)
	assert.Equal(t, 1, player.ATK)
	assert.Equal(t, 1, player.INT)
	assert.Equal(t, 1, player.SPD)
	assert.Equal(t, 1, player.LUK)
	assert.Equal(t, 0, player.Fatigue)
	assert.Nil(t, player.LastAttendanceOn)
	assert.Equal(t, enums.PendingNone, player.Pending)
}

func TestGetOrCreateLoadsExistingRecord(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Player{}).Where("id = ?", id).
		UpdateColumn("gold", 42).Error)

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 42, player.Gold, "existing record must be loaded, not recreated")
}

func TestAssignJobIsWriteOnce(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	require.NoError(t, repo.SetPending(ctx, id, enums.PendingJobSelect))

	require.NoError(t, repo.AssignJob(ctx, id, enums.JobWarrior))

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, player.Job)
	assert.Equal(t, enums.JobWarrior, *player.Job)
	assert.Equal(t, enums.PendingNone, player.Pending, "assigning a job clears pending")

	err = repo.AssignJob(ctx, id, enums.JobMage)
	assert.ErrorIs(t, err, ErrJobTaken)

	player, err = repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, enums.JobWarrior, *player.Job, "job must never change once set")
}

func TestSetAndClearPending(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)

	require.NoError(t, repo.SetPending(ctx, id, enums.PendingAdventureSelect))
	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, enums.PendingAdventureSelect, player.Pending)

	require.NoError(t, repo.ClearPending(ctx, id))
	player, err = repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, enums.PendingNone, player.Pending)
}

func TestApplyAdventurePersistsAllFieldsAndClearsPending(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	require.NoError(t, repo.SetPending(ctx, id, enums.PendingAdventureSelect))

	update := AdventureUpdate{Level: 2, Gold: 113, StatPoints: 5, Fatigue: 0}
	require.NoError(t, repo.ApplyAdventure(ctx, id, update))

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, player.Level)
	assert.Equal(t, 113, player.Gold)
	assert.Equal(t, 5, player.StatPoints)
	assert.Equal(t, 0, player.Fatigue)
	assert.Equal(t, enums.PendingNone, player.Pending)
}

func TestApplyStatAllocationWritesNamedColumn(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	require.NoError(t, repo.SetPending(ctx, id, enums.PendingStatAllocation))

	// "int" doubles as a SQL keyword, so it gets its own coverage.
	require.NoError(t, repo.ApplyStatAllocation(ctx, id, StatUpdate{
		Stat:       enums.StatINT,
		Value:      7,
		StatPoints: 3,
	}))

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7, player.INT)
	assert.Equal(t, 3, player.StatPoints)
	assert.Equal(t, enums.PendingNone, player.Pending)

	require.NoError(t, repo.ApplyStatAllocation(ctx, id, StatUpdate{
		Stat:       enums.StatLUK,
		Value:      11,
		StatPoints: 0,
	}))

	player, err = repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 11, player.LUK)
	assert.Equal(t, 0, player.StatPoints)
}

func TestApplyEnhancementLeavesPendingAlone(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	require.NoError(t, repo.SetPending(ctx, id, enums.PendingJobSelect))

	require.NoError(t, repo.ApplyEnhancement(ctx, id, EnhanceUpdate{
		Gold:        50,
		WeaponLevel: 1,
	}))

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 50, player.Gold)
	assert.Equal(t, 1, player.WeaponLevel)
	assert.Equal(t, enums.PendingJobSelect, player.Pending,
		"enhancement runs as a direct command and must not touch pending")
}

func TestApplyAttendancePersistsDateAndFatigue(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)

	require.NoError(t, repo.ApplyAttendance(ctx, id, AttendanceUpdate{
		Fatigue: 30,
		Date:    "2025-06-01",
	}))

	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 30, player.Fatigue)
	require.NotNil(t, player.LastAttendanceOn)
	assert.Equal(t, "2025-06-01", *player.LastAttendanceOn)
}

func TestUpdatesRejectInvariantViolations(t *testing.T) {
	db := setupPlayersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)

	err = repo.ApplyAdventure(ctx, id, AdventureUpdate{Level: 0, Gold: -5, StatPoints: 0, Fatigue: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level")
	assert.Contains(t, err.Error(), "gold")

	err = repo.ApplyStatAllocation(ctx, id, StatUpdate{Stat: enums.Stat("mana"), Value: 5, StatPoints: 0})
	require.Error(t, err)

	err = repo.ApplyStatAllocation(ctx, id, StatUpdate{Stat: enums.StatATK, Value: 100, StatPoints: 0})
	require.Error(t, err, "atk above its cap must be rejected")

	err = repo.ApplyAttendance(ctx, id, AttendanceUpdate{Fatigue: 10, Date: ""})
	require.Error(t, err)

	// The record must be untouched after every rejection.
	player, err := repo.GetOrCreate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, player.Level)
	assert.Equal(t, 100, player.Gold)
	assert.Equal(t, 1, player.ATK)
	assert.Equal(t, 0, player.Fatigue)
	assert.Nil(t, player.LastAttendanceOn)
}
