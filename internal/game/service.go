// Package game implements the conversational layer of the idle RPG. Each
// utterance is resolved against the global command table first, then against
// the player's pending continuation state; the progression engine computes
// outcomes and the player store persists them as typed absolute updates.
package game

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/minsukang/idlequest-backend/internal/players"
	"github.com/minsukang/idlequest-backend/internal/progression"
	"github.com/minsukang/idlequest-backend/pkg/db/models"
	"github.com/minsukang/idlequest-backend/pkg/enums"
	pkgerrors "github.com/minsukang/idlequest-backend/pkg/errors"
	"github.com/minsukang/idlequest-backend/pkg/keylock"
)

var timeNow = func() time.Time {
	return time.Now()
}

// PlayerStore defines the persistence surface required by the dispatcher.
type PlayerStore interface {
	GetOrCreate(ctx context.Context, id string) (*models.Player, error)
	SetPending(ctx context.Context, id string, pending enums.PendingState) error
	ClearPending(ctx context.Context, id string) error
	AssignJob(ctx context.Context, id string, job enums.Job) error
	ApplyAdventure(ctx context.Context, id string, update players.AdventureUpdate) error
	ApplyStatAllocation(ctx context.Context, id string, update players.StatUpdate) error
	ApplyEnhancement(ctx context.Context, id string, update players.EnhanceUpdate) error
	ApplyAttendance(ctx context.Context, id string, update players.AttendanceUpdate) error
}

// ServiceParams groups dependencies for the dispatcher service.
type ServiceParams struct {
	Store   PlayerStore
	Engine  *progression.Engine
	Locks   *keylock.KeyLock
	Catalog *Catalog
}

// Service resolves player utterances into replies and state changes.
type Service interface {
	HandleUtterance(ctx context.Context, playerID, utterance string) (Reply, error)
}

type service struct {
	store   PlayerStore
	engine  *progression.Engine
	locks   *keylock.KeyLock
	catalog *Catalog
}

// NewService builds a dispatcher service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "player store is required")
	}
	if params.Engine == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "progression engine is required")
	}
	if params.Locks == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "key lock is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message catalog is required")
	}
	return &service{
		store:   params.Store,
		engine:  params.Engine,
		locks:   params.Locks,
		catalog: params.Catalog,
	}, nil
}

// HandleUtterance runs one full read-decide-write cycle under the player's
// lock. Global commands always win over pending continuations; a pending
// state only interprets utterances nothing else claimed.
func (s *service) HandleUtterance(ctx context.Context, playerID, utterance string) (Reply, error) {
	if strings.TrimSpace(playerID) == "" {
		return Reply{}, pkgerrors.New(pkgerrors.CodeValidation, "player id is required")
	}

	s.locks.Lock(playerID)
	defer s.locks.Unlock(playerID)

	player, err := s.store.GetOrCreate(ctx, playerID)
	if err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load player")
	}

	normalized := normalizeUtterance(utterance)
	if kind, ok := matchGlobal(normalized); ok {
		return s.handleGlobal(ctx, player, kind)
	}
	if player.Pending != enums.PendingNone {
		return s.handleContinuation(ctx, player, normalized)
	}
	return s.unknownReply(normalized), nil
}

func (s *service) handleGlobal(ctx context.Context, player *models.Player, kind commandKind) (Reply, error) {
	switch kind {
	case cmdHelp:
		return Reply{Kind: KindHelp, Text: s.catalog.Help.Text}, nil
	case cmdCancel:
		return s.cancel(ctx, player)
	case cmdShowInfo:
		return Reply{Kind: KindInfo, Text: s.infoSheet(player)}, nil
	case cmdShowStats:
		return Reply{Kind: KindStats, Text: s.statsSheet(player)}, nil
	case cmdRequestStatAllocation:
		return s.requestStatAllocation(ctx, player)
	case cmdAttendance:
		return s.attend(ctx, player)
	case cmdEnhance:
		return s.enhance(ctx, player)
	case cmdRequestJobSelection:
		return s.requestJobSelection(ctx, player)
	case cmdRequestAdventureSelection:
		return s.requestAdventureSelection(ctx, player)
	}
	return s.unknownReply(""), nil
}

func (s *service) cancel(ctx context.Context, player *models.Player) (Reply, error) {
	if player.Pending == enums.PendingNone {
		return Reply{Kind: KindCancel, Text: s.catalog.Cancel.Nothing}, nil
	}
	if err := s.store.ClearPending(ctx, player.ID); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear pending")
	}
	return Reply{Kind: KindCancel, Text: s.catalog.Cancel.Done}, nil
}

func (s *service) infoSheet(player *models.Player) string {
	job := s.catalog.Info.NoJob
	if player.Job != nil {
		job = jobName(*player.Job)
	}
	power := progression.CombatPower(player.HP, player.ATK, player.INT, player.SPD, player.Job)
	return render(s.catalog.Info.Sheet, map[string]string{
		"level":        strconv.Itoa(player.Level),
		"job":          job,
		"gold":         strconv.Itoa(player.Gold),
		"weapon_level": strconv.Itoa(player.WeaponLevel),
		"fatigue":      strconv.Itoa(player.Fatigue),
		"power":        strconv.Itoa(power),
	})
}

func (s *service) statsSheet(player *models.Player) string {
	power := progression.CombatPower(player.HP, player.ATK, player.INT, player.SPD, player.Job)
	return render(s.catalog.Stats.Sheet, map[string]string{
		"hp":     strconv.Itoa(player.HP),
		"atk":    strconv.Itoa(player.ATK),
		"int":    strconv.Itoa(player.INT),
		"spd":    strconv.Itoa(player.SPD),
		"luk":    strconv.Itoa(player.LUK),
		"points": strconv.Itoa(player.StatPoints),
		"power":  strconv.Itoa(power),
	})
}

func (s *service) requestStatAllocation(ctx context.Context, player *models.Player) (Reply, error) {
	if player.StatPoints == 0 {
		return Reply{Kind: KindAllocateDenied, Text: s.catalog.Allocate.Closed}, nil
	}
	if err := s.store.SetPending(ctx, player.ID, enums.PendingStatAllocation); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set pending")
	}
	text := render(s.catalog.Allocate.Prompt, map[string]string{
		"points": strconv.Itoa(player.StatPoints),
	})
	return Reply{Kind: KindAllocatePrompt, Text: text}, nil
}

func (s *service) attend(ctx context.Context, player *models.Player) (Reply, error) {
	today := progression.Today(timeNow())
	if err := progression.ClaimAttendance(player.LastAttendanceOn, today); err != nil {
		return Reply{Kind: KindAttendanceRepeat, Text: s.catalog.Attendance.Repeat}, nil
	}
	fatigue := player.Fatigue + progression.AttendanceFatigueReward
	update := players.AttendanceUpdate{Fatigue: fatigue, Date: today}
	if err := s.store.ApplyAttendance(ctx, player.ID, update); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist attendance")
	}
	text := render(s.catalog.Attendance.Done, map[string]string{
		"reward":  strconv.Itoa(progression.AttendanceFatigueReward),
		"fatigue": strconv.Itoa(fatigue),
	})
	return Reply{Kind: KindAttendance, Text: text}, nil
}

func (s *service) enhance(ctx context.Context, player *models.Player) (Reply, error) {
	result, err := s.engine.EnhanceWeapon(progression.EnhanceInput{
		WeaponLevel: player.WeaponLevel,
		Gold:        player.Gold,
	})
	if err != nil {
		if errors.Is(err, progression.ErrNotEnoughGold) {
			text := render(s.catalog.Enhance.Denied, map[string]string{
				"cost": strconv.Itoa(progression.EnhanceCost(player.WeaponLevel)),
				"gold": strconv.Itoa(player.Gold),
			})
			return Reply{Kind: KindEnhanceDenied, Text: text}, nil
		}
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve enhancement")
	}

	// The cost is spent on both outcomes; only the tier is conditional.
	gold := player.Gold - result.Cost
	weaponLevel := player.WeaponLevel
	kind := KindEnhanceFailure
	template := s.catalog.Enhance.Failure
	if result.Success {
		weaponLevel++
		kind = KindEnhanceSuccess
		template = s.catalog.Enhance.Success
	}
	update := players.EnhanceUpdate{Gold: gold, WeaponLevel: weaponLevel}
	if err := s.store.ApplyEnhancement(ctx, player.ID, update); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist enhancement")
	}
	text := render(template, map[string]string{
		"weapon_level": strconv.Itoa(weaponLevel),
		"rate":         strconv.Itoa(result.SuccessRate),
		"cost":         strconv.Itoa(result.Cost),
		"gold":         strconv.Itoa(gold),
	})
	return Reply{Kind: kind, Text: text}, nil
}

func (s *service) requestJobSelection(ctx context.Context, player *models.Player) (Reply, error) {
	if player.Job != nil {
		return Reply{Kind: KindJobDenied, Text: s.catalog.Job.Locked}, nil
	}
	if err := s.store.SetPending(ctx, player.ID, enums.PendingJobSelect); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set pending")
	}
	return Reply{Kind: KindJobPrompt, Text: s.catalog.Job.Prompt, QuickReplies: jobMenu()}, nil
}

func (s *service) requestAdventureSelection(ctx context.Context, player *models.Player) (Reply, error) {
	if err := s.store.SetPending(ctx, player.ID, enums.PendingAdventureSelect); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set pending")
	}
	return Reply{Kind: KindAdventurePrompt, Text: s.catalog.Adventure.Prompt, QuickReplies: difficultyMenu()}, nil
}

func (s *service) handleContinuation(ctx context.Context, player *models.Player, normalized string) (Reply, error) {
	switch player.Pending {
	case enums.PendingJobSelect:
		return s.continueJobSelect(ctx, player, normalized)
	case enums.PendingStatAllocation:
		return s.continueStatAllocation(ctx, player, normalized)
	case enums.PendingAdventureSelect:
		return s.continueAdventureSelect(ctx, player, normalized)
	}
	return s.unknownReply(normalized), nil
}

func (s *service) continueJobSelect(ctx context.Context, player *models.Player, normalized string) (Reply, error) {
	job, ok := parseJobChoice(normalized)
	if !ok {
		return Reply{Kind: KindReprompt, Text: s.catalog.Job.Reprompt, QuickReplies: jobMenu()}, nil
	}
	if player.Job != nil {
		// Stale pending from before the job was set; drop it.
		if err := s.store.ClearPending(ctx, player.ID); err != nil {
			return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear pending")
		}
		return Reply{Kind: KindJobDenied, Text: s.catalog.Job.Locked}, nil
	}
	if err := s.store.AssignJob(ctx, player.ID, job); err != nil {
		if errors.Is(err, players.ErrJobTaken) {
			if err := s.store.ClearPending(ctx, player.ID); err != nil {
				return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear pending")
			}
			return Reply{Kind: KindJobDenied, Text: s.catalog.Job.Locked}, nil
		}
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "assign job")
	}
	power := progression.CombatPower(player.HP, player.ATK, player.INT, player.SPD, &job)
	text := render(s.catalog.Job.Assigned, map[string]string{
		"job":   jobName(job),
		"power": strconv.Itoa(power),
	})
	return Reply{Kind: KindJobAssigned, Text: text}, nil
}

func (s *service) continueStatAllocation(ctx context.Context, player *models.Player, normalized string) (Reply, error) {
	stat, amount, ok := parseStatAllocation(normalized)
	if !ok {
		text := render(s.catalog.Allocate.Reprompt, map[string]string{
			"points": strconv.Itoa(player.StatPoints),
		})
		return Reply{Kind: KindReprompt, Text: text}, nil
	}
	result, err := progression.AllocateStat(progression.AllocationInput{
		Stat:      stat,
		Requested: amount,
		Current:   statValue(player, stat),
		Available: player.StatPoints,
	})
	if err != nil {
		if errors.Is(err, progression.ErrNotEnoughPoints) {
			// Pending stays so the player can retry with a smaller amount.
			text := render(s.catalog.Allocate.Denied, map[string]string{
				"requested": strconv.Itoa(amount),
				"points":    strconv.Itoa(player.StatPoints),
			})
			return Reply{Kind: KindAllocateDenied, Text: text}, nil
		}
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "allocate stat")
	}
	remaining := player.StatPoints - result.PointsUsed
	update := players.StatUpdate{Stat: stat, Value: result.NewValue, StatPoints: remaining}
	if err := s.store.ApplyStatAllocation(ctx, player.ID, update); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist stat allocation")
	}
	text := render(s.catalog.Allocate.Applied, map[string]string{
		"stat":   strings.ToUpper(stat.String()),
		"used":   strconv.Itoa(result.PointsUsed),
		"value":  strconv.Itoa(result.NewValue),
		"points": strconv.Itoa(remaining),
	})
	return Reply{Kind: KindAllocateApplied, Text: text}, nil
}

func (s *service) continueAdventureSelect(ctx context.Context, player *models.Player, normalized string) (Reply, error) {
	difficulty, ok := parseAdventureChoice(normalized)
	if !ok {
		return Reply{Kind: KindReprompt, Text: s.catalog.Adventure.Reprompt, QuickReplies: difficultyMenu()}, nil
	}
	result, err := s.engine.ResolveAdventure(progression.AdventureInput{
		Difficulty: difficulty,
		Level:      player.Level,
		Fatigue:    player.Fatigue,
		LUK:        player.LUK,
	})
	if err != nil {
		if errors.Is(err, progression.ErrNotEnoughFatigue) {
			// Pending stays adventure_select; the player picks again after resting.
			text := render(s.catalog.Adventure.Denied, map[string]string{
				"cost":    strconv.Itoa(progression.FatigueCost(difficulty)),
				"fatigue": strconv.Itoa(player.Fatigue),
			})
			return Reply{Kind: KindAdventureDenied, Text: text}, nil
		}
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve adventure")
	}

	level := player.Level + result.LevelsGained
	gold := player.Gold + result.GoldGained
	points := player.StatPoints + result.StatPointsGained
	fatigue := player.Fatigue - result.FatigueSpent
	update := players.AdventureUpdate{Level: level, Gold: gold, StatPoints: points, Fatigue: fatigue}
	if err := s.store.ApplyAdventure(ctx, player.ID, update); err != nil {
		return Reply{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist adventure")
	}

	text := render(s.catalog.Adventure.Result, map[string]string{
		"difficulty": difficultyName(difficulty),
		"gold":       strconv.Itoa(result.GoldGained),
		"total_gold": strconv.Itoa(gold),
		"cost":       strconv.Itoa(result.FatigueSpent),
		"fatigue":    strconv.Itoa(fatigue),
	})
	if result.LevelsGained > 0 {
		text += "\n" + render(s.catalog.Adventure.LevelUp, map[string]string{
			"level":  strconv.Itoa(level),
			"levels": strconv.Itoa(result.LevelsGained),
			"points": strconv.Itoa(result.StatPointsGained),
		})
	}
	return Reply{Kind: KindAdventureResult, Text: text}, nil
}

func (s *service) unknownReply(normalized string) Reply {
	if suggestion, ok := suggestCommand(normalized); ok {
		text := render(s.catalog.Unknown.Suggestion, map[string]string{
			"command": suggestion,
		})
		return Reply{Kind: KindUnknown, Text: text}
	}
	return Reply{Kind: KindUnknown, Text: s.catalog.Unknown.Text}
}

func statValue(player *models.Player, stat enums.Stat) int {
	switch stat {
	case enums.StatHP:
		return player.HP
	case enums.StatATK:
		return player.ATK
	case enums.StatINT:
		return player.INT
	case enums.StatSPD:
		return player.SPD
	case enums.StatLUK:
		return player.LUK
	}
	return 0
}
