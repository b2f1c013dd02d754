// Package companion implements the companion orchestrator: levels, XP and the
// daily feed/pet/play interactions.
package companion

//go:generate mockgen -destination=mock/mock_service.go -package=companionmock github.com/KirkDiggler/chore-quest/internal/orchestrators/companion Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/errors"
	"github.com/KirkDiggler/chore-quest/internal/pkg/clock"
	avatarconfig "github.com/KirkDiggler/chore-quest/internal/repositories/avatar_config"
	companionactivity "github.com/KirkDiggler/chore-quest/internal/repositories/companion_activity"
)

// dayLayout keys the interaction window by UTC calendar day.
const dayLayout = "2006-01-02"

// Service defines the interface for companion operations
type Service interface {
	GetCompanion(ctx context.Context, input *GetCompanionInput) (*GetCompanionOutput, error)
	InteractWithCompanion(ctx context.Context, input *InteractWithCompanionInput) (*InteractWithCompanionOutput, error)
	ListCompanionLevels(ctx context.Context, input *ListCompanionLevelsInput) (*ListCompanionLevelsOutput, error)
}

// Config holds the dependencies for the companion orchestrator
type Config struct {
	ConfigRepo   avatarconfig.Repository
	ActivityRepo companionactivity.Repository
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.ConfigRepo == nil {
		vb.RequiredField("ConfigRepo")
	}
	if c.ActivityRepo == nil {
		vb.RequiredField("ActivityRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	configRepo   avatarconfig.Repository
	activityRepo companionactivity.Repository
	clock        clock.Clock
}

// NewOrchestrator creates a new companion orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		configRepo:   cfg.ConfigRepo,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
	}, nil
}

func (o *orchestrator) today() string {
	return o.clock.Now().UTC().Format(dayLayout)
}

// loadConfig returns the stored configuration or the defaults
func (o *orchestrator) loadConfig(ctx context.Context, playerID string) (entities.AvatarConfig, error) {
	got, err := o.configRepo.Get(ctx, avatarconfig.GetInput{PlayerID: playerID})
	if errors.IsNotFound(err) {
		return entities.DefaultAvatarConfig(), nil
	}
	if err != nil {
		return entities.AvatarConfig{}, errors.Wrapf(err, "failed to load avatar for player %s", playerID)
	}
	return got.Avatar.Config.WithDefaults(), nil
}

func newCompanion(playerID string, cfg entities.AvatarConfig) *Companion {
	return &Companion{
		PlayerID: playerID,
		Species:  cfg.Pet,
		Level:    avatar.CompanionLevelFor(cfg.PetXP),
	}
}

// GetCompanion returns the equipped companion and today's interactions
func (o *orchestrator) GetCompanion(ctx context.Context, input *GetCompanionInput) (*GetCompanionOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	cfg, err := o.loadConfig(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	activity, err := o.activityRepo.Get(ctx, companionactivity.GetInput{PlayerID: input.PlayerID, Day: o.today()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load companion activity for player %s", input.PlayerID)
	}

	out := &GetCompanionOutput{
		InteractionsToday:     make([]Action, 0, activity.Log.Count()),
		InteractionsRemaining: max(0, MaxInteractionsPerDay-activity.Log.Count()),
	}
	for _, a := range activity.Log.Actions {
		out.InteractionsToday = append(out.InteractionsToday, Action(a))
	}
	if cfg.HasCompanion() {
		out.Companion = newCompanion(input.PlayerID, cfg)
	}

	return out, nil
}

// InteractWithCompanion records a feed/pet/play and awards its XP
func (o *orchestrator) InteractWithCompanion(ctx context.Context, input *InteractWithCompanionInput) (*InteractWithCompanionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	allowed := make([]string, 0, len(actionXP))
	for _, a := range Actions() {
		allowed = append(allowed, string(a))
	}
	errors.ValidateEnum("action", string(input.Action), allowed, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	cfg, err := o.loadConfig(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if !cfg.HasCompanion() {
		return nil, errors.FailedPrecondition("no companion equipped")
	}

	day := o.today()
	recorded, err := o.activityRepo.Record(ctx, companionactivity.RecordInput{
		PlayerID: input.PlayerID,
		Day:      day,
		Action:   string(input.Action),
		Limit:    MaxInteractionsPerDay,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "your %s is tired", cfg.Pet)
	}

	xp := XPFor(input.Action)
	awarded, err := o.configRepo.AddCompanionXP(ctx, avatarconfig.AddCompanionXPInput{
		PlayerID: input.PlayerID,
		Amount:   xp,
	})
	if err != nil {
		// give the slot back so the player can retry
		undoErr := o.activityRepo.Undo(ctx, companionactivity.UndoInput{
			PlayerID: input.PlayerID,
			Day:      day,
			Action:   string(input.Action),
		})
		if undoErr != nil {
			slog.Error("Failed to release companion interaction",
				"player_id", input.PlayerID,
				"action", input.Action,
				"error", undoErr,
			)
		}
		return nil, errors.Wrapf(err, "failed to award companion xp to player %s", input.PlayerID)
	}

	before := avatar.CompanionLevelFor(awarded.PreviousXP)
	companion := newCompanion(input.PlayerID, awarded.Avatar.Config.WithDefaults())

	out := &InteractWithCompanionOutput{
		Companion:             companion,
		Action:                input.Action,
		XPAwarded:             xp,
		InteractionsRemaining: max(0, MaxInteractionsPerDay-recorded.Log.Count()),
	}
	if companion.Level.Level > before.Level {
		out.LevelUp = &LevelUp{From: before.Level, To: companion.Level.Level, Name: companion.Level.Name}
	}

	slog.Info("Companion interaction",
		"player_id", input.PlayerID,
		"species", companion.Species,
		"action", input.Action,
		"xp", companion.Level.XP,
		"level", companion.Level.Level,
		"remaining", out.InteractionsRemaining,
	)

	return out, nil
}

// ListCompanionLevels returns the level ladder
func (o *orchestrator) ListCompanionLevels(_ context.Context, _ *ListCompanionLevelsInput) (*ListCompanionLevelsOutput, error) {
	return &ListCompanionLevelsOutput{Levels: avatar.CompanionLevels()}, nil
}
