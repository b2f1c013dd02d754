// Package avatar implements the avatar orchestrator: saving looks, enforcing
// cosmetic locks and rendering SVG.
package avatar

//go:generate mockgen -destination=mock/mock_service.go -package=avatarmock github.com/KirkDiggler/chore-quest/internal/orchestrators/avatar Service

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/errors"
	avatarconfig "github.com/KirkDiggler/chore-quest/internal/repositories/avatar_config"
	avataritems "github.com/KirkDiggler/chore-quest/internal/repositories/avatar_items"
)

const (
	// MinRenderSize and MaxRenderSize bound the requested pixel size. Zero
	// leaves the SVG unsized.
	MinRenderSize = 16
	MaxRenderSize = 1024
)

// Service defines the interface for avatar operations
type Service interface {
	GetAvatar(ctx context.Context, input *GetAvatarInput) (*GetAvatarOutput, error)
	SaveAvatar(ctx context.Context, input *SaveAvatarInput) (*SaveAvatarOutput, error)
	RenderAvatar(ctx context.Context, input *RenderAvatarInput) (*RenderAvatarOutput, error)
	PreviewItem(ctx context.Context, input *PreviewItemInput) (*PreviewItemOutput, error)

	// ListAvatarItems never fails on storage errors; it reports nothing locked instead.
	ListAvatarItems(ctx context.Context, input *ListAvatarItemsInput) (*ListAvatarItemsOutput, error)
	UnlockAvatarItem(ctx context.Context, input *UnlockAvatarItemInput) (*UnlockAvatarItemOutput, error)
	RandomizeAvatar(ctx context.Context, input *RandomizeAvatarInput) (*RandomizeAvatarOutput, error)
}

// Config holds the dependencies for the avatar orchestrator
type Config struct {
	ConfigRepo avatarconfig.Repository
	ItemsRepo  avataritems.Repository
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
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
	if c.ItemsRepo == nil {
		vb.RequiredField("ItemsRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	configRepo avatarconfig.Repository
	itemsRepo  avataritems.Repository
	roller     dice.Roller
}

// NewOrchestrator creates a new avatar orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		configRepo: cfg.ConfigRepo,
		itemsRepo:  cfg.ItemsRepo,
		roller:     roller,
	}, nil
}

// GetAvatar returns the saved avatar, or the defaults for a new player
func (o *orchestrator) GetAvatar(ctx context.Context, input *GetAvatarInput) (*GetAvatarOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	got, err := o.configRepo.Get(ctx, avatarconfig.GetInput{PlayerID: input.PlayerID})
	if errors.IsNotFound(err) {
		return &GetAvatarOutput{Config: entities.DefaultAvatarConfig()}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get avatar for player %s", input.PlayerID)
	}

	return &GetAvatarOutput{
		Config:    got.Avatar.Config.WithDefaults(),
		Revision:  got.Avatar.Revision,
		UpdatedAt: got.Avatar.UpdatedAt,
		Saved:     true,
	}, nil
}

// SaveAvatar validates and stores a configuration. Companion XP is owned by the
// companion service and is carried over from the stored avatar.
func (o *orchestrator) SaveAvatar(ctx context.Context, input *SaveAvatarInput) (*SaveAvatarOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	validateConfig(input.Config, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlocked, err := o.itemsRepo.ListUnlocked(ctx, avataritems.ListUnlockedInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check unlocked items for player %s", input.PlayerID)
	}
	if err := checkLocks(input.Config, unlocked.Unlocked); err != nil {
		return nil, err
	}

	cfg := input.Config
	cfg.Version = entities.AvatarConfigVersion
	cfg.PetXP = 0

	existing, err := o.configRepo.Get(ctx, avatarconfig.GetInput{PlayerID: input.PlayerID})
	switch {
	case err == nil:
		cfg.PetXP = existing.Avatar.Config.PetXP
	case !errors.IsNotFound(err):
		return nil, errors.Wrapf(err, "failed to load avatar for player %s", input.PlayerID)
	}

	saved, err := o.configRepo.Save(ctx, avatarconfig.SaveInput{PlayerID: input.PlayerID, Config: cfg})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save avatar for player %s", input.PlayerID)
	}

	slog.Info("Avatar saved",
		"player_id", input.PlayerID,
		"revision", saved.Avatar.Revision,
		"pet", cfg.Pet,
	)

	return &SaveAvatarOutput{
		Config:    saved.Avatar.Config,
		Revision:  saved.Avatar.Revision,
		UpdatedAt: saved.Avatar.UpdatedAt,
	}, nil
}

// RenderAvatar draws either the supplied configuration or the player's saved one
func (o *orchestrator) RenderAvatar(ctx context.Context, input *RenderAvatarInput) (*RenderAvatarOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSize(input.Size); err != nil {
		return nil, err
	}
	if input.Preview != nil && !entities.IsPreviewField(input.Preview.Field) {
		return nil, errors.InvalidArgumentf("preview field %q cannot be overridden", input.Preview.Field)
	}

	var cfg entities.AvatarConfig
	switch {
	case input.Config != nil:
		cfg = *input.Config
	case input.PlayerID != "":
		got, err := o.GetAvatar(ctx, &GetAvatarInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, err
		}
		cfg = got.Config
	default:
		return nil, errors.InvalidArgument("either player_id or config is required")
	}

	doc := avatar.Render(avatar.RenderInput{
		Config:      cfg,
		Preview:     input.Preview,
		Interactive: input.Interactive,
	})

	out := &RenderAvatarOutput{
		SVG:    string(doc.Marshal(input.Size)),
		Layers: doc.LayerNames(),
	}

	drawn := entities.ApplyPreview(cfg, input.Preview).WithDefaults()
	if _, _, ok := avatar.CompanionPlacement(drawn); ok {
		level := avatar.CompanionLevelFor(drawn.PetXP)
		out.Companion = &level
	}

	return out, nil
}

// PreviewItem renders the player's avatar with one field swapped. Nothing is saved.
func (o *orchestrator) PreviewItem(ctx context.Context, input *PreviewItemInput) (*PreviewItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if !entities.IsPreviewField(input.Field) {
		vb.Fieldf("field", "must be one of: %s", strings.Join(entities.PreviewFields(), ", "))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rendered, err := o.RenderAvatar(ctx, &RenderAvatarInput{
		PlayerID: input.PlayerID,
		Preview:  &entities.Preview{Field: input.Field, Value: input.Value},
		Size:     input.Size,
	})
	if err != nil {
		return nil, err
	}

	out := &PreviewItemOutput{SVG: rendered.SVG}
	category := avatar.Category(input.Field)
	if avatar.Styles(category) != nil {
		locks, _ := o.ListAvatarItems(ctx, &ListAvatarItemsInput{PlayerID: input.PlayerID})
		for _, id := range locks.Locked[category] {
			if id == input.Value {
				out.Locked = true
				break
			}
		}
	}

	return out, nil
}

// ListAvatarItems returns the lock snapshot. Storage failures are logged and
// treated as nothing locked.
func (o *orchestrator) ListAvatarItems(ctx context.Context, input *ListAvatarItemsInput) (*ListAvatarItemsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	out := &ListAvatarItemsOutput{Locked: make(map[avatar.Category][]string)}

	unlocked, err := o.itemsRepo.ListUnlocked(ctx, avataritems.ListUnlockedInput{PlayerID: input.PlayerID})
	if err != nil {
		slog.Warn("Lock snapshot unavailable, treating nothing as locked",
			"player_id", input.PlayerID,
			"error", err,
		)
		return out, nil
	}

	for _, category := range avatar.Categories() {
		if locked := avatar.LockedStyles(category, unlocked.Unlocked[string(category)]); len(locked) > 0 {
			out.Locked[category] = locked
		}
	}

	return out, nil
}

// UnlockAvatarItem makes a catalogued item available to a player
func (o *orchestrator) UnlockAvatarItem(ctx context.Context, input *UnlockAvatarItemInput) (*UnlockAvatarItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	switch {
	case avatar.Styles(input.Category) == nil:
		vb.InvalidField("category", "unknown category")
	case !avatar.IsKnownStyle(input.Category, input.ItemID):
		vb.InvalidField("item_id", "unknown "+string(input.Category)+" style")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if avatar.IsStarterStyle(input.Category, input.ItemID) {
		return &UnlockAvatarItemOutput{AlreadyUnlocked: true}, nil
	}

	res, err := o.itemsRepo.Unlock(ctx, avataritems.UnlockInput{
		PlayerID: input.PlayerID,
		Category: string(input.Category),
		ItemID:   input.ItemID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unlock %s/%s", input.Category, input.ItemID)
	}

	if !res.AlreadyUnlocked {
		slog.Info("Avatar item unlocked",
			"player_id", input.PlayerID,
			"category", input.Category,
			"item_id", input.ItemID,
		)
	}

	return &UnlockAvatarItemOutput{AlreadyUnlocked: res.AlreadyUnlocked}, nil
}

// randomCategories are re-rolled by RandomizeAvatar; the companion is left alone.
var randomCategories = []avatar.Category{
	avatar.CategoryHead, avatar.CategoryHair, avatar.CategoryEyes, avatar.CategoryMouth,
	avatar.CategoryBody, avatar.CategoryOutfitPattern, avatar.CategoryHat,
	avatar.CategoryFaceExtra, avatar.CategoryAccessory,
}

// RandomizeAvatar rolls a random look from the styles the player may use
func (o *orchestrator) RandomizeAvatar(ctx context.Context, input *RandomizeAvatarInput) (*RandomizeAvatarOutput, error) {
	if input == nil {
		input = &RandomizeAvatarInput{}
	}

	base := entities.DefaultAvatarConfig()
	unlocked := map[string]map[string]bool{}
	if input.PlayerID != "" {
		got, err := o.GetAvatar(ctx, &GetAvatarInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, err
		}
		base = got.Config

		if items, err := o.itemsRepo.ListUnlocked(ctx, avataritems.ListUnlockedInput{PlayerID: input.PlayerID}); err == nil {
			unlocked = items.Unlocked
		} else {
			slog.Warn("Randomizing from starter items only", "player_id", input.PlayerID, "error", err)
		}
	}

	picks := make(map[string]string)
	for _, category := range randomCategories {
		pool := avatar.StarterStyles(category)
		for _, id := range avatar.Styles(category) {
			if unlocked[string(category)][id] && !avatar.IsStarterStyle(category, id) {
				pool = append(pool, id)
			}
		}
		pick, err := o.pick(pool)
		if err != nil {
			return nil, err
		}
		picks[string(category)] = pick
	}
	for _, key := range avatar.SwatchKeys() {
		if key == "pet_color" {
			continue
		}
		pick, err := o.pick(avatar.Swatches(key))
		if err != nil {
			return nil, err
		}
		picks[key] = pick
	}

	cfg := base
	for key, value := range picks {
		cfg.SetField(key, value)
	}

	return &RandomizeAvatarOutput{Config: cfg}, nil
}

func (o *orchestrator) pick(pool []string) (string, error) {
	if len(pool) == 1 {
		return pool[0], nil
	}
	n, err := o.roller.Roll(len(pool))
	if err != nil {
		return "", errors.Wrapf(err, "failed to roll d%d", len(pool))
	}
	if n < 1 || n > len(pool) {
		return "", errors.Internalf("roller returned %d for a d%d", n, len(pool))
	}
	return pool[n-1], nil
}

func validateSize(size int) error {
	if size == 0 {
		return nil
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("size", size, MinRenderSize, MaxRenderSize, vb)
	return vb.Build()
}

// validateConfig rejects what the renderer would silently replace: unknown
// styles, malformed colours and non-finite coordinates.
func validateConfig(cfg entities.AvatarConfig, vb *errors.ValidationBuilder) {
	for _, category := range avatar.Categories() {
		if v := avatar.Selected(cfg, category); v != "" && !avatar.IsKnownStyle(category, v) {
			vb.InvalidField(string(category), "unknown style "+v)
		}
	}

	for _, key := range entities.PreviewFields() {
		if !strings.Contains(key, "color") {
			continue
		}
		if v, _ := cfg.Field(key); v != "" && !avatar.IsValidColor(v) {
			vb.InvalidField(key, "expected #rgb or #rrggbb")
		}
	}

	switch cfg.PetPosition {
	case "", entities.CompanionRight, entities.CompanionLeft, entities.CompanionHead, entities.CompanionFree:
	default:
		vb.InvalidField("pet_position", "must be one of: right, left, head, free")
	}

	coords := []struct {
		name string
		v    *float64
	}{
		{"pet_x", cfg.PetX},
		{"pet_y", cfg.PetY},
	}
	for _, c := range coords {
		if c.v != nil && (math.IsNaN(*c.v) || math.IsInf(*c.v, 0)) {
			vb.InvalidField(c.name, "must be a finite number")
		}
	}
}

// checkLocks fails with FailedPrecondition on the first selected style the
// player has not unlocked, in editor order.
func checkLocks(cfg entities.AvatarConfig, unlocked map[string]map[string]bool) error {
	for _, category := range avatar.Categories() {
		id := avatar.Selected(cfg, category)
		if id == "" || avatar.IsStarterStyle(category, id) || unlocked[string(category)][id] {
			continue
		}
		return errors.FailedPreconditionf("%s %q is locked", category, id).
			WithMeta("category", string(category)).
			WithMeta("item_id", id)
	}
	return nil
}
