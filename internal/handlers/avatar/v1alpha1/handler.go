// Package v1alpha1 handles the avatar gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/errors"
	avatarorch "github.com/KirkDiggler/chore-quest/internal/orchestrators/avatar"
	"github.com/KirkDiggler/chore-quest/internal/orchestrators/companion"
)

// HandlerConfig holds dependencies for the avatar handler
type HandlerConfig struct {
	AvatarService    avatarorch.Service
	CompanionService companion.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.AvatarService == nil {
		vb.RequiredField("AvatarService")
	}
	if c.CompanionService == nil {
		vb.RequiredField("CompanionService")
	}
	return vb.Build()
}

// Handler implements the avatar gRPC service
type Handler struct {
	avatarService    avatarorch.Service
	companionService companion.Service
}

var _ AvatarServiceServer = (*Handler)(nil)

// NewHandler creates a new avatar handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		avatarService:    cfg.AvatarService,
		companionService: cfg.CompanionService,
	}, nil
}

// respond encodes a response or converts the error to a gRPC status
func respond(v any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

func requirePlayer(playerID string) error {
	if playerID == "" {
		return errors.InvalidArgument("player_id is required")
	}
	return nil
}

// GetAvatar returns the saved avatar, or the defaults for a new player
func (h *Handler) GetAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in playerRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}
	if err := requirePlayer(in.PlayerID); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.GetAvatar(ctx, &avatarorch.GetAvatarInput{PlayerID: in.PlayerID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&avatarResponse{
		Config:    out.Config,
		Revision:  out.Revision,
		UpdatedAt: formatTime(out.UpdatedAt),
		Saved:     out.Saved,
	}, nil)
}

// SaveAvatar validates and stores a configuration
func (h *Handler) SaveAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in saveAvatarRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}
	if err := requirePlayer(in.PlayerID); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.SaveAvatar(ctx, &avatarorch.SaveAvatarInput{
		PlayerID: in.PlayerID,
		Config:   in.Config,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&avatarResponse{
		Config:    out.Config,
		Revision:  out.Revision,
		UpdatedAt: formatTime(out.UpdatedAt),
		Saved:     true,
	}, nil)
}

// RenderAvatar draws an avatar from an inline config or the player's saved one
func (h *Handler) RenderAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in renderAvatarRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.RenderAvatar(ctx, &avatarorch.RenderAvatarInput{
		PlayerID:    in.PlayerID,
		Config:      in.Config,
		Preview:     in.Preview,
		Size:        in.Size,
		Interactive: in.Interactive,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&renderAvatarResponse{
		SVG:       out.SVG,
		Layers:    out.Layers,
		Companion: out.Companion,
	}, nil)
}

// PreviewItem renders the player's avatar with a single field tried on
func (h *Handler) PreviewItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in previewItemRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}
	if err := requirePlayer(in.PlayerID); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.PreviewItem(ctx, &avatarorch.PreviewItemInput{
		PlayerID: in.PlayerID,
		Field:    in.Field,
		Value:    in.Value,
		Size:     in.Size,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&previewItemResponse{SVG: out.SVG, Locked: out.Locked}, nil)
}

// ListAvatarItems returns the styles the player has not unlocked yet
func (h *Handler) ListAvatarItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in playerRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}
	if err := requirePlayer(in.PlayerID); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.ListAvatarItems(ctx, &avatarorch.ListAvatarItemsInput{PlayerID: in.PlayerID})
	if err != nil {
		return respond(nil, err)
	}

	locked := out.Locked
	if locked == nil {
		locked = map[avatar.Category][]string{}
	}
	return respond(&listAvatarItemsResponse{Locked: locked}, nil)
}

// UnlockAvatarItem grants the player an item
func (h *Handler) UnlockAvatarItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in unlockAvatarItemRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}
	if err := requirePlayer(in.PlayerID); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.UnlockAvatarItem(ctx, &avatarorch.UnlockAvatarItemInput{
		PlayerID: in.PlayerID,
		Category: avatar.Category(in.Category),
		ItemID:   in.ItemID,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&unlockAvatarItemResponse{AlreadyUnlocked: out.AlreadyUnlocked}, nil)
}

// RandomizeAvatar returns a random look without saving it
func (h *Handler) RandomizeAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in playerRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.avatarService.RandomizeAvatar(ctx, &avatarorch.RandomizeAvatarInput{PlayerID: in.PlayerID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&configResponse{Config: out.Config}, nil)
}

// GetCompanion returns the equipped companion and today's interactions
func (h *Handler) GetCompanion(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in playerRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.companionService.GetCompanion(ctx, &companion.GetCompanionInput{PlayerID: in.PlayerID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&getCompanionResponse{
		Companion:             toCompanionView(out.Companion),
		InteractionsToday:     out.InteractionsToday,
		InteractionsRemaining: out.InteractionsRemaining,
	}, nil)
}

// InteractWithCompanion feeds, pets or plays with the companion
func (h *Handler) InteractWithCompanion(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in interactRequest
	if err := decode(req, &in); err != nil {
		return respond(nil, err)
	}

	out, err := h.companionService.InteractWithCompanion(ctx, &companion.InteractWithCompanionInput{
		PlayerID: in.PlayerID,
		Action:   companion.Action(in.Action),
	})
	if err != nil {
		return respond(nil, err)
	}

	resp := &interactResponse{
		Companion:             toCompanionView(out.Companion),
		Action:                string(out.Action),
		XPAwarded:             out.XPAwarded,
		InteractionsRemaining: out.InteractionsRemaining,
	}
	if out.LevelUp != nil {
		resp.LevelUp = &levelUpView{From: out.LevelUp.From, To: out.LevelUp.To, Name: out.LevelUp.Name}
	}
	return respond(resp, nil)
}

// ListCompanionLevels returns the companion level ladder
func (h *Handler) ListCompanionLevels(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &struct{}{}); err != nil {
		return respond(nil, err)
	}

	out, err := h.companionService.ListCompanionLevels(ctx, &companion.ListCompanionLevelsInput{})
	if err != nil {
		return respond(nil, err)
	}

	return respond(&listLevelsResponse{Levels: out.Levels}, nil)
}
