package avatar

import (
	"math"

	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// Free-form companions are kept inside [FreeMin, FreeMax] on both axes so the
// artwork never leaves the 32 unit viewport. Big species reach up to five
// units from their centre once wings and max-level sparkles are drawn, so
// their centre is held BigFreeInset from each edge instead.
const (
	FreeInset    = 4
	FreeMin      = FreeInset
	FreeMax      = svg.ViewBoxSize - FreeInset
	BigFreeInset = 6
)

// slotSet holds the fixed anchor transforms for one companion size.
type slotSet struct {
	right svg.Matrix
	// pivot is the vertical line the right slot is mirrored about for the left slot.
	pivot float64
	head  svg.Matrix
}

var (
	smallSlots = slotSet{
		right: svg.Translate(23, 17),
		pivot: 14,
		head:  svg.Translate(11, 0).Mul(svg.Scale(0.7, 0.7)),
	}
	bigSlots = slotSet{
		right: svg.Translate(21, 15),
		pivot: 15,
		head:  svg.Translate(10, -1).Mul(svg.Scale(0.65, 0.65)),
	}
)

func freeInset(s speciesEntry) float64 {
	if s.big {
		return BigFreeInset
	}
	return FreeInset
}

func slotsFor(s speciesEntry) slotSet {
	if s.big {
		return bigSlots
	}
	return smallSlots
}

// ClampFreePosition clamps free-form coordinates into the safe inset region.
// Non-finite values fall back to the default free-form point.
func ClampFreePosition(x, y float64) (float64, float64) {
	return clampAxis(x, entities.DefaultPetX, FreeInset), clampAxis(y, entities.DefaultPetY, FreeInset)
}

func clampAxis(v, fallback, inset float64) float64 {
	if math.IsNaN(v) {
		v = fallback
	}
	return math.Max(inset, math.Min(svg.ViewBoxSize-inset, v))
}

// freePoint reads the configured free-form target, defaulting missing axes,
// and clamps it to the species' inset.
func freePoint(s speciesEntry, cfg entities.AvatarConfig) (float64, float64) {
	x, y := entities.DefaultPetX, entities.DefaultPetY
	if cfg.PetX != nil {
		x = *cfg.PetX
	}
	if cfg.PetY != nil {
		y = *cfg.PetY
	}
	inset := freeInset(s)
	return clampAxis(x, entities.DefaultPetX, inset), clampAxis(y, entities.DefaultPetY, inset)
}

// placeCompanion computes the transform from a species' local space into the
// character space. Unknown positions behave like the right slot.
func placeCompanion(s speciesEntry, cfg entities.AvatarConfig) (svg.Matrix, Placement) {
	slots := slotsFor(s)

	switch cfg.PetPosition {
	case entities.CompanionLeft:
		return svg.MirrorX(slots.pivot).Mul(slots.right),
			Placement{Slot: entities.CompanionLeft, Mirrored: true}

	case entities.CompanionHead:
		return slots.head, Placement{Slot: entities.CompanionHead}

	case entities.CompanionFree:
		x, y := freePoint(s, cfg)
		c := s.center()
		// Left of the centreline the companion turns around to face the character.
		if x < centerline {
			m := svg.Translate(x, y).Mul(svg.Scale(-1, 1)).Mul(svg.Translate(-c.X, -c.Y))
			return m, Placement{Slot: entities.CompanionFree, Mirrored: true}
		}
		return svg.Translate(x-c.X, y-c.Y), Placement{Slot: entities.CompanionFree}

	default:
		return slots.right, Placement{Slot: entities.CompanionRight}
	}
}

// CompanionPlacement resolves where the configured companion is drawn. It
// reports false when no companion species is selected.
func CompanionPlacement(cfg entities.AvatarConfig) (svg.Matrix, Placement, bool) {
	s, ok := speciesFor(cfg.Pet)
	if !ok {
		return svg.Identity, Placement{}, false
	}
	m, p := placeCompanion(s, cfg)
	return m, p, true
}

// companionLayers draws the companion and its level extras, each wrapped in
// the same placement transform.
func companionLayers(cfg entities.AvatarConfig, pal palette) (body, extras []svg.Element) {
	s, ok := speciesFor(cfg.Pet)
	if !ok {
		return nil, nil
	}
	m, p := placeCompanion(s, cfg)

	body = []svg.Element{svg.Group(s.draw(pal.Companion, p)...).Transform(m)}

	level := CompanionLevelFor(cfg.PetXP).Level
	if e := levelExtras(s, level, pal); len(e) > 0 {
		extras = []svg.Element{svg.Group(e...).Transform(m)}
	}
	return body, extras
}
