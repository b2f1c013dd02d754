// Package avatar composes a character and its optional companion into a layered
// vector image description. Everything in this package is a pure function of its
// input: no I/O, no shared mutable state, identical input gives identical output.
package avatar

import (
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// Category names a customisable part. Category values double as the
// configuration keys and as the item categories used for unlocks.
type Category string

// Customisable categories
const (
	CategoryHead          Category = "head"
	CategoryHair          Category = "hair"
	CategoryEyes          Category = "eyes"
	CategoryMouth         Category = "mouth"
	CategoryBody          Category = "body"
	CategoryHat           Category = "hat"
	CategoryAccessory     Category = "accessory"
	CategoryFaceExtra     Category = "face_extra"
	CategoryOutfitPattern Category = "outfit_pattern"
	CategoryPet           Category = "pet"
)

// ink carries the colours a catalog entry may paint with.
type ink struct {
	Main   string
	Detail string
}

type drawFunc func(ink) []svg.Element

type entry[F any] struct {
	id   string
	draw F
}

// catalog is a closed, ordered mapping from style identifier to drawing.
type catalog[F any] struct {
	order    []string
	entries  map[string]F
	fallback string
}

func newCatalog[F any](fallback string, entries ...entry[F]) catalog[F] {
	c := catalog[F]{
		order:    make([]string, 0, len(entries)),
		entries:  make(map[string]F, len(entries)),
		fallback: fallback,
	}
	for _, e := range entries {
		c.order = append(c.order, e.id)
		c.entries[e.id] = e.draw
	}
	if _, ok := c.entries[fallback]; !ok {
		panic("avatar: catalog fallback " + fallback + " is not registered")
	}
	return c
}

// lookup returns the entry for id, or the fallback entry for unknown ids.
func (c catalog[F]) lookup(id string) F {
	if fn, ok := c.entries[id]; ok {
		return fn
	}
	return c.entries[c.fallback]
}

// resolve returns id if known, otherwise the fallback identifier.
func (c catalog[F]) resolve(id string) string {
	if _, ok := c.entries[id]; ok {
		return id
	}
	return c.fallback
}

func (c catalog[F]) has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

func (c catalog[F]) ids() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// nothing is the drawing for "none" entries.
func nothing(ink) []svg.Element { return nil }

// Styles lists the style identifiers of a category in editor order.
// Unknown categories return nil.
func Styles(category Category) []string {
	switch category {
	case CategoryHead:
		return heads.ids()
	case CategoryHair:
		return hairStyles.ids()
	case CategoryEyes:
		return eyeStyles.ids()
	case CategoryMouth:
		return mouthStyles.ids()
	case CategoryBody:
		return bodyShapes.ids()
	case CategoryHat:
		return hats.ids()
	case CategoryAccessory:
		return accessories.ids()
	case CategoryFaceExtra:
		return faceExtras.ids()
	case CategoryOutfitPattern:
		return outfitPatterns.ids()
	case CategoryPet:
		return append([]string{"none"}, species.ids()...)
	default:
		return nil
	}
}

// IsKnownStyle reports whether id belongs to the category's catalog.
func IsKnownStyle(category Category, id string) bool {
	for _, s := range Styles(category) {
		if s == id {
			return true
		}
	}
	return false
}

// Categories lists every customisable category in editor order.
func Categories() []Category {
	return []Category{
		CategoryHead, CategoryHair, CategoryEyes, CategoryMouth, CategoryBody,
		CategoryOutfitPattern, CategoryHat, CategoryFaceExtra, CategoryAccessory, CategoryPet,
	}
}
