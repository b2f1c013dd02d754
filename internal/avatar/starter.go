package avatar

import "github.com/KirkDiggler/chore-quest/internal/entities"

// starterStyles are free for every player. Everything else in a catalog has to
// be unlocked before it can be saved.
var starterStyles = map[Category][]string{
	CategoryHead:          {"round", "oval", "square"},
	CategoryHair:          {"none", "short", "long", "curly", "spiky"},
	CategoryEyes:          {"normal", "happy", "wide", "sleepy"},
	CategoryMouth:         {"smile", "grin", "neutral", "open"},
	CategoryBody:          {"slim", "regular", "broad"},
	CategoryOutfitPattern: {"none", "stripes"},
	CategoryHat:           {"none", "cap", "beanie"},
	CategoryFaceExtra:     {"none", "freckles", "blush"},
	CategoryAccessory:     {"none", "scarf"},
	CategoryPet:           {"none"},
}

// StarterStyles lists the free styles of a category in editor order.
func StarterStyles(category Category) []string {
	out := make([]string, len(starterStyles[category]))
	copy(out, starterStyles[category])
	return out
}

// IsStarterStyle reports whether id is free for every player.
func IsStarterStyle(category Category, id string) bool {
	for _, s := range starterStyles[category] {
		if s == id {
			return true
		}
	}
	return false
}

// LockedStyles returns the styles of category that are neither free nor in
// unlocked, in editor order.
func LockedStyles(category Category, unlocked map[string]bool) []string {
	var out []string
	for _, id := range Styles(category) {
		if !IsStarterStyle(category, id) && !unlocked[id] {
			out = append(out, id)
		}
	}
	return out
}

// Selected returns the style a configuration uses for category.
func Selected(cfg entities.AvatarConfig, category Category) string {
	v, _ := cfg.Field(string(category))
	return v
}
