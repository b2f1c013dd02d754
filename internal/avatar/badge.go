package avatar

import (
	"strings"
	"unicode/utf16"

	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// LayerBadge is the single layer of an initials badge.
const LayerBadge = "badge"

// badgeColors is the palette initials badges pick from.
var badgeColors = [...]string{
	"#f9d71c", // gold
	"#2de2a6", // emerald
	"#b388ff", // purple
	"#64dfdf", // sky
	"#ff4444", // crimson
	"#ff8c42", // orange
	"#ff6b9d", // pink
	"#45b7d1", // teal
}

// nameHash is the classic 31-multiplier string hash over UTF-16 code units,
// with 32-bit wraparound, returned as a magnitude.
func nameHash(name string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// BadgeColor returns the stable palette colour for a display name.
func BadgeColor(name string) string {
	if name == "" {
		return badgeColors[0]
	}
	return badgeColors[nameHash(name)%int64(len(badgeColors))]
}

// Initials returns up to two upper-case initials, or "?" for a blank name.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch {
	case len(parts) == 0:
		return "?"
	case len(parts) >= 2:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[1]))
	}
	r := []rune(parts[0])
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// RenderBadge draws the fallback shown for players without a configuration:
// a coloured disc with their initials.
func RenderBadge(name string) *svg.Document {
	doc := &svg.Document{}
	doc.Add(LayerBadge,
		svg.Circle(16, 16, 16).Fill(BadgeColor(name)),
		svg.Glyph(16, 20.5, 12, Initials(name)).Centered().Fill("#1a1a2e"),
	)
	return doc
}
