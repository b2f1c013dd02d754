package avatar

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/KirkDiggler/chore-quest/internal/entities"
)

// eyelidShade is how far the eyelid tint moves from the skin toward black.
const eyelidShade = 0.08

var (
	black      = colorful.Color{R: 0, G: 0, B: 0}
	white      = colorful.Color{R: 1, G: 1, B: 1}
	tongueTint = mustHex("#e87a9a")
)

// palette is every colour a render paints with, fully resolved.
type palette struct {
	Skin       string
	Hair       string
	Eyes       string
	Mouth      string
	Outfit     string
	Background string
	Hat        string
	Accessory  string

	Eyelid string
	Tongue string

	Companion CompanionColors
	// Glow is the companion accent lightened for level effects.
	Glow string
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	// colorful.Hex accepts truncated input such as "#3b82f"; only complete
	// #rgb and #rrggbb values are colours here.
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' || !isHex(s[1:]) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// IsValidColor reports whether s is a #rgb or #rrggbb hex colour.
func IsValidColor(s string) bool {
	_, ok := parseColor(s)
	return ok
}

// ResolveColor returns value normalised to lowercase #rrggbb, or fallback when
// value is empty or unparseable.
func ResolveColor(value, fallback string) string {
	if c, ok := parseColor(value); ok {
		return c.Hex()
	}
	return fallback
}

// ResolveCompanionColors applies the part → base → default chain to each of
// the four companion parts.
func ResolveCompanionColors(cfg entities.AvatarConfig) CompanionColors {
	base := ResolveColor(cfg.PetColor, entities.DefaultPetColor)
	return CompanionColors{
		Body:   ResolveColor(cfg.PetColorBody, base),
		Ears:   ResolveColor(cfg.PetColorEars, base),
		Tail:   ResolveColor(cfg.PetColorTail, base),
		Accent: ResolveColor(cfg.PetColorAccent, base),
	}
}

func resolveColors(cfg entities.AvatarConfig) palette {
	p := palette{
		Skin:       ResolveColor(cfg.HeadColor, entities.DefaultHeadColor),
		Hair:       ResolveColor(cfg.HairColor, entities.DefaultHairColor),
		Eyes:       ResolveColor(cfg.EyeColor, entities.DefaultEyeColor),
		Mouth:      ResolveColor(cfg.MouthColor, entities.DefaultMouthColor),
		Outfit:     ResolveColor(cfg.BodyColor, entities.DefaultBodyColor),
		Background: ResolveColor(cfg.BgColor, entities.DefaultBgColor),
		Hat:        ResolveColor(cfg.HatColor, entities.DefaultHatColor),
		Accessory:  ResolveColor(cfg.AccessoryColor, entities.DefaultAccessoryColor),
		Companion:  ResolveCompanionColors(cfg),
	}

	p.Eyelid = mustHex(p.Skin).BlendLab(black, eyelidShade).Clamped().Hex()
	p.Tongue = mustHex(p.Mouth).BlendLab(tongueTint, 0.5).Clamped().Hex()
	p.Glow = mustHex(p.Companion.Accent).BlendRgb(white, 0.4).Clamped().Hex()

	return p
}
