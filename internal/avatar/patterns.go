package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// patternFunc paints an outfit pattern across the torso span [left, left+width].
type patternFunc func(left, width float64) []svg.Element

func patternStripes(left, width float64) []svg.Element {
	g := svg.Group().Opacity(0.3)
	for _, y := range []float64{24, 26, 28} {
		g = g.With(svg.Line(left+1, y, left+width-1, y).Stroke("white", 0.8))
	}
	return []svg.Element{g}
}

func patternStars(float64, float64) []svg.Element {
	return []svg.Element{svg.Group(
		svg.Glyph(13, 27, 3, "★").Fill("white"),
		svg.Glyph(17, 29, 3, "★").Fill("white"),
	).Opacity(0.3)}
}

func patternCamo(left, width float64) []svg.Element {
	cx := left + width/2
	return []svg.Element{svg.Group(
		svg.Circle(cx-2, 25, 1.5).Fill("#2d4a2d"),
		svg.Circle(cx+2, 27, 2).Fill("#3d5a3d"),
		svg.Circle(cx-1, 29, 1.2).Fill("#2d4a2d"),
	).Opacity(0.2)}
}

func patternTieDye(left, width float64) []svg.Element {
	cx := left + width/2
	return []svg.Element{svg.Group(
		svg.Circle(cx, 26, 3).Fill("#ff6b9d"),
		svg.Circle(cx-2, 28, 2).Fill("#64dfdf"),
		svg.Circle(cx+2, 25, 1.5).Fill("#f9d71c"),
	).Opacity(0.25)}
}

func patternPlaid(left, width float64) []svg.Element {
	g := svg.Group().Opacity(0.2)
	for _, y := range []float64{24, 27, 30} {
		g = g.With(svg.Line(left+1, y, left+width-1, y).Stroke("white", 0.4))
	}
	for _, x := range []float64{left + 3, left + width/2, left + width - 3} {
		g = g.With(svg.Line(x, 23, x, 31).Stroke("white", 0.4))
	}
	return []svg.Element{g}
}

func patternNone(float64, float64) []svg.Element { return nil }

var outfitPatterns = newCatalog[patternFunc]("none",
	entry[patternFunc]{"none", patternNone},
	entry[patternFunc]{"stripes", patternStripes},
	entry[patternFunc]{"stars", patternStars},
	entry[patternFunc]{"camo", patternCamo},
	entry[patternFunc]{"tie_dye", patternTieDye},
	entry[patternFunc]{"plaid", patternPlaid},
)
