package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// Face decorations carry their own fixed tints and sit under the eyes.

func extraFreckles(ink) []svg.Element {
	g := svg.Group().Opacity(0.4)
	for _, p := range [][2]float64{{11, 16}, {13, 16.5}, {12, 17.5}, {19, 16}, {21, 16.5}, {20, 17.5}} {
		g = g.With(svg.Circle(p[0], p[1], 0.4).Fill("#8b4513"))
	}
	return []svg.Element{g}
}

func extraBlush(ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(11, 16.5, 2, 1).Fill("#e8878a").Opacity(0.2),
		svg.Ellipse(21, 16.5, 2, 1).Fill("#e8878a").Opacity(0.2),
	}
}

func extraFacePaint(ink) []svg.Element {
	stripe := func(x1, y1, x2, y2 float64, color string) svg.Element {
		return svg.Line(x1, y1, x2, y2).Stroke(color, 0.8).RoundCap()
	}
	return []svg.Element{svg.Group(
		stripe(10, 14, 13, 15, "#e74c3c"),
		stripe(10, 15, 13, 16, "#3b82f6"),
		stripe(19, 15, 22, 14, "#e74c3c"),
		stripe(19, 16, 22, 15, "#3b82f6"),
	).Opacity(0.5)}
}

func extraScar(ink) []svg.Element {
	return []svg.Element{svg.Group(
		svg.Line(19, 11, 21, 16).Stroke("#cc6666", 0.6).RoundCap(),
		svg.Line(19.5, 13, 21, 13).Stroke("#cc6666", 0.4).RoundCap(),
		svg.Line(20, 14.5, 21.3, 14.2).Stroke("#cc6666", 0.4).RoundCap(),
	).Opacity(0.5)}
}

func extraBandage(ink) []svg.Element {
	return []svg.Element{
		svg.Rect(18, 11, 4, 3, 0.5).Fill("#f5d6b8"),
		svg.Line(19, 12, 21, 12).Stroke("#cc6666", 0.3),
		svg.Line(19, 13, 21, 13).Stroke("#cc6666", 0.3),
	}
}

func extraStickers(ink) []svg.Element {
	return []svg.Element{svg.Group(
		svg.Glyph(21, 12, 3, "★").Fill("#f9d71c"),
		svg.Circle(10.5, 16, 1).Fill("#ff6b9d").Opacity(0.6),
	).Opacity(0.7)}
}

var faceExtras = newCatalog[drawFunc]("none",
	entry[drawFunc]{"none", nothing},
	entry[drawFunc]{"freckles", extraFreckles},
	entry[drawFunc]{"blush", extraBlush},
	entry[drawFunc]{"face_paint", extraFacePaint},
	entry[drawFunc]{"scar", extraScar},
	entry[drawFunc]{"bandage", extraBandage},
	entry[drawFunc]{"stickers", extraStickers},
)
