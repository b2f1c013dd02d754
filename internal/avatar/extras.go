package avatar

import (
	"strings"

	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// Level thresholds for each decorative tier. Tiers are cumulative.
const (
	LevelGlow            = 2
	LevelGem             = 3
	LevelEyeShine        = 4
	LevelSparkles        = 5
	LevelShimmer         = 6
	LevelCrown           = 7
	LevelIntenseSparkles = 8
)

// Extra tier classes, one element per unlocked tier.
const (
	ClassGlow            = "avatar-pet-glow"
	ClassGem             = "avatar-pet-gem"
	ClassEyeShine        = "avatar-pet-eyeshine"
	ClassSparkles        = "avatar-pet-sparkles"
	ClassShimmer         = "avatar-pet-shimmer"
	ClassCrown           = "avatar-pet-crown"
	ClassIntenseSparkles = "avatar-pet-sparkles-intense"
)

// levelExtras returns the overlay for a companion at level, in the species'
// local space. Below LevelGlow there is nothing.
func levelExtras(s speciesEntry, level int, pal palette) []svg.Element {
	if level < LevelGlow {
		return nil
	}

	b := s.body
	out := []svg.Element{
		svg.Ellipse(b.X, b.Y, s.radiusX+0.8, s.radiusY+0.8).
			NoFill().Stroke(pal.Glow, 0.6).Opacity(0.35).Class(ClassGlow),
	}

	if level >= LevelGem {
		gy := b.Y + s.radiusY - 0.5
		out = append(out, svg.Group(
			svg.Polygon(polyPoints(
				[2]float64{b.X, gy - 0.5},
				[2]float64{b.X + 0.4, gy},
				[2]float64{b.X, gy + 0.5},
				[2]float64{b.X - 0.4, gy},
			)).Fill(pal.Companion.Accent),
			svg.Circle(b.X-0.1, gy-0.15, 0.12).Fill("white").Opacity(0.7),
		).Class(ClassGem))
	}

	if level >= LevelEyeShine {
		g := svg.Group().Class(ClassEyeShine)
		for _, e := range s.eyes {
			g = g.With(svg.Circle(e.X-0.15, e.Y-0.2, 0.12).Fill("white").Opacity(0.9))
		}
		out = append(out, g)
	}

	if level >= LevelSparkles {
		out = append(out, sparkles(s, pal.Glow, 0.25, 0.8).Class(ClassSparkles))
	}

	if level >= LevelShimmer {
		out = append(out,
			svg.Ellipse(b.X, b.Y, s.radiusX+0.3, s.radiusY+0.3).
				NoFill().Stroke("white", 0.25).Opacity(0.6).
				Set("stroke-dasharray", "0.6 0.4").
				Class(ClassShimmer))
	}

	if level >= LevelCrown {
		out = append(out, crown(b.X, s.top).Class(ClassCrown))
	}

	if level >= LevelIntenseSparkles {
		out = append(out, sparkles(s, "white", 0.4, 1.6).Class(ClassIntenseSparkles))
	}

	return out
}

// sparkles scatters four particles around the body at the given spread.
func sparkles(s speciesEntry, color string, r, spread float64) svg.Element {
	b := s.body
	return svg.Group(
		svg.Circle(b.X-s.radiusX-spread, b.Y-s.radiusY, r).Fill(color),
		svg.Circle(b.X+s.radiusX+spread, b.Y-s.radiusY+0.5, r).Fill(color),
		svg.Circle(b.X+s.radiusX*0.5, s.top-spread, r*0.8).Fill(color),
		svg.Circle(b.X-s.radiusX*0.6, b.Y+s.radiusY+spread*0.5, r*0.8).Fill(color),
	).Opacity(0.8)
}

func crown(cx, top float64) svg.Element {
	return svg.Polygon(polyPoints(
		[2]float64{cx - 1.2, top}, [2]float64{cx - 1.2, top - 1.2}, [2]float64{cx - 0.6, top - 0.6},
		[2]float64{cx, top - 1.5}, [2]float64{cx + 0.6, top - 0.6}, [2]float64{cx + 1.2, top - 1.2},
		[2]float64{cx + 1.2, top},
	)).Fill("#f9d71c")
}

func polyPoints(pts ...[2]float64) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = svg.Num(p[0]) + "," + svg.Num(p[1])
	}
	return strings.Join(parts, " ")
}
