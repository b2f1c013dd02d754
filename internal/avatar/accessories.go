package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// AccessoryPlacement says where an accessory sits in the stack and which body
// scale it tracks.
type AccessoryPlacement int

// Accessory placements
const (
	PlacementNone AccessoryPlacement = iota
	// PlacementBehind is drawn before the body and tracks BodyLayout.BehindScale.
	PlacementBehind
	// PlacementFront is drawn over the character and tracks BodyLayout.FrontScale.
	PlacementFront
	// PlacementHeld is drawn over the character at its authored size.
	PlacementHeld
)

type accessory struct {
	draw      drawFunc
	placement AccessoryPlacement
	// anchor is where interactive sparkle effects attach.
	anchorX, anchorY float64
}

func accScarf(k ink) []svg.Element {
	return []svg.Element{
		svg.Rect(9, 20, 14, 3, 1).Fill(k.Main),
		svg.Rect(9, 20, 3, 6, 1).Fill(k.Main),
		svg.Line(10, 22, 11, 22).Stroke("white", 0.3).Opacity(0.15),
	}
}

func accNecklace(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M12,22 Q16,25 20,22").Stroke(k.Main, 0.6).NoFill(),
		svg.Circle(16, 24, 1).Fill(k.Main),
		svg.Circle(15.7, 23.7, 0.3).Fill("white").Opacity(0.3),
	}
}

func accBowTie(k ink) []svg.Element {
	return []svg.Element{
		svg.Polygon("14,22 16,23 14,24").Fill(k.Main),
		svg.Polygon("18,22 16,23 18,24").Fill(k.Main),
		svg.Circle(16, 23, 0.5).Fill(k.Main),
	}
}

func accCape(k ink) []svg.Element {
	return []svg.Element{svg.Group(
		svg.Path("M9,22 Q7,28 9,32 L23,32 Q25,28 23,22").Fill(k.Main),
		svg.Path("M10,23 Q12,25 11,28").Stroke("white", 0.3).NoFill().Opacity(0.1),
	).Opacity(0.7)}
}

func accWings(k ink) []svg.Element {
	return []svg.Element{svg.Group(
		svg.Path("M9,24 Q4,20 5,26 Q6,29 9,28").Fill(k.Main),
		svg.Path("M23,24 Q28,20 27,26 Q26,29 23,28").Fill(k.Main),
		svg.Path("M8,24 Q5,21 6,25").Stroke("white", 0.3).NoFill().Opacity(0.15),
		svg.Path("M24,24 Q27,21 26,25").Stroke("white", 0.3).NoFill().Opacity(0.15),
	).Opacity(0.6)}
}

func accShield(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M3,20 L3,26 Q3,30 6,30 L6,20Z").Fill(k.Main),
		svg.Line(4.5, 22, 4.5, 28).Stroke("white", 0.5).Opacity(0.4),
		svg.Circle(4.5, 25, 1).Fill("white").Opacity(0.15),
	}
}

// accSword paints the blade silver and the hilt in the accessory colour.
func accSword(k ink) []svg.Element {
	return []svg.Element{
		svg.Rect(26, 16, 1, 10, 0.3).Fill("#c0c0c0"),
		svg.Line(26.2, 17, 26.2, 25).Stroke("white", 0.2).Opacity(0.3),
		svg.Rect(24.5, 25, 4, 1.5, 0.5).Fill(k.Main),
		svg.Rect(26, 26, 1, 3, 0.3).Fill(k.Main),
	}
}

var accessories = newCatalog[accessory]("none",
	entry[accessory]{"none", accessory{draw: nothing}},
	entry[accessory]{"scarf", accessory{accScarf, PlacementFront, 12, 21}},
	entry[accessory]{"necklace", accessory{accNecklace, PlacementFront, 16, 24}},
	entry[accessory]{"bow_tie", accessory{accBowTie, PlacementFront, 16, 23}},
	entry[accessory]{"cape", accessory{accCape, PlacementBehind, 16, 27}},
	entry[accessory]{"wings", accessory{accWings, PlacementBehind, 16, 25}},
	entry[accessory]{"shield", accessory{accShield, PlacementHeld, 4.5, 25}},
	entry[accessory]{"sword", accessory{accSword, PlacementHeld, 26.5, 17}},
)

// AccessoryPlacementFor classifies an accessory style. Unknown styles resolve to
// the catalog fallback, which draws nothing.
func AccessoryPlacementFor(style string) AccessoryPlacement {
	return accessories.lookup(style).placement
}

// sparkleAnchor marks where interactive effects attach to a front accessory.
func sparkleAnchor(a accessory) svg.Element {
	return svg.Circle(a.anchorX, a.anchorY, 0.5).
		Fill("white").
		Opacity(0).
		Class("avatar-sparkle-anchor")
}
