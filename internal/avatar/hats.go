package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

func hatCrown(k ink) []svg.Element {
	return []svg.Element{
		svg.Polygon("10,8 11,4 13,7 16,3 19,7 21,4 22,8").Fill(k.Main),
		svg.Rect(10, 7, 12, 2, 0.5).Fill(k.Main),
		svg.Circle(13, 6, 0.5).Fill("white").Opacity(0.4),
		svg.Circle(16, 4, 0.5).Fill("white").Opacity(0.4),
		svg.Circle(19, 6, 0.5).Fill("white").Opacity(0.4),
	}
}

func hatWizard(k ink) []svg.Element {
	return []svg.Element{
		svg.Polygon("16,0 10,9 22,9").Fill(k.Main),
		svg.Ellipse(16, 9, 7, 1.5).Fill(k.Main),
		svg.Glyph(16, 7, 3, "★").Centered().Fill("#f9d71c"),
		svg.Line(12, 7, 14, 3).Stroke("white", 0.3).Opacity(0.15),
	}
}

func hatBeanie(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 8, 7.5, 4).Fill(k.Main),
		svg.Rect(8.5, 7, 15, 2.5, 1).Fill(k.Main).Opacity(0.7),
		svg.Circle(16, 4, 1.2).Fill(k.Main),
		svg.Path("M10,9 Q13,8 16,9").Stroke("white", 0.3).Opacity(0.1).NoFill(),
	}
}

func hatCap(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 8, 7.5, 3.5).Fill(k.Main),
		svg.Ellipse(10, 9, 5, 1.2).Fill(k.Main),
		svg.Line(6, 9, 10, 8.5).Stroke("white", 0.3).Opacity(0.15),
	}
}

func hatPirate(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 7.5, 8, 3).Fill("#1a1a2e"),
		svg.Rect(8, 7, 16, 1.5, 0).Fill(k.Main),
		svg.Glyph(16, 7, 3, "☠").Centered().Fill("white"),
	}
}

func hatHeadphones(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M9,12 Q9,5 16,5 Q23,5 23,12").Stroke(k.Main, 1.5).NoFill(),
		svg.Rect(7, 11, 3, 4, 1).Fill(k.Main),
		svg.Rect(22, 11, 3, 4, 1).Fill(k.Main),
		svg.Rect(7.5, 12, 2, 2, 0.5).Fill("white").Opacity(0.15),
		svg.Rect(22.5, 12, 2, 2, 0.5).Fill("white").Opacity(0.15),
	}
}

func hatTiara(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M10,8 L12,5 L14,7 L16,4 L18,7 L20,5 L22,8").Stroke(k.Main, 0.8).NoFill(),
		svg.Circle(16, 4, 0.8).Fill(k.Main),
		svg.Circle(12, 5, 0.4).Fill(k.Main),
		svg.Circle(20, 5, 0.4).Fill(k.Main),
		svg.Rect(10, 7.5, 12, 1, 0.3).Fill(k.Main),
	}
}

func hatHorns(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M10,10 Q8,4 11,5").Stroke(k.Main, 2).NoFill().RoundCap(),
		svg.Path("M22,10 Q24,4 21,5").Stroke(k.Main, 2).NoFill().RoundCap(),
	}
}

func hatBunnyEars(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(12, 3, 2, 5).Fill(k.Main),
		svg.Ellipse(12, 3, 1, 4).Fill("#ffb6c1").Opacity(0.5),
		svg.Ellipse(20, 3, 2, 5).Fill(k.Main),
		svg.Ellipse(20, 3, 1, 4).Fill("#ffb6c1").Opacity(0.5),
	}
}

func hatCatEars(k ink) []svg.Element {
	return []svg.Element{
		svg.Polygon("9,9 10,2 14,8").Fill(k.Main),
		svg.Polygon("10,8 11,4 13,8").Fill("#ffb6c1").Opacity(0.5),
		svg.Polygon("23,9 22,2 18,8").Fill(k.Main),
		svg.Polygon("22,8 21,4 19,8").Fill("#ffb6c1").Opacity(0.5),
	}
}

// hatHalo ignores the hat colour; a halo is always gold.
func hatHalo(ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 4, 6, 1.5).NoFill().Stroke("#f9d71c", 1).Opacity(0.8),
	}
}

func hatViking(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 8, 8, 3.5).Fill(k.Main),
		svg.Path("M8,8 Q6,3 9,5").Stroke("#c0c0c0", 1.5).NoFill().RoundCap(),
		svg.Path("M24,8 Q26,3 23,5").Stroke("#c0c0c0", 1.5).NoFill().RoundCap(),
		svg.Rect(8, 7, 16, 2, 0.5).Fill(k.Main).Opacity(0.8),
	}
}

var hats = newCatalog[drawFunc]("none",
	entry[drawFunc]{"none", nothing},
	entry[drawFunc]{"crown", hatCrown},
	entry[drawFunc]{"wizard", hatWizard},
	entry[drawFunc]{"beanie", hatBeanie},
	entry[drawFunc]{"cap", hatCap},
	entry[drawFunc]{"pirate", hatPirate},
	entry[drawFunc]{"headphones", hatHeadphones},
	entry[drawFunc]{"tiara", hatTiara},
	entry[drawFunc]{"horns", hatHorns},
	entry[drawFunc]{"bunny_ears", hatBunnyEars},
	entry[drawFunc]{"cat_ears", hatCatEars},
	entry[drawFunc]{"halo", hatHalo},
	entry[drawFunc]{"viking", hatViking},
)
