package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// Head shapes. Every head carries a pair of small ears drawn behind the face.

func ears(lx, rx, y, rxEar, ryEar float64, color string) []svg.Element {
	return []svg.Element{
		svg.Ellipse(lx, y, rxEar, ryEar).Fill(color).Opacity(0.85),
		svg.Ellipse(rx, y, rxEar, ryEar).Fill(color).Opacity(0.85),
	}
}

func headRound(k ink) []svg.Element {
	return append(ears(9.5, 22.5, 14, 1.2, 1.5, k.Main),
		svg.Ellipse(16, 14, 7, 8).Fill(k.Main))
}

func headOval(k ink) []svg.Element {
	return append(ears(10.5, 21.5, 14, 1, 1.3, k.Main),
		svg.Ellipse(16, 14, 6, 9).Fill(k.Main))
}

func headSquare(k ink) []svg.Element {
	return append(ears(9.5, 22.5, 14, 1, 1.3, k.Main),
		svg.Rect(9, 6, 14, 16, 3).Fill(k.Main))
}

func headDiamond(k ink) []svg.Element {
	return append(ears(9.5, 22.5, 14, 1, 1.2, k.Main),
		svg.Polygon("16,5 23,14 16,23 9,14").Fill(k.Main))
}

func headHeart(k ink) []svg.Element {
	return append(ears(8.5, 23.5, 12, 1, 1.2, k.Main),
		svg.Path("M16,22 C16,22 8,16 8,11 C8,8 10,6 13,6 C14.5,6 15.5,7 16,8 "+
			"C16.5,7 17.5,6 19,6 C22,6 24,8 24,11 C24,16 16,22 16,22Z").Fill(k.Main))
}

func headLong(k ink) []svg.Element {
	return append(ears(10.5, 21.5, 13, 1, 1.3, k.Main),
		svg.Ellipse(16, 13, 6, 10).Fill(k.Main))
}

func headTriangle(k ink) []svg.Element {
	return append(ears(9, 23, 18, 1, 1.2, k.Main),
		svg.Path("M16,5 L24,22 L8,22 Z").Fill(k.Main))
}

func headPear(k ink) []svg.Element {
	return append(ears(9.5, 22.5, 16, 1, 1.3, k.Main),
		svg.Path("M13,6 Q10,6 9,10 Q8,16 10,20 Q12,23 16,23 Q20,23 22,20 "+
			"Q24,16 23,10 Q22,6 19,6 Q16,5 13,6Z").Fill(k.Main))
}

func headWide(k ink) []svg.Element {
	return append(ears(7.5, 24.5, 14, 1.2, 1.3, k.Main),
		svg.Ellipse(16, 14, 9, 7).Fill(k.Main))
}

var heads = newCatalog[drawFunc]("round",
	entry[drawFunc]{"round", headRound},
	entry[drawFunc]{"oval", headOval},
	entry[drawFunc]{"square", headSquare},
	entry[drawFunc]{"diamond", headDiamond},
	entry[drawFunc]{"heart", headHeart},
	entry[drawFunc]{"long", headLong},
	entry[drawFunc]{"triangle", headTriangle},
	entry[drawFunc]{"pear", headPear},
	entry[drawFunc]{"wide", headWide},
)
