package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// Hair styles are authored against the round head and moved into place by the
// head layout table.

func hairCap(color string) svg.Element {
	return svg.Ellipse(16, 9, 7.5, 4).Fill(color)
}

func volume(cx, cy, rx, ry, opacity float64) svg.Element {
	return svg.Ellipse(cx, cy, rx, ry).Fill("white").Opacity(opacity)
}

func hairShort(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Rect(8.5, 8, 3, 5, 1).Fill(k.Main),
		svg.Rect(20.5, 8, 3, 5, 1).Fill(k.Main),
		volume(14, 8, 3, 1.5, 0.06),
	}
}

func hairLong(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Rect(8, 8, 3.5, 14, 1.5).Fill(k.Main),
		svg.Rect(20.5, 8, 3.5, 14, 1.5).Fill(k.Main),
		volume(14, 8, 3, 1.5, 0.06),
	}
}

func hairSpiky(k ink) []svg.Element {
	return []svg.Element{
		svg.Polygon("10,10 13,3 15,9").Fill(k.Main),
		svg.Polygon("14,9 16,2 18,9").Fill(k.Main),
		svg.Polygon("17,10 20,3 22,10").Fill(k.Main),
		svg.Polygon("8,11 10,5 12,10").Fill(k.Main),
		svg.Polygon("20,11 22,5 24,10").Fill(k.Main),
		svg.Ellipse(16, 9, 7, 3.5).Fill(k.Main),
	}
}

func hairCurly(k ink) []svg.Element {
	return []svg.Element{
		svg.Circle(10, 9, 3).Fill(k.Main),
		svg.Circle(16, 7, 3.5).Fill(k.Main),
		svg.Circle(22, 9, 3).Fill(k.Main),
		svg.Circle(8.5, 13, 2.5).Fill(k.Main),
		svg.Circle(23.5, 13, 2.5).Fill(k.Main),
		svg.Circle(13, 6, 2).Fill(k.Main),
		svg.Circle(19, 6, 2).Fill(k.Main),
	}
}

func hairMohawk(k ink) []svg.Element {
	return []svg.Element{
		svg.Rect(13, 2, 6, 8, 2).Fill(k.Main),
		volume(16, 3, 2.5, 1.5, 0.06),
	}
}

func hairBuzz(k ink) []svg.Element {
	return []svg.Element{svg.Ellipse(16, 8.5, 7.5, 3).Fill(k.Main).Opacity(0.7)}
}

func hairPonytail(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Rect(20, 7, 3, 3, 1).Fill(k.Main),
		svg.Rect(22, 9, 2.5, 10, 1).Fill(k.Main),
		svg.Circle(23.3, 19, 1.5).Fill(k.Main),
	}
}

func hairBun(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Circle(16, 4, 3.5).Fill(k.Main),
		svg.Circle(15, 3, 1).Fill("white").Opacity(0.06),
	}
}

func hairPigtails(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Circle(7, 11, 3).Fill(k.Main),
		svg.Circle(25, 11, 3).Fill(k.Main),
		svg.Rect(6, 11, 2.5, 6, 1).Fill(k.Main),
		svg.Rect(23.5, 11, 2.5, 6, 1).Fill(k.Main),
	}
}

func hairAfro(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 10, 10, 8).Fill(k.Main),
		volume(13, 7, 4, 2.5, 0.05),
	}
}

func hairBraids(k ink) []svg.Element {
	out := []svg.Element{
		hairCap(k.Main),
		svg.Rect(8, 8, 2.5, 16, 1).Fill(k.Main),
		svg.Rect(21.5, 8, 2.5, 16, 1).Fill(k.Main),
	}
	for _, y := range []float64{10, 13, 16, 19, 22} {
		out = append(out, svg.Group(
			svg.Line(8.5, y, 10, y).Stroke("white", 0.3).Opacity(0.1),
			svg.Line(22, y, 23.5, y).Stroke("white", 0.3).Opacity(0.1),
		))
	}
	return out
}

func hairWavy(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Path("M8.5,10 Q9,14 8,17 Q9,15 10,18").Stroke(k.Main, 2.5).NoFill().RoundCap(),
		svg.Path("M23.5,10 Q23,14 24,17 Q23,15 22,18").Stroke(k.Main, 2.5).NoFill().RoundCap(),
	}
}

func hairSidePart(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Rect(8, 7, 5, 7, 1.5).Fill(k.Main),
		svg.Rect(20.5, 8, 3, 4, 1).Fill(k.Main),
	}
}

func hairFade(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 8, 7, 3.5).Fill(k.Main),
		svg.Rect(9, 8, 2, 4, 0.5).Fill(k.Main).Opacity(0.5),
		svg.Rect(21, 8, 2, 4, 0.5).Fill(k.Main).Opacity(0.5),
	}
}

func hairDreadlocks(k ink) []svg.Element {
	out := []svg.Element{hairCap(k.Main)}
	for x := 9; x <= 23; x += 2 {
		length := float64(10 + (x%3)*2)
		out = append(out, svg.Rect(float64(x)-0.8, 8, 1.6, length, 0.8).Fill(k.Main))
	}
	return out
}

func hairBob(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Rect(8, 8, 4, 9, 2).Fill(k.Main),
		svg.Rect(20, 8, 4, 9, 2).Fill(k.Main),
		svg.Path("M8,17 Q10,18 12,17").Fill(k.Main),
		svg.Path("M20,17 Q22,18 24,17").Fill(k.Main),
	}
}

func hairShoulder(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Rect(8, 8, 3.5, 12, 1.5).Fill(k.Main),
		svg.Rect(20.5, 8, 3.5, 12, 1.5).Fill(k.Main),
		svg.Path("M9,20 Q10,21 11,20").Fill(k.Main),
		svg.Path("M21,20 Q22,21 23,20").Fill(k.Main),
	}
}

func hairUndercut(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 8, 7, 3).Fill(k.Main),
		svg.Rect(10, 6, 12, 4, 2).Fill(k.Main),
	}
}

func hairTwinBuns(k ink) []svg.Element {
	return []svg.Element{
		hairCap(k.Main),
		svg.Circle(10, 5, 3).Fill(k.Main),
		svg.Circle(22, 5, 3).Fill(k.Main),
	}
}

var hairStyles = newCatalog[drawFunc]("short",
	entry[drawFunc]{"none", nothing},
	entry[drawFunc]{"short", hairShort},
	entry[drawFunc]{"long", hairLong},
	entry[drawFunc]{"spiky", hairSpiky},
	entry[drawFunc]{"curly", hairCurly},
	entry[drawFunc]{"mohawk", hairMohawk},
	entry[drawFunc]{"buzz", hairBuzz},
	entry[drawFunc]{"ponytail", hairPonytail},
	entry[drawFunc]{"bun", hairBun},
	entry[drawFunc]{"pigtails", hairPigtails},
	entry[drawFunc]{"afro", hairAfro},
	entry[drawFunc]{"braids", hairBraids},
	entry[drawFunc]{"wavy", hairWavy},
	entry[drawFunc]{"side_part", hairSidePart},
	entry[drawFunc]{"fade", hairFade},
	entry[drawFunc]{"dreadlocks", hairDreadlocks},
	entry[drawFunc]{"bob", hairBob},
	entry[drawFunc]{"shoulder", hairShoulder},
	entry[drawFunc]{"undercut", hairUndercut},
	entry[drawFunc]{"twin_buns", hairTwinBuns},
)
