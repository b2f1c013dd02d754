package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// Mouth styles. ink.Detail carries the tongue tint derived from the mouth colour.

func lip(d, color string) svg.Element {
	return svg.Path(d).Stroke(color, 1).NoFill().RoundCap()
}

const smileCurve = "M13,17.5 Q16,20 19,17.5"

func mouthSmile(k ink) []svg.Element {
	return []svg.Element{lip(smileCurve, k.Main)}
}

func mouthGrin(k ink) []svg.Element {
	return []svg.Element{
		lip("M12.5,17 Q16,21 19.5,17", k.Main),
		svg.Path("M13,17.5 Q16,19.5 19,17.5").Fill("white").Opacity(0.6),
	}
}

func mouthNeutral(k ink) []svg.Element {
	return []svg.Element{svg.Line(13.5, 18, 18.5, 18).Stroke(k.Main, 1).RoundCap()}
}

func mouthOpen(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(16, 18, 2, 1.5).Fill(k.Main),
		svg.Ellipse(16, 17.5, 1.6, 0.4).Fill("white").Opacity(0.5),
	}
}

func mouthTongue(k ink) []svg.Element {
	return []svg.Element{
		lip(smileCurve, k.Main),
		svg.Ellipse(16, 19, 1.5, 1).Fill(k.Detail).Opacity(0.8),
	}
}

func mouthFrown(k ink) []svg.Element {
	return []svg.Element{lip("M13,19 Q16,16 19,19", k.Main)}
}

func mouthSurprised(k ink) []svg.Element {
	return []svg.Element{
		svg.Circle(16, 18.5, 1.5).Fill(k.Main),
		svg.Ellipse(16, 17.8, 1, 0.3).Fill("white").Opacity(0.3),
	}
}

func mouthSmirk(k ink) []svg.Element {
	return []svg.Element{lip("M13,18 Q15,18 19,16.5", k.Main)}
}

func mouthBraces(k ink) []svg.Element {
	out := []svg.Element{
		lip("M12.5,17 Q16,20.5 19.5,17", k.Main),
		svg.Path("M13,17.5 Q16,19.5 19,17.5").Fill("white").Opacity(0.5),
		svg.Line(13, 18, 19, 18).Stroke("#c0c0c0", 0.5),
	}
	for _, x := range []float64{13.5, 15, 16.5, 18} {
		out = append(out, svg.Rect(x-0.3, 17.6, 0.6, 0.8, 0.1).Fill("#c0c0c0"))
	}
	return out
}

func mouthVampire(k ink) []svg.Element {
	return []svg.Element{
		lip(smileCurve, k.Main),
		svg.Polygon("14,17.5 14.5,20 15,17.5").Fill("white"),
		svg.Polygon("17,17.5 17.5,20 18,17.5").Fill("white"),
	}
}

func mouthWhistle(k ink) []svg.Element {
	return []svg.Element{svg.Circle(16, 18, 1).Fill(k.Main)}
}

func mouthMask(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M10,16 Q10,21 16,21 Q22,21 22,16 L22,15.5 Q16,17 10,15.5Z").Fill(k.Main).Opacity(0.9),
	}
}

func mouthBeard(k ink) []svg.Element {
	return []svg.Element{
		lip(smileCurve, k.Main),
		svg.Path("M10,17 Q10,24 16,25 Q22,24 22,17 Q19,18 16,18 Q13,18 10,17Z").Fill(k.Main).Opacity(0.7),
	}
}

func mouthMoustache(k ink) []svg.Element {
	return []svg.Element{
		svg.Line(14, 18.5, 18, 18.5).Stroke(k.Main, 0.6).RoundCap(),
		svg.Path("M11,17 Q13,16 16,17 Q19,16 21,17").Stroke(k.Main, 1.2).NoFill().RoundCap(),
	}
}

var mouthStyles = newCatalog[drawFunc]("smile",
	entry[drawFunc]{"smile", mouthSmile},
	entry[drawFunc]{"grin", mouthGrin},
	entry[drawFunc]{"neutral", mouthNeutral},
	entry[drawFunc]{"open", mouthOpen},
	entry[drawFunc]{"tongue", mouthTongue},
	entry[drawFunc]{"frown", mouthFrown},
	entry[drawFunc]{"surprised", mouthSurprised},
	entry[drawFunc]{"smirk", mouthSmirk},
	entry[drawFunc]{"braces", mouthBraces},
	entry[drawFunc]{"vampire", mouthVampire},
	entry[drawFunc]{"whistle", mouthWhistle},
	entry[drawFunc]{"mask", mouthMask},
	entry[drawFunc]{"beard", mouthBeard},
	entry[drawFunc]{"moustache", mouthMoustache},
)
