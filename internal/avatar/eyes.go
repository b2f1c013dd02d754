package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

const (
	leftEyeX  = 12.75
	rightEyeX = 19.25
	eyeY      = 13.5
)

// BlinkClass says which eyes of a style receive an eyelid overlay.
type BlinkClass int

// Blink classes
const (
	BlinkNever BlinkClass = iota
	BlinkBoth
	BlinkLeftOnly
)

// blinkClasses is a static membership table; styles not listed never blink.
// Left-only styles already alter the right eye permanently.
var blinkClasses = map[string]BlinkClass{
	"normal":    BlinkBoth,
	"wide":      BlinkBoth,
	"angry":     BlinkBoth,
	"crying":    BlinkBoth,
	"glasses":   BlinkBoth,
	"dot":       BlinkBoth,
	"wink":      BlinkLeftOnly,
	"eye_patch": BlinkLeftOnly,
}

// BlinkClassFor returns the blink behaviour of an eye style.
// Unknown styles resolve through the eye catalog fallback first.
func BlinkClassFor(style string) BlinkClass {
	return blinkClasses[eyeStyles.resolve(style)]
}

func pupil(cx float64, color string) []svg.Element {
	return []svg.Element{
		svg.Ellipse(cx, 13.5, 1.5, 1.6).Fill("white").Opacity(0.9),
		svg.Ellipse(cx, 13.7, 1.1, 1.2).Fill(color),
		svg.Circle(cx+0.35, 13.3, 0.35).Fill("white"),
	}
}

func arc(d, color string) svg.Element {
	return svg.Path(d).Stroke(color, 1.2).NoFill().RoundCap()
}

func eyesNormal(k ink) []svg.Element {
	return append(pupil(leftEyeX, k.Main), pupil(rightEyeX, k.Main)...)
}

func eyesHappy(k ink) []svg.Element {
	return []svg.Element{
		arc("M11.5,14 Q12.75,12 14,14", k.Main),
		arc("M18,14 Q19.25,12 20.5,14", k.Main),
	}
}

func eyesWide(k ink) []svg.Element {
	var out []svg.Element
	for _, cx := range []float64{leftEyeX, rightEyeX} {
		out = append(out,
			svg.Circle(cx, 13.5, 2.2).Fill("white"),
			svg.Circle(cx, 13.7, 1.3).Fill(k.Main),
			svg.Circle(cx, 13.7, 0.6).Fill("#111"),
			svg.Circle(cx+0.35, 13.2, 0.4).Fill("white"),
		)
	}
	return out
}

func eyesSleepy(k ink) []svg.Element {
	return []svg.Element{
		svg.Line(11, 14, 14, 14).Stroke(k.Main, 1.4).RoundCap(),
		svg.Line(18, 14, 21, 14).Stroke(k.Main, 1.4).RoundCap(),
	}
}

func eyesWink(k ink) []svg.Element {
	return append(pupil(leftEyeX, k.Main), arc("M18,14 Q19.25,12 20.5,14", k.Main))
}

func eyesAngry(k ink) []svg.Element {
	return []svg.Element{
		svg.Line(11, 12, 14, 13).Stroke(k.Main, 0.8).RoundCap(),
		svg.Ellipse(leftEyeX, 14, 1.3, 1.2).Fill("white").Opacity(0.9),
		svg.Ellipse(leftEyeX, 14.1, 1, 0.9).Fill(k.Main),
		svg.Line(21, 12, 18, 13).Stroke(k.Main, 0.8).RoundCap(),
		svg.Ellipse(rightEyeX, 14, 1.3, 1.2).Fill("white").Opacity(0.9),
		svg.Ellipse(rightEyeX, 14.1, 1, 0.9).Fill(k.Main),
	}
}

func eyesDot(k ink) []svg.Element {
	return []svg.Element{
		svg.Circle(leftEyeX, 14, 1).Fill(k.Main),
		svg.Circle(rightEyeX, 14, 1).Fill(k.Main),
	}
}

func eyesStar(k ink) []svg.Element {
	return []svg.Element{
		svg.Glyph(leftEyeX, 15.5, 5, "★").Centered().Fill(k.Main),
		svg.Glyph(rightEyeX, 15.5, 5, "★").Centered().Fill(k.Main),
	}
}

func eyesGlasses(k ink) []svg.Element {
	return []svg.Element{
		svg.Circle(leftEyeX, 13.5, 2.5).NoFill().Stroke(k.Main, 0.8),
		svg.Circle(rightEyeX, 13.5, 2.5).NoFill().Stroke(k.Main, 0.8),
		svg.Line(15.25, 13.5, 16.75, 13.5).Stroke(k.Main, 0.8),
		svg.Line(10.25, 13.5, 9, 12.5).Stroke(k.Main, 0.6),
		svg.Line(21.75, 13.5, 23, 12.5).Stroke(k.Main, 0.6),
		svg.Circle(leftEyeX, 13.7, 0.9).Fill(k.Main),
		svg.Circle(rightEyeX, 13.7, 0.9).Fill(k.Main),
		svg.Circle(13, 13.3, 0.3).Fill("white"),
		svg.Circle(19.5, 13.3, 0.3).Fill("white"),
	}
}

func eyesSunglasses(k ink) []svg.Element {
	return []svg.Element{
		svg.Rect(10, 12, 5.5, 3.5, 1).Fill(k.Main),
		svg.Rect(16.5, 12, 5.5, 3.5, 1).Fill(k.Main),
		svg.Line(15.5, 13.5, 16.5, 13.5).Stroke(k.Main, 0.8),
		svg.Line(10, 13, 8.5, 12).Stroke(k.Main, 0.7),
		svg.Line(22, 13, 23.5, 12).Stroke(k.Main, 0.7),
		// lens glare
		svg.Line(11, 12.8, 12, 12.8).Stroke("white", 0.4).Opacity(0.3).RoundCap(),
		svg.Line(17.5, 12.8, 18.5, 12.8).Stroke("white", 0.4).Opacity(0.3).RoundCap(),
	}
}

func eyesEyePatch(k ink) []svg.Element {
	return append(pupil(leftEyeX, k.Main),
		svg.Ellipse(rightEyeX, 13.5, 3, 2.5).Fill("#222"),
		svg.Line(9, 10, 22, 10).Stroke("#222", 0.6),
	)
}

func eyesCrying(k ink) []svg.Element {
	return []svg.Element{
		svg.Ellipse(leftEyeX, 13.5, 1.5, 1.6).Fill("white").Opacity(0.9),
		svg.Ellipse(leftEyeX, 13.7, 1.1, 1.2).Fill(k.Main),
		svg.Ellipse(rightEyeX, 13.5, 1.5, 1.6).Fill("white").Opacity(0.9),
		svg.Ellipse(rightEyeX, 13.7, 1.1, 1.2).Fill(k.Main),
		svg.Ellipse(13, 17, 0.6, 1.2).Fill("#64dfdf").Opacity(0.6),
		svg.Ellipse(19.5, 17, 0.6, 1.2).Fill("#64dfdf").Opacity(0.6),
	}
}

func eyesHeartEyes(k ink) []svg.Element {
	return []svg.Element{
		svg.Path("M12.75,12.5 L11.5,13.5 L12.75,15 L14,13.5Z").Fill(k.Main),
		svg.Path("M19.25,12.5 L18,13.5 L19.25,15 L20.5,13.5Z").Fill(k.Main),
	}
}

func eyesDizzy(k ink) []svg.Element {
	return []svg.Element{
		svg.Line(11, 12, 14.5, 15.5).Stroke(k.Main, 1).RoundCap(),
		svg.Line(14.5, 12, 11, 15.5).Stroke(k.Main, 1).RoundCap(),
		svg.Line(17.5, 12, 21, 15.5).Stroke(k.Main, 1).RoundCap(),
		svg.Line(21, 12, 17.5, 15.5).Stroke(k.Main, 1).RoundCap(),
	}
}

func eyesClosed(k ink) []svg.Element {
	return []svg.Element{
		arc("M11,14 Q12.75,15.5 14.5,14", k.Main),
		arc("M17.5,14 Q19.25,15.5 21,14", k.Main),
	}
}

var eyeStyles = newCatalog[drawFunc]("normal",
	entry[drawFunc]{"normal", eyesNormal},
	entry[drawFunc]{"happy", eyesHappy},
	entry[drawFunc]{"wide", eyesWide},
	entry[drawFunc]{"sleepy", eyesSleepy},
	entry[drawFunc]{"wink", eyesWink},
	entry[drawFunc]{"angry", eyesAngry},
	entry[drawFunc]{"dot", eyesDot},
	entry[drawFunc]{"star", eyesStar},
	entry[drawFunc]{"glasses", eyesGlasses},
	entry[drawFunc]{"sunglasses", eyesSunglasses},
	entry[drawFunc]{"eye_patch", eyesEyePatch},
	entry[drawFunc]{"crying", eyesCrying},
	entry[drawFunc]{"heart_eyes", eyesHeartEyes},
	entry[drawFunc]{"dizzy", eyesDizzy},
	entry[drawFunc]{"closed", eyesClosed},
)

// eyelids returns the blink overlays for an eye style, painted in the lid colour.
// Lids start transparent; the UI animates them.
func eyelids(style, lidColor string) []svg.Element {
	lid := func(cx float64, side string) svg.Element {
		return svg.Ellipse(cx, eyeY, 1.7, 1.8).
			Fill(lidColor).
			Opacity(0).
			Class("avatar-eyelid avatar-eyelid-" + side)
	}

	switch BlinkClassFor(style) {
	case BlinkBoth:
		return []svg.Element{lid(leftEyeX, "left"), lid(rightEyeX, "right")}
	case BlinkLeftOnly:
		return []svg.Element{lid(leftEyeX, "left")}
	default:
		return nil
	}
}
