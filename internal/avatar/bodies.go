package avatar

import "github.com/KirkDiggler/chore-quest/internal/render/svg"

// bodyShape draws a torso and reports the horizontal span outfit patterns use.
type bodyShape struct {
	path   string
	left   float64
	width  float64
	collar string
}

func (b bodyShape) elements(color string) []svg.Element {
	return []svg.Element{
		svg.Path(b.path).Fill(color),
		svg.Path(b.collar).Stroke("white", 0.3).NoFill().Opacity(0.1),
	}
}

var bodyShapes = newCatalog[bodyShape]("regular",
	entry[bodyShape]{"slim", bodyShape{
		path:   "M12,22 Q11,22 11,24 L11,32 L21,32 L21,24 Q21,22 20,22 Z",
		left:   11,
		width:  10,
		collar: "M13,22 Q16,23 19,22",
	}},
	entry[bodyShape]{"regular", bodyShape{
		path:   "M11,22 Q9,22 9,24 L9,32 L23,32 L23,24 Q23,22 21,22 Z",
		left:   9,
		width:  14,
		collar: "M12,22 Q16,23.5 20,22",
	}},
	entry[bodyShape]{"broad", bodyShape{
		path:   "M9,22 Q7,22 7,24 L7,32 L25,32 L25,24 Q25,22 23,22 Z",
		left:   7,
		width:  18,
		collar: "M11,22 Q16,24 21,22",
	}},
)

func neck(skin string) []svg.Element {
	return []svg.Element{svg.Rect(14, 20, 4, 4, 0).Fill(skin)}
}
