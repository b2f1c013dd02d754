package avatar

import (
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// CompanionColors are the four paintable parts of a companion.
type CompanionColors struct {
	Body   string
	Ears   string
	Tail   string
	Accent string
}

// Placement is the positional context a species drawing needs: which slot is
// active and whether the artwork ends up mirrored.
type Placement struct {
	Slot     entities.CompanionPosition
	Mirrored bool
}

// TailClass names the wag direction the UI animates the tail with.
func (p Placement) TailClass() string {
	switch {
	case p.Slot == entities.CompanionHead:
		return "avatar-pet-tail avatar-pet-tail-droop"
	case p.Mirrored:
		return "avatar-pet-tail avatar-pet-tail-left"
	default:
		return "avatar-pet-tail avatar-pet-tail-right"
	}
}

// tail tags a tail element and, when perched on the head, swings it down
// around its root so it hangs over the hair.
func (p Placement) tail(e svg.Element, rootX, rootY float64) svg.Element {
	if p.Slot == entities.CompanionHead {
		e = e.Transform(svg.RotateAbout(60, rootX, rootY))
	}
	return e.Class(p.TailClass())
}

type point struct{ X, Y float64 }

// speciesEntry is a companion drawing in its local space plus the geometry the
// level extras anchor to.
type speciesEntry struct {
	draw func(CompanionColors, Placement) []svg.Element
	// big species use the larger slot offsets.
	big bool
	// body is the main body ellipse.
	body    point
	radiusX float64
	radiusY float64
	eyes    [2]point
	// top is the highest point of the artwork, where a crown sits.
	top float64
}

// center is the local visual centre used by free-form placement.
func (s speciesEntry) center() point {
	if s.big {
		return point{4, 4}
	}
	return point{3, 3}
}

func petEyes(a, b point, r float64) []svg.Element {
	return []svg.Element{
		svg.Circle(a.X, a.Y, r).Fill("#333"),
		svg.Circle(b.X, b.Y, r).Fill("#333"),
		svg.Circle(a.X+0.15, a.Y-0.15, 0.15).Fill("white"),
		svg.Circle(b.X+0.15, b.Y-0.15, 0.15).Fill("white"),
	}
}

func drawCat(c CompanionColors, p Placement) []svg.Element {
	out := []svg.Element{
		p.tail(svg.Path("M5,4 Q7,2 6.5,5").Stroke(c.Tail, 0.7).NoFill().RoundCap(), 5, 4),
		svg.Ellipse(3, 3, 2.5, 2).Fill(c.Body),
		svg.Polygon("1,1 1.5,-1 3,1").Fill(c.Ears),
		svg.Polygon("4,1 4.5,-1 5,1").Fill(c.Ears),
	}
	out = append(out, petEyes(point{2, 3}, point{4, 3}, 0.5)...)
	whisker := func(x1, y1, x2, y2 float64) svg.Element {
		return svg.Line(x1, y1, x2, y2).Stroke(c.Accent, 0.2).Opacity(0.5)
	}
	return append(out,
		whisker(0, 3.5, 1.5, 3.2),
		whisker(0, 4.2, 1.5, 3.8),
		whisker(4.5, 3.2, 6, 3.5),
		whisker(4.5, 3.8, 6, 4.2),
	)
}

func drawDog(c CompanionColors, p Placement) []svg.Element {
	out := []svg.Element{
		p.tail(svg.Path("M5.5,3 Q7,1 6.5,3.5").Stroke(c.Tail, 0.8).NoFill().RoundCap(), 5.5, 3),
		svg.Ellipse(3, 3, 2.5, 2).Fill(c.Body),
		svg.Ellipse(0.5, 1.5, 1.2, 1.8).Fill(c.Ears),
		svg.Ellipse(5.5, 1.5, 1.2, 1.8).Fill(c.Ears),
	}
	out = append(out, petEyes(point{2, 3}, point{4, 3}, 0.5)...)
	return append(out,
		svg.Ellipse(3, 3.8, 0.5, 0.3).Fill("#333"),
		svg.Path("M3,4.1 Q3.3,5 3.5,4.1").Fill("#e87a9a"),
		// collar tag
		svg.Circle(1.6, 4.6, 0.35).Fill(c.Accent),
	)
}

func drawDragon(c CompanionColors, p Placement) []svg.Element {
	return []svg.Element{
		svg.Ellipse(4, 4, 3, 2.5).Fill(c.Body),
		svg.Polygon("2,2 1.5,0 3,2").Fill(c.Ears),
		svg.Polygon("4,1.5 4.5,0 5.5,1.5").Fill(c.Ears),
		svg.Polygon("6,2 7,0 7,2").Fill(c.Ears),
		svg.Circle(3, 3.5, 0.5).Fill("#f9d71c"),
		svg.Circle(3, 3.5, 0.2).Fill("#111"),
		svg.Circle(5, 3.5, 0.5).Fill("#f9d71c"),
		svg.Circle(5, 3.5, 0.2).Fill("#111"),
		p.tail(svg.Path("M6,4 Q8.5,3 8,5.5").Stroke(c.Tail, 0.8).NoFill().RoundCap(), 6, 4),
		svg.Polygon("1,3 -1,2 0,4").Fill(c.Accent).Opacity(0.6),
		svg.Polygon("7,3 9,2 8,4").Fill(c.Accent).Opacity(0.6),
		// fire breath
		svg.Circle(2, 5, 0.4).Fill("#f39c12").Opacity(0.6),
	}
}

func drawOwl(c CompanionColors, p Placement) []svg.Element {
	out := []svg.Element{
		p.tail(svg.Polygon("2.3,6.2 3,7.6 3.7,6.2").Fill(c.Tail), 3, 6.2),
		svg.Ellipse(3, 3.5, 2.5, 3).Fill(c.Body),
		svg.Polygon("1.5,1 1,-0.5 2.5,1").Fill(c.Ears),
		svg.Polygon("3.5,1 5,-0.5 4.5,1").Fill(c.Ears),
		svg.Circle(2, 3, 1).Fill("white"),
		svg.Circle(4, 3, 1).Fill("white"),
	}
	out = append(out, petEyes(point{2, 3}, point{4, 3}, 0.5)...)
	return append(out,
		svg.Polygon("2.5,4 3,4.8 3.5,4").Fill("#f39c12"),
		svg.Path("M0.8,4 Q0,5.5 1,6").Stroke(c.Accent, 0.5).NoFill().Opacity(0.5),
		svg.Path("M5.2,4 Q6,5.5 5,6").Stroke(c.Accent, 0.5).NoFill().Opacity(0.5),
	)
}

func drawBunny(c CompanionColors, p Placement) []svg.Element {
	return []svg.Element{
		svg.Ellipse(3, 3, 2.5, 2).Fill(c.Body),
		svg.Ellipse(2, 0, 0.8, 2.5).Fill(c.Ears),
		svg.Ellipse(2, 0, 0.4, 2).Fill(c.Accent).Opacity(0.4),
		svg.Ellipse(4, 0, 0.8, 2.5).Fill(c.Ears),
		svg.Ellipse(4, 0, 0.4, 2).Fill(c.Accent).Opacity(0.4),
		svg.Circle(2, 2.8, 0.4).Fill("#333"),
		svg.Circle(4, 2.8, 0.4).Fill("#333"),
		svg.Circle(2.1, 2.7, 0.12).Fill("white"),
		svg.Circle(4.1, 2.7, 0.12).Fill("white"),
		svg.Ellipse(3, 3.3, 0.3, 0.2).Fill("#e87a9a"),
		p.tail(svg.Circle(5.5, 3.5, 0.8).Fill(c.Tail), 4.7, 3.5),
	}
}

func drawPhoenix(c CompanionColors, p Placement) []svg.Element {
	return []svg.Element{
		svg.Ellipse(4, 4, 2.5, 2).Fill(c.Body),
		svg.Polygon("2,3 0,1 3,3").Fill(c.Ears),
		svg.Polygon("4,2 4.5,0 5.5,2").Fill(c.Ears),
		svg.Polygon("5,2 6.5,0 7,3").Fill(c.Ears),
		svg.Circle(3, 3.5, 0.5).Fill("#333"),
		svg.Circle(5, 3.5, 0.5).Fill("#333"),
		svg.Circle(3.15, 3.35, 0.15).Fill("white"),
		svg.Circle(5.15, 3.35, 0.15).Fill("white"),
		svg.Polygon("3.5,4.5 4,5.5 4.5,4.5").Fill(c.Accent),
		p.tail(svg.Group(
			svg.Path("M1,5 Q-0.5,7 1.5,6").Stroke("#ff4444", 0.6).Fill(c.Tail).Opacity(0.7),
			svg.Path("M7,5 Q8.5,7 6.5,6").Stroke("#ff4444", 0.6).Fill(c.Tail).Opacity(0.7),
		), 4, 5.5),
	}
}

var species = newCatalog[speciesEntry]("cat",
	entry[speciesEntry]{"cat", speciesEntry{
		draw: drawCat, body: point{3, 3}, radiusX: 2.5, radiusY: 2,
		eyes: [2]point{{2, 3}, {4, 3}}, top: -1,
	}},
	entry[speciesEntry]{"dog", speciesEntry{
		draw: drawDog, body: point{3, 3}, radiusX: 2.5, radiusY: 2,
		eyes: [2]point{{2, 3}, {4, 3}}, top: -0.3,
	}},
	entry[speciesEntry]{"dragon", speciesEntry{
		draw: drawDragon, big: true, body: point{4, 4}, radiusX: 3, radiusY: 2.5,
		eyes: [2]point{{3, 3.5}, {5, 3.5}}, top: 0,
	}},
	entry[speciesEntry]{"owl", speciesEntry{
		draw: drawOwl, body: point{3, 3.5}, radiusX: 2.5, radiusY: 3,
		eyes: [2]point{{2, 3}, {4, 3}}, top: -0.5,
	}},
	entry[speciesEntry]{"bunny", speciesEntry{
		draw: drawBunny, body: point{3, 3}, radiusX: 2.5, radiusY: 2,
		eyes: [2]point{{2, 2.8}, {4, 2.8}}, top: -2.5,
	}},
	entry[speciesEntry]{"phoenix", speciesEntry{
		draw: drawPhoenix, big: true, body: point{4, 4}, radiusX: 2.5, radiusY: 2,
		eyes: [2]point{{3, 3.5}, {5, 3.5}}, top: 0,
	}},
)

// speciesFor returns the species entry, or false for "none" and unknown ids.
// Companions are optional, so there is no fallback drawing.
func speciesFor(id string) (speciesEntry, bool) {
	if !species.has(id) {
		return speciesEntry{}, false
	}
	return species.lookup(id), true
}
