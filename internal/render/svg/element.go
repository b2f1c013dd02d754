// Package svg provides a small, immutable description of vector drawings in a
// fixed 32x32 logical space and the encoder that turns it into SVG markup.
package svg

import (
	"math"
	"strconv"
)

// Attr is a single element attribute. Attributes keep insertion order so that
// encoding is deterministic.
type Attr struct {
	Name  string
	Value string
}

// Element is one vector primitive or a group of primitives.
//
// Elements are values: every builder method returns a modified copy and never
// writes through to the receiver's attribute slice.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Element
}

// Num formats a coordinate with at most three decimals.
func Num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func newElement(tag string, attrs ...Attr) Element {
	return Element{Tag: tag, Attrs: attrs}
}

// Ellipse creates an ellipse primitive.
func Ellipse(cx, cy, rx, ry float64) Element {
	return newElement("ellipse",
		Attr{"cx", Num(cx)}, Attr{"cy", Num(cy)}, Attr{"rx", Num(rx)}, Attr{"ry", Num(ry)})
}

// Circle creates a circle primitive.
func Circle(cx, cy, r float64) Element {
	return newElement("circle", Attr{"cx", Num(cx)}, Attr{"cy", Num(cy)}, Attr{"r", Num(r)})
}

// Rect creates a rectangle with rounded corners. A zero rx gives square corners.
func Rect(x, y, w, h, rx float64) Element {
	e := newElement("rect",
		Attr{"x", Num(x)}, Attr{"y", Num(y)}, Attr{"width", Num(w)}, Attr{"height", Num(h)})
	if rx != 0 {
		e = e.Set("rx", Num(rx))
	}
	return e
}

// Path creates a path primitive from SVG path data.
func Path(d string) Element {
	return newElement("path", Attr{"d", d})
}

// Polygon creates a polygon from an SVG points list.
func Polygon(points string) Element {
	return newElement("polygon", Attr{"points", points})
}

// Line creates a line segment.
func Line(x1, y1, x2, y2 float64) Element {
	return newElement("line",
		Attr{"x1", Num(x1)}, Attr{"y1", Num(y1)}, Attr{"x2", Num(x2)}, Attr{"y2", Num(y2)})
}

// Glyph places a single text glyph (used for stars and similar symbols).
func Glyph(x, y, size float64, body string) Element {
	e := newElement("text",
		Attr{"x", Num(x)}, Attr{"y", Num(y)},
		Attr{"font-size", Num(size)}, Attr{"font-family", "sans-serif"})
	e.Text = body
	return e
}

// Group wraps children in a <g> element.
func Group(children ...Element) Element {
	return Element{Tag: "g", Children: children}
}

// Set returns a copy of e with the attribute set, replacing an existing value.
func (e Element) Set(name, value string) Element {
	attrs := make([]Attr, 0, len(e.Attrs)+1)
	replaced := false
	for _, a := range e.Attrs {
		if a.Name == name {
			a.Value = value
			replaced = true
		}
		attrs = append(attrs, a)
	}
	if !replaced {
		attrs = append(attrs, Attr{Name: name, Value: value})
	}
	e.Attrs = attrs
	return e
}

// Get returns the attribute value and whether it is present.
func (e Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Fill sets the fill colour.
func (e Element) Fill(color string) Element {
	return e.Set("fill", color)
}

// NoFill disables filling, for stroked outlines.
func (e Element) NoFill() Element {
	return e.Set("fill", "none")
}

// Stroke sets the stroke colour and width.
func (e Element) Stroke(color string, width float64) Element {
	return e.Set("stroke", color).Set("stroke-width", Num(width))
}

// RoundCap rounds stroke ends.
func (e Element) RoundCap() Element {
	return e.Set("stroke-linecap", "round")
}

// Opacity sets the element opacity.
func (e Element) Opacity(o float64) Element {
	return e.Set("opacity", Num(o))
}

// Class sets the CSS class used by the UI for animation hooks.
func (e Element) Class(name string) Element {
	return e.Set("class", name)
}

// Centered anchors text on its x coordinate.
func (e Element) Centered() Element {
	return e.Set("text-anchor", "middle")
}

// Transform applies an affine transform. The identity matrix is omitted.
func (e Element) Transform(m Matrix) Element {
	if m.IsIdentity() {
		return e
	}
	return e.Set("transform", m.String())
}

// With returns a copy of the group with extra children appended.
func (e Element) With(children ...Element) Element {
	merged := make([]Element, 0, len(e.Children)+len(children))
	merged = append(merged, e.Children...)
	merged = append(merged, children...)
	e.Children = merged
	return e
}

// Walk visits e and every descendant depth first.
func (e Element) Walk(fn func(Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}
