package svg

import (
	"bytes"
	"encoding/xml"
)

// ViewBoxSize is the side of the square logical drawing space.
const ViewBoxSize = 32

// Layer is a named slice of the z-order.
type Layer struct {
	Name     string
	Elements []Element
}

// Document is a renderable image description. Layers are stored back to front.
type Document struct {
	Layers []Layer
}

// Add appends a layer. Empty layers are dropped so that absent parts leave no trace.
func (d *Document) Add(name string, elements ...Element) {
	if len(elements) == 0 {
		return
	}
	d.Layers = append(d.Layers, Layer{Name: name, Elements: elements})
}

// Layer returns the named layer.
func (d *Document) Layer(name string) (Layer, bool) {
	for _, l := range d.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// LayerNames lists layer names back to front.
func (d *Document) LayerNames() []string {
	names := make([]string, len(d.Layers))
	for i, l := range d.Layers {
		names[i] = l.Name
	}
	return names
}

// Marshal encodes the document as a standalone SVG sized size x size pixels.
// A non-positive size leaves sizing to the embedding surface.
func (d *Document) Marshal(size int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"`)
	if size > 0 {
		buf.WriteString(` width="`)
		buf.WriteString(Num(float64(size)))
		buf.WriteString(`" height="`)
		buf.WriteString(Num(float64(size)))
		buf.WriteString(`"`)
	}
	buf.WriteString(">")
	for _, l := range d.Layers {
		writeElement(&buf, Group(l.Elements...).Set("data-layer", l.Name))
	}
	buf.WriteString("</svg>")
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, e Element) {
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		_ = xml.EscapeText(buf, []byte(a.Value))
		buf.WriteByte('"')
	}
	if len(e.Children) == 0 && e.Text == "" {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	if e.Text != "" {
		_ = xml.EscapeText(buf, []byte(e.Text))
	}
	for _, c := range e.Children {
		writeElement(buf, c)
	}
	buf.WriteString("</")
	buf.WriteString(e.Tag)
	buf.WriteByte('>')
}
