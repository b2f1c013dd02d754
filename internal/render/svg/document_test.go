package svg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

func TestNum(t *testing.T) {
	assert.Equal(t, "0", svg.Num(-0.0001))
	assert.Equal(t, "1.5", svg.Num(1.5))
	assert.Equal(t, "0.333", svg.Num(1.0/3))
	assert.Equal(t, "-2", svg.Num(-2))
}

func TestElementBuildersCopy(t *testing.T) {
	base := svg.Circle(1, 2, 3).Fill("red")
	blue := base.Fill("blue")

	fill, ok := base.Get("fill")
	require.True(t, ok)
	assert.Equal(t, "red", fill)

	fill, ok = blue.Get("fill")
	require.True(t, ok)
	assert.Equal(t, "blue", fill)
	assert.Len(t, blue.Attrs, len(base.Attrs), "replacing an attribute must not append a duplicate")
}

func TestElementTransformSkipsIdentity(t *testing.T) {
	_, ok := svg.Group().Transform(svg.Identity).Get("transform")
	assert.False(t, ok)

	v, ok := svg.Group().Transform(svg.Translate(1, 2)).Get("transform")
	assert.True(t, ok)
	assert.Equal(t, "matrix(1 0 0 1 1 2)", v)
}

func TestDocumentAddDropsEmptyLayers(t *testing.T) {
	doc := &svg.Document{}
	doc.Add("background", svg.Rect(0, 0, 32, 32, 0).Fill("#000000"))
	doc.Add("hat")
	doc.Add("hair", svg.Circle(16, 8, 4))

	assert.Equal(t, []string{"background", "hair"}, doc.LayerNames())

	_, ok := doc.Layer("hat")
	assert.False(t, ok)

	hair, ok := doc.Layer("hair")
	require.True(t, ok)
	assert.Len(t, hair.Elements, 1)
}

func TestDocumentMarshal(t *testing.T) {
	doc := &svg.Document{}
	doc.Add("background", svg.Rect(0, 0, 32, 32, 0).Fill("#1a1a2e"))
	doc.Add("text", svg.Glyph(16, 20, 12, "A&B").Centered())

	out := string(doc.Marshal(64))
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32" width="64" height="64">`+
			`<g data-layer="background"><rect x="0" y="0" width="32" height="32" fill="#1a1a2e"/></g>`+
			`<g data-layer="text"><text x="16" y="20" font-size="12" font-family="sans-serif" text-anchor="middle">A&amp;B</text></g>`+
			`</svg>`,
		out)

	unsized := string(doc.Marshal(0))
	assert.True(t, strings.HasPrefix(unsized,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><g data-layer="background">`))
}
