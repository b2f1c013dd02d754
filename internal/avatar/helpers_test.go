package avatar_test

import (
	"strings"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

func render(cfg entities.AvatarConfig) *svg.Document {
	return avatar.Render(avatar.RenderInput{Config: cfg})
}

func markup(cfg entities.AvatarConfig) string {
	return string(render(cfg).Marshal(0))
}

func layer(doc *svg.Document, name string) (svg.Layer, bool) {
	return doc.Layer(name)
}

// walkLayer visits every element of a layer depth first.
func walkLayer(l svg.Layer, fn func(svg.Element)) {
	for _, e := range l.Elements {
		e.Walk(fn)
	}
}

// paints collects every fill and stroke colour used in a layer.
func paints(l svg.Layer) map[string]bool {
	out := map[string]bool{}
	walkLayer(l, func(e svg.Element) {
		for _, name := range []string{"fill", "stroke"} {
			if v, ok := e.Get(name); ok && v != "none" {
				out[v] = true
			}
		}
	})
	return out
}

// classes collects every class token used in a layer.
func classes(l svg.Layer) map[string]bool {
	out := map[string]bool{}
	walkLayer(l, func(e svg.Element) {
		if v, ok := e.Get("class"); ok {
			for _, c := range strings.Fields(v) {
				out[c] = true
			}
		}
	})
	return out
}

func ptr(v float64) *float64 { return &v }
