package avatar

import (
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// centerline is the character's vertical axis; horizontal scales pivot on it.
const centerline = 16

// HeadLayout nudges hair, hat and face features authored against the round
// head so they line up with another head shape.
type HeadLayout struct {
	HairOffset float64
	HatOffset  float64
	FaceOffset float64
	HairScale  float64
	FaceScale  float64
}

// BodyLayout stretches body-relative accessories to the torso width.
type BodyLayout struct {
	BehindScale float64
	FrontScale  float64
}

var headLayouts = map[string]HeadLayout{
	"round":    {0, 0, 0, 1, 1},
	"oval":     {-1, -1, 0, 0.86, 0.9},
	"square":   {0, 0, 0, 1, 1},
	"diamond":  {-1, -1, 0, 0.95, 0.9},
	"heart":    {0, 0, -1, 1.1, 0.95},
	"long":     {-3, -3, -1, 0.86, 0.9},
	"triangle": {-1, -1, 2, 0.8, 1},
	"pear":     {-1, -1, 1, 0.9, 1},
	"wide":     {1, 1, 0, 1.25, 1.15},
}

var bodyLayouts = map[string]BodyLayout{
	"slim":    {BehindScale: 0.71, FrontScale: 0.75},
	"regular": {BehindScale: 1, FrontScale: 1},
	"broad":   {BehindScale: 1.29, FrontScale: 1.25},
}

// HeadLayoutFor returns the layout for a head shape; unknown shapes use round.
func HeadLayoutFor(shape string) HeadLayout {
	if l, ok := headLayouts[shape]; ok {
		return l
	}
	return headLayouts[entities.DefaultHead]
}

// BodyLayoutFor returns the layout for a body shape; unknown shapes use regular.
func BodyLayoutFor(shape string) BodyLayout {
	if l, ok := bodyLayouts[shape]; ok {
		return l
	}
	return bodyLayouts[entities.DefaultBody]
}

// Hair is the transform for the hair group.
func (l HeadLayout) Hair() svg.Matrix {
	return svg.Translate(0, l.HairOffset).Mul(svg.ScaleXAbout(centerline, l.HairScale))
}

// Hat is the transform for the hat group. Hats share the hair stretch.
func (l HeadLayout) Hat() svg.Matrix {
	return svg.Translate(0, l.HatOffset).Mul(svg.ScaleXAbout(centerline, l.HairScale))
}

// Face is the transform shared by face extras, eyes, eyelids and mouth.
func (l HeadLayout) Face() svg.Matrix {
	return svg.Translate(0, l.FaceOffset).Mul(svg.ScaleXAbout(centerline, l.FaceScale))
}

// Behind is the transform for capes and wings.
func (l BodyLayout) Behind() svg.Matrix {
	return svg.ScaleXAbout(centerline, l.BehindScale)
}

// Front is the transform for scarves, necklaces and bow ties.
func (l BodyLayout) Front() svg.Matrix {
	return svg.ScaleXAbout(centerline, l.FrontScale)
}
