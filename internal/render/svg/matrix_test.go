package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

func TestMatrixApply(t *testing.T) {
	testCases := []struct {
		name         string
		m            svg.Matrix
		x, y         float64
		wantX, wantY float64
	}{
		{name: "identity", m: svg.Identity, x: 3, y: 4, wantX: 3, wantY: 4},
		{name: "translate", m: svg.Translate(23, 17), x: 3, y: 3, wantX: 26, wantY: 20},
		{name: "scale", m: svg.Scale(0.5, 2), x: 4, y: 4, wantX: 2, wantY: 8},
		{name: "mirror about 14", m: svg.MirrorX(14), x: 26, y: 5, wantX: 2, wantY: 5},
		{name: "stretch about centreline", m: svg.ScaleXAbout(16, 1.25), x: 20, y: 9, wantX: 21, wantY: 9},
		{name: "centreline is fixed", m: svg.ScaleXAbout(16, 0.7), x: 16, y: 1, wantX: 16, wantY: 1},
		{name: "quarter turn", m: svg.RotateAbout(90, 1, 1), x: 2, y: 1, wantX: 1, wantY: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.m.Apply(tc.x, tc.y)
			assert.InDelta(t, tc.wantX, x, 1e-9)
			assert.InDelta(t, tc.wantY, y, 1e-9)
		})
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// n is applied first, then m.
	m := svg.Translate(10, 0).Mul(svg.Scale(2, 2))
	x, y := m.Apply(1, 1)
	assert.InDelta(t, 12, x, 1e-9)
	assert.InDelta(t, 2, y, 1e-9)
}

func TestMatrixMirrored(t *testing.T) {
	assert.False(t, svg.Translate(23, 17).Mirrored())
	assert.True(t, svg.MirrorX(14).Mul(svg.Translate(23, 17)).Mirrored())
	assert.False(t, svg.MirrorX(14).Mul(svg.MirrorX(3)).Mirrored())
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, "matrix(1 0 0 1 23 17)", svg.Translate(23, 17).String())
	assert.Equal(t, "matrix(0.7 0 0 0.7 11 0)", svg.Translate(11, 0).Mul(svg.Scale(0.7, 0.7)).String())
	assert.True(t, svg.Translate(0, 0).IsIdentity())
	assert.False(t, svg.Translate(0, -1).IsIdentity())
}
