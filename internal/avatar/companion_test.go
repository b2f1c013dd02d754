package avatar_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

type CompanionTestSuite struct {
	suite.Suite
}

func TestCompanionSuite(t *testing.T) {
	suite.Run(t, new(CompanionTestSuite))
}

func (s *CompanionTestSuite) TestLevelLadder() {
	testCases := []struct {
		xp        int
		wantLevel int
	}{
		{xp: 0, wantLevel: 1},
		{xp: 49, wantLevel: 1},
		{xp: 50, wantLevel: 2},
		{xp: 149, wantLevel: 2},
		{xp: 150, wantLevel: 3},
		{xp: 1250, wantLevel: 6},
		{xp: 3500, wantLevel: 8},
		{xp: 999999, wantLevel: 8},
		{xp: -20, wantLevel: 1},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("xp %d", tc.xp), func() {
			s.Equal(tc.wantLevel, avatar.CompanionLevelFor(tc.xp).Level)
		})
	}
}

func (s *CompanionTestSuite) TestLevelProgress() {
	info := avatar.CompanionLevelFor(100)
	s.Equal("Youngling", info.Name)
	s.Equal(50, info.Threshold)
	s.Equal(150, info.NextThreshold)
	s.Equal(0.5, info.Progress)

	third := avatar.CompanionLevelFor(200)
	s.Equal(0.25, third.Progress)

	odd := avatar.CompanionLevelFor(51)
	s.Equal(0.01, odd.Progress)

	top := avatar.CompanionLevelFor(3500)
	s.True(top.IsMax())
	s.Equal("Legendary", top.Name)
	s.Equal(0, top.NextThreshold)
	s.Equal(1.0, top.Progress)

	neg := avatar.CompanionLevelFor(-5)
	s.Equal(0, neg.XP)
	s.Equal(0.0, neg.Progress)
}

func (s *CompanionTestSuite) TestCompanionLevels() {
	levels := avatar.CompanionLevels()
	s.Require().Len(levels, avatar.MaxLevel)
	s.Equal(avatar.LevelTier{Level: 1, Name: "Hatchling", Threshold: 0}, levels[0])
	s.Equal(avatar.LevelTier{Level: 8, Name: "Legendary", Threshold: 3500}, levels[7])

	// Callers get their own copy.
	levels[0].Name = "changed"
	s.Equal("Hatchling", avatar.CompanionLevels()[0].Name)
}

func (s *CompanionTestSuite) TestScenarioDragonLevelSix() {
	cfg := entities.AvatarConfig{Pet: "dragon", PetXP: 1250, PetPosition: entities.CompanionRight}
	doc := render(cfg)

	_, ok := layer(doc, avatar.LayerCompanion)
	s.Require().True(ok)

	extras, ok := layer(doc, avatar.LayerCompanionExtras)
	s.Require().True(ok)

	cls := classes(extras)
	for _, want := range []string{avatar.ClassGlow, avatar.ClassGem, avatar.ClassEyeShine, avatar.ClassSparkles, avatar.ClassShimmer} {
		s.True(cls[want], want)
	}
	s.False(cls[avatar.ClassCrown])
	s.False(cls[avatar.ClassIntenseSparkles])
}

func (s *CompanionTestSuite) TestExtrasAreCumulative() {
	tiers := []string{
		avatar.ClassGlow, avatar.ClassGem, avatar.ClassEyeShine, avatar.ClassSparkles,
		avatar.ClassShimmer, avatar.ClassCrown, avatar.ClassIntenseSparkles,
	}

	for _, tier := range avatar.CompanionLevels() {
		cfg := entities.AvatarConfig{Pet: "cat", PetXP: tier.Threshold}
		extras, ok := layer(render(cfg), avatar.LayerCompanionExtras)

		if tier.Level < avatar.LevelGlow {
			s.False(ok, "level %d has no extras layer", tier.Level)
			continue
		}
		s.Require().True(ok)

		cls := classes(extras)
		for i, class := range tiers {
			unlockedAt := i + avatar.LevelGlow
			s.Equal(tier.Level >= unlockedAt, cls[class], "level %d class %s", tier.Level, class)
		}
	}
}

func (s *CompanionTestSuite) TestNoCompanion() {
	for _, pet := range []string{"", "none", "unicorn"} {
		cfg := entities.AvatarConfig{Pet: pet, PetXP: 5000}
		doc := render(cfg)

		_, ok := layer(doc, avatar.LayerCompanion)
		s.False(ok, pet)
		_, ok = layer(doc, avatar.LayerCompanionExtras)
		s.False(ok, pet)

		_, _, ok = avatar.CompanionPlacement(cfg.WithDefaults())
		s.False(ok)
	}
}

func (s *CompanionTestSuite) TestColorInheritance() {
	cfg := entities.AvatarConfig{Pet: "cat", PetColor: "#00ff00"}
	companion, ok := layer(render(cfg), avatar.LayerCompanion)
	s.Require().True(ok)

	used := paints(companion)
	s.True(used["#00ff00"])
	s.False(used[entities.DefaultPetColor])

	s.Equal(avatar.CompanionColors{
		Body: "#00ff00", Ears: "#00ff00", Tail: "#00ff00", Accent: "#00ff00",
	}, avatar.ResolveCompanionColors(cfg))

	cfg.PetColorTail = "#ff0000"
	s.Equal(avatar.CompanionColors{
		Body: "#00ff00", Ears: "#00ff00", Tail: "#ff0000", Accent: "#00ff00",
	}, avatar.ResolveCompanionColors(cfg))

	companion, ok = layer(render(cfg), avatar.LayerCompanion)
	s.Require().True(ok)

	// Only the tail picks up the new colour.
	walkLayer(companion, func(e svg.Element) {
		class, _ := e.Get("class")
		stroke, _ := e.Get("stroke")
		fill, _ := e.Get("fill")
		isTail := class != "" && classesOf(class)["avatar-pet-tail"]
		if isTail {
			s.Equal("#ff0000", stroke)
			return
		}
		s.NotEqual("#ff0000", stroke)
		s.NotEqual("#ff0000", fill)
	})
}

func classesOf(v string) map[string]bool {
	return classes(svg.Layer{Elements: []svg.Element{svg.Group().Class(v)}})
}

func (s *CompanionTestSuite) TestMirrorSymmetry() {
	points := [][2]float64{{0, 0}, {3, 3}, {6.5, 5}, {-1, 2}, {9, 0}}

	for _, species := range []string{"cat", "dog", "dragon", "owl", "bunny", "phoenix"} {
		s.Run(species, func() {
			right, rp, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: species, PetPosition: entities.CompanionRight})
			s.Require().True(ok)
			left, lp, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: species, PetPosition: entities.CompanionLeft})
			s.Require().True(ok)

			s.False(rp.Mirrored)
			s.True(lp.Mirrored)
			s.False(right.Mirrored())
			s.True(left.Mirrored())

			rx0, _ := right.Apply(points[0][0], points[0][1])
			lx0, _ := left.Apply(points[0][0], points[0][1])
			axisSum := rx0 + lx0

			for _, p := range points {
				rx, ry := right.Apply(p[0], p[1])
				lx, ly := left.Apply(p[0], p[1])
				s.InDelta(ry, ly, 1e-9)
				s.InDelta(axisSum, rx+lx, 1e-9, "left must be right reflected about one vertical axis")
			}
		})
	}
}

func (s *CompanionTestSuite) TestMirroredArtworkIsShared() {
	right, ok := layer(render(entities.AvatarConfig{Pet: "cat", PetPosition: entities.CompanionRight}), avatar.LayerCompanion)
	s.Require().True(ok)
	left, ok := layer(render(entities.AvatarConfig{Pet: "cat", PetPosition: entities.CompanionLeft}), avatar.LayerCompanion)
	s.Require().True(ok)

	s.Require().Len(right.Elements[0].Children, len(left.Elements[0].Children))
	for i, rc := range right.Elements[0].Children {
		lc := left.Elements[0].Children[i]
		s.Equal(rc.Tag, lc.Tag)
		rd, _ := rc.Get("d")
		ld, _ := lc.Get("d")
		s.Equal(rd, ld)
	}

	s.True(classes(right)["avatar-pet-tail-right"])
	s.True(classes(left)["avatar-pet-tail-left"])
}

func (s *CompanionTestSuite) TestHeadSlotDroopsTail() {
	m, p, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: "dog", PetPosition: entities.CompanionHead})
	s.Require().True(ok)
	s.Equal(entities.CompanionHead, p.Slot)
	s.Equal("matrix(0.7 0 0 0.7 11 0)", m.String())

	companion, ok := layer(render(entities.AvatarConfig{Pet: "dog", PetPosition: entities.CompanionHead}), avatar.LayerCompanion)
	s.Require().True(ok)
	s.True(classes(companion)["avatar-pet-tail-droop"])

	big, _, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: "phoenix", PetPosition: entities.CompanionHead})
	s.Require().True(ok)
	s.Equal("matrix(0.65 0 0 0.65 10 -1)", big.String())
}

func (s *CompanionTestSuite) TestFreeFormClamping() {
	outside := entities.AvatarConfig{Pet: "bunny", PetPosition: entities.CompanionFree, PetX: ptr(-5), PetY: ptr(40)}
	corner := entities.AvatarConfig{Pet: "bunny", PetPosition: entities.CompanionFree, PetX: ptr(4), PetY: ptr(28)}

	s.Equal(markup(corner), markup(outside))

	x, y := avatar.ClampFreePosition(-5, 40)
	s.Equal(4.0, x)
	s.Equal(28.0, y)

	x, y = avatar.ClampFreePosition(math.NaN(), math.Inf(1))
	s.Equal(entities.DefaultPetX, x)
	s.Equal(28.0, y)
}

func (s *CompanionTestSuite) TestBigSpeciesStayInsideViewportAtEdges() {
	// Local extents including wings, tail and max-level crown and sparkles.
	extents := map[string][2][2]float64{
		"dragon":  {{-1, -1.92}, {9, 7.62}},
		"phoenix": {{-0.5, -1.92}, {8.5, 7.12}},
	}
	targets := [][2]float64{{40, 40}, {-10, -10}, {40, -10}, {-10, 40}, {28, 28}, {4, 4}}

	for name, box := range extents {
		for _, t := range targets {
			m, _, ok := avatar.CompanionPlacement(entities.AvatarConfig{
				Pet: name, PetPosition: entities.CompanionFree, PetX: ptr(t[0]), PetY: ptr(t[1]), PetXP: 100000,
			})
			s.Require().True(ok)

			for _, lx := range []float64{box[0][0], box[1][0]} {
				for _, ly := range []float64{box[0][1], box[1][1]} {
					gx, gy := m.Apply(lx, ly)
					s.GreaterOrEqual(gx, 0.0, "%s at %v", name, t)
					s.LessOrEqual(gx, float64(svg.ViewBoxSize), "%s at %v", name, t)
					s.GreaterOrEqual(gy, 0.0, "%s at %v", name, t)
					s.LessOrEqual(gy, float64(svg.ViewBoxSize), "%s at %v", name, t)
				}
			}
		}
	}

	m, _, ok := avatar.CompanionPlacement(entities.AvatarConfig{
		Pet: "dragon", PetPosition: entities.CompanionFree, PetX: ptr(28), PetY: ptr(28),
	})
	s.Require().True(ok)
	gx, gy := m.Apply(4, 4)
	s.Equal(float64(svg.ViewBoxSize-avatar.BigFreeInset), gx)
	s.Equal(float64(svg.ViewBoxSize-avatar.BigFreeInset), gy)
}

func (s *CompanionTestSuite) TestFreeFormCentresOnTarget() {
	testCases := []struct {
		name         string
		species      string
		x, y         float64
		cx, cy       float64
		wantMirrored bool
	}{
		{name: "right of centreline", species: "cat", x: 24, y: 20, cx: 3, cy: 3},
		{name: "left of centreline mirrors", species: "cat", x: 8, y: 10, cx: 3, cy: 3, wantMirrored: true},
		{name: "exactly on centreline does not mirror", species: "owl", x: 16, y: 6, cx: 3, cy: 3},
		{name: "big species", species: "dragon", x: 6, y: 24, cx: 4, cy: 4, wantMirrored: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, p, ok := avatar.CompanionPlacement(entities.AvatarConfig{
				Pet: tc.species, PetPosition: entities.CompanionFree, PetX: ptr(tc.x), PetY: ptr(tc.y),
			})
			s.Require().True(ok)
			s.Equal(tc.wantMirrored, p.Mirrored)
			s.Equal(tc.wantMirrored, m.Mirrored())

			gx, gy := m.Apply(tc.cx, tc.cy)
			s.InDelta(tc.x, gx, 1e-9)
			s.InDelta(tc.y, gy, 1e-9)
		})
	}
}

func (s *CompanionTestSuite) TestFreeFormDefaultsWhenUnset() {
	m, _, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: "cat", PetPosition: entities.CompanionFree})
	s.Require().True(ok)
	gx, gy := m.Apply(3, 3)
	s.InDelta(entities.DefaultPetX, gx, 1e-9)
	s.InDelta(entities.DefaultPetY, gy, 1e-9)
}

func (s *CompanionTestSuite) TestUnknownPositionUsesRightSlot() {
	right, _, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: "cat", PetPosition: entities.CompanionRight})
	s.Require().True(ok)
	odd, p, ok := avatar.CompanionPlacement(entities.AvatarConfig{Pet: "cat", PetPosition: "upside-down"})
	s.Require().True(ok)
	s.Equal(right, odd)
	s.Equal(entities.CompanionRight, p.Slot)
}
