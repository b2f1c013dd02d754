package avatar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
)

func TestResolveColor(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "explicit", value: "#123456", want: "#123456"},
		{name: "upper case is normalised", value: "#ABCDEF", want: "#abcdef"},
		{name: "short form expands", value: "#fff", want: "#ffffff"},
		{name: "surrounding space", value: "  #00ff00 ", want: "#00ff00"},
		{name: "empty", value: "", want: "#ffcc99"},
		{name: "named colour is not a hex colour", value: "red", want: "#ffcc99"},
		{name: "missing hash", value: "123456", want: "#ffcc99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, avatar.ResolveColor(tc.value, entities.DefaultHeadColor))
		})
	}
}

func TestIsValidColor(t *testing.T) {
	assert.True(t, avatar.IsValidColor("#3b82f6"))
	assert.True(t, avatar.IsValidColor("#abc"))
	assert.False(t, avatar.IsValidColor("#3b82f"))
	assert.False(t, avatar.IsValidColor("blue"))
	assert.False(t, avatar.IsValidColor(""))
}

func TestResolveCompanionColors(t *testing.T) {
	t.Run("nothing set uses the companion default", func(t *testing.T) {
		c := avatar.ResolveCompanionColors(entities.AvatarConfig{})
		assert.Equal(t, avatar.CompanionColors{
			Body:   entities.DefaultPetColor,
			Ears:   entities.DefaultPetColor,
			Tail:   entities.DefaultPetColor,
			Accent: entities.DefaultPetColor,
		}, c)
	})

	t.Run("parts override the base independently", func(t *testing.T) {
		c := avatar.ResolveCompanionColors(entities.AvatarConfig{
			PetColor:       "#111111",
			PetColorEars:   "#222222",
			PetColorAccent: "garbage",
		})
		assert.Equal(t, avatar.CompanionColors{
			Body:   "#111111",
			Ears:   "#222222",
			Tail:   "#111111",
			Accent: "#111111",
		}, c)
	})

	t.Run("bad base falls through to the default", func(t *testing.T) {
		c := avatar.ResolveCompanionColors(entities.AvatarConfig{PetColor: "nope", PetColorTail: "#ff0000"})
		assert.Equal(t, entities.DefaultPetColor, c.Body)
		assert.Equal(t, "#ff0000", c.Tail)
	})
}

func TestLayoutFallbacks(t *testing.T) {
	assert.Equal(t, avatar.HeadLayoutFor("round"), avatar.HeadLayoutFor("blob"))
	assert.Equal(t, avatar.BodyLayoutFor("regular"), avatar.BodyLayoutFor("blob"))

	wide := avatar.HeadLayoutFor("wide")
	assert.Equal(t, 1.25, wide.HairScale)
	assert.Equal(t, 1.15, wide.FaceScale)

	broad := avatar.BodyLayoutFor("broad")
	assert.Equal(t, 1.29, broad.BehindScale)
	assert.Equal(t, 1.25, broad.FrontScale)

	x, _ := broad.Front().Apply(16, 0)
	assert.InDelta(t, 16, x, 1e-9, "scaling pivots on the centreline")
}

func TestBlinkClasses(t *testing.T) {
	assert.Equal(t, avatar.BlinkBoth, avatar.BlinkClassFor("dot"))
	assert.Equal(t, avatar.BlinkLeftOnly, avatar.BlinkClassFor("wink"))
	assert.Equal(t, avatar.BlinkNever, avatar.BlinkClassFor("star"))
	assert.Equal(t, avatar.BlinkBoth, avatar.BlinkClassFor("unknown"), "unknown styles blink like the default")
}

func TestAccessoryPlacementFor(t *testing.T) {
	assert.Equal(t, avatar.PlacementBehind, avatar.AccessoryPlacementFor("cape"))
	assert.Equal(t, avatar.PlacementFront, avatar.AccessoryPlacementFor("scarf"))
	assert.Equal(t, avatar.PlacementHeld, avatar.AccessoryPlacementFor("shield"))
	assert.Equal(t, avatar.PlacementNone, avatar.AccessoryPlacementFor("none"))
	assert.Equal(t, avatar.PlacementNone, avatar.AccessoryPlacementFor("jetpack"))
}
