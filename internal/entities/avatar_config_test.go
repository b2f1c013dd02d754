package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/chore-quest/internal/entities"
)

func ptr(v float64) *float64 { return &v }

func TestWithDefaultsFillsMissingFields(t *testing.T) {
	cfg := entities.AvatarConfig{Hair: "mohawk", HeadColor: "#abcdef", PetXP: -5}.WithDefaults()

	assert.Equal(t, entities.AvatarConfigVersion, cfg.Version)
	assert.Equal(t, "mohawk", cfg.Hair)
	assert.Equal(t, "#abcdef", cfg.HeadColor)
	assert.Equal(t, entities.DefaultHead, cfg.Head)
	assert.Equal(t, entities.DefaultBgColor, cfg.BgColor)
	assert.Equal(t, entities.CompanionRight, cfg.PetPosition)
	assert.Equal(t, 0, cfg.PetXP)
	// part colours inherit at render time
	assert.Empty(t, cfg.PetColorBody)
	assert.False(t, cfg.HasCompanion())
}

func TestWithDefaultsKeepsOldVersion(t *testing.T) {
	cfg := entities.AvatarConfig{Version: 1}.WithDefaults()
	assert.Equal(t, 1, cfg.Version)
}

func TestWithDefaultsCopiesCoordinates(t *testing.T) {
	base := entities.AvatarConfig{PetX: ptr(3), PetY: ptr(4)}
	cfg := base.WithDefaults()

	*cfg.PetX = 10
	assert.Equal(t, 3.0, *base.PetX)
}

func TestHasCompanion(t *testing.T) {
	assert.False(t, entities.AvatarConfig{}.HasCompanion())
	assert.False(t, entities.AvatarConfig{Pet: "none"}.HasCompanion())
	assert.True(t, entities.AvatarConfig{Pet: "owl"}.HasCompanion())
}

func TestAvatarConfigJSON(t *testing.T) {
	raw := `{"_v":2,"head":"oval","pet":"dragon","pet_x":12.5,"pet_xp":1250,"pet_color_tail":"#ff0000"}`

	var cfg entities.AvatarConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, "oval", cfg.Head)
	assert.Equal(t, "dragon", cfg.Pet)
	require.NotNil(t, cfg.PetX)
	assert.Equal(t, 12.5, *cfg.PetX)
	assert.Nil(t, cfg.PetY)
	assert.Equal(t, 1250, cfg.PetXP)
	assert.Equal(t, "#ff0000", cfg.PetColorTail)
}

func TestApplyPreview(t *testing.T) {
	base := entities.AvatarConfig{Hat: "cap", PetX: ptr(5)}

	tests := []struct {
		name    string
		preview *entities.Preview
		wantHat string
	}{
		{name: "nil preview", preview: nil, wantHat: "cap"},
		{name: "hat override", preview: &entities.Preview{Field: "hat", Value: "crown"}, wantHat: "crown"},
		{name: "unknown field", preview: &entities.Preview{Field: "shoes", Value: "boots"}, wantHat: "cap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := entities.ApplyPreview(base, tt.preview)
			assert.Equal(t, tt.wantHat, out.Hat)
			assert.Equal(t, "cap", base.Hat)

			*out.PetX = 99
			assert.Equal(t, 5.0, *base.PetX)
		})
	}
}

func TestPreviewFields(t *testing.T) {
	fields := entities.PreviewFields()
	assert.Len(t, fields, 23)
	assert.IsIncreasing(t, fields)
	assert.True(t, entities.IsPreviewField("pet_color_accent"))
	assert.False(t, entities.IsPreviewField("pet_x"))
}

func TestFieldAndSetField(t *testing.T) {
	cfg := entities.DefaultAvatarConfig()

	v, ok := cfg.Field("hair")
	assert.True(t, ok)
	assert.Equal(t, entities.DefaultHair, v)

	assert.True(t, cfg.SetField("hair", "afro"))
	v, _ = cfg.Field("hair")
	assert.Equal(t, "afro", v)

	assert.False(t, cfg.SetField("pet_xp", "100"))
	_, ok = cfg.Field("pet_xp")
	assert.False(t, ok)
}
