package entities

// AvatarConfigVersion is the current schema version written on save.
const AvatarConfigVersion = 2

// CompanionPosition selects where the companion is drawn.
type CompanionPosition string

// Companion positions
const (
	CompanionRight CompanionPosition = "right"
	CompanionLeft  CompanionPosition = "left"
	CompanionHead  CompanionPosition = "head"
	CompanionFree  CompanionPosition = "free"
)

// Default style identifiers and colours applied to missing fields.
const (
	DefaultHead          = "round"
	DefaultHair          = "short"
	DefaultEyes          = "normal"
	DefaultMouth         = "smile"
	DefaultBody          = "regular"
	DefaultHat           = "none"
	DefaultAccessory     = "none"
	DefaultFaceExtra     = "none"
	DefaultOutfitPattern = "none"
	DefaultPet           = "none"

	DefaultHeadColor      = "#ffcc99"
	DefaultHairColor      = "#4a3728"
	DefaultEyeColor       = "#333333"
	DefaultMouthColor     = "#cc6666"
	DefaultBodyColor      = "#3b82f6"
	DefaultBgColor        = "#1a1a2e"
	DefaultHatColor       = "#f39c12"
	DefaultAccessoryColor = "#3b82f6"
	DefaultPetColor       = "#8b4513"

	// DefaultPetX and DefaultPetY place a free-form companion when no coordinates are stored.
	DefaultPetX = 24.0
	DefaultPetY = 20.0
)

// AvatarConfig is the persisted description of a character and its companion.
// Empty strings mean "not set" and are resolved to defaults before rendering.
type AvatarConfig struct {
	Version int `json:"_v,omitempty"`

	Head          string `json:"head,omitempty"`
	Hair          string `json:"hair,omitempty"`
	Eyes          string `json:"eyes,omitempty"`
	Mouth         string `json:"mouth,omitempty"`
	Body          string `json:"body,omitempty"`
	Hat           string `json:"hat,omitempty"`
	Accessory     string `json:"accessory,omitempty"`
	FaceExtra     string `json:"face_extra,omitempty"`
	OutfitPattern string `json:"outfit_pattern,omitempty"`

	HeadColor      string `json:"head_color,omitempty"`
	HairColor      string `json:"hair_color,omitempty"`
	EyeColor       string `json:"eye_color,omitempty"`
	MouthColor     string `json:"mouth_color,omitempty"`
	BodyColor      string `json:"body_color,omitempty"`
	BgColor        string `json:"bg_color,omitempty"`
	HatColor       string `json:"hat_color,omitempty"`
	AccessoryColor string `json:"accessory_color,omitempty"`

	Pet            string            `json:"pet,omitempty"`
	PetPosition    CompanionPosition `json:"pet_position,omitempty"`
	PetX           *float64          `json:"pet_x,omitempty"`
	PetY           *float64          `json:"pet_y,omitempty"`
	PetXP          int               `json:"pet_xp,omitempty"`
	PetColor       string            `json:"pet_color,omitempty"`
	PetColorBody   string            `json:"pet_color_body,omitempty"`
	PetColorEars   string            `json:"pet_color_ears,omitempty"`
	PetColorTail   string            `json:"pet_color_tail,omitempty"`
	PetColorAccent string            `json:"pet_color_accent,omitempty"`
}

// DefaultAvatarConfig returns the baseline look given to every new player.
func DefaultAvatarConfig() AvatarConfig {
	return AvatarConfig{}.WithDefaults()
}

// WithDefaults returns a copy with every missing selector and colour filled in.
// Companion part colours stay empty so they keep inheriting from PetColor.
func (c AvatarConfig) WithDefaults() AvatarConfig {
	if c.Version == 0 {
		c.Version = AvatarConfigVersion
	}

	fill(&c.Head, DefaultHead)
	fill(&c.Hair, DefaultHair)
	fill(&c.Eyes, DefaultEyes)
	fill(&c.Mouth, DefaultMouth)
	fill(&c.Body, DefaultBody)
	fill(&c.Hat, DefaultHat)
	fill(&c.Accessory, DefaultAccessory)
	fill(&c.FaceExtra, DefaultFaceExtra)
	fill(&c.OutfitPattern, DefaultOutfitPattern)
	fill(&c.Pet, DefaultPet)

	fill(&c.HeadColor, DefaultHeadColor)
	fill(&c.HairColor, DefaultHairColor)
	fill(&c.EyeColor, DefaultEyeColor)
	fill(&c.MouthColor, DefaultMouthColor)
	fill(&c.BodyColor, DefaultBodyColor)
	fill(&c.BgColor, DefaultBgColor)
	fill(&c.HatColor, DefaultHatColor)
	fill(&c.AccessoryColor, DefaultAccessoryColor)
	fill(&c.PetColor, DefaultPetColor)

	if c.PetPosition == "" {
		c.PetPosition = CompanionRight
	}
	if c.PetXP < 0 {
		c.PetXP = 0
	}

	// Never share coordinate storage with the caller's value.
	c.PetX = copyFloat(c.PetX)
	c.PetY = copyFloat(c.PetY)

	return c
}

// HasCompanion reports whether a companion species is selected.
func (c AvatarConfig) HasCompanion() bool {
	return c.Pet != "" && c.Pet != DefaultPet
}

func fill(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
