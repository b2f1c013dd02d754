package entities

import "sort"

// Preview is a single-field, non-persisted override used to try on an item.
type Preview struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// previewFields maps a configuration key to the field it overrides.
var previewFields = map[string]func(*AvatarConfig) *string{
	"head":             func(c *AvatarConfig) *string { return &c.Head },
	"hair":             func(c *AvatarConfig) *string { return &c.Hair },
	"eyes":             func(c *AvatarConfig) *string { return &c.Eyes },
	"mouth":            func(c *AvatarConfig) *string { return &c.Mouth },
	"body":             func(c *AvatarConfig) *string { return &c.Body },
	"hat":              func(c *AvatarConfig) *string { return &c.Hat },
	"accessory":        func(c *AvatarConfig) *string { return &c.Accessory },
	"face_extra":       func(c *AvatarConfig) *string { return &c.FaceExtra },
	"outfit_pattern":   func(c *AvatarConfig) *string { return &c.OutfitPattern },
	"pet":              func(c *AvatarConfig) *string { return &c.Pet },
	"head_color":       func(c *AvatarConfig) *string { return &c.HeadColor },
	"hair_color":       func(c *AvatarConfig) *string { return &c.HairColor },
	"eye_color":        func(c *AvatarConfig) *string { return &c.EyeColor },
	"mouth_color":      func(c *AvatarConfig) *string { return &c.MouthColor },
	"body_color":       func(c *AvatarConfig) *string { return &c.BodyColor },
	"bg_color":         func(c *AvatarConfig) *string { return &c.BgColor },
	"hat_color":        func(c *AvatarConfig) *string { return &c.HatColor },
	"accessory_color":  func(c *AvatarConfig) *string { return &c.AccessoryColor },
	"pet_color":        func(c *AvatarConfig) *string { return &c.PetColor },
	"pet_color_body":   func(c *AvatarConfig) *string { return &c.PetColorBody },
	"pet_color_ears":   func(c *AvatarConfig) *string { return &c.PetColorEars },
	"pet_color_tail":   func(c *AvatarConfig) *string { return &c.PetColorTail },
	"pet_color_accent": func(c *AvatarConfig) *string { return &c.PetColorAccent },
}

// IsPreviewField reports whether field can be overridden by a preview.
func IsPreviewField(field string) bool {
	_, ok := previewFields[field]
	return ok
}

// PreviewFields lists every overridable configuration key, sorted.
func PreviewFields() []string {
	keys := make([]string, 0, len(previewFields))
	for k := range previewFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyPreview returns base with the preview's field replaced. base is never
// modified; a nil preview or an unknown field yields an unchanged copy.
func ApplyPreview(base AvatarConfig, p *Preview) AvatarConfig {
	out := base
	out.PetX = copyFloat(base.PetX)
	out.PetY = copyFloat(base.PetY)
	if p == nil {
		return out
	}
	if field, ok := previewFields[p.Field]; ok {
		*field(&out) = p.Value
	}
	return out
}

// Field reads a configuration value by its key.
func (c AvatarConfig) Field(key string) (string, bool) {
	field, ok := previewFields[key]
	if !ok {
		return "", false
	}
	return *field(&c), true
}

// SetField writes a configuration value by its key and reports whether the key exists.
func (c *AvatarConfig) SetField(key, value string) bool {
	field, ok := previewFields[key]
	if ok {
		*field(c) = value
	}
	return ok
}
