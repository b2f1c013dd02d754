package avatar

// Swatches are the editor's colour choices per configuration key. Any valid hex
// colour may be saved; swatches seed the randomiser.
var swatches = map[string][]string{
	"head_color": {
		"#ffe0bd", "#ffcc99", "#f5d6b8", "#f8d9c0",
		"#e8b88a", "#d4a373", "#c68642", "#a67c52",
		"#8d5524", "#6b3a2a", "#4a2912", "#3b1f0e",
		"#f0c4a8", "#d4956a", "#b07848", "#8a6642",
	},
	"hair_color": {
		"#4a3728", "#1a1a2e", "#8b4513", "#d4a017",
		"#c0392b", "#2e86c1", "#7d3c98", "#27ae60",
		"#e74c3c", "#f39c12", "#ecf0f1", "#ff6b9d",
	},
	"eye_color": {
		"#333333", "#1a5276", "#27ae60", "#8b4513",
		"#7d3c98", "#c0392b", "#2e86c1", "#e74c3c",
	},
	"mouth_color": {
		"#cc6666", "#e74c3c", "#d4a373", "#c0392b",
		"#ff6b9d", "#a93226", "#8b4513", "#333333",
	},
	"body_color": {
		"#3b82f6", "#ef4444", "#10b981", "#f59e0b",
		"#a855f7", "#ec4899", "#06b6d4", "#84cc16",
		"#f97316", "#6366f1", "#1a1a2e", "#ecf0f1",
	},
	"bg_color": {
		"#1a1a2e", "#0f0e17", "#16213e", "#1b4332",
		"#4a1942", "#2d1b69", "#1a3a3a", "#3d0c02",
		"#2e86c1", "#27ae60", "#f39c12", "#8e44ad",
	},
	"hat_color": {
		"#f39c12", "#e74c3c", "#3b82f6", "#10b981",
		"#a855f7", "#ec4899", "#f59e0b", "#1a1a2e",
		"#c0c0c0", "#f9d71c", "#8b4513", "#ecf0f1",
	},
	"accessory_color": {
		"#3b82f6", "#ef4444", "#10b981", "#f39c12",
		"#a855f7", "#ec4899", "#c0c0c0", "#f9d71c",
		"#8b4513", "#1a1a2e", "#ecf0f1", "#06b6d4",
	},
	"pet_color": {
		"#8b4513", "#4a3728", "#f39c12", "#ef4444",
		"#10b981", "#a855f7", "#ecf0f1", "#1a1a2e",
		"#c0c0c0", "#ff6b9d", "#06b6d4", "#f59e0b",
	},
}

// SwatchKeys lists the colour keys that have swatches, in editor order.
func SwatchKeys() []string {
	return []string{
		"head_color", "hair_color", "eye_color", "mouth_color", "body_color",
		"bg_color", "hat_color", "accessory_color", "pet_color",
	}
}

// Swatches returns a copy of the swatch list for a colour key.
func Swatches(key string) []string {
	out := make([]string, len(swatches[key]))
	copy(out, swatches[key])
	return out
}
