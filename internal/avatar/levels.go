package avatar

import "math"

// LevelTier is one rung of the companion level ladder.
type LevelTier struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	Threshold int    `json:"xp_threshold"`
}

// LevelInfo describes where an XP total sits on the ladder.
type LevelInfo struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	XP        int    `json:"xp"`
	Threshold int    `json:"xp_threshold"`
	// NextThreshold is zero at the top level.
	NextThreshold int     `json:"next_threshold,omitempty"`
	Progress      float64 `json:"progress"`
}

// MaxLevel is the top of the ladder.
const MaxLevel = 8

var levelLadder = [MaxLevel]LevelTier{
	{1, "Hatchling", 0},
	{2, "Youngling", 50},
	{3, "Companion", 150},
	{4, "Loyal", 350},
	{5, "Brave", 700},
	{6, "Mighty", 1200},
	{7, "Majestic", 2000},
	{8, "Legendary", 3500},
}

// IsMax reports whether the companion has reached the top level.
func (l LevelInfo) IsMax() bool {
	return l.Level == MaxLevel
}

// CompanionLevelFor maps an XP total to its level. Negative XP counts as zero.
func CompanionLevelFor(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	idx := 0
	for i, tier := range levelLadder {
		if xp >= tier.Threshold {
			idx = i
		}
	}

	tier := levelLadder[idx]
	info := LevelInfo{
		Level:     tier.Level,
		Name:      tier.Name,
		XP:        xp,
		Threshold: tier.Threshold,
		Progress:  1,
	}
	if idx < len(levelLadder)-1 {
		next := levelLadder[idx+1].Threshold
		info.NextThreshold = next
		info.Progress = round3(float64(xp-tier.Threshold) / float64(next-tier.Threshold))
	}
	return info
}

// CompanionLevels lists every tier of the ladder.
func CompanionLevels() []LevelTier {
	out := make([]LevelTier, len(levelLadder))
	copy(out, levelLadder[:])
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
