package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return the
// empty preset, which means "use the config file as-is".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy", "normal", "hard", "fixed":
		return DifficultyPreset(s)
	}
	return ""
}

// ApplyRunnerPreset adjusts the config for a difficulty preset.
// Presets scale the density and aggression knobs rather than replacing the
// whole file, so user overrides still apply underneath.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.SkipChance += 0.15
		cfg.Spawn.ObstacleWeight -= 0.15
		cfg.Spawn.GroupChance -= 0.1
		cfg.Speeds.BaseRunSpeed *= 0.85
		cfg.Progress.Lives++
	case DifficultyHard:
		cfg.Spawn.SkipChance -= 0.1
		cfg.Spawn.ObstacleWeight += 0.15
		cfg.Spawn.GroupChance += 0.15
		cfg.Spawn.TripleChance += 0.07
		cfg.Speeds.BaseRunSpeed *= 1.2
	case DifficultyFixed:
		// No level-driven ramp: same speed and spacing for the whole run.
		cfg.Speeds.RunSpeedPerLevel = 0
	case DifficultyNormal:
		// Config defaults are the normal preset.
	}

	clampWeights(cfg)
}

// clampWeights keeps probabilities in [0, 1] after preset adjustment.
func clampWeights(cfg *RunnerConfig) {
	cfg.Spawn.SkipChance = clamp01(cfg.Spawn.SkipChance)
	cfg.Spawn.ObstacleWeight = clamp01(cfg.Spawn.ObstacleWeight)
	cfg.Spawn.GroupChance = clamp01(cfg.Spawn.GroupChance)
	cfg.Spawn.TripleChance = clamp01(cfg.Spawn.TripleChance)
	cfg.Spawn.FlyerChance = clamp01(cfg.Spawn.FlyerChance)
	cfg.Spawn.RusherWeight = clamp01(cfg.Spawn.RusherWeight)
	cfg.Spawn.TankWeight = clamp01(cfg.Spawn.TankWeight)
	cfg.Spawn.BonusGemChance = clamp01(cfg.Spawn.BonusGemChance)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
