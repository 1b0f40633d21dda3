package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Unknown names return ok=false;
// the empty string means "no preset" and is valid.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" disables the per-brick speed ramp; the others trade lives,
// paddle width, and starting ball speed.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 150
		cfg.Ball.StartSpeed = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Ball.StartSpeed = 380
	case DifficultyFixed:
		cfg.Ball.SpeedIncrement = 0
	}
	cfg.Normalize()
}
