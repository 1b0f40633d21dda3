package config

import (
	_ "embed"
)

//go:embed defaults/blockout.yaml
var defaultYAML []byte

// Default returns the default configuration. Values mirror the embedded
// defaults/blockout.yaml and act as the fallback if the embed fails to parse.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:           900,
			Height:          640,
			Margin:          18,
			TopBarHeight:    56,
			BorderThickness: 14,
		},
		Paddle: PaddleConfig{
			Width:            120,
			Height:           18,
			Speed:            700,
			PointerSmoothing: 12,
			InsetMargin:      6,
		},
		Ball: BallConfig{
			Radius:         7,
			StartSpeed:     300,
			SpeedIncrement: 12,
			MaxSpeed:       760,
			LaunchJitter:   0.35,
			BounceAngle:    0.6,
		},
		Bricks: BrickConfig{
			Rows:      6,
			Cols:      9,
			Width:     92,
			Height:    26,
			Gap:       6,
			TopOffset: 40,
			Points:    10,
		},
		Particles: ParticleConfig{
			BurstSize: 10,
			MinVX:     -90,
			MaxVX:     90,
			MinVY:     -120,
			MaxVY:     40,
			Gravity:   420,
			MinLife:   0.25,
			MaxLife:   0.5,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}
