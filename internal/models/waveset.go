package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWaveSet reads a wave progression config from a YAML file.
func LoadWaveSet(path string) (*WaveSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ws WaveSet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse wave set %s: %w", path, err)
	}
	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wave set %s: %w", path, err)
	}
	return &ws, nil
}

// Validate checks the config invariants: scene ids present, at least one
// wave, positive time limits, requirement counts of at least 1.
func (ws *WaveSet) Validate() error {
	if ws.GameClearScene == "" || ws.GameOverScene == "" {
		return fmt.Errorf("game_clear_scene and game_over_scene are required")
	}
	if len(ws.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}
	for i, w := range ws.Waves {
		if w.TimeLimitSec <= 0 {
			return fmt.Errorf("wave %d (%s): time_limit_sec must be > 0", i, w.Name)
		}
		for j, e := range w.Enemies {
			if e.Count < 1 {
				return fmt.Errorf("wave %d (%s) enemy %d: count must be >= 1", i, w.Name, j)
			}
		}
	}
	return nil
}

// DefaultWaveSet is the built-in progression used when no config file is
// given: a short three-wave ramp.
func DefaultWaveSet() *WaveSet {
	return &WaveSet{
		GameClearScene: "GameClear",
		GameOverScene:  "GameOver",
		Waves: []Wave{
			{
				Name:         "Wave 1",
				TimeLimitSec: 60,
				Enemies: []EnemyRequirement{
					{Color: ColorRed, Expression: ExpressionSmile, Count: 1},
				},
			},
			{
				Name:         "Wave 2",
				TimeLimitSec: 45,
				Enemies: []EnemyRequirement{
					{Color: ColorRoyalBlue, Expression: ExpressionSmile, Count: 1},
					{Color: ColorCanaryYellow, Expression: ExpressionWink, Count: 1},
				},
			},
			{
				Name:         "Wave 3",
				TimeLimitSec: 30,
				Enemies: []EnemyRequirement{
					{Color: ColorTropicalPink, Expression: ExpressionSurprise, Count: 2},
				},
			},
		},
	}
}
