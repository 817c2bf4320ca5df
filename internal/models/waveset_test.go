package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleWaveSet = `
game_clear_scene: GameClear
game_over_scene: GameOver
waves:
  - name: Wave 1
    time_limit_sec: 60
    enemies:
      - color: red
        expression: smile
        count: 1
  - name: Wave 2
    time_limit_sec: 30
    enemies:
      - color: aqua_blue
        expression: wink
        count: 2
`

func writeTempWaveSet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waves.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write wave set: %v", err)
	}
	return path
}

func TestLoadWaveSet(t *testing.T) {
	ws, err := LoadWaveSet(writeTempWaveSet(t, sampleWaveSet))
	if err != nil {
		t.Fatalf("LoadWaveSet failed: %v", err)
	}

	if ws.GameClearScene != "GameClear" || ws.GameOverScene != "GameOver" {
		t.Errorf("scenes = %q / %q", ws.GameClearScene, ws.GameOverScene)
	}
	if len(ws.Waves) != 2 {
		t.Fatalf("expected 2 waves, got %d", len(ws.Waves))
	}
	w2 := ws.Waves[1]
	if w2.TimeLimitSec != 30 {
		t.Errorf("wave 2 time limit = %v, want 30", w2.TimeLimitSec)
	}
	if len(w2.Enemies) != 1 || w2.Enemies[0].Color != ColorAquaBlue || w2.Enemies[0].Expression != ExpressionWink {
		t.Errorf("wave 2 enemies = %+v", w2.Enemies)
	}
}

func TestLoadWaveSetRejectsUnknownColor(t *testing.T) {
	bad := strings.Replace(sampleWaveSet, "color: red", "color: redd", 1)
	if _, err := LoadWaveSet(writeTempWaveSet(t, bad)); err == nil {
		t.Fatal("expected an error for an unknown color token")
	}
}

func TestLoadWaveSetRejectsUnknownExpression(t *testing.T) {
	bad := strings.Replace(sampleWaveSet, "expression: smile", "expression: cry", 1)
	if _, err := LoadWaveSet(writeTempWaveSet(t, bad)); err == nil {
		t.Fatal("expected an error for an expression outside the taxonomy")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WaveSet)
	}{
		{"missing scene", func(ws *WaveSet) { ws.GameOverScene = "" }},
		{"no waves", func(ws *WaveSet) { ws.Waves = nil }},
		{"zero time limit", func(ws *WaveSet) { ws.Waves[0].TimeLimitSec = 0 }},
		{"zero count", func(ws *WaveSet) { ws.Waves[0].Enemies[0].Count = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := DefaultWaveSet()
			tt.mutate(ws)
			if err := ws.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}

	if err := DefaultWaveSet().Validate(); err != nil {
		t.Errorf("default wave set should validate: %v", err)
	}
}
