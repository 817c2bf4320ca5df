// Headless scripted playthrough: drives a full session against the fake
// camera and analyzer, printing every state change. Useful for eyeballing the
// wave progression without a terminal UI or an API key.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/tatianab/snapwave/internal/analyzer"
	"github.com/tatianab/snapwave/internal/camera"
	"github.com/tatianab/snapwave/internal/game"
	"github.com/tatianab/snapwave/internal/models"
)

func main() {
	waveSet := models.DefaultWaveSet()

	cam := &camera.Fake{
		Frames: [][]byte{[]byte("photo-1"), []byte("photo-2"), []byte("photo-3")},
	}

	// Scripted analyses: one winning photo per wave of the default set.
	fake := &analyzer.Fake{
		Results: []*models.PhotoAnalysis{
			{People: []models.PersonTag{
				{Color: models.ColorRed, Expression: models.ExpressionSmile},
			}},
			{People: []models.PersonTag{
				{Color: models.ColorRoyalBlue, Expression: models.ExpressionSmile},
				{Color: models.ColorCanaryYellow, Expression: models.ExpressionWink},
			}},
			{People: []models.PersonTag{
				{Color: models.ColorTropicalPink, Expression: models.ExpressionSurprise},
				{Color: models.ColorTropicalPink, Expression: models.ExpressionSurprise},
			}},
		},
	}

	session := game.New(cam, camera.NullSaver{}, fake, waveSet)
	defer session.Close()

	updates, unsub := session.Subscribe()
	defer unsub()
	go func() {
		for snap := range updates {
			fmt.Printf("[%s] %s | %s | %s\n",
				snap.WaveName, snap.ScoreText, snap.TimerText, snap.HintText)
		}
	}()

	for wave := 1; wave <= len(waveSet.Waves); wave++ {
		fmt.Printf("--- Wave %d ---\n", wave)
		session.StartPreview()
		time.Sleep(100 * time.Millisecond)
		session.Capture()

		if !waitFor(func() bool { return session.Snapshot().AwaitingAnimation }) {
			log.Fatalf("wave %d: no judged result arrived", wave)
		}
		session.AnimationFinished()
		time.Sleep(100 * time.Millisecond)
	}

	select {
	case scene := <-session.Navigate():
		fmt.Printf("Game ended: navigate to %s\n", scene)
		fmt.Printf("Final %s\n", session.Snapshot().ScoreText)
	case <-time.After(2 * time.Second):
		log.Fatal("game never ended")
	}
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
