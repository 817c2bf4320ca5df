package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/snapwave/internal/analyzer"
	"github.com/tatianab/snapwave/internal/camera"
	"github.com/tatianab/snapwave/internal/config"
	"github.com/tatianab/snapwave/internal/game"
	"github.com/tatianab/snapwave/internal/models"
	"github.com/tatianab/snapwave/internal/tui"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "snapwave",
		Usage: "photograph people matching each wave's shirt color and expression before time runs out",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "waveset",
				Usage: "YAML wave progression file (built-in waves when omitted)",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Gemini model name (overrides SNAPWAVE_MODEL)",
			},
			&cli.StringFlag{
				Name:  "photos",
				Usage: "directory the camera captures from (overrides SNAPWAVE_PHOTO_DIR)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if m := c.String("model"); m != "" {
		cfg.Model = m
	}
	if p := c.String("photos"); p != "" {
		cfg.PhotoDir = p
	}

	waveSet := models.DefaultWaveSet()
	if path := c.String("waveset"); path != "" {
		waveSet, err = models.LoadWaveSet(path)
		if err != nil {
			return err
		}
	}

	gemini, err := analyzer.NewGemini(ctx, analyzer.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.Model})
	if err != nil {
		return err
	}
	defer gemini.Close()

	cam := camera.NewDirCamera(cfg.PhotoDir)
	saver := &camera.DiskSaver{Dir: cfg.SaveDir}

	session := game.New(cam, saver, gemini, waveSet)
	defer session.Close()

	return tui.Run(session, waveSet.GameOverScene)
}
