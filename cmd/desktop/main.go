package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/lavaballs/internal/audio"
	"github.com/tomz197/lavaballs/internal/config"
	"github.com/tomz197/lavaballs/internal/desktop"
	"github.com/tomz197/lavaballs/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "desktop"})
	if err := run(logger); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	settings, err := config.LoadGame()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	music := audio.NewMusic(settings.MusicPath, audio.DefaultVolume)
	defer music.Close()

	return desktop.Run(desktop.Options{
		Options: loop.Options{
			Seed:                 settings.Seed,
			DynamicFireRate:      settings.DynamicFireRate,
			RetainFallenPowerUps: settings.RetainFallenPowerUps,
			Logger:               logger,
		},
		Music:        music,
		MusicDelay:   settings.MusicDelay,
		PlayerSprite: settings.PlayerSprite,
		BulletSprite: settings.BulletSprite,
	})
}
