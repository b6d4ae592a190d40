package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/lavaballs/internal/audio"
	"github.com/tomz197/lavaballs/internal/config"
	"github.com/tomz197/lavaballs/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lavaballs: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadGame()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Stdout is the render surface, so logs only go to a file.
	logOut := io.Discard
	if settings.LogPath != "" {
		f, err := os.OpenFile(settings.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "game",
	})

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	music := audio.NewMusic(settings.MusicPath, audio.DefaultVolume)
	defer music.Close()

	opts := loop.TerminalOptions{
		Options: loop.Options{
			Seed:                 settings.Seed,
			DynamicFireRate:      settings.DynamicFireRate,
			RetainFallenPowerUps: settings.RetainFallenPowerUps,
			Logger:               logger,
		},
		Music:      music,
		MusicDelay: settings.MusicDelay,
	}

	logger.Info("starting")
	if err := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	logger.Info("stopped")
	return nil
}
