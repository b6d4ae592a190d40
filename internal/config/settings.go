package config

import (
	"errors"
	"time"

	loopconfig "github.com/tomz197/lavaballs/internal/loop/config"
)

// Environment variable names for the game commands.
const (
	EnvSeed         = "LAVABALLS_SEED"
	EnvDynamicFire  = "LAVABALLS_DYNAMIC_FIRE"
	EnvKeepPowerUps = "LAVABALLS_KEEP_FALLEN_POWERUPS"
	EnvMusic        = "LAVABALLS_MUSIC"
	EnvMusicDelay   = "LAVABALLS_MUSIC_DELAY"
	EnvLog          = "LAVABALLS_LOG"
	EnvPlayerSprite = "LAVABALLS_PLAYER_SPRITE"
	EnvBulletSprite = "LAVABALLS_BULLET_SPRITE"
)

// Game holds the runtime settings shared by every frontend.
type Game struct {
	Seed                 int64
	DynamicFireRate      bool
	RetainFallenPowerUps bool
	MusicPath            string // Empty selects the built-in tune
	MusicDelay           time.Duration
	LogPath              string
	PlayerSprite         string
	BulletSprite         string
}

// LoadGame reads the game settings from the environment. Every malformed
// variable is reported; the returned settings use defaults for those.
func LoadGame() (Game, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	g := Game{
		MusicPath:    GetEnv(EnvMusic, ""),
		LogPath:      GetEnv(EnvLog, ""),
		PlayerSprite: GetEnv(EnvPlayerSprite, ""),
		BulletSprite: GetEnv(EnvBulletSprite, ""),
	}
	var err error
	g.Seed, err = GetEnvInt64(EnvSeed, 0)
	collect(err)
	g.DynamicFireRate, err = GetEnvBool(EnvDynamicFire, false)
	collect(err)
	g.RetainFallenPowerUps, err = GetEnvBool(EnvKeepPowerUps, false)
	collect(err)
	g.MusicDelay, err = GetEnvDuration(EnvMusicDelay, loopconfig.MusicDelay)
	collect(err)

	return g, errors.Join(errs...)
}
