// Package config centralizes all tunable game parameters.
package config

import "time"

// View resolution in logical units.
// Terminal rendering scales this to fit; it is never resized during play.
const (
	ViewWidth  = 1280
	ViewHeight = 720
)

// Player
const (
	InitialLives = 3
	KeyboardStep = 40.0 // Units moved per frame while an arrow key is held
)

// Scheduling
const (
	SpawnInterval       = 9 * time.Second
	BaseFireInterval    = 500 * time.Millisecond
	MinFireInterval     = 100 * time.Millisecond
	FireIntervalPerBall = 20 * time.Millisecond
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 250 * time.Millisecond // Longer stalls are not caught up
)

// Terminal rendering limits. Larger terminals get a centred, bordered area.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 68
)

// Audio
const (
	MusicDelay = 5 * time.Second
)

// Session limits
const (
	InactivityDisconnect = 10 * time.Minute
)
