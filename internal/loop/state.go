package loop

import (
	"math/rand"

	"github.com/tomz197/lavaballs/internal/loop/config"
	"github.com/tomz197/lavaballs/internal/object"
)

// GameState is the orchestrator's phase.
type GameState int

const (
	GameStatePlaying GameState = iota // Ticks advance the world
	GameStateOver                     // Terminal until restart
)

func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "game over"
	default:
		return "unknown"
	}
}

// WorldState owns every live entity plus the scalar progression state.
// It is not safe for concurrent use; a single goroutine drives it.
type WorldState struct {
	Screen    object.Screen
	Player    *object.Player
	Balls     []*object.Ball
	PowerUps  []*object.PowerUp
	Particles []*object.Particle
	Score     int
	Lives     int
	GameOver  bool
	Spawner   *object.BallSpawner

	// RetainFallenPowerUps keeps power-ups that fell past the bottom edge.
	RetainFallenPowerUps bool

	rng     *rand.Rand
	toSpawn []object.Object // Entities created mid-frame, added after the pass
}

// NewWorldState creates an empty world. No ball has been spawned yet.
func NewWorldState(screen object.Screen, rng *rand.Rand) *WorldState {
	return &WorldState{
		Screen:  screen,
		Player:  object.NewPlayer(screen),
		Lives:   config.InitialLives,
		Spawner: object.NewBallSpawner(),
		rng:     rng,
	}
}

// Reset reinitializes every field to its starting value. The player keeps
// its horizontal position.
func (w *WorldState) Reset() {
	for _, p := range w.Particles {
		p.Release()
	}
	x := w.Player.X
	w.Player = object.NewPlayer(w.Screen)
	w.Player.SetHorizontalPosition(x)

	w.Balls = nil
	w.PowerUps = nil
	w.Particles = nil
	w.toSpawn = w.toSpawn[:0]
	w.Score = 0
	w.Lives = config.InitialLives
	w.GameOver = false
	w.Spawner.Reset()
}

// BallLevel returns the level of the most recent spawn wave.
func (w *WorldState) BallLevel() int {
	return w.Spawner.Level
}

// State returns the phase derived from the game-over flag.
func (w *WorldState) State() GameState {
	if w.GameOver {
		return GameStateOver
	}
	return GameStatePlaying
}

// UpdateContext creates the context passed to entity updates.
func (w *WorldState) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Screen:  w.Screen,
		Rand:    w.rng,
		Spawner: w,
	}
}

// Spawn queues an object to be added after the current pass.
// Implements object.Spawner.
func (w *WorldState) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned moves queued objects into their collections.
func (w *WorldState) FlushSpawned() {
	for _, obj := range w.toSpawn {
		switch o := obj.(type) {
		case *object.Ball:
			w.Balls = append(w.Balls, o)
		case *object.PowerUp:
			w.PowerUps = append(w.PowerUps, o)
		case *object.Particle:
			w.Particles = append(w.Particles, o)
		case *object.Bullet:
			w.Player.Bullets = append(w.Player.Bullets, o)
		}
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// SpawnWave runs one spawner invocation and adds its entities immediately.
func (w *WorldState) SpawnWave() {
	w.Spawner.SpawnWave(w.UpdateContext())
	w.FlushSpawned()
}

// LoseLife takes one life and sets GameOver when none remain.
func (w *WorldState) LoseLife() {
	if w.GameOver {
		return
	}
	w.Lives--
	if w.Lives <= 0 {
		w.GameOver = true
	}
}
