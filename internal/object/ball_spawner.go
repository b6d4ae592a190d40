package object

import "github.com/tomz197/lavaballs/internal/physics"

// Spawning parameters.
const (
	BaseBallHealth     = 25
	BallHealthPerLevel = 5
	PowerUpChance      = 0.3
	ballSpawnMargin    = 50.0
	powerUpSpawnY      = -20.0
)

// BallSpawner creates one large ball per wave and, sometimes, a power-up.
// Each wave raises the level, and with it the health of the next ball.
type BallSpawner struct {
	Level int // Level of the most recent wave, 0 before the first
}

// NewBallSpawner creates a spawner that has not spawned yet.
func NewBallSpawner() *BallSpawner {
	return &BallSpawner{}
}

// Reset returns the spawner to its initial level.
func (s *BallSpawner) Reset() {
	s.Level = 0
}

// HealthForLevel returns the starting health of a large ball at the given level.
func HealthForLevel(level int) int {
	return BaseBallHealth + (level-1)*BallHealthPerLevel
}

// SpawnWave raises the level and spawns the wave's entities through ctx.Spawner.
func (s *BallSpawner) SpawnWave(ctx UpdateContext) {
	s.Level++

	w := float64(ctx.Screen.Width)
	x := physics.RandRange(ctx.Rand, ballSpawnMargin, w-ballSpawnMargin)
	ctx.Spawner.Spawn(NewBall(ctx, x, -LargeBallRadius, LargeBallRadius, HealthForLevel(s.Level)))

	if ctx.Rand.Float64() < PowerUpChance {
		ctx.Spawner.Spawn(NewPowerUp(ctx.Rand.Float64()*w, powerUpSpawnY))
	}
}
