package loop

import "github.com/tomz197/lavaballs/internal/object"

// Tick advances the world by one frame in fixed order: bullets, balls and
// their collisions, power-ups, particles. Does nothing once the game is over.
func (w *WorldState) Tick() {
	if w.GameOver {
		return
	}
	ctx := w.UpdateContext()

	w.Player.AdvanceBullets(ctx)

	w.resolveBalls(ctx)
	w.Player.SweepBullets()
	w.FlushSpawned()
	if w.GameOver {
		return
	}

	w.collectPowerUps(ctx)

	w.Particles = object.UpdateAll(ctx, w.Particles)
}

// Fire shoots one volley. Does nothing once the game is over.
func (w *WorldState) Fire() {
	if w.GameOver {
		return
	}
	w.Player.Fire()
}
