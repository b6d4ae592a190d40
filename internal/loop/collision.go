package loop

import "github.com/tomz197/lavaballs/internal/object"

// HitDamage is the health a ball loses per bullet.
const HitDamage = 2

// resolveBalls advances every ball and resolves its contacts for this frame.
// Balls are visited newest first and the pass stops at the contact that ends
// the game. Children and particles created here are queued and join the world
// after the pass, so they are not resolved until the next frame.
func (w *WorldState) resolveBalls(ctx object.UpdateContext) {
	for i := len(w.Balls) - 1; i >= 0; i-- {
		ball := w.Balls[i]
		if ball.Update(ctx) {
			continue // Faded out; swept below
		}
		// Player contact wins over a bullet hit in the same frame.
		if !ball.IsDying() && w.Player.Touches(ball) {
			ball.MarkDying()
			w.LoseLife()
			if w.GameOver {
				break
			}
			continue
		}

		if bullet := w.firstBulletIn(ball); bullet != nil {
			bullet.MarkDestroyed()
			w.hitBall(ctx, ball)
		}
	}
	w.Balls = object.Sweep(w.Balls)
}

// firstBulletIn returns the oldest live bullet inside the ball, if any.
func (w *WorldState) firstBulletIn(ball *object.Ball) *object.Bullet {
	for _, b := range w.Player.Bullets {
		if b.IsDestroyed() {
			continue
		}
		if ball.Contains(b.X, b.Y) {
			return b
		}
	}
	return nil
}

// hitBall applies one bullet's damage, sparks, score and the split rule.
func (w *WorldState) hitBall(ctx object.UpdateContext, ball *object.Ball) {
	ball.Health -= HitDamage
	object.SpawnBurst(ctx, ball.X, ball.Y, object.ParticleBurst)
	w.Score++

	// A fading ball still absorbs bullets but never splits again.
	if ball.IsDying() || !ball.Defeated() {
		return
	}
	if ball.Splits() {
		for _, child := range ball.Split(ctx) {
			w.Spawn(child)
		}
	}
	ball.MarkDying()
}

// collectPowerUps advances power-ups and applies pickups.
func (w *WorldState) collectPowerUps(ctx object.UpdateContext) {
	for _, p := range w.PowerUps {
		p.Update(ctx)
		if w.Player.InReach(p) {
			w.Player.AddShot()
			p.MarkDestroyed()
			continue
		}
		if !w.RetainFallenPowerUps && p.BelowScreen(w.Screen) {
			p.MarkDestroyed()
		}
	}
	w.PowerUps = object.Sweep(w.PowerUps)
}
