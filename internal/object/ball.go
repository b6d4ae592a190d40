package object

import (
	"strconv"

	"github.com/tomz197/lavaballs/internal/draw"
	"github.com/tomz197/lavaballs/internal/physics"
)

// Ball tiers are told apart by radius.
const (
	LargeBallRadius = 50.0 // Tier 1, splits when defeated
	SplitBallRadius = 25.0 // Tier 2, terminal when defeated
	SplitBallHealth = 15

	// Balls above this radius split in two when defeated.
	splitThreshold = 30.0
)

// Ball physics, in units per tick.
const (
	BallGravity    = 0.03
	BallBounceVY   = -6.0
	BallFadeStep   = 0.05
	ballDriftRange = 2.0 // initial dx in [-1, 1)
	BallSides      = 6
	LavaHeight     = 20.0
)

// Ball is a bouncing hexagonal enemy with health and a split-on-death rule.
type Ball struct {
	X, Y    float64 // Centre
	VX, VY  float64
	Gravity float64
	Radius  float64
	Health  int
	Hue     float64 // Degrees, cosmetic
	Dying   bool
	Fade    float64 // 1 while alive, decreases to 0 while dying
}

// NewBall creates a live ball at (x, y). Drift and hue come from rng.
func NewBall(ctx UpdateContext, x, y, radius float64, health int) *Ball {
	return &Ball{
		X:       x,
		Y:       y,
		VX:      physics.RandSpread(ctx.Rand, ballDriftRange),
		VY:      BallBounceVY,
		Gravity: BallGravity,
		Radius:  radius,
		Health:  health,
		Hue:     ctx.Rand.Float64() * 360,
		Fade:    1,
	}
}

// Update applies gravity, wall reflection and the lava bounce, or advances the
// fade-out once dying. Returns true once the fade is exhausted.
func (b *Ball) Update(ctx UpdateContext) bool {
	if b.Dying {
		b.Fade -= BallFadeStep
		return b.Fade <= 0
	}

	b.Y += b.VY
	b.X += b.VX
	b.VY += b.Gravity

	if floor := ctx.Screen.FloorY(); b.Y+b.Radius >= floor {
		b.Y = floor - b.Radius
		b.VY = BallBounceVY
	}
	if b.X-b.Radius < 0 || b.X+b.Radius > float64(ctx.Screen.Width) {
		b.VX = -b.VX
	}
	return false
}

// MarkDying starts the fade-out. Health is irrelevant from here on.
func (b *Ball) MarkDying() {
	b.Dying = true
}

// IsDying reports whether the ball is fading out.
func (b *Ball) IsDying() bool {
	return b.Dying
}

// IsDestroyed reports whether the ball has finished fading out.
func (b *Ball) IsDestroyed() bool {
	return b.Dying && b.Fade <= 0
}

// Contains reports whether a point lies strictly inside the ball.
func (b *Ball) Contains(x, y float64) bool {
	return physics.PointInCircle(x, y, b.X, b.Y, b.Radius)
}

// Defeated reports whether health has run out.
func (b *Ball) Defeated() bool {
	return b.Health <= 0
}

// Splits reports whether this ball breaks into children when defeated.
func (b *Ball) Splits() bool {
	return b.Radius > splitThreshold
}

// Split creates the two tier-2 children at the ball's current position.
func (b *Ball) Split(ctx UpdateContext) [2]*Ball {
	return [2]*Ball{
		NewBall(ctx, b.X, b.Y, SplitBallRadius, SplitBallHealth),
		NewBall(ctx, b.X, b.Y, SplitBallRadius, SplitBallHealth),
	}
}

// Color returns the ball's fill colour with the fade applied.
func (b *Ball) Color() draw.Color {
	return draw.HSL(b.Hue, 0.7, 0.5).Fade(b.Fade)
}

// Draw renders the ball as a filled hexagon with its health at the centre.
func (b *Ball) Draw(ctx DrawContext) {
	points := ctx.Canvas.RegularPolygon(b.X, b.Y, b.Radius, BallSides)
	ctx.Canvas.DrawPolygon(points, true, b.Color())

	if b.Dying || ctx.Text == nil || !ctx.Canvas.Visible(b.X, b.Y) {
		return
	}
	col, row := ctx.Canvas.LogicalToTerminal(b.X, b.Y)
	ctx.Text.WriteCenteredAt(col, row, draw.RGB(0xff, 0xff, 0xff), strconv.Itoa(b.Health))
}
