package object

// PowerUp parameters.
const (
	PowerUpRadius    = 15.0
	PowerUpFallSpeed = 1.0
)

// PowerUp falls at a constant speed and adds a shot when the player touches it.
type PowerUp struct {
	X, Y      float64
	Radius    float64
	destroyed bool
}

// NewPowerUp creates a power-up at (x, y).
func NewPowerUp(x, y float64) *PowerUp {
	return &PowerUp{X: x, Y: y, Radius: PowerUpRadius}
}

// Update moves the power-up down. It never removes itself.
func (p *PowerUp) Update(_ UpdateContext) bool {
	p.Y += PowerUpFallSpeed
	return false
}

// BelowScreen reports whether the power-up has fallen entirely out of view.
func (p *PowerUp) BelowScreen(s Screen) bool {
	return p.Y-p.Radius > float64(s.Height)
}

// MarkDestroyed flags the power-up as collected.
func (p *PowerUp) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true once the power-up has been collected.
func (p *PowerUp) IsDestroyed() bool {
	return p.destroyed
}

// Draw renders the power-up as a pink disc with a star.
func (p *PowerUp) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(p.X, p.Y, p.Radius, powerUpColor)
	if ctx.Text != nil && ctx.Canvas.Visible(p.X, p.Y) {
		col, row := ctx.Canvas.LogicalToTerminal(p.X, p.Y)
		ctx.Text.WriteCenteredAt(col, row, starColor, "★")
	}
}
