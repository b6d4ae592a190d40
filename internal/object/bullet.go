package object

// Bullet geometry, in units.
const (
	BulletSpeed  = 14.0 // Upward, per tick
	bulletWidth  = 8.0
	bulletHeight = 20.0
)

// Bullet is a projectile fired straight up by the player.
type Bullet struct {
	X, Y      float64
	destroyed bool
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{X: x, Y: y}
}

// Update moves the bullet up. Returns true once it has left the top of the screen.
func (b *Bullet) Update(_ UpdateContext) bool {
	b.Y -= BulletSpeed
	return b.Y < 0 || b.destroyed
}

// MarkDestroyed flags the bullet as spent on a hit.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet hit something.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Draw renders the bullet as a small upright bar centred on its position.
func (b *Bullet) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(b.X-bulletWidth/2, b.Y, bulletWidth, bulletHeight, bulletColor)
}
