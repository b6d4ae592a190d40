package object

import (
	"github.com/tomz197/lavaballs/internal/draw"
	"github.com/tomz197/lavaballs/internal/physics"
)

// Player parameters.
const (
	PlayerSize    = 160.0
	MaxShotCount  = 4
	ShotSpacing   = 20.0 // Horizontal gap between simultaneous bullets
	PickupRadius  = 40.0 // Distance from the anchor that collects a power-up
	playerOffsetX = 60.0 // Start position is this far left of centre
)

// Entity colours.
var (
	playerColor  = draw.ColorPlayer
	bulletColor  = draw.ColorBullet
	sparkColor   = draw.ColorSpark
	powerUpColor = draw.ColorPowerUp
	starColor    = draw.RGB(0xff, 0xff, 0xff)
)

// Player is the sprite at the bottom of the screen. It only moves horizontally.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	ShotCount     int // Bullets per volley, 1..MaxShotCount
	Bullets       []*Bullet
}

// NewPlayer creates the player at its start position for the given screen.
func NewPlayer(screen Screen) *Player {
	return &Player{
		X:         float64(screen.Width)/2 - playerOffsetX,
		Y:         float64(screen.Height) - PlayerSize,
		Width:     PlayerSize,
		Height:    PlayerSize,
		ShotCount: 1,
	}
}

// SetHorizontalPosition moves the player's left edge to x. No bounds are enforced.
func (p *Player) SetHorizontalPosition(x float64) {
	p.X = x
}

// CenterOn moves the player so its horizontal centre is at x.
func (p *Player) CenterOn(x float64) {
	p.SetHorizontalPosition(x - p.Width/2)
}

// CenterX returns the horizontal centre.
func (p *Player) CenterX() float64 {
	return p.X + p.Width/2
}

// Anchor returns the top-centre point used for power-up pickup.
func (p *Player) Anchor() (x, y float64) {
	return p.CenterX(), p.Y
}

// Fire appends one bullet per active shot, spread symmetrically around the
// player's centre and starting at its top edge.
func (p *Player) Fire() {
	base := p.CenterX()
	for i := 0; i < p.ShotCount; i++ {
		offset := (float64(i) - float64(p.ShotCount-1)/2) * ShotSpacing
		p.Bullets = append(p.Bullets, NewBullet(base+offset, p.Y))
	}
}

// AddShot increases the shot count up to MaxShotCount.
// Returns false if the cap was already reached.
func (p *Player) AddShot() bool {
	if p.ShotCount >= MaxShotCount {
		return false
	}
	p.ShotCount++
	return true
}

// InReach reports whether a power-up is close enough to the anchor to collect.
func (p *Player) InReach(pu *PowerUp) bool {
	ax, ay := p.Anchor()
	return physics.Distance(ax, ay, pu.X, pu.Y) < PickupRadius
}

// Touches reports whether a ball has reached the player: its lower edge is
// below the player's top and its centre lies within the player's span.
func (p *Player) Touches(b *Ball) bool {
	return b.Y+b.Radius > p.Y && b.X > p.X && b.X < p.X+p.Width
}

// AdvanceBullets moves every bullet and drops those that left the screen.
func (p *Player) AdvanceBullets(ctx UpdateContext) {
	p.Bullets = UpdateAll(ctx, p.Bullets)
}

// SweepBullets drops bullets spent on hits.
func (p *Player) SweepBullets() {
	p.Bullets = Sweep(p.Bullets)
}

// Draw renders the player as a solid block; there is no sprite in the terminal.
func (p *Player) Draw(ctx DrawContext) {
	ctx.Canvas.FillRect(p.X, p.Y, p.Width, p.Height, playerColor)
}
