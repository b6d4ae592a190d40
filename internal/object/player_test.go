package object

import (
	"math"
	"testing"
)

func TestNewPlayerStartPosition(t *testing.T) {
	p := NewPlayer(NewScreen(1280, 720))
	if p.X != 580 || p.Y != 560 {
		t.Errorf("start = (%v,%v), want (580,560)", p.X, p.Y)
	}
	if p.ShotCount != 1 {
		t.Errorf("ShotCount = %d, want 1", p.ShotCount)
	}
}

func TestFireSpreadsSymmetrically(t *testing.T) {
	tests := []struct {
		shots   int
		offsets []float64
	}{
		{1, []float64{0}},
		{2, []float64{-10, 10}},
		{3, []float64{-20, 0, 20}},
		{4, []float64{-30, -10, 10, 30}},
	}
	for _, tt := range tests {
		p := NewPlayer(NewScreen(1280, 720))
		p.ShotCount = tt.shots
		p.Fire()
		if len(p.Bullets) != tt.shots {
			t.Fatalf("shots=%d: fired %d bullets", tt.shots, len(p.Bullets))
		}
		for i, b := range p.Bullets {
			if got := b.X - p.CenterX(); math.Abs(got-tt.offsets[i]) > 1e-9 {
				t.Errorf("shots=%d bullet %d offset = %v, want %v", tt.shots, i, got, tt.offsets[i])
			}
			if b.Y != p.Y {
				t.Errorf("bullet %d starts at y=%v, want %v", i, b.Y, p.Y)
			}
		}
	}
}

func TestAddShotCapped(t *testing.T) {
	p := NewPlayer(NewScreen(1280, 720))
	for i := 0; i < 10; i++ {
		p.AddShot()
	}
	if p.ShotCount != MaxShotCount {
		t.Errorf("ShotCount = %d, want %d", p.ShotCount, MaxShotCount)
	}
	if p.AddShot() {
		t.Error("AddShot should report the cap")
	}
}

func TestInReach(t *testing.T) {
	p := NewPlayer(NewScreen(1280, 720))
	ax, ay := p.Anchor()
	if !p.InReach(NewPowerUp(ax, ay-39)) {
		t.Error("power-up at distance 39 should be collected")
	}
	if p.InReach(NewPowerUp(ax, ay-41)) {
		t.Error("power-up at distance 41 should not be collected")
	}
	if p.InReach(NewPowerUp(ax+40, ay)) {
		t.Error("power-up at distance exactly 40 should not be collected")
	}
}

func TestTouches(t *testing.T) {
	ctx, _ := testContext(1)
	p := NewPlayer(ctx.Screen)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"above player", p.CenterX(), p.Y - LargeBallRadius - 1, false},
		{"lower edge past top", p.CenterX(), p.Y - LargeBallRadius + 1, true},
		{"left of span", p.X - 1, p.Y, false},
		{"on left edge", p.X, p.Y, false},
		{"right of span", p.X + p.Width + 1, p.Y, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(ctx, tt.x, tt.y, LargeBallRadius, 25)
			if got := p.Touches(b); got != tt.want {
				t.Errorf("Touches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceBulletsPurgesOffScreen(t *testing.T) {
	ctx, _ := testContext(1)
	p := NewPlayer(ctx.Screen)
	p.Bullets = []*Bullet{NewBullet(10, 13), NewBullet(10, 14), NewBullet(10, 300)}
	p.AdvanceBullets(ctx)
	if len(p.Bullets) != 2 {
		t.Fatalf("%d bullets left, want 2", len(p.Bullets))
	}
	if p.Bullets[0].Y != 0 {
		t.Errorf("bullet at y=0 should survive, got y=%v", p.Bullets[0].Y)
	}
}
