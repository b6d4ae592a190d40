package object

import (
	"math"
	"testing"
)

func TestBallGravityIncreasesVelocity(t *testing.T) {
	ctx, _ := testContext(1)
	b := NewBall(ctx, 640, 100, LargeBallRadius, 25)
	b.VX = 0

	prev := b.VY
	for i := 0; i < 50; i++ {
		if b.Update(ctx) {
			t.Fatal("live ball should never ask to be removed")
		}
		if math.Abs(b.VY-prev-BallGravity) > 1e-9 {
			t.Fatalf("tick %d: vy went %v -> %v", i, prev, b.VY)
		}
		prev = b.VY
	}
}

func TestBallBouncesOffLava(t *testing.T) {
	ctx, _ := testContext(1)
	floor := ctx.Screen.FloorY()
	b := NewBall(ctx, 640, floor-LargeBallRadius-1, LargeBallRadius, 25)
	b.VY = 5

	b.Update(ctx)
	if b.Y != floor-LargeBallRadius {
		t.Errorf("y = %v, want clamped to %v", b.Y, floor-LargeBallRadius)
	}
	if b.VY != BallBounceVY {
		t.Errorf("vy = %v, want %v", b.VY, BallBounceVY)
	}
}

func TestBallReflectsOffWalls(t *testing.T) {
	ctx, _ := testContext(1)
	tests := []struct {
		name string
		x    float64
		vx   float64
	}{
		{"left wall", LargeBallRadius + 0.5, -1},
		{"right wall", float64(ctx.Screen.Width) - LargeBallRadius - 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(ctx, tt.x, 200, LargeBallRadius, 25)
			b.VX = tt.vx
			b.Update(ctx)
			if b.VX != -tt.vx {
				t.Errorf("vx = %v, want %v", b.VX, -tt.vx)
			}
		})
	}
}

func TestDyingBallFadesThenIsRemoved(t *testing.T) {
	ctx, _ := testContext(1)
	b := NewBall(ctx, 640, 200, SplitBallRadius, 15)
	b.MarkDying()
	x, y := b.X, b.Y

	prevFade := b.Fade
	ticks := 0
	for {
		ticks++
		removed := b.Update(ctx)
		if b.Fade > prevFade {
			t.Fatal("fade increased")
		}
		prevFade = b.Fade
		if removed != (b.Fade <= 0) {
			t.Fatalf("removed=%v with fade=%v", removed, b.Fade)
		}
		if removed {
			break
		}
		if ticks > 100 {
			t.Fatal("dying ball never removed")
		}
	}
	if b.X != x || b.Y != y {
		t.Error("dying ball should not move")
	}
	if ticks < 20 || ticks > 21 {
		t.Errorf("removed after %d ticks, want ~20", ticks)
	}
}

func TestSplitRules(t *testing.T) {
	ctx, _ := testContext(3)
	large := NewBall(ctx, 300, 400, LargeBallRadius, 0)
	if !large.Splits() {
		t.Error("large ball should split")
	}
	small := NewBall(ctx, 300, 400, SplitBallRadius, 0)
	if small.Splits() {
		t.Error("split ball should not split again")
	}

	children := large.Split(ctx)
	for i, c := range children {
		if c.Radius != SplitBallRadius || c.Health != SplitBallHealth {
			t.Errorf("child %d: radius=%v health=%d", i, c.Radius, c.Health)
		}
		if c.X != 300 || c.Y != 400 {
			t.Errorf("child %d at (%v,%v), want parent position", i, c.X, c.Y)
		}
		if c.Dying {
			t.Errorf("child %d should be alive", i)
		}
	}
}

func TestBallContainsIsStrict(t *testing.T) {
	ctx, _ := testContext(1)
	b := NewBall(ctx, 100, 100, LargeBallRadius, 25)
	if !b.Contains(100, 100) {
		t.Error("centre should hit")
	}
	if b.Contains(150, 100) {
		t.Error("distance equal to radius should miss")
	}
}

func TestNewBallDrift(t *testing.T) {
	ctx, _ := testContext(9)
	for i := 0; i < 100; i++ {
		b := NewBall(ctx, 0, 0, LargeBallRadius, 1)
		if b.VX < -1 || b.VX >= 1 {
			t.Fatalf("drift out of range: %v", b.VX)
		}
		if b.VY != BallBounceVY || b.Fade != 1 {
			t.Fatalf("unexpected initial state: %+v", b)
		}
	}
}

func TestFadedBallIsSwept(t *testing.T) {
	ctx, _ := testContext(1)
	alive := NewBall(ctx, 100, 100, LargeBallRadius, 25)
	fading := NewBall(ctx, 200, 100, LargeBallRadius, 25)
	fading.MarkDying()
	gone := NewBall(ctx, 300, 100, LargeBallRadius, 25)
	gone.MarkDying()
	gone.Fade = 0

	kept := Sweep([]*Ball{alive, fading, gone})
	if len(kept) != 2 || kept[0] != alive || kept[1] != fading {
		t.Errorf("Sweep kept %v", kept)
	}
}
