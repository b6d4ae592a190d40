package physics

import (
	"math"
	"math/rand"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"same point", 3, 4, 3, 4, 0},
		{"3-4-5", 0, 0, 3, 4, 5},
		{"negative", -1, -1, 2, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointInCircleIsStrict(t *testing.T) {
	if !PointInCircle(100, 100, 100, 100, 50) {
		t.Error("centre point should be inside")
	}
	if PointInCircle(150, 100, 100, 100, 50) {
		t.Error("point exactly on the edge should be outside")
	}
	if !PointInCircle(149.9, 100, 100, 100, 50) {
		t.Error("point just inside the edge should be inside")
	}
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 50, 1230)
		if v < 50 || v >= 1230 {
			t.Fatalf("RandRange out of bounds: %v", v)
		}
	}
}

func TestRandSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := RandSpread(rng, 4)
		if v < -2 || v >= 2 {
			t.Fatalf("RandSpread out of bounds: %v", v)
		}
	}
}
