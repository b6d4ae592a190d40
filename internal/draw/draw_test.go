package draw

import "testing"

func TestRGBRoundTrip(t *testing.T) {
	c := RGB(12, 200, 255)
	if !c.IsSet() {
		t.Fatal("RGB colour should be set")
	}
	r, g, b := c.RGB255()
	if r != 12 || g != 200 || b != 255 {
		t.Errorf("RGB255() = %d,%d,%d", r, g, b)
	}
}

func TestBlackIsStillAPixel(t *testing.T) {
	if !RGB(0, 0, 0).IsSet() {
		t.Error("black must be distinguishable from ColorNone")
	}
	if ColorNone.IsSet() {
		t.Error("ColorNone must not be set")
	}
}

func TestFade(t *testing.T) {
	c := RGB(200, 100, 50)
	if got := c.Fade(1); got != c {
		t.Errorf("Fade(1) = %x, want %x", got, c)
	}
	if got := c.Fade(0); got != ColorNone {
		t.Errorf("Fade(0) = %x, want none", got)
	}
	r, _, _ := c.Fade(0.5).RGB255()
	if r < 95 || r > 105 {
		t.Errorf("Fade(0.5) red = %d, want ~100", r)
	}
}

func TestHSL(t *testing.T) {
	r, g, b := HSL(0, 0.7, 0.5).RGB255()
	if r <= g || r <= b {
		t.Errorf("hue 0 should be red-dominant, got %d,%d,%d", r, g, b)
	}
}
