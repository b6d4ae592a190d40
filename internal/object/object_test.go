package object

import (
	"math/rand"
	"testing"
)

// collector records spawned objects.
type collector struct {
	objects []Object
}

func (c *collector) Spawn(obj Object) {
	c.objects = append(c.objects, obj)
}

func testContext(seed int64) (UpdateContext, *collector) {
	c := &collector{}
	return UpdateContext{
		Screen:  NewScreen(1280, 720),
		Rand:    rand.New(rand.NewSource(seed)),
		Spawner: c,
	}, c
}

func TestSweepPreservesOrder(t *testing.T) {
	bullets := []*Bullet{NewBullet(1, 100), NewBullet(2, 100), NewBullet(3, 100), NewBullet(4, 100)}
	bullets[1].MarkDestroyed()
	bullets[3].MarkDestroyed()

	kept := Sweep(bullets)
	if len(kept) != 2 {
		t.Fatalf("kept %d bullets, want 2", len(kept))
	}
	if kept[0].X != 1 || kept[1].X != 3 {
		t.Errorf("order not preserved: %v, %v", kept[0].X, kept[1].X)
	}
}

func TestUpdateAllDropsRemoved(t *testing.T) {
	ctx, _ := testContext(1)
	bullets := []*Bullet{NewBullet(0, 10), NewBullet(0, 500)}
	kept := UpdateAll(ctx, bullets)
	if len(kept) != 1 || kept[0].Y != 500-BulletSpeed {
		t.Fatalf("unexpected bullets after update: %+v", kept)
	}
}

func TestScreenFloor(t *testing.T) {
	if got := NewScreen(800, 600).FloorY(); got != 580 {
		t.Errorf("FloorY() = %v, want 580", got)
	}
}
