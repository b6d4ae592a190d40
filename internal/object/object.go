package object

import (
	"math/rand"

	"github.com/tomz197/lavaballs/internal/draw"
)

// Spawner allows entities to be created while a frame is being resolved.
// Spawned entities join the world after the current pass completes.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Screen  Screen
	Rand    *rand.Rand
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // Shapes in logical coordinates
	Text   *draw.ChunkWriter // Text overlay, written after the canvas
}

// Screen is the logical play area (the viewport at start, never resized).
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen builds a Screen with its centre filled in.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// FloorY is the top edge of the lava strip.
func (s Screen) FloorY() float64 {
	return float64(s.Height) - LavaHeight
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw draws the object.
	Draw(ctx DrawContext)
}

// Destructible is implemented by objects that are removed by an outside
// collision pass rather than by their own update.
type Destructible interface {
	// MarkDestroyed flags the object for removal in the next sweep.
	MarkDestroyed()
	// IsDestroyed returns true if the object is flagged for removal.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// expirable is anything a sweep can drop.
type expirable interface {
	IsDestroyed() bool
}

// Sweep removes destroyed entries in place, preserving order.
func Sweep[T expirable](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// UpdateAll runs Update on every item and compacts out the ones that ask to be
// removed, preserving order. Removed items are released to their pools.
func UpdateAll[T Object](ctx UpdateContext, items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.Update(ctx) {
			ReleaseObject(it)
			continue
		}
		kept = append(kept, it)
	}
	clear(items[len(kept):])
	return kept
}

var (
	_ Destructible = (*Bullet)(nil)
	_ Destructible = (*PowerUp)(nil)
	_ Releasable   = (*Particle)(nil)
)
