// Package level holds the static geometry and environment a throw is
// simulated against.
package level

import (
	"errors"
	"fmt"

	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/physics"
)

// ErrLevelFull is returned when adding an object past the level's capacity.
var ErrLevelFull = errors.New("too many objects in level")

// Object is a rectangular collider. Objects are immutable once added.
type Object struct {
	Pos    physics.Vec     // Bottom-left corner (y grows downward, so the bottom is the larger y)
	Dims   physics.Vec     // Width and height
	Type   physics.Surface // Collision response
	Move   bool            // Moving platforms are not simulated
	EndPos physics.Vec     // Where a moving object would travel to (unused)
}

// NewObject creates a static object with its bottom-left corner at (x, y).
func NewObject(x, y, w, h float64, t physics.Surface) Object {
	return Object{
		Pos:  physics.V(x, y),
		Dims: physics.V(w, h),
		Type: t,
	}
}

// Bounds returns the closed rectangle the object occupies.
func (o Object) Bounds() physics.Rect {
	return physics.Rect{
		Min: physics.V(o.Pos.X, o.Pos.Y-o.Dims.Y),
		Max: physics.V(o.Pos.X+o.Dims.X, o.Pos.Y),
	}
}

// Level is an ordered set of objects plus the environment of one stage.
// Object order matters: when objects overlap, the earliest added wins.
type Level struct {
	Number  int
	Start   physics.Vec // Where the player stands
	Target  physics.Vec // Bottom-left corner of the win region
	Wind    physics.Vec
	Gravity physics.Vec

	objects  []Object
	capacity int
	grid     *physics.RectGrid
}

// New creates an empty level.
func New(number int, start, target, wind, gravity physics.Vec) *Level {
	return &Level{
		Number:   number,
		Start:    start,
		Target:   target,
		Wind:     wind,
		Gravity:  gravity,
		objects:  make([]Object, 0, config.LevelObjectCapacity),
		capacity: config.LevelObjectCapacity,
		grid:     physics.NewRectGrid(config.FieldWidth, config.FieldHeight, config.TileSize),
	}
}

// AddObject appends o. It fails with ErrLevelFull once the level holds
// config.LevelObjectCapacity objects.
func (l *Level) AddObject(o Object) error {
	if len(l.objects) >= l.capacity {
		return fmt.Errorf("level %d: add object %d: %w", l.Number, len(l.objects), ErrLevelFull)
	}
	l.grid.Insert(o.Bounds(), len(l.objects))
	l.objects = append(l.objects, o)
	return nil
}

// Objects returns a copy of the level's objects in declaration order.
func (l *Level) Objects() []Object {
	out := make([]Object, len(l.objects))
	copy(out, l.objects)
	return out
}

// Len returns the number of objects.
func (l *Level) Len() int {
	return len(l.objects)
}

// Forces returns the wind and gravity acting on projectiles.
func (l *Level) Forces() physics.Forces {
	return physics.Forces{Wind: l.Wind, Gravity: l.Gravity}
}

// SurfaceAt returns the type of the first object, in declaration order,
// containing p. Implements physics.Collider.
func (l *Level) SurfaceAt(p physics.Vec) (physics.Surface, bool) {
	var (
		found physics.Surface
		ok    bool
	)
	l.grid.QueryPoint(p, func(i int) bool {
		if l.objects[i].Bounds().Contains(p) {
			found, ok = l.objects[i].Type, true
			return true
		}
		return false
	})
	return found, ok
}

// TargetRegion returns the square win region anchored at Target.
func (l *Level) TargetRegion() physics.Rect {
	return physics.Rect{
		Min: physics.V(l.Target.X, l.Target.Y-config.TargetSize),
		Max: physics.V(l.Target.X+config.TargetSize, l.Target.Y),
	}
}

// IsWin reports whether p lies in the target region, edges included.
func (l *Level) IsWin(p physics.Vec) bool {
	return l.TargetRegion().Contains(p)
}

// Reset drops every object, leaving the environment untouched.
func (l *Level) Reset() {
	l.objects = l.objects[:0]
	l.grid.Clear()
}

// Compile-time check that Level can be swept against.
var _ physics.Collider = (*Level)(nil)
