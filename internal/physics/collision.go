package physics

import (
	"fmt"

	"github.com/tomz197/quiver/internal/config"
)

// Surface is the declared type of a level object. The numeric values are
// part of the level data format and must not be renumbered.
type Surface uint

const (
	SurfaceBoundary   Surface = iota // Default marker, stops like any plain wall
	SurfaceRebound                   // Reverses and dampens horizontal velocity
	SurfaceJumpStrong                // Jump pad, -250 vertical
	SurfaceJumpWeak                  // Jump pad, -100 vertical
	SurfaceJumpMedium                // Jump pad, -200 vertical
)

// String returns a short name for logs.
func (s Surface) String() string {
	switch s {
	case SurfaceBoundary:
		return "boundary"
	case SurfaceRebound:
		return "rebound"
	case SurfaceJumpStrong:
		return "jump-strong"
	case SurfaceJumpWeak:
		return "jump-weak"
	case SurfaceJumpMedium:
		return "jump-medium"
	default:
		return fmt.Sprintf("wall(%d)", uint(s))
	}
}

// CollisionKind tags a Collision.
type CollisionKind uint8

const (
	CollisionNone        CollisionKind = iota // Segment traversed cleanly
	CollisionObject                           // Hit a level object, see Collision.Surface
	CollisionOutOfBounds                      // Left the play field
)

// Collision is the outcome of a quarter-step sweep. Surface is only
// meaningful when Kind is CollisionObject.
type Collision struct {
	Kind    CollisionKind
	Surface Surface
}

// OutOfBounds is the collision reported for a play field exit.
var OutOfBounds = Collision{Kind: CollisionOutOfBounds}

// HitObject returns the collision for an object of the given surface type.
func HitObject(s Surface) Collision {
	return Collision{Kind: CollisionObject, Surface: s}
}

// Object returns the surface that was hit, if any.
func (c Collision) Object() (Surface, bool) {
	if c.Kind != CollisionObject {
		return 0, false
	}
	return c.Surface, true
}

func (c Collision) String() string {
	switch c.Kind {
	case CollisionNone:
		return "none"
	case CollisionObject:
		return "object:" + c.Surface.String()
	case CollisionOutOfBounds:
		return "out-of-bounds"
	default:
		return fmt.Sprintf("collision(%d)", c.Kind)
	}
}

// Rect is a closed axis-aligned rectangle.
type Rect struct {
	Min, Max Vec
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Field is the play area. Positions on or past an edge are out of bounds.
type Field struct {
	Width, Height float64
}

// DefaultField returns the standard 640x480 play area.
func DefaultField() Field {
	return Field{Width: config.FieldWidth, Height: config.FieldHeight}
}

// Outside reports whether p has left the field.
func (f Field) Outside(p Vec) bool {
	return p.X <= 0 || p.X >= f.Width || p.Y <= 0 || p.Y >= f.Height
}

// Collider answers which surface, if any, occupies a point. Implementations
// must return the first matching object in their declared order.
type Collider interface {
	SurfaceAt(p Vec) (Surface, bool)
}

// QuarterSteps is the number of sub-steps a segment is divided into.
const QuarterSteps = 4

// QuarterStep sweeps the segment prev->curr in four equal sub-steps and
// returns how many of them can be traversed before entering a collider or
// leaving the field, along with what stopped it. A clean segment returns
// QuarterSteps and a CollisionNone.
//
// At each sub-step objects are tested first and the field second, so a
// point that is both inside an object and out of bounds reports
// OutOfBounds. A nil collider tests the field only.
func QuarterStep(prev, curr Vec, c Collider, field Field) (int, Collision) {
	step := curr.Sub(prev).Div(QuarterSteps)
	p := prev
	for i := 1; i <= QuarterSteps; i++ {
		p = p.Add(step)
		if hit, ok := collideAt(p, c, field); ok {
			return i - 1, hit
		}
	}
	return QuarterSteps, Collision{}
}

// Advance returns the position after traversing steps quarters of prev->curr.
func Advance(prev, curr Vec, steps int) Vec {
	step := curr.Sub(prev).Div(QuarterSteps)
	return prev.Add(step.Scale(float64(steps)))
}

func collideAt(p Vec, c Collider, field Field) (Collision, bool) {
	hit, found := Collision{}, false
	if c != nil {
		if s, ok := c.SurfaceAt(p); ok {
			hit, found = HitObject(s), true
		}
	}
	if field.Outside(p) {
		hit, found = OutOfBounds, true
	}
	return hit, found
}
