package level

import (
	"errors"
	"fmt"

	"github.com/tomz197/quiver/internal/physics"
)

// ErrNoLevels is returned by a Catalog with nothing in it.
var ErrNoLevels = errors.New("catalog has no levels")

// Source supplies levels by number, starting at 1.
type Source interface {
	Load(number int) (*Level, error)
}

// Blueprint describes a level before it is built.
type Blueprint struct {
	Start   physics.Vec
	Target  physics.Vec
	Wind    physics.Vec
	Gravity physics.Vec
	Objects []Object
}

// Build creates a fresh Level numbered n from the blueprint.
func (b Blueprint) Build(n int) (*Level, error) {
	l := New(n, b.Start, b.Target, b.Wind, b.Gravity)
	for _, o := range b.Objects {
		if err := l.AddObject(o); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Catalog is an ordered list of blueprints; level n is Catalog[n-1].
type Catalog []Blueprint

// Load builds level n. Numbers outside the catalog fall back to level 1.
func (c Catalog) Load(n int) (*Level, error) {
	if len(c) == 0 {
		return nil, ErrNoLevels
	}
	if n < 1 || n > len(c) {
		n = 1
	}
	l, err := c[n-1].Build(n)
	if err != nil {
		return nil, fmt.Errorf("load level %d: %w", n, err)
	}
	return l, nil
}

// Len returns the number of levels in the catalog.
func (c Catalog) Len() int {
	return len(c)
}

// Counter is implemented by sources that know how many levels they hold.
type Counter interface {
	Len() int
}

var (
	_ Source  = Catalog(nil)
	_ Counter = Catalog(nil)
)

var (
	gravity = physics.V(0, 150)
	floor   = NewObject(0, 480, 640, 32, 5)
)

// Builtin returns the stock campaign. Every level can be cleared with a
// single throw aimed somewhere inside the play field.
func Builtin() Catalog {
	return Catalog{
		{ // Open field
			Start:   physics.V(80, 430),
			Target:  physics.V(420, 448),
			Gravity: gravity,
			Objects: []Object{floor},
		},
		{ // A rebound wall between player and target
			Start:   physics.V(80, 430),
			Target:  physics.V(480, 448),
			Gravity: gravity,
			Objects: []Object{
				floor,
				NewObject(300, 448, 32, 128, physics.SurfaceRebound),
			},
		},
		{ // Strong pad under a low ceiling, target on a shelf
			Start:   physics.V(64, 430),
			Target:  physics.V(560, 240),
			Gravity: gravity,
			Objects: []Object{
				floor,
				NewObject(208, 448, 128, 16, physics.SurfaceJumpStrong),
				NewObject(0, 64, 448, 32, 5),
				NewObject(528, 240, 112, 16, 5),
			},
		},
		{ // Headwind
			Start:   physics.V(80, 430),
			Target:  physics.V(460, 448),
			Wind:    physics.V(-20, 0),
			Gravity: gravity,
			Objects: []Object{
				floor,
				NewObject(260, 448, 32, 96, 5),
			},
		},
		{ // Weak and medium pads, rebound backstop
			Start:   physics.V(64, 430),
			Target:  physics.V(400, 300),
			Gravity: gravity,
			Objects: []Object{
				floor,
				NewObject(176, 448, 64, 16, physics.SurfaceJumpWeak),
				NewObject(300, 448, 64, 16, physics.SurfaceJumpMedium),
				NewObject(520, 448, 32, 320, physics.SurfaceRebound),
			},
		},
		{ // Updraft over a wall
			Start:   physics.V(80, 430),
			Target:  physics.V(480, 448),
			Wind:    physics.V(0, 30),
			Gravity: physics.V(0, 180),
			Objects: []Object{
				floor,
				NewObject(288, 448, 32, 160, 5),
				NewObject(400, 96, 96, 32, physics.SurfaceRebound),
			},
		},
		{ // Crosswind with a shelf
			Start:   physics.V(560, 430),
			Target:  physics.V(120, 448),
			Wind:    physics.V(15, 0),
			Gravity: gravity,
			Objects: []Object{
				floor,
				NewObject(200, 300, 240, 32, 5),
				NewObject(460, 448, 64, 16, physics.SurfaceJumpMedium),
			},
		},
		{ // Low gravity gauntlet
			Start:   physics.V(64, 430),
			Target:  physics.V(520, 200),
			Wind:    physics.V(-5, 10),
			Gravity: physics.V(0, 100),
			Objects: []Object{
				floor,
				NewObject(200, 448, 32, 120, physics.SurfaceRebound),
				NewObject(300, 448, 64, 16, physics.SurfaceJumpStrong),
				NewObject(400, 300, 32, 140, 5),
				NewObject(480, 200, 160, 16, 5),
				NewObject(384, 64, 128, 32, physics.SurfaceRebound),
			},
		},
	}
}
