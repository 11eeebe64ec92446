package object

import "github.com/tomz197/quiver/internal/physics"

// AimSearch bounds a FindAim search.
type AimSearch struct {
	Step     float64 // Grid spacing in field units, defaults to 8
	MaxTicks int     // Ticks simulated per candidate throw, defaults to 600
}

const (
	defaultAimStep     = 8
	defaultAimMaxTicks = 600
)

// FindAim searches aim points on a grid over the play field for a single
// throw from origin that reaches goal. Candidates are simulated with the same
// Update a live projectile uses, rebounds and jump pads included, so a throw
// at the returned aim behaves identically in play. The grid is scanned top
// row first, left to right.
func FindAim(ctx UpdateContext, origin physics.Vec, goal func(physics.Vec) bool, opts AimSearch) (physics.Vec, bool, error) {
	if opts.Step <= 0 {
		opts.Step = defaultAimStep
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = defaultAimMaxTicks
	}

	for y := 0.0; y <= ctx.Field.Height; y += opts.Step {
		for x := 0.0; x <= ctx.Field.Width; x += opts.Step {
			aim := physics.V(x, y)
			hit, err := throwReaches(ctx, aim, origin, goal, opts.MaxTicks)
			if err != nil {
				return physics.Vec{}, false, err
			}
			if hit {
				return aim, true, nil
			}
		}
	}
	return physics.Vec{}, false, nil
}

func throwReaches(ctx UpdateContext, aim, origin physics.Vec, goal func(physics.Vec) bool, maxTicks int) (bool, error) {
	launch := LaunchPoint(aim, origin)
	p := NewProjectile(launch, LaunchVelocity(aim, launch))
	for i := 0; i < maxTicks; i++ {
		remove, err := p.Update(ctx)
		if err != nil {
			return false, err
		}
		if remove {
			return false, nil
		}
		if goal(p.Pos) {
			return true, nil
		}
	}
	return false, nil
}
