package object

import (
	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/physics"
)

// Preview traces the path a throw toward aim would take, for drawing an aim
// guide. The trace follows the same quarter-step clamping as a real
// projectile but ignores rebounds and jump pads, ending at the first point
// the throw can no longer advance from. At most maxPoints points are
// returned; maxPoints <= 0 uses config.PreviewPoints. Without a world there is
// nothing to trace and Preview returns nil.
func Preview(ctx UpdateContext, aim, origin physics.Vec, maxPoints int) []physics.Vec {
	if ctx.World == nil {
		return nil
	}
	if maxPoints <= 0 {
		maxPoints = config.PreviewPoints
	}

	start := LaunchPoint(aim, origin)
	vel := LaunchVelocity(aim, start)
	forces := ctx.World.Forces()

	points := make([]physics.Vec, 0, 32)
	pos, t := start, 0.0
	for steps := physics.QuarterSteps; steps > 0 && len(points) < maxPoints; t += config.TickDelta {
		next := physics.PositionAt(vel, start, forces, t)
		steps, _ = physics.QuarterStep(pos, next, ctx.World, ctx.Field)
		pos = physics.Advance(pos, next, steps)
		points = append(points, pos)
	}
	return points
}
