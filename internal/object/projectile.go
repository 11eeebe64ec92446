package object

import (
	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/physics"
)

// Projectile is a thrown arrow. Each rebound or bounce restarts its arc as a
// fresh throw from the point of contact.
type Projectile struct {
	Active bool
	Pos    physics.Vec // Current resolved position
	Start  physics.Vec // Where the current arc began
	Prev   physics.Vec // Resolved position one tick ago
	Vel    physics.Vec // Launch velocity of the current arc
	Time   float64     // Seconds since the current arc began
	Age    float64     // Seconds since the projectile was thrown
	Steps  int         // Quarter steps traversed last tick, 0 means stuck
	Last   physics.Collision
}

// NewProjectile creates an active projectile at pos with velocity vel.
func NewProjectile(pos, vel physics.Vec) Projectile {
	return Projectile{
		Active: true,
		Pos:    pos,
		Start:  pos,
		Prev:   pos,
		Vel:    vel,
		Steps:  physics.QuarterSteps,
	}
}

// Update advances the projectile one tick. It reports remove once the
// projectile is no longer in flight.
//
// A projectile that could not move at all last tick (Steps == 0) is
// deactivated at the start of the following tick, so it is still visible for
// the tick in which it stopped.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	if !p.Active {
		return true, nil
	}
	if p.Steps == 0 {
		p.Active = false
		return true, nil
	}
	if ctx.World == nil {
		return false, ErrNoWorld
	}

	next := physics.PositionAt(p.Vel, p.Start, ctx.World.Forces(), p.Time)
	steps, hit := physics.QuarterStep(p.Pos, next, ctx.World, ctx.Field)

	p.Prev, p.Pos = p.Pos, physics.Advance(p.Pos, next, steps)
	p.Steps = steps
	p.Last = hit
	p.Age += config.TickDelta

	surface, ok := hit.Object()
	switch {
	case !ok:
		p.Time += config.TickDelta
	case surface == physics.SurfaceRebound:
		p.rebound()
	default:
		if impulse, ok := JumpImpulse(surface); ok {
			p.bounce(impulse)
		} else {
			p.Time += config.TickDelta
		}
	}
	return false, nil
}

// Angle returns the direction of travel over the last tick in radians.
func (p *Projectile) Angle() float64 {
	return physics.Heading(p.Prev, p.Pos)
}

// rebound reverses and dampens horizontal velocity, restarting the arc.
func (p *Projectile) rebound() {
	p.restart()
	p.Vel.X = -p.Vel.X / config.ReboundDamping
}

// bounce replaces vertical velocity with a jump pad impulse, restarting the arc.
func (p *Projectile) bounce(impulse float64) {
	p.restart()
	p.Vel.Y = impulse
}

func (p *Projectile) restart() {
	p.Start = p.Pos
	p.Prev = p.Pos
	p.Time = 0
	p.Steps = physics.QuarterSteps
}

// JumpImpulse returns the vertical velocity a jump pad surface imparts.
// The type ids are not ordered by strength: 2 is strongest, 3 weakest,
// 4 in between.
func JumpImpulse(s physics.Surface) (float64, bool) {
	switch s {
	case physics.SurfaceJumpStrong:
		return config.JumpStrongImpulse, true
	case physics.SurfaceJumpWeak:
		return config.JumpWeakImpulse, true
	case physics.SurfaceJumpMedium:
		return config.JumpMediumImpulse, true
	default:
		return 0, false
	}
}
