package object

import (
	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/physics"
)

// LaunchPoint returns where a throw leaves the player standing at origin.
// The player faces the aim point: the launch point sits up and to the left
// or right of origin accordingly.
func LaunchPoint(aim, origin physics.Vec) physics.Vec {
	if aim.X < origin.X+config.FacingBias {
		return origin.Add(physics.V(-config.FacingOffset, -config.FacingOffset))
	}
	return origin.Add(physics.V(config.FacingOffset, -config.FacingOffset))
}

// LaunchVelocity converts the launch-to-aim displacement into a throw velocity.
func LaunchVelocity(aim, launch physics.Vec) physics.Vec {
	return aim.Sub(launch).Div(config.ThrowFactor)
}
