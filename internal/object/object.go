// Package object implements thrown projectiles and the fixed pool that owns them.
package object

import (
	"errors"

	"github.com/tomz197/quiver/internal/physics"
)

// ErrNoWorld is returned when a projectile is updated without a world to fly through.
var ErrNoWorld = errors.New("update context has no world")

// World is what a projectile is simulated against: colliders plus the
// environmental forces. *level.Level implements it.
type World interface {
	physics.Collider
	Forces() physics.Forces
}

// UpdateContext provides all the information a projectile needs during update.
type UpdateContext struct {
	World World
	Field physics.Field
}

// NewUpdateContext returns a context for w on the default play field.
func NewUpdateContext(w World) UpdateContext {
	return UpdateContext{
		World: w,
		Field: physics.DefaultField(),
	}
}
