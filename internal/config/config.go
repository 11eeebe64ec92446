// Package config centralizes all tunable game parameters.
package config

import "time"

// Play field - the logical area a projectile may occupy.
// Anything on or past an edge counts as leaving the level.
const (
	FieldWidth  = 640
	FieldHeight = 480
	TileSize    = 32 // Level geometry is authored on a 20x15 grid of tiles
)

// Simulation timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	TickDelta       = 0.0875 // Throw time added per tick, tuned for a smooth arc at 60 FPS
)

// Throwing
const (
	ThrowFactor  = 2.0  // Divides the mouse-to-launch displacement into a velocity
	FacingOffset = 50.0 // Launch point offset from the player, both axes
	FacingBias   = 13.0 // Mouse x beyond start.x+FacingBias means facing right
)

// Capacities
const (
	PoolCapacity        = 32 // Projectile slots, oldest is overwritten
	LevelObjectCapacity = 32 // Colliders per level
	PreviewPoints       = 256
)

// Surface responses
const (
	ReboundDamping    = 1.5
	JumpStrongImpulse = -250.0
	JumpWeakImpulse   = -100.0
	JumpMediumImpulse = -200.0
)

// Scoring and progression
const (
	TargetSize = 50    // Side of the square win region
	MaxScore   = 10000 // Score for clearing a level with a single throw
	LastLevel  = 8
)
