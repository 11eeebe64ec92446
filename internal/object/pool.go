package object

import (
	"fmt"

	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/physics"
)

// Pool is a fixed ring of projectile slots. Spawning writes to the slot under
// the cursor whether or not it is in flight, so once more than
// config.PoolCapacity projectiles have been thrown the oldest is silently
// replaced. The pool never grows.
type Pool struct {
	slots  [config.PoolCapacity]Projectile
	cursor int
}

// NewPool creates a pool with every slot inactive.
func NewPool() *Pool {
	return &Pool{}
}

// Spawn throws a projectile from the player at origin toward aim and
// returns the slot it was written to.
func (p *Pool) Spawn(aim, origin physics.Vec) int {
	launch := LaunchPoint(aim, origin)
	slot := p.cursor
	p.slots[slot] = NewProjectile(launch, LaunchVelocity(aim, launch))
	p.cursor = (p.cursor + 1) % len(p.slots)
	return slot
}

// TickAll advances every active projectile by one tick and returns how many
// are still active.
func (p *Pool) TickAll(ctx UpdateContext) (int, error) {
	active := 0
	for i := range p.slots {
		if !p.slots[i].Active {
			continue
		}
		remove, err := p.slots[i].Update(ctx)
		if err != nil {
			return active, fmt.Errorf("slot %d: %w", i, err)
		}
		if !remove {
			active++
		}
	}
	return active, nil
}

// Reset deactivates every slot and rewinds the cursor. Used on level change.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
	p.cursor = 0
}

// Slot returns the projectile in slot i.
func (p *Pool) Slot(i int) *Projectile {
	return &p.slots[i]
}

// Len returns the pool capacity.
func (p *Pool) Len() int {
	return len(p.slots)
}

// Cursor returns the slot the next Spawn will write to.
func (p *Pool) Cursor() int {
	return p.cursor
}

// Each calls fn for every active projectile in slot order.
func (p *Pool) Each(fn func(slot int, pr *Projectile)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(i, &p.slots[i])
		}
	}
}

// Any reports whether some active projectile satisfies pred.
func (p *Pool) Any(pred func(pr *Projectile) bool) bool {
	for i := range p.slots {
		if p.slots[i].Active && pred(&p.slots[i]) {
			return true
		}
	}
	return false
}
