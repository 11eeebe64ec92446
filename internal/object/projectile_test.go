package object

import (
	"errors"
	"math"
	"testing"

	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/level"
	"github.com/tomz197/quiver/internal/physics"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func testLevel(gravity physics.Vec, objs ...level.Object) *level.Level {
	l := level.New(1, physics.V(50, 400), physics.V(560, 200), physics.Vec{}, gravity)
	for _, o := range objs {
		if err := l.AddObject(o); err != nil {
			panic(err)
		}
	}
	return l
}

// tickUntilHit updates p until it reports a collision with an object.
func tickUntilHit(t *testing.T, p *Projectile, ctx UpdateContext, limit int) int {
	t.Helper()
	for i := 0; i < limit; i++ {
		p.Update(ctx)
		if p.Last.Kind == physics.CollisionObject {
			return i
		}
	}
	t.Fatalf("no object collision within %d ticks", limit)
	return -1
}

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(physics.V(10, 20), physics.V(3, -4))
	if !p.Active {
		t.Error("projectile should be active")
	}
	if p.Pos != p.Start || p.Pos != p.Prev {
		t.Error("position, start and previous should coincide")
	}
	if p.Steps != physics.QuarterSteps || p.Time != 0 {
		t.Errorf("expected fresh throw, got steps=%d time=%f", p.Steps, p.Time)
	}
}

func TestFirstTickStaysAtStart(t *testing.T) {
	ctx := NewUpdateContext(testLevel(physics.V(0, 500)))
	p := NewProjectile(physics.V(50, 400), physics.V(50, -200))
	p.Update(ctx)
	if p.Pos != physics.V(50, 400) {
		t.Errorf("expected start position at t=0, got %v", p.Pos)
	}
	if p.Time != config.TickDelta {
		t.Errorf("expected time %f, got %f", config.TickDelta, p.Time)
	}
}

func TestUpdateFollowsArc(t *testing.T) {
	ctx := NewUpdateContext(testLevel(physics.V(0, 500)))
	p := NewProjectile(physics.V(50, 400), physics.V(50, -200))
	p.Update(ctx)
	p.Update(ctx)
	if !near(p.Pos.X, 54.375) || !near(p.Pos.Y, 384.4140625) {
		t.Errorf("expected (54.375, 384.4140625), got %v", p.Pos)
	}
	if p.Prev != physics.V(50, 400) {
		t.Errorf("expected previous position (50, 400), got %v", p.Prev)
	}
	if p.Last.Kind != physics.CollisionNone || p.Steps != physics.QuarterSteps {
		t.Errorf("expected clean tick, got %v steps=%d", p.Last, p.Steps)
	}
	want := math.Atan2(384.4140625-400, 54.375-50)
	if !near(p.Angle(), want) {
		t.Errorf("expected angle %f, got %f", want, p.Angle())
	}
}

func TestReboundLaw(t *testing.T) {
	wall := level.NewObject(110, 250, 40, 100, physics.SurfaceRebound)
	ctx := NewUpdateContext(testLevel(physics.Vec{}, wall))
	p := NewProjectile(physics.V(100, 200), physics.V(37.5, 0))

	tickUntilHit(t, &p, ctx, 20)

	if p.Vel.X != -25 {
		t.Errorf("expected vel.x -25, got %f", p.Vel.X)
	}
	if p.Time != 0 {
		t.Errorf("expected time reset, got %f", p.Time)
	}
	if p.Steps != physics.QuarterSteps {
		t.Errorf("expected steps reset to %d, got %d", physics.QuarterSteps, p.Steps)
	}
	if p.Start != p.Pos || p.Prev != p.Pos {
		t.Error("rebound should restart the arc from the contact point")
	}
	if p.Pos.X >= 110 {
		t.Errorf("projectile should stop short of the wall, got x=%f", p.Pos.X)
	}
}

func TestReboundThenTravelsBack(t *testing.T) {
	wall := level.NewObject(110, 250, 40, 100, physics.SurfaceRebound)
	ctx := NewUpdateContext(testLevel(physics.Vec{}, wall))
	p := NewProjectile(physics.V(100, 200), physics.V(37.5, 0))
	tickUntilHit(t, &p, ctx, 20)
	contact := p.Pos

	for i := 0; i < 3; i++ {
		p.Update(ctx)
	}
	if p.Pos.X >= contact.X {
		t.Errorf("expected projectile to move left of %f, got %f", contact.X, p.Pos.X)
	}
}

func TestJumpPadLaw(t *testing.T) {
	tests := []struct {
		surface physics.Surface
		want    float64
	}{
		{physics.SurfaceJumpStrong, -250},
		{physics.SurfaceJumpWeak, -100},
		{physics.SurfaceJumpMedium, -200},
	}

	for _, tt := range tests {
		t.Run(tt.surface.String(), func(t *testing.T) {
			pad := level.NewObject(50, 230, 100, 20, tt.surface)
			ctx := NewUpdateContext(testLevel(physics.Vec{}, pad))
			p := NewProjectile(physics.V(100, 200), physics.V(12, 100))

			tickUntilHit(t, &p, ctx, 20)

			if p.Vel.Y != tt.want {
				t.Errorf("expected vel.y %f, got %f", tt.want, p.Vel.Y)
			}
			if p.Vel.X != 12 {
				t.Errorf("horizontal velocity should be untouched, got %f", p.Vel.X)
			}
			if p.Time != 0 || p.Steps != physics.QuarterSteps {
				t.Errorf("expected fresh arc, got time=%f steps=%d", p.Time, p.Steps)
			}
		})
	}
}

func TestJumpImpulse(t *testing.T) {
	for _, s := range []physics.Surface{physics.SurfaceBoundary, physics.SurfaceRebound, 5, 99} {
		if _, ok := JumpImpulse(s); ok {
			t.Errorf("%v should not be a jump pad", s)
		}
	}
}

func TestStopSurfaceDeactivatesNextTick(t *testing.T) {
	for _, s := range []physics.Surface{physics.SurfaceBoundary, 5, 42} {
		t.Run(s.String(), func(t *testing.T) {
			// Wall directly in front of the start position.
			wall := level.NewObject(101, 250, 40, 100, s)
			ctx := NewUpdateContext(testLevel(physics.Vec{}, wall))
			p := NewProjectile(physics.V(100, 200), physics.V(100, 0))

			p.Update(ctx) // t=0, no movement
			p.Update(ctx) // first real segment crosses the wall in quarter one
			if p.Steps != 0 {
				t.Fatalf("expected 0 steps, got %d", p.Steps)
			}
			if got, _ := p.Last.Object(); got != s {
				t.Errorf("expected hit on %v, got %v", s, p.Last)
			}
			if !p.Active {
				t.Fatal("projectile should stay active for the tick it stopped in")
			}
			stopped := p.Pos

			if remove, err := p.Update(ctx); !remove || err != nil {
				t.Errorf("Update should report removal, got remove=%v err=%v", remove, err)
			}
			if p.Active {
				t.Error("projectile should be inactive one tick after stopping")
			}
			if p.Pos != stopped {
				t.Errorf("deactivating tick must not move the projectile, got %v", p.Pos)
			}
		})
	}
}

func TestInactiveProjectileIgnoresUpdate(t *testing.T) {
	ctx := NewUpdateContext(testLevel(physics.V(0, 500)))
	p := NewProjectile(physics.V(50, 400), physics.V(50, -200))
	p.Active = false
	if remove, _ := p.Update(ctx); !remove {
		t.Error("inactive projectile should report removal")
	}
	if p.Time != 0 || p.Age != 0 {
		t.Error("inactive projectile state should not change")
	}
}

func TestUpdateWithoutWorld(t *testing.T) {
	p := NewProjectile(physics.V(50, 400), physics.V(50, -200))
	remove, err := p.Update(UpdateContext{Field: physics.DefaultField()})
	if !errors.Is(err, ErrNoWorld) {
		t.Errorf("expected ErrNoWorld, got %v", err)
	}
	if remove || !p.Active || p.Time != 0 {
		t.Error("failed update should leave the projectile untouched")
	}
}

func TestAgeAdvancesAcrossRebounds(t *testing.T) {
	wall := level.NewObject(110, 250, 40, 100, physics.SurfaceRebound)
	ctx := NewUpdateContext(testLevel(physics.Vec{}, wall))
	p := NewProjectile(physics.V(100, 200), physics.V(37.5, 0))
	n := tickUntilHit(t, &p, ctx, 20) + 1
	if !near(p.Age, float64(n)*config.TickDelta) {
		t.Errorf("expected age %f after %d ticks, got %f", float64(n)*config.TickDelta, n, p.Age)
	}
}

// The throw from (50,400) at (50,-200) under gravity 500 is already below the
// top of a wall at x=100 by the time it gets there, so it never touches it
// and leaves through the bottom of the field instead.
func TestScenarioWallAtHundredIsMissed(t *testing.T) {
	wall := level.NewObject(100, 400, 50, 20, physics.SurfaceRebound)
	ctx := NewUpdateContext(testLevel(physics.V(0, 500), wall))
	p := NewProjectile(physics.V(50, 400), physics.V(50, -200))

	firstHit := -1
	for i := 0; i < 15; i++ {
		p.Update(ctx)
		if p.Last.Kind == physics.CollisionObject {
			t.Fatalf("tick %d: unexpected object hit %v at %v", i, p.Last, p.Pos)
		}
		if p.Last.Kind != physics.CollisionNone && firstHit < 0 {
			firstHit = i
			if p.Last != physics.OutOfBounds || p.Steps != 1 {
				t.Errorf("expected out of bounds after 1 step, got %v after %d", p.Last, p.Steps)
			}
		}
	}
	if firstHit != 13 {
		t.Errorf("expected first collision on tick 13, got %d", firstHit)
	}
	if !p.Active || p.Steps != 0 {
		t.Fatalf("expected stuck but active after tick 14, got active=%v steps=%d", p.Active, p.Steps)
	}
	p.Update(ctx)
	if p.Active {
		t.Error("expected deactivation on tick 15")
	}
}

// Same throw against a wall at x=80: the ninth tick crosses its top edge in
// the last quarter.
func TestScenarioWallAtEightyRebounds(t *testing.T) {
	wall := level.NewObject(80, 400, 50, 20, physics.SurfaceRebound)
	ctx := NewUpdateContext(testLevel(physics.V(0, 500), wall))
	p := NewProjectile(physics.V(50, 400), physics.V(50, -200))

	tick := tickUntilHit(t, &p, ctx, 30)
	if tick != 8 {
		t.Errorf("expected hit on tick 8, got %d", tick)
	}
	if p.Last != physics.HitObject(physics.SurfaceRebound) {
		t.Errorf("expected rebound hit, got %v", p.Last)
	}
	if !near(p.Pos.X, 83.90625) || !near(p.Pos.Y, 379.697265625) {
		t.Errorf("expected contact at (83.90625, 379.697265625), got %v", p.Pos)
	}
	if !near(p.Vel.X, -50/1.5) {
		t.Errorf("expected vel.x %f, got %f", -50/1.5, p.Vel.X)
	}
	if p.Time != 0 || p.Steps != physics.QuarterSteps {
		t.Errorf("expected fresh arc, got time=%f steps=%d", p.Time, p.Steps)
	}
}
