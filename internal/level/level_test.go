package level

import (
	"errors"
	"testing"

	"github.com/tomz197/quiver/internal/config"
	"github.com/tomz197/quiver/internal/physics"
)

func newTestLevel() *Level {
	return New(1, physics.V(50, 400), physics.V(500, 300), physics.Vec{}, physics.V(0, 500))
}

func TestObjectBounds(t *testing.T) {
	o := NewObject(100, 400, 50, 20, physics.SurfaceRebound)
	b := o.Bounds()
	if b.Min != physics.V(100, 380) || b.Max != physics.V(150, 400) {
		t.Errorf("expected [100,150]x[380,400], got %v", b)
	}
}

func TestAddObjectCapacity(t *testing.T) {
	l := newTestLevel()
	for i := 0; i < config.LevelObjectCapacity; i++ {
		if err := l.AddObject(NewObject(float64(i*10), 100, 5, 5, 5)); err != nil {
			t.Fatalf("object %d: unexpected error %v", i, err)
		}
	}
	err := l.AddObject(NewObject(0, 0, 1, 1, 1))
	if !errors.Is(err, ErrLevelFull) {
		t.Errorf("expected ErrLevelFull, got %v", err)
	}
	if l.Len() != config.LevelObjectCapacity {
		t.Errorf("expected %d objects, got %d", config.LevelObjectCapacity, l.Len())
	}
}

func TestSurfaceAtFirstDeclaredWins(t *testing.T) {
	l := newTestLevel()
	_ = l.AddObject(NewObject(100, 200, 100, 100, physics.SurfaceJumpWeak))
	_ = l.AddObject(NewObject(150, 250, 100, 100, physics.SurfaceRebound))

	tests := []struct {
		name string
		p    physics.Vec
		want physics.Surface
		ok   bool
	}{
		{"only first", physics.V(110, 150), physics.SurfaceJumpWeak, true},
		{"overlap", physics.V(175, 175), physics.SurfaceJumpWeak, true},
		{"only second", physics.V(240, 240), physics.SurfaceRebound, true},
		{"bottom edge of first", physics.V(120, 200), physics.SurfaceJumpWeak, true},
		{"miss", physics.V(400, 400), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.SurfaceAt(tt.p)
			if got != tt.want || ok != tt.ok {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestLevelDrivesQuarterStep(t *testing.T) {
	l := newTestLevel()
	_ = l.AddObject(NewObject(125, 110, 100, 20, physics.SurfaceJumpMedium))
	steps, hit := physics.QuarterStep(physics.V(100, 100), physics.V(140, 100), l, physics.DefaultField())
	if steps != 2 || hit != physics.HitObject(physics.SurfaceJumpMedium) {
		t.Errorf("expected (2, jump-medium), got (%d, %v)", steps, hit)
	}
}

func TestIsWinBoundary(t *testing.T) {
	l := newTestLevel()
	target := l.Target

	if !l.IsWin(target) {
		t.Error("target corner should be a win")
	}
	if l.IsWin(physics.V(target.X-0.01, target.Y)) {
		t.Error("just left of target should not be a win")
	}
	if !l.IsWin(physics.V(target.X+50, target.Y-50)) {
		t.Error("opposite corner should be a win")
	}
	if l.IsWin(physics.V(target.X+25, target.Y+0.01)) {
		t.Error("just below target should not be a win")
	}
}

func TestObjectsReturnsCopy(t *testing.T) {
	l := newTestLevel()
	_ = l.AddObject(NewObject(10, 10, 5, 5, physics.SurfaceRebound))
	objs := l.Objects()
	objs[0].Type = physics.SurfaceJumpStrong
	if s, _ := l.SurfaceAt(physics.V(12, 8)); s != physics.SurfaceRebound {
		t.Errorf("level objects should be immutable, got %v", s)
	}
}

func TestReset(t *testing.T) {
	l := newTestLevel()
	_ = l.AddObject(NewObject(10, 10, 5, 5, physics.SurfaceRebound))
	l.Reset()
	if l.Len() != 0 {
		t.Errorf("expected empty level, got %d objects", l.Len())
	}
	if _, ok := l.SurfaceAt(physics.V(12, 8)); ok {
		t.Error("reset level should have no colliders")
	}
	if l.Gravity != physics.V(0, 500) {
		t.Error("reset should keep environment")
	}
}

func TestForces(t *testing.T) {
	l := New(2, physics.Vec{}, physics.Vec{}, physics.V(1, 2), physics.V(3, 4))
	f := l.Forces()
	if f.Wind != physics.V(1, 2) || f.Gravity != physics.V(3, 4) {
		t.Errorf("unexpected forces %+v", f)
	}
}
