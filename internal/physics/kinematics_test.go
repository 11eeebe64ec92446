package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestPositionAtZeroTimeIsStart(t *testing.T) {
	start := V(123.5, 321.25)
	f := Forces{Wind: V(7, -3), Gravity: V(2, 500)}
	got := PositionAt(V(80, -90), start, f, 0)
	if got != start {
		t.Errorf("expected exactly %v at t=0, got %v", start, got)
	}
}

func TestPositionAtGravityArc(t *testing.T) {
	f := Forces{Gravity: V(0, 500)}
	got := PositionAt(V(50, -200), V(50, 400), f, 0.0875)
	if !near(got.X, 54.375) || !near(got.Y, 384.4140625) {
		t.Errorf("expected (54.375, 384.4140625), got %v", got)
	}
}

func TestPositionAtWindAndHorizontalGravityAreLinear(t *testing.T) {
	f := Forces{Wind: V(10, 20), Gravity: V(5, 0)}
	v := V(30, -40)
	start := V(100, 200)

	for _, tm := range []float64{0.5, 1, 2} {
		got := PositionAt(v, start, f, tm)
		wantX := 100 + (30+10+5)*tm
		wantY := 200 + (-40-20)*tm
		if !near(got.X, wantX) || !near(got.Y, wantY) {
			t.Errorf("t=%v: expected (%v, %v), got %v", tm, wantX, wantY, got)
		}
	}
}

func TestPositionAtVerticalGravityIsQuadratic(t *testing.T) {
	f := Forces{Gravity: V(0, 100)}
	p1 := PositionAt(Vec{}, V(0, 0), f, 1)
	p2 := PositionAt(Vec{}, V(0, 0), f, 2)
	if !near(p1.Y, 50) || !near(p2.Y, 200) {
		t.Errorf("expected y 50 then 200, got %v then %v", p1.Y, p2.Y)
	}
}
