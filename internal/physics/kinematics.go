package physics

// Forces are the constant environmental accelerations of a level.
type Forces struct {
	Wind    Vec
	Gravity Vec
}

// PositionAt evaluates a throw at time t seconds after it left start with
// velocity v.
//
// Horizontal wind and gravity act linearly on x while vertical gravity is
// quadratic on y; vertical wind opposes v.Y. This asymmetry is what level
// data is tuned against.
func PositionAt(v, start Vec, f Forces, t float64) Vec {
	return Vec{
		X: start.X + (v.X+f.Wind.X+f.Gravity.X)*t,
		Y: start.Y + (v.Y-f.Wind.Y)*t + (f.Gravity.Y*t*t)/2,
	}
}
