package flock

const (
	// BorderMargin is the distance from each edge where boundary repulsion starts.
	BorderMargin = 50.0
	// BorderStiffness scales the push back, proportional to the penetration depth.
	BorderStiffness = 0.1
)

// Params are the tunable weights of the flocking rules.
// No validation happens: a negative weight simply reverses its rule.
type Params struct {
	SeparationWeight float64
	CohesionWeight   float64
	// AlignmentWeight drives both the heading alignment and the velocity matching.
	AlignmentWeight float64
	VisionRadius    float64
	VelocityLimit   Limit
}

// DefaultParams returns the parameters a new Flock starts with.
func DefaultParams() Params {
	return Params{
		SeparationWeight: 1.0,
		CohesionWeight:   0.01,
		AlignmentWeight:  0.02,
		VisionRadius:     125.0,
		VelocityLimit:    LimitOf(10.0),
	}
}

// Bounds is the size of the world used by the boundary repulsion.
type Bounds struct {
	Width  float64
	Height float64
}
