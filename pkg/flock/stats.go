package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats is an aggregate view of a snapshot, used for logs and telemetry.
// It is derived data and never feeds back into the simulation.
type Stats struct {
	Population  int
	MeanSpeed   float64
	SpeedStdDev float64
	// Polarization is the norm of the mean unit velocity: 1 when every bird
	// flies the same way, close to 0 for a disordered flock.
	Polarization float64
	Centroid     geometry.Vector2D
}

// ComputeStats summarizes agents. An empty slice gives zero stats.
func ComputeStats(agents []Agent) Stats {
	n := len(agents)
	s := Stats{Population: n}
	if n == 0 {
		return s
	}

	speeds := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ux := make([]float64, n)
	uy := make([]float64, n)
	for i, a := range agents {
		speeds[i] = a.Speed()
		xs[i], ys[i] = a.Pos.X, a.Pos.Y
		u := a.Vel.Normalize()
		ux[i], uy[i] = u.X, u.Y
	}

	s.MeanSpeed, s.SpeedStdDev = stat.PopMeanStdDev(speeds, nil)
	s.Centroid = geometry.Vector2D{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
	s.Polarization = math.Hypot(floats.Sum(ux), floats.Sum(uy)) / float64(n)
	return s
}
