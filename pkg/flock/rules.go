package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// neighborhood accumulates what one agent perceives of the others.
type neighborhood struct {
	count       int
	positionSum geometry.Vector2D
	separation  geometry.Vector2D
	headingSum  float64
	velocitySum geometry.Vector2D
}

// steering holds the four rule contributions, in the order they are applied.
type steering struct {
	cohesion   geometry.Vector2D
	separation geometry.Vector2D
	alignment  geometry.Vector2D
	match      geometry.Vector2D
}

func (s steering) forces() []geometry.Vector2D {
	return []geometry.Vector2D{s.cohesion, s.separation, s.alignment, s.match}
}

// perceive scans every other agent of the snapshot (brute force, O(n)) and
// accumulates the ones within the vision radius.
func perceive(snapshot []Agent, i int, p Params) neighborhood {
	var n neighborhood
	// !(r > 0) also rejects NaN
	if !(p.VisionRadius > 0) {
		return n
	}
	me := snapshot[i]

	for j := range snapshot {
		if j == i {
			continue
		}
		other := snapshot[j]

		away := me.Pos.Sub(other.Pos)
		if away.Len() > p.VisionRadius {
			continue
		}
		n.count++

		// cohesion
		n.positionSum = n.positionSum.Add(other.Pos)

		// separation: weight * d / |d|², a 1/|d| falloff.
		// Two agents on the same spot do not push each other.
		if distSq := away.LenSqr(); distSq > 0 {
			n.separation = n.separation.Add(away.Mul(p.SeparationWeight / distSq))
		}

		// alignment and match
		n.headingSum += other.Heading()
		n.velocitySum = n.velocitySum.Add(other.Vel)
	}
	return n
}

// steer turns a non-empty neighborhood into the four rule forces.
func (n neighborhood) steer(me Agent, p Params) steering {
	count := float64(n.count)

	centroid := n.positionSum.Div(count)
	velocityAvg := n.velocitySum.Div(count)
	// plain mean of the angles, not a circular mean
	headingAvg := n.headingSum / count
	sin, cos := math.Sincos(headingAvg)

	return steering{
		cohesion:   centroid.Sub(me.Pos).Mul(p.CohesionWeight),
		separation: n.separation,
		alignment:  geometry.Vector2D{X: cos, Y: sin}.Mul(p.AlignmentWeight),
		match:      velocityAvg.Sub(me.Vel).Mul(p.AlignmentWeight),
	}
}

// boundaryForce pushes an agent back toward the interior when it is within
// BorderMargin of an edge, proportionally to how deep it went.
func boundaryForce(pos geometry.Vector2D, b Bounds) geometry.Vector2D {
	var f geometry.Vector2D
	if pos.X <= BorderMargin {
		f.X += (BorderMargin - pos.X) * BorderStiffness
	}
	if pos.X >= b.Width-BorderMargin {
		f.X -= (pos.X - b.Width + BorderMargin) * BorderStiffness
	}
	if pos.Y <= BorderMargin {
		f.Y += (BorderMargin - pos.Y) * BorderStiffness
	}
	if pos.Y >= b.Height-BorderMargin {
		f.Y -= (pos.Y - b.Height + BorderMargin) * BorderStiffness
	}
	return f
}

// nextAgent computes the state of snapshot[i] after one tick.
// It only reads the snapshot, so it is safe to call concurrently for
// different i.
func nextAgent(snapshot []Agent, i int, p Params, b Bounds) Agent {
	me := snapshot[i]
	next := me

	// the boundary goes straight into the velocity, neighbors or not
	next.Vel = next.Vel.Add(boundaryForce(me.Pos, b))

	n := perceive(snapshot, i, p)
	next.LimitVelocity(p.VelocityLimit)
	if n.count > 0 {
		next.ApplyForces(n.steer(me, p).forces()...)
	}
	next.Integrate()
	return next
}
