// Package flock implements the boids flocking engine.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
//
// A Flock owns a fixed population of agents and advances it one unit step per
// Tick. Every agent's next state is computed from the previous snapshot only,
// so a tick gives the same result whatever the number of workers.
package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

const (
	// phaseDecay is the k constant of the animation phase curve.
	phaseDecay = 0.1
	// MinPhase and MaxPhase bound the value returned by AnimationPhase.
	MinPhase = 1
	MaxPhase = 10
)

// Agent is one bird of the flock.
// The ID is assigned at creation and never changes.
type Agent struct {
	ID  int
	Pos geometry.Vector2D
	Vel geometry.Vector2D
}

// Position returns the agent position.
func (a Agent) Position() geometry.Vector2D {
	return a.Pos
}

// Heading returns atan2(vy, vx), 0 for a motionless agent.
func (a Agent) Heading() float64 {
	return a.Vel.Angle()
}

// Speed returns the euclidean norm of the velocity.
func (a Agent) Speed() float64 {
	return a.Vel.Len()
}

// AnimationPhase returns the frame hold of the agent, see AnimationPhase.
func (a Agent) AnimationPhase() int {
	return AnimationPhase(a.Speed())
}

// LimitVelocity clamps each velocity component to [-max, max].
// An unset Limit leaves the velocity untouched.
func (a *Agent) LimitVelocity(l Limit) {
	if bound, ok := l.Get(); ok {
		a.Vel = a.Vel.ClampComponents(bound)
	}
}

// ApplyForces adds every force to the velocity. One tick is one unit of time,
// so forces are not scaled.
func (a *Agent) ApplyForces(forces ...geometry.Vector2D) {
	a.Vel = a.Vel.Add(geometry.Sum(forces...))
}

// Integrate moves the agent by its velocity.
func (a *Agent) Integrate() {
	a.Pos = a.Pos.Add(a.Vel)
}

// AnimationPhase maps a speed to the number of ticks each animation frame is
// held, in [MinPhase, MaxPhase]. Fast birds flap faster: the hold decays
// exponentially once the speed goes over 1.
func AnimationPhase(speed float64) int {
	// !(speed > 1) also catches NaN
	if !(speed > 1) {
		speed = 1
	}
	phase := math.Ceil(9.5*math.Exp(-phaseDecay*(speed-1)) + 0.5)
	switch {
	case phase < MinPhase:
		return MinPhase
	case phase > MaxPhase:
		return MaxPhase
	}
	return int(phase)
}

// FrameIndex selects which of the frames to show at the given tick for an
// agent holding each frame for phase ticks.
func FrameIndex(tick uint64, phase, frames int) int {
	if phase < MinPhase {
		phase = MinPhase
	}
	if frames <= 0 {
		return 0
	}
	cycle := uint64(frames * phase)
	return int(tick%cycle) / phase
}

// Limit is an optional non-negative bound. The zero value is unset.
type Limit struct {
	value float64
	set   bool
}

// LimitOf returns a Limit set to v.
func LimitOf(v float64) Limit {
	return Limit{value: v, set: true}
}

// NoLimit returns an unset Limit.
func NoLimit() Limit {
	return Limit{}
}

// Get returns the bound and whether it is set.
func (l Limit) Get() (float64, bool) {
	return l.value, l.set
}

// IsSet reports whether the limit applies.
func (l Limit) IsSet() bool {
	return l.set
}
