package simulation

import (
	flockv1 "github.com/lao-tseu-is-alive/go-flock-simulation/gen/flock/v1"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// BuildSnapshot converts the agents of one tick into the message pushed to the UI.
func BuildSnapshot(tick uint64, agents []flock.Agent, bounds flock.Bounds) *flockv1.FlockSnapshot {
	snapshot := &flockv1.FlockSnapshot{
		Tick:        tick,
		Agents:      make([]*flockv1.AgentState, 0, len(agents)),
		WorldWidth:  bounds.Width,
		WorldHeight: bounds.Height,
		Stats:       StatsToProto(flock.ComputeStats(agents)),
	}
	for _, a := range agents {
		snapshot.Agents = append(snapshot.Agents, &flockv1.AgentState{
			Id:             int64(a.ID),
			PositionX:      a.Pos.X,
			PositionY:      a.Pos.Y,
			VelocityX:      a.Vel.X,
			VelocityY:      a.Vel.Y,
			Heading:        a.Heading(),
			AnimationPhase: int32(a.AnimationPhase()),
		})
	}
	return snapshot
}

// AgentsFromSnapshot is the inverse of BuildSnapshot, used to restart a flock
// from a received state.
func AgentsFromSnapshot(s *flockv1.FlockSnapshot) []flock.Agent {
	agents := make([]flock.Agent, 0, len(s.GetAgents()))
	for _, st := range s.GetAgents() {
		agents = append(agents, flock.Agent{
			ID:  int(st.GetId()),
			Pos: geometry.Vector2D{X: st.GetPositionX(), Y: st.GetPositionY()},
			Vel: geometry.Vector2D{X: st.GetVelocityX(), Y: st.GetVelocityY()},
		})
	}
	return agents
}

func StatsToProto(s flock.Stats) *flockv1.FlockStats {
	return &flockv1.FlockStats{
		MeanSpeed:    s.MeanSpeed,
		SpeedStddev:  s.SpeedStdDev,
		Polarization: s.Polarization,
		CentroidX:    s.Centroid.X,
		CentroidY:    s.Centroid.Y,
	}
}

func ParamsToProto(p flock.Params) *flockv1.UpdateParams {
	msg := &flockv1.UpdateParams{
		SeparationWeight: p.SeparationWeight,
		CohesionWeight:   p.CohesionWeight,
		AlignmentWeight:  p.AlignmentWeight,
		VisionRadius:     p.VisionRadius,
	}
	msg.VelocityLimit, msg.VelocityLimited = p.VelocityLimit.Get()
	return msg
}

func ParamsFromProto(msg *flockv1.UpdateParams) flock.Params {
	p := flock.Params{
		SeparationWeight: msg.GetSeparationWeight(),
		CohesionWeight:   msg.GetCohesionWeight(),
		AlignmentWeight:  msg.GetAlignmentWeight(),
		VisionRadius:     msg.GetVisionRadius(),
		VelocityLimit:    flock.NoLimit(),
	}
	if msg.GetVelocityLimited() {
		p.VelocityLimit = flock.LimitOf(msg.GetVelocityLimit())
	}
	return p
}
