package simulation

import (
	"context"
	"fmt"
	"time"

	flockv1 "github.com/lao-tseu-is-alive/go-flock-simulation/gen/flock/v1"
	"github.com/tochemey/goakt/v3/actor"
)

const (
	headlessBatch = 50
	askTimeout    = 30 * time.Second
)

// RunHeadless spawns a world without any renderer, advances it by ticks
// steps and returns the final state. Progress is logged once per batch at
// debug level.
func RunHeadless(ctx context.Context, system actor.ActorSystem, name string, cfg *Config, ticks int) (*flockv1.FlockSnapshot, error) {
	pid, err := system.Spawn(ctx, name, NewWorldActor(nil, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}
	defer func() { _ = pid.Shutdown(ctx) }()

	logger := system.Logger()
	snapshot, err := askSnapshot(ctx, pid)
	if err != nil {
		return nil, err
	}
	for remaining := ticks; remaining > 0; remaining -= headlessBatch {
		steps := min(remaining, headlessBatch)
		if err := actor.Tell(ctx, pid, &flockv1.Tick{Steps: uint32(steps)}); err != nil {
			return nil, fmt.Errorf("failed to send tick: %w", err)
		}
		if snapshot, err = askSnapshot(ctx, pid); err != nil {
			return nil, err
		}
		s := snapshot.GetStats()
		logger.Debugf("tick %d: speed %.2f, polarization %.2f", snapshot.GetTick(), s.GetMeanSpeed(), s.GetPolarization())
	}
	return snapshot, nil
}

func askSnapshot(ctx context.Context, pid *actor.PID) (*flockv1.FlockSnapshot, error) {
	reply, err := actor.Ask(ctx, pid, &flockv1.GetSnapshot{}, askTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	snapshot, ok := reply.(*flockv1.FlockSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snapshot, nil
}
