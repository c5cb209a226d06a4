package simulation

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	flockv1 "github.com/lao-tseu-is-alive/go-flock-simulation/gen/flock/v1"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func testConfig(population int) *Config {
	cfg := DefaultConfig()
	seed := uint64(99)
	cfg.Seed = &seed
	cfg.Population = population
	cfg.Workers = 2
	return cfg
}

func newTestSystem(t *testing.T) actor.ActorSystem {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockTest-"+uuid.NewString(), actor.WithLogger(golog.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })
	return system
}

func TestNewWorldActor(t *testing.T) {
	cfg := testConfig(120)
	cfg.VisionRadius = 80
	w := NewWorldActor(nil, cfg)

	assert.Equal(t, 120, w.flock.Len())
	assert.Equal(t, flock.Bounds{Width: 800, Height: 600}, w.flock.Bounds())
	assert.Equal(t, cfg.Params(), w.flock.Params())

	// same seed, same sky
	assert.Equal(t, w.flock.Agents(), NewWorldActor(nil, cfg).flock.Agents())
}

func TestWorldActor_step(t *testing.T) {
	w := NewWorldActor(nil, testConfig(10))

	w.step(&flockv1.Tick{})
	assert.Equal(t, uint64(1), w.flock.TickCount())

	w.step(&flockv1.Tick{Steps: 5})
	assert.Equal(t, uint64(6), w.flock.TickCount())
	assert.Equal(t, 6, w.ticksSinceLog)
}

func TestWorldActor_updateParams(t *testing.T) {
	w := NewWorldActor(nil, testConfig(10))
	w.updateParams(&flockv1.UpdateParams{
		SeparationWeight: 3,
		CohesionWeight:   0.05,
		AlignmentWeight:  0.1,
		VisionRadius:     40,
	})

	p := w.flock.Params()
	assert.Equal(t, 3.0, p.SeparationWeight)
	assert.Equal(t, 0.05, p.CohesionWeight)
	assert.Equal(t, 0.1, p.AlignmentWeight)
	assert.Equal(t, 40.0, p.VisionRadius)
	assert.False(t, p.VelocityLimit.IsSet())
}

func TestWorldActor_resize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		ok            bool
	}{
		{"grow", 1920, 1080, true},
		{"shrink", 320, 240, true},
		{"zero width", 0, 600, false},
		{"negative height", 800, -1, false},
		{"NaN", math.NaN(), 600, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorldActor(nil, testConfig(1))
			before := w.flock.Bounds()

			ok := w.resize(&flockv1.Resize{Width: tt.width, Height: tt.height})
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, flock.Bounds{Width: tt.width, Height: tt.height}, w.flock.Bounds())
			} else {
				assert.Equal(t, before, w.flock.Bounds())
			}
		})
	}
}

func TestWorldActor_pushSnapshotNeverBlocks(t *testing.T) {
	ch := make(chan *flockv1.FlockSnapshot, 1)
	w := NewWorldActor(ch, testConfig(5))

	w.pushSnapshot()
	w.flock.Tick()
	w.pushSnapshot() // UI busy: dropped

	require.Len(t, ch, 1)
	got := <-ch
	assert.Equal(t, uint64(0), got.GetTick())
	assert.Len(t, got.GetAgents(), 5)

	assert.NotPanics(t, NewWorldActor(nil, testConfig(5)).pushSnapshot)
}

func TestWorldActor_Mailbox(t *testing.T) {
	ctx := context.Background()
	system := newTestSystem(t)

	ch := make(chan *flockv1.FlockSnapshot, 10)
	pid, err := system.Spawn(ctx, "world", NewWorldActor(ch, testConfig(50)))
	require.NoError(t, err)

	require.NoError(t, actor.Tell(ctx, pid, ParamsToProto(flock.Params{VisionRadius: 0, VelocityLimit: flock.LimitOf(2)})))
	require.NoError(t, actor.Tell(ctx, pid, &flockv1.Resize{Width: 1024, Height: 768}))
	require.NoError(t, actor.Tell(ctx, pid, &flockv1.Tick{Steps: 3}))

	reply, err := actor.Ask(ctx, pid, &flockv1.GetSnapshot{}, 5*time.Second)
	require.NoError(t, err)
	snapshot, ok := reply.(*flockv1.FlockSnapshot)
	require.True(t, ok)

	assert.Equal(t, uint64(3), snapshot.GetTick())
	assert.Equal(t, 1024.0, snapshot.GetWorldWidth())
	assert.Equal(t, 768.0, snapshot.GetWorldHeight())
	assert.Len(t, snapshot.GetAgents(), 50)

	select {
	case pushed := <-ch:
		assert.Equal(t, uint64(3), pushed.GetTick())
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot pushed after a tick")
	}
}

func TestRunHeadless(t *testing.T) {
	ctx := context.Background()
	system := newTestSystem(t)
	cfg := testConfig(80)

	first, err := RunHeadless(ctx, system, "headless-1", cfg, 120)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), first.GetTick())
	assert.Len(t, first.GetAgents(), 80)

	cfg.Workers = 1
	second, err := RunHeadless(ctx, system, "headless-2", cfg, 120)
	require.NoError(t, err)
	assert.Equal(t, AgentsFromSnapshot(first), AgentsFromSnapshot(second))

	zero, err := RunHeadless(ctx, system, "headless-3", cfg, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), zero.GetTick())
}
