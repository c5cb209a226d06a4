package simulation

import (
	"fmt"
	"time"

	flockv1 "github.com/lao-tseu-is-alive/go-flock-simulation/gen/flock/v1"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor owns the flock. Every message touching the simulation goes
// through its mailbox, so ticks and parameter changes never interleave.
type WorldActor struct {
	flock *flock.Flock
	cfg   *Config
	// Communication with UI
	snapshotCh chan<- *flockv1.FlockSnapshot
	// --- Benchmark Stats ---
	ticksSinceLog int
	lastLogTime   time.Time
}

// NewWorldActor creates the world logic unit. snapshotCh may be nil when
// nobody renders the flock.
func NewWorldActor(snapshotCh chan<- *flockv1.FlockSnapshot, cfg *Config) *WorldActor {
	opts := []flock.Option{
		flock.WithParams(cfg.Params()),
		flock.WithWorkers(cfg.WorkerCount()),
	}
	if cfg.Seed != nil {
		opts = append(opts, flock.WithSeed(*cfg.Seed))
	}
	return &WorldActor{
		flock:       flock.New(cfg.Population, cfg.Limit(), cfg.WorldWidth, cfg.WorldHeight, opts...),
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is releasing %d birds in a %.0fx%.0f sky",
		w.flock.Len(), w.cfg.WorldWidth, w.cfg.WorldHeight)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started: %s", describeParams(w.flock.Params()))

	// The main simulation step (driven by the game loop or the headless runner)
	case *flockv1.Tick:
		w.step(msg)
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	// Dynamic slider updates from the UI
	case *flockv1.UpdateParams:
		w.updateParams(msg)

	case *flockv1.Resize:
		if !w.resize(msg) {
			ctx.Logger().Warnf("ignoring resize to %.0fx%.0f", msg.GetWidth(), msg.GetHeight())
		}

	case *flockv1.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World is shutdown after %d ticks", w.flock.TickCount())
	return nil
}

// step advances the flock; a Tick without steps counts as one.
func (w *WorldActor) step(msg *flockv1.Tick) {
	steps := max(int(msg.GetSteps()), 1)
	for range steps {
		w.flock.Tick()
	}
	w.ticksSinceLog += steps
}

func (w *WorldActor) updateParams(msg *flockv1.UpdateParams) {
	w.flock.SetParams(ParamsFromProto(msg))
}

// resize reports false for a size the boundary rule cannot work with.
func (w *WorldActor) resize(msg *flockv1.Resize) bool {
	width, height := msg.GetWidth(), msg.GetHeight()
	if !(width > 0 && height > 0) {
		return false
	}
	w.flock.SetWorldBounds(width, height)
	return true
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		s := w.flock.Stats()
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Birds: %d | Speed: %.2f ± %.2f | Polarization: %.2f",
			w.ticksSinceLog, s.Population, s.MeanSpeed, s.SpeedStdDev, s.Polarization)
		w.ticksSinceLog = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *flockv1.FlockSnapshot {
	return BuildSnapshot(w.flock.TickCount(), w.flock.Agents(), w.flock.Bounds())
}

func describeParams(p flock.Params) string {
	limit := "none"
	if v, ok := p.VelocityLimit.Get(); ok {
		limit = fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("separation=%.2f cohesion=%.4f alignment=%.3f vision=%.0f vlim=%s",
		p.SeparationWeight, p.CohesionWeight, p.AlignmentWeight, p.VisionRadius, limit)
}
