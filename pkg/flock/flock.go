package flock

import (
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice of agents worth handing to a worker.
const minChunk = 64

// Flock owns the agents, the tunable parameters and the world bounds.
//
// Parameters and bounds may be changed from another goroutine at any time:
// a Tick reads them once, under a single lock acquisition, and uses that copy
// for the whole pass.
type Flock struct {
	mu      sync.RWMutex
	params  Params
	bounds  Bounds
	agents  []Agent // current snapshot, never written in place
	spare   []Agent // output buffer of the next tick
	ticks   uint64
	workers int

	// step serializes ticks
	step sync.Mutex

	seed   uint64
	seeded bool
}

// Option configures a Flock at construction.
type Option func(*Flock)

// WithSeed makes the initial placement reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Flock) {
		f.seed = seed
		f.seeded = true
	}
}

// WithWorkers sets how many goroutines share a tick. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(f *Flock) {
		f.workers = max(n, 1)
	}
}

// WithParams sets the initial rule weights and vision radius.
// The velocity limit given to New always wins over p.VelocityLimit.
func WithParams(p Params) Option {
	return func(f *Flock) {
		f.params = p
	}
}

// New creates a flock of populationSize agents placed uniformly at random in
// the world, all motionless.
func New(populationSize int, velocityLimit Limit, width, height float64, opts ...Option) *Flock {
	f := newFlock(velocityLimit, width, height, opts)

	var rng *rand.Rand
	if f.seeded {
		rng = rand.New(rand.NewPCG(f.seed, f.seed^0x9e3779b97f4a7c15))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	populationSize = max(populationSize, 0)
	f.agents = make([]Agent, populationSize)
	for id := range f.agents {
		f.agents[id] = Agent{
			ID:  id,
			Pos: geometry.Vector2D{X: rng.Float64() * width, Y: rng.Float64() * height},
		}
	}
	f.spare = make([]Agent, populationSize)
	return f
}

// FromAgents creates a flock starting from an explicit snapshot. Agents are
// copied and their IDs re-assigned by index.
func FromAgents(agents []Agent, velocityLimit Limit, width, height float64, opts ...Option) *Flock {
	f := newFlock(velocityLimit, width, height, opts)
	f.agents = make([]Agent, len(agents))
	for id, a := range agents {
		a.ID = id
		f.agents[id] = a
	}
	f.spare = make([]Agent, len(agents))
	return f
}

func newFlock(velocityLimit Limit, width, height float64, opts []Option) *Flock {
	f := &Flock{
		params:  DefaultParams(),
		bounds:  Bounds{Width: width, Height: height},
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.params.VelocityLimit = velocityLimit
	return f
}

// Tick advances the simulation by one unit step.
func (f *Flock) Tick() {
	f.step.Lock()
	defer f.step.Unlock()

	f.mu.RLock()
	params := f.params
	bounds := f.bounds
	current := f.agents
	f.mu.RUnlock()

	next := f.spare
	f.compute(current, next, params, bounds)

	f.mu.Lock()
	f.agents, f.spare = next, current
	f.ticks++
	f.mu.Unlock()
}

// compute fills dst from src. Every index of dst is written by exactly one
// worker and src is read only.
func (f *Flock) compute(src, dst []Agent, p Params, b Bounds) {
	n := len(src)
	if f.workers <= 1 || n < 2*minChunk {
		for i := range src {
			dst[i] = nextAgent(src, i, p, b)
		}
		return
	}

	chunk := max((n+f.workers-1)/f.workers, minChunk)
	var g errgroup.Group
	g.SetLimit(f.workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				dst[i] = nextAgent(src, i, p, b)
			}
			return nil
		})
	}
	// workers never return an error
	_ = g.Wait()
}

// SetWorldBounds updates the geometry used by the boundary repulsion.
func (f *Flock) SetWorldBounds(width, height float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bounds = Bounds{Width: width, Height: height}
}

// Bounds returns the current world size.
func (f *Flock) Bounds() Bounds {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.bounds
}

// Params returns a copy of the current parameters.
func (f *Flock) Params() Params {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.params
}

// SetParams replaces all the parameters.
func (f *Flock) SetParams(p Params) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = p
}

// UpdateParams lets the caller change individual fields, e.g. from a slider:
//
//	f.UpdateParams(func(p *Params) { p.CohesionWeight = v })
func (f *Flock) UpdateParams(update func(p *Params)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	update(&f.params)
}

// Len returns the population size. It never changes.
func (f *Flock) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.agents)
}

// TickCount returns how many ticks were computed.
func (f *Flock) TickCount() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ticks
}

// Agents returns a copy of the current snapshot, ordered by ID.
func (f *Flock) Agents() []Agent {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Agent, len(f.agents))
	copy(out, f.agents)
	return out
}

// View is what a renderer needs to draw one agent.
type View struct {
	ID       int
	Position geometry.Vector2D
	Heading  float64
	Phase    int
}

// Each calls fn for every agent of the current snapshot, in ID order.
// fn must not call back into the Flock.
func (f *Flock) Each(fn func(View)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, a := range f.agents {
		fn(View{ID: a.ID, Position: a.Pos, Heading: a.Heading(), Phase: a.AnimationPhase()})
	}
}

// Stats summarizes the current snapshot.
func (f *Flock) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ComputeStats(f.agents)
}
