package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	configFile = flag.String("config", "", "JSON or TOML configuration file")
	schemaFile = flag.String("schema", "configs/config.schema.json", "JSON schema used to validate -config")
	population = flag.Int("n", 1000, "number of birds")
	vlim       = flag.Float64("vlim", 10, "velocity limit per component, -1 for none")
	seed       = flag.Uint64("seed", 0, "seed of the initial placement (random when not set)")
	workers    = flag.Int("workers", 0, "goroutines sharing a tick, 0 for one per CPU")
	headless   = flag.Int("headless", 0, "run this many ticks without a window, then exit")
	hideUI     = flag.Bool("hide-ui", false, "start with the parameter overlay hidden")
	debug      = flag.Bool("debug", false, "verbose logging")
)

func main() {
	flag.Parse()

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	if err := run(logger); err != nil {
		logger.Errorf("flock: %v", err)
		os.Exit(1)
	}
}

func run(logger golog.Logger) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	system, err := actor.NewActorSystem("FlockWorld-"+uuid.NewString(),
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(ctx) }()

	if *headless > 0 {
		snapshot, err := simulation.RunHeadless(ctx, system, "world", cfg, *headless)
		if err != nil {
			return err
		}
		s := snapshot.GetStats()
		logger.Infof("done: %d ticks, %d birds, speed %.2f ± %.2f, polarization %.3f, centroid (%.1f, %.1f)",
			snapshot.GetTick(), len(snapshot.GetAgents()), s.GetMeanSpeed(), s.GetSpeedStddev(),
			s.GetPolarization(), s.GetCentroidX(), s.GetCentroidY())
		return nil
	}

	game, err := simulation.GetNewGame(ctx, cfg, system)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flock")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

// loadConfig reads -config when given, then applies the flags set on the
// command line.
func loadConfig() (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Population = max(*population, 0)
		case "vlim":
			cfg.SetLimit(simulation.LimitFromFlag(*vlim))
		case "seed":
			cfg.Seed = seed
		case "workers":
			cfg.Workers = max(*workers, 0)
		case "hide-ui":
			cfg.ShowUI = !*hideUI
		}
	})
	return cfg, nil
}
