package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	flockv1 "github.com/lao-tseu-is-alive/go-flock-simulation/gen/flock/v1"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const panelWidth = 230.0

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *flockv1.FlockSnapshot
	lastState  *flockv1.FlockSnapshot

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetCohesion      *ui.Slider
	widgetSeparation    *ui.Slider
	widgetMatch         *ui.Slider
	widgetVisualRange   *ui.Slider
	widgetVelocityLimit *ui.Slider
	widgetLimitVelocity *ui.Checkbox
	widgetPause         *ui.Button

	// last values sent to the world, to only send changes
	sentParams *flockv1.UpdateParams
	sentWidth  int
	sentHeight int

	width, height int
	paused        bool
	frames        []*ebiten.Image

	cfg *Config

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) (*Game, error) {
	// 1. Create Channels for communication
	snapshotCh := make(chan *flockv1.FlockSnapshot, 10) // Buffer to avoid blocking

	// 2. Spawn World Actor
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &flockv1.FlockSnapshot{}, // Avoid nil pointer
		width:      int(cfg.WorldWidth),
		height:     int(cfg.WorldHeight),
		sentWidth:  int(cfg.WorldWidth),
		sentHeight: int(cfg.WorldHeight),
		frames:     newBirdFrames(cfg.FrameCount),
		cfg:        cfg,
	}
	g.buildPanel()
	g.sentParams = g.currentParams()
	return g, nil
}

// buildPanel creates the parameter overlay, toggled with U
func (g *Game) buildPanel() {
	p := g.cfg.Params()
	panel := ui.NewUIPanel("Parameters (U to hide)", 10, 10, panelWidth, g.cfg.WorldHeight-20)
	panel.Visible = g.cfg.ShowUI

	panel.AddSection("Flocking")
	g.widgetCohesion = panel.AddSlider("Cohesion", 0, 0.1, p.CohesionWeight)
	g.widgetCohesion.Step, g.widgetCohesion.Format = 0.0001, "%.4f"
	g.widgetSeparation = panel.AddSlider("Separation", 0, 20, p.SeparationWeight)
	g.widgetSeparation.Step = 0.01
	g.widgetMatch = panel.AddSlider("Match", 0, 0.5, p.AlignmentWeight)
	g.widgetMatch.Step, g.widgetMatch.Format = 0.001, "%.3f"
	g.widgetVisualRange = panel.AddSlider("Visual range", 0, 200, p.VisionRadius)
	g.widgetVisualRange.Step, g.widgetVisualRange.Format = 1, "%.0f"
	panel.EndSection()

	limit, limited := p.VelocityLimit.Get()
	if !limited {
		limit = 10
	}
	panel.AddSection("Velocity")
	g.widgetLimitVelocity = panel.AddCheckbox("Limit velocity", limited)
	g.widgetVelocityLimit = panel.AddSlider("Velocity limit", 0, 50, limit)
	g.widgetVelocityLimit.Step, g.widgetVelocityLimit.Format = 0.5, "%.1f"
	panel.EndSection()

	panel.AddSection("Simulation")
	g.widgetPause = panel.AddButton("Pause", g.togglePause)
	panel.EndSection()

	// sliders snap to their step once it is known
	for _, s := range []*ui.Slider{g.widgetCohesion, g.widgetSeparation, g.widgetMatch, g.widgetVisualRange, g.widgetVelocityLimit} {
		s.SetValue(s.Value)
	}
	panel.SetInfo("", "", "", "") // filled by Draw
	panel.FitHeight(g.cfg.WorldHeight - 20)
	g.panel = panel
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.widgetPause.Label = "Resume"
	} else {
		g.widgetPause.Label = "Pause"
	}
}

// currentParams reads the overlay widgets
func (g *Game) currentParams() *flockv1.UpdateParams {
	return &flockv1.UpdateParams{
		SeparationWeight: g.widgetSeparation.Value,
		CohesionWeight:   g.widgetCohesion.Value,
		AlignmentWeight:  g.widgetMatch.Value,
		VisionRadius:     g.widgetVisualRange.Value,
		VelocityLimited:  g.widgetLimitVelocity.Value,
		VelocityLimit:    g.widgetVelocityLimit.Value,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Keyboard
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}

	// 2. Update UI Panel
	g.panel.Update()

	// 3. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 4. Send what changed to the world
	if params := g.currentParams(); !paramsEqual(params, g.sentParams) {
		if err := actor.Tell(g.ctx, g.worldPID, params); err != nil {
			return fmt.Errorf("failed to send parameters: %w", err)
		}
		g.sentParams = params
	}
	if g.width != g.sentWidth || g.height != g.sentHeight {
		if err := actor.Tell(g.ctx, g.worldPID, &flockv1.Resize{Width: float64(g.width), Height: float64(g.height)}); err != nil {
			return fmt.Errorf("failed to send resize: %w", err)
		}
		g.sentWidth, g.sentHeight = g.width, g.height
		g.panel.FitHeight(float64(g.height) - 20)
	}

	// 5. Trigger Simulation Step
	if !g.paused {
		if err := actor.Tell(g.ctx, g.worldPID, &flockv1.Tick{}); err != nil {
			return fmt.Errorf("failed to send tick: %w", err)
		}
	}
	return nil
}

func paramsEqual(a, b *flockv1.UpdateParams) bool {
	return a.GetSeparationWeight() == b.GetSeparationWeight() &&
		a.GetCohesionWeight() == b.GetCohesionWeight() &&
		a.GetAlignmentWeight() == b.GetAlignmentWeight() &&
		a.GetVisionRadius() == b.GetVisionRadius() &&
		a.GetVelocityLimited() == b.GetVelocityLimited() &&
		a.GetVelocityLimit() == b.GetVelocityLimit()
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(skyColor)

	// 1. Draw all birds from the last known snapshot
	tick := g.lastState.GetTick()
	for _, bird := range g.lastState.GetAgents() {
		frame := g.frames[flock.FrameIndex(tick, int(bird.GetAnimationPhase()), len(g.frames))]
		op := &ebiten.DrawImageOptions{}

		// Center the sprite, then align it with the heading
		w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(bird.GetHeading())
		op.GeoM.Translate(bird.GetPositionX(), bird.GetPositionY())

		screen.DrawImage(frame, op)
	}

	// 2. Draw UI Panel
	if g.panel.Visible {
		stats := g.lastState.GetStats()
		g.panel.SetInfo(
			fmt.Sprintf("%.0f fps  %.0f tps", ebiten.ActualFPS(), ebiten.ActualTPS()),
			fmt.Sprintf("Birds: %d  Tick: %d", len(g.lastState.GetAgents()), tick),
			fmt.Sprintf("Speed %.2f  Order %.2f", stats.GetMeanSpeed(), stats.GetPolarization()),
			fmt.Sprintf("Update %.2fms Draw %.2fms", g.updateAvg, g.drawAvg),
		)
		g.panel.Draw(screen)
	}
}

// Layout follows the window, so resizing the window resizes the sky
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
