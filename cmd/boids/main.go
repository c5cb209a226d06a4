// Command boids draws a flock as plain triangles, driving pkg/flock directly
// from the ebiten loop without the actor layer.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var (
	numBoids = flag.Int("n", 500, "number of birds")
	vlim     = flag.Float64("vlim", 10, "velocity limit per component, -1 for none")
)

type Game struct {
	flock    *flock.Flock
	vertices []ebiten.Vertex
	indices  []uint16
	w, h     int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		b := g.flock.Bounds()
		g.flock = flock.New(g.flock.Len(), g.flock.Params().VelocityLimit, b.Width, b.Height,
			flock.WithParams(g.flock.Params()))
	}
	g.flock.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	g.flock.Each(func(v flock.View) {
		g.appendBoid(v)
	})

	// uint16 indices: draw in batches of at most 65535 vertices
	const batch = 3 * 21845
	for start := 0; start < len(g.vertices); start += batch {
		end := min(start+batch, len(g.vertices))
		screen.DrawTriangles(g.vertices[start:end], g.indices[:end-start], whiteImage, &ebiten.DrawTrianglesOptions{})
	}
	ebitenutil.DebugPrint(screen, "R: restart")
}

// appendBoid adds the triangle of one bird, pointing along its heading
func (g *Game) appendBoid(v flock.View) {
	x, y, angle := v.Position.X, v.Position.Y, v.Heading
	points := [3][2]float64{
		{x + math.Cos(angle)*6, y + math.Sin(angle)*6},
		{x + math.Cos(angle+2.5)*5, y + math.Sin(angle+2.5)*5},
		{x + math.Cos(angle-2.5)*5, y + math.Sin(angle-2.5)*5},
	}
	for _, p := range points {
		g.indices = append(g.indices, uint16(len(g.indices)%(3*21845)))
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX: float32(p[0]),
			DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.flock.SetWorldBounds(float64(outsideWidth), float64(outsideHeight))
	}
	return g.w, g.h
}

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

func main() {
	flag.Parse()

	g := &Game{
		flock: flock.New(*numBoids, simulation.LimitFromFlag(*vlim), screenWidth, screenHeight),
		w:     screenWidth,
		h:     screenHeight,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
