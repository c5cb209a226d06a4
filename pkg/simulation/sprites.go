package simulation

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bird sprites are seen from above, flying towards +x (heading 0).
// Legend:
// . = Transparent
// B = Body
// H = Head
// T = Tail
// W = Wing
var (
	birdBody = "TTBBBBBBBH"

	// upper half of each wing pose, from fully spread to folded
	wingPoses = [][]string{
		{
			"..W.......",
			"..WW......",
			"...WW.....",
			"...WW.....",
			"....WW....",
		},
		{
			"..........",
			"...W......",
			"...WW.....",
			"....WW....",
			"....WW....",
		},
		{
			"..........",
			"..........",
			"...WW.....",
			"....WW....",
			"....WW....",
		},
		{
			"..........",
			"..........",
			"..........",
			"....WW....",
			"....WWW...",
		},
		{
			"..........",
			"..........",
			"..........",
			"..........",
			"....WWW...",
		},
	}

	// one flap: spread, fold, spread again
	flapCycle = []int{0, 1, 2, 3, 4, 3, 2, 1}

	birdPalette = map[rune]color.RGBA{
		'B': {R: 235, G: 235, B: 240, A: 255},
		'H': {R: 255, G: 170, B: 60, A: 255},
		'T': {R: 160, G: 160, B: 170, A: 255},
		'W': {R: 170, G: 200, B: 255, A: 255},
	}

	skyColor = color.RGBA{R: 40, G: 44, B: 52, A: 255}
)

// birdDesign mirrors the upper wing around the body row
func birdDesign(pose []string) []string {
	design := make([]string, 0, 2*len(pose)+1)
	design = append(design, pose...)
	design = append(design, birdBody)
	for i := len(pose) - 1; i >= 0; i-- {
		design = append(design, pose[i])
	}
	return design
}

// flapPose returns the wing pose shown in frame i of an n frame animation
func flapPose(i, n int) int {
	if n <= 0 {
		return 0
	}
	return flapCycle[(i%n)*len(flapCycle)/n]
}

// newBirdFrames renders the n animation frames
func newBirdFrames(n int) []*ebiten.Image {
	poses := make([]*ebiten.Image, len(wingPoses))
	for i, pose := range wingPoses {
		poses[i] = generateSprite(birdDesign(pose), birdPalette)
	}
	frames := make([]*ebiten.Image, max(n, 1))
	for i := range frames {
		frames[i] = poses[flapPose(i, len(frames))]
	}
	return frames
}

// generateSprite converts an ASCII grid into an Ebiten image
func generateSprite(design []string, palette map[rune]color.RGBA) *ebiten.Image {
	h := len(design)
	w := len(design[0])
	img := ebiten.NewImage(w, h)

	for y, row := range design {
		for x, char := range row {
			if col, ok := palette[char]; ok {
				img.Set(x, y, col)
			}
		}
	}
	return img
}
