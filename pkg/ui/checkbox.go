package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label   string
	Value   bool
	X, Y    float64
	Size    float64
	pressed bool // mouse button still down since the last toggle
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  14,
	}
}

func (c *Checkbox) contains(mx, my float64) bool {
	return mx >= c.X && mx <= c.X+c.Size && my >= c.Y && my <= c.Y+c.Size
}

// press toggles the value once per mouse press
func (c *Checkbox) press(over, down bool) {
	if over && down {
		if !c.pressed {
			c.Value = !c.Value
			c.pressed = true
		}
		return
	}
	c.pressed = false
}

// Update checks for mouse interaction
func (c *Checkbox) Update() {
	mx, my := ebiten.CursorPosition()
	c.press(c.contains(float64(mx), float64(my)), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Draw renders the checkbox
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+3), float32(c.Y+3),
			float32(c.Size-6), float32(c.Size-6),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}
}
