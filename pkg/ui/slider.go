package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal bar selecting a value in [Min, Max]
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	Step     float64 // 0 means continuous
	Format   string  // fmt verb used to print Value
	X, Y     float64
	W, H     float64
}

// NewSlider creates a new slider instance
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label:  label,
		Min:    min,
		Max:    max,
		Format: "%.2f",
		X:      x,
		Y:      y,
		W:      w,
		H:      12,
	}
	s.SetValue(value)
	return s
}

// SetValue stores v clamped to the range and rounded to Step.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	s.Value = math.Max(s.Min, math.Min(v, s.Max))
}

// valueAt maps a horizontal screen coordinate to a slider value
func (s *Slider) valueAt(mx float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	p := (mx - s.X) / s.W
	return s.Min + p*(s.Max-s.Min)
}

func (s *Slider) contains(mx, my float64) bool {
	return mx >= s.X && mx <= s.X+s.W && my >= s.Y && my <= s.Y+s.H
}

// Ratio is the filled part of the bar, in [0, 1]
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

func (s *Slider) Text() string {
	return fmt.Sprintf("%s: "+s.Format, s.Label, s.Value)
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if s.contains(float64(mx), float64(my)) {
		s.SetValue(s.valueAt(float64(mx)))
	}
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	// Background
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	// Value bar
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
