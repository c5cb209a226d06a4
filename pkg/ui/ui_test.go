package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlider_SetValue(t *testing.T) {
	tests := []struct {
		name string
		step float64
		in   float64
		want float64
	}{
		{"inside", 0, 0.25, 0.25},
		{"below min", 0, -3, 0},
		{"above max", 0, 7, 1},
		{"rounded to step", 0.1, 0.26, 0.3},
		{"step never leaves range", 0.3, 0.99, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, "v", 0, 1, 0)
			s.Step = tt.step
			s.SetValue(tt.in)
			assert.InDelta(t, tt.want, s.Value, 1e-9)
		})
	}
}

func TestSlider_Mapping(t *testing.T) {
	s := NewSlider(10, 20, 200, "Separation", 0, 20, 1)
	assert.InDelta(t, 0.05, s.Ratio(), 1e-12)
	assert.InDelta(t, 0.0, s.valueAt(10), 1e-12)
	assert.InDelta(t, 10.0, s.valueAt(110), 1e-12)
	assert.InDelta(t, 20.0, s.valueAt(210), 1e-12)

	assert.True(t, s.contains(10, 20))
	assert.True(t, s.contains(210, 20+s.H))
	assert.False(t, s.contains(211, 25))
	assert.False(t, s.contains(50, 19))

	assert.Equal(t, "Separation: 1.00", s.Text())
	s.Format = "%.0f"
	assert.Equal(t, "Separation: 1", s.Text())
}

func TestSlider_DegenerateRange(t *testing.T) {
	s := NewSlider(0, 0, 0, "fixed", 5, 5, 9)
	assert.Equal(t, 5.0, s.Value)
	assert.Zero(t, s.Ratio())
	assert.Equal(t, 5.0, s.valueAt(42))
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "Limit velocity", false)

	c.press(true, true)
	assert.True(t, c.Value)
	c.press(true, true) // still held
	assert.True(t, c.Value)
	c.press(true, false)
	c.press(true, true)
	assert.False(t, c.Value)

	c.press(false, true) // pressed outside
	assert.False(t, c.Value)
}

func TestButton_ClicksOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "Pause", func() { clicks++ })

	b.press(true, true)
	b.press(true, true)
	assert.Equal(t, 1, clicks)

	b.press(false, false)
	b.press(true, true)
	assert.Equal(t, 2, clicks)

	assert.True(t, b.contains(25, 10))
	assert.False(t, b.contains(51, 10))

	b.OnClick = nil
	b.press(false, false)
	assert.NotPanics(t, func() { b.press(true, true) })
	assert.Equal(t, 2, clicks)
}

func newTestPanel() (*UIPanel, *Slider, *Slider, *Checkbox, *Button) {
	p := NewUIPanel("Parameters", 10, 10, 200, 500)
	p.SetInfo("60 fps")
	p.AddSection("Rules")
	s1 := p.AddSlider("Cohesion", 0, 0.1, 0.01)
	s2 := p.AddSlider("Separation", 0, 20, 1)
	p.EndSection()
	c := p.AddCheckbox("Limit velocity", true)
	b := p.AddButton("Pause", nil)
	return p, s1, s2, c, b
}

func TestUIPanel_Layout(t *testing.T) {
	p, s1, s2, c, b := newTestPanel()

	require.Len(t, p.Widgets, 4)
	assert.InDelta(t, 186.0, p.calculateTotalHeight(), 1e-9)

	p.layout()
	assert.Equal(t, 91.0, s1.Y)
	assert.Equal(t, 126.0, s2.Y)
	assert.Equal(t, 146.0, c.Y)
	assert.Equal(t, 168.0, b.Y)
	assert.Equal(t, 20.0, s1.X)

	p.ScrollOffset = 30
	p.layout()
	assert.Equal(t, 61.0, s1.Y)
}

func TestUIPanel_FitHeightAndScroll(t *testing.T) {
	p, _, _, _, _ := newTestPanel()

	p.FitHeight(1000)
	assert.Equal(t, 191.0, p.Height)

	p.ScrollOffset = 500
	p.FitHeight(100)
	assert.Equal(t, 100.0, p.Height)
	assert.Equal(t, 91.0, p.ScrollOffset)

	p.ScrollOffset = -4
	p.clampScroll()
	assert.Zero(t, p.ScrollOffset)
}

func TestUIPanel_SectionsAndVisibility(t *testing.T) {
	p := NewUIPanel("Parameters", 0, 0, 100, 100)
	p.AddSection("empty")
	p.AddSection("full")
	p.AddCheckbox("x", false)

	_, ok := p.sectionStartingAt(0)
	require.True(t, ok)
	s, _ := p.sectionStartingAt(0)
	assert.Equal(t, "full", s.Title)

	assert.True(t, p.Contains(50, 50))
	p.Toggle()
	assert.False(t, p.Visible)
	assert.False(t, p.Contains(50, 50))
}
