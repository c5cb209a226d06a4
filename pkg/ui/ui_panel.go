package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 25.0
	sectionHeight = 25.0
	infoLineH     = 16.0
	labelHeight   = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return labelHeight + s.H + 8
}

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 8
}

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 8
}

// UIPanel is a scrollable column of widgets drawn over the simulation
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Visible       bool
	Widgets       []UIWidget
	ScrollOffset  float64

	// info lines printed under the title, refreshed by the caller every frame
	info []string

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups consecutive widgets under a header
type PanelSection struct {
	Title      string
	StartIndex int // first widget of the section
	EndIndex   int // exclusive
}

// NewUIPanel creates a new visible panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Visible:     true,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// Toggle shows or hides the panel
func (p *UIPanel) Toggle() {
	p.Visible = !p.Visible
}

// SetInfo replaces the text lines shown under the title
func (p *UIPanel) SetInfo(lines ...string) {
	p.info = append(p.info[:0], lines...)
}

// AddSection starts a section; widgets added afterwards belong to it
func (p *UIPanel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   -1,
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if n := len(p.sections); n > 0 && p.sections[n-1].EndIndex < 0 {
		p.sections[n-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.Widgets = append(p.Widgets, &SliderWrapper{slider})
	return slider
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, 0, label, value)
	p.Widgets = append(p.Widgets, &CheckboxWrapper{checkbox})
	return checkbox
}

func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, 0, p.Width-20, 20, label, onClick)
	p.Widgets = append(p.Widgets, &ButtonWrapper{button})
	return button
}

// sectionStartingAt returns the section whose first widget is i
func (p *UIPanel) sectionStartingAt(i int) (PanelSection, bool) {
	for _, s := range p.sections {
		if s.StartIndex == i && (s.EndIndex < 0 || s.EndIndex > s.StartIndex) {
			return s, true
		}
	}
	return PanelSection{}, false
}

func (p *UIPanel) headerHeight() float64 {
	return titleHeight + float64(len(p.info))*infoLineH
}

// calculateTotalHeight calculates the total content height
func (p *UIPanel) calculateTotalHeight() float64 {
	height := p.headerHeight()
	for i, widget := range p.Widgets {
		if _, ok := p.sectionStartingAt(i); ok {
			height += sectionHeight
		}
		height += widget.GetHeight()
	}
	return height
}

// FitHeight sizes the panel to its content, up to maxHeight
func (p *UIPanel) FitHeight(maxHeight float64) {
	p.Height = min(p.calculateTotalHeight()+5, maxHeight)
	p.clampScroll()
}

func (p *UIPanel) clampScroll() {
	maxScroll := max(p.calculateTotalHeight()-p.Height+5, 0)
	p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
}

// layout places every widget for the current scroll position
func (p *UIPanel) layout() {
	y := p.Y + p.headerHeight() - p.ScrollOffset
	for i, widget := range p.Widgets {
		if _, ok := p.sectionStartingAt(i); ok {
			y += sectionHeight
		}
		p.adjustWidgetPosition(widget, y)
		y += widget.GetHeight()
	}
}

// adjustWidgetPosition moves a widget to the row starting at y
func (p *UIPanel) adjustWidgetPosition(widget UIWidget, y float64) {
	switch w := widget.(type) {
	case *SliderWrapper:
		w.X, w.Y = p.X+10, y+labelHeight
	case *CheckboxWrapper:
		w.X, w.Y = p.X+10, y
	case *ButtonWrapper:
		w.X, w.Y = p.X+10, y
	}
}

func (p *UIPanel) visible(y, h float64) bool {
	return y >= p.Y+p.headerHeight()-2 && y+h <= p.Y+p.Height+2
}

// Contains reports whether a screen point is over the panel
func (p *UIPanel) Contains(x, y float64) bool {
	return p.Visible && x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	if !p.Visible {
		return
	}
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(float64(mx), float64(my)) {
		p.ScrollOffset -= dy * 20
		p.clampScroll()
	}

	p.layout()
	for i, widget := range p.Widgets {
		if p.visible(p.widgetTop(i), widget.GetHeight()) {
			widget.Update()
		}
	}
}

// widgetTop is the y coordinate of the row holding widget i, after layout
func (p *UIPanel) widgetTop(i int) float64 {
	switch w := p.Widgets[i].(type) {
	case *SliderWrapper:
		return w.Y - labelHeight
	case *CheckboxWrapper:
		return w.Y
	case *ButtonWrapper:
		return w.Y
	}
	return 0
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))
	for i, line := range p.info {
		ebitenutil.DebugPrintAt(screen, line, int(p.X+10), int(p.Y+titleHeight+float64(i)*infoLineH))
	}

	p.layout()
	for i, widget := range p.Widgets {
		top := p.widgetTop(i)
		if s, ok := p.sectionStartingAt(i); ok && p.visible(top-sectionHeight, sectionHeight) {
			vector.FillRect(screen,
				float32(p.X+5), float32(top-sectionHeight),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(top-sectionHeight+2))
		}
		if !p.visible(top, widget.GetHeight()) {
			continue
		}

		switch w := widget.(type) {
		case *SliderWrapper:
			ebitenutil.DebugPrintAt(screen, w.Text(), int(p.X+10), int(top-2))
		case *CheckboxWrapper:
			ebitenutil.DebugPrintAt(screen, w.Label, int(w.X+w.Size+8), int(top-2))
		}
		widget.Draw(screen)
	}
}
