package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can stack vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	MoveTo(x, y float64)
}

const (
	panelMargin   = 10
	titleHeight   = 25
	widgetSpacing = 6
)

// Panel is a fixed box of widgets stacked under a title.
type Panel struct {
	X, Y    float64
	Width   float64
	Title   string
	Widgets []Widget

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

func NewPanel(x, y, width float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// Add appends w below the previous widget and returns it.
func (p *Panel) Add(w Widget) Widget {
	w.MoveTo(p.X+panelMargin, p.Y+p.Height()-panelMargin)
	p.Widgets = append(p.Widgets, w)
	return w
}

func (p *Panel) AddCheckbox(label string, value bool, swatch color.RGBA) *Checkbox {
	c := NewCheckbox(0, 0, label, value)
	c.Swatch = swatch
	p.Add(c)
	return c
}

func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(0, 0, p.Width-2*panelMargin, 20, label, onClick)
	p.Add(b)
	return b
}

// Height is the space taken by the title and every widget.
func (p *Panel) Height() float64 {
	h := float64(titleHeight + panelMargin)
	for _, w := range p.Widgets {
		h += w.Height() + widgetSpacing
	}
	return h
}

// Contains reports whether the screen point (x, y) falls on the panel.
func (p *Panel) Contains(x, y int) bool {
	return inside(float64(x), float64(y), p.X, p.Y, p.Width, p.Height())
}

func (p *Panel) Update() {
	for _, w := range p.Widgets {
		w.Update()
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	h := float32(p.Height())
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), h, p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), h, 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelMargin), int(p.Y+5))

	for _, w := range p.Widgets {
		w.Draw(screen)
	}
}

func inside(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
