package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a labelled boolean toggle with an optional color swatch.
type Checkbox struct {
	Label  string
	Value  bool
	X, Y   float64
	Size   float64
	Swatch color.RGBA // drawn next to the label when not transparent

	// OnChange is called with the new value after every toggle.
	OnChange func(value bool)
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16, // Default size
	}
}

func (c *Checkbox) Height() float64 { return c.Size }

func (c *Checkbox) MoveTo(x, y float64) { c.X, c.Y = x, y }

// Update toggles the value on a click inside the box or on its label.
func (c *Checkbox) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !inside(float64(mx), float64(my), c.X, c.Y, c.Size+8+float64(len(c.Label)+3)*6, c.Size) {
		return
	}
	c.Toggle()
}

// Toggle flips the value as a click would.
func (c *Checkbox) Toggle() {
	c.Value = !c.Value
	if c.OnChange != nil {
		c.OnChange(c.Value)
	}
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}

	labelX := c.X + c.Size + 8
	if c.Swatch.A > 0 {
		vector.FillRect(screen, float32(labelX), float32(c.Y+4), 8, 8, c.Swatch, true)
		labelX += 14
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(labelX), int(c.Y))
}
