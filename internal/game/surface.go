package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the offscreen backing store of the header. Drawing calls take
// logical coordinates and are scaled to the backing resolution.
type canvas struct {
	img   *ebiten.Image
	scale float64
}

func (c *canvas) SetBackingSize(w, h int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) SetScale(s float64) { c.scale = s }

func (c *canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	s := c.scale
	vector.StrokeLine(c.img, float32(x0*s), float32(y0*s), float32(x1*s), float32(y1*s), float32(width*s), clr, true)
}

func (c *canvas) FillCircle(x, y, r float64, clr color.NRGBA) {
	s := c.scale
	vector.DrawFilledCircle(c.img, float32(x*s), float32(y*s), float32(r*s), clr, true)
}

// drawTo blits the canvas onto the physical screen, scaled by s. s is 1
// unless the device ratio exceeds the capped backing ratio.
func (c *canvas) drawTo(screen *ebiten.Image, s float64) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if s != 1 {
		op.GeoM.Scale(s, s)
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(c.img, op)
}

// windowHost reports the header box of the game window.
type windowHost struct {
	g *Game
}

func (h windowHost) Bounds() (float64, float64) {
	return float64(h.g.view.Width), float64(h.g.cfg.Header.Height)
}

func (h windowHost) DevicePixelRatio() float64 {
	return h.g.view.Scale
}
