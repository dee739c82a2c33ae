// Package viewport converts between the logical coordinates the header and
// filter are laid out in and the physical pixels of a HiDPI window.
package viewport

import "math"

// Viewport is a window of Width×Height logical pixels shown on a monitor
// with the given device scale factor.
type Viewport struct {
	Width, Height int
	Scale         float64
}

// New returns a viewport; a non-positive or NaN scale counts as 1.
func New(width, height int, scale float64) Viewport {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	return Viewport{Width: width, Height: height, Scale: scale}
}

// Physical returns the screen size in device pixels.
func (v Viewport) Physical() (int, int) {
	return int(math.Ceil(float64(v.Width) * v.Scale)), int(math.Ceil(float64(v.Height) * v.Scale))
}

// ToLogical maps a physical cursor position to logical coordinates.
func (v Viewport) ToLogical(x, y int) (int, int) {
	return int(math.Floor(float64(x) / v.Scale)), int(math.Floor(float64(y) / v.Scale))
}

// CanvasScale is the factor a backing store rendered at ratio backingRatio
// must be drawn with to cover its logical box on the physical screen. It is
// 1 whenever the backing ratio matches the device.
func (v Viewport) CanvasScale(backingRatio float64) float64 {
	if backingRatio <= 0 {
		return v.Scale
	}
	return v.Scale / backingRatio
}
