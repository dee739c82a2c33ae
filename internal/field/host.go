package field

import "image/color"

// Surface is the 2D drawing target the field renders into. Coordinates
// passed to the draw calls are logical; the surface applies the scale set
// by SetScale.
type Surface interface {
	SetBackingSize(width, height int)
	SetScale(s float64)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
}

// Host reports the geometry of the element the field is attached to.
type Host interface {
	// Bounds returns the rendered box of the header in logical pixels.
	Bounds() (w, h float64)
	DevicePixelRatio() float64
}

// FrameID identifies a pending frame request. Zero means none.
type FrameID int

// Scheduler runs a callback once on the next animation frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
