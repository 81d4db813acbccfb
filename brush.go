package conic

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - *Gradient: the angle gradient
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of
	// position. For the gradient, this samples the sweep at (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
// It implements the Brush interface and always returns the same color.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}
