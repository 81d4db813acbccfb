package conic

import "math"

// dragEpsilon is the tolerance below which a drag counts as a click.
const dragEpsilon = 1e-9

// Drag describes the gesture that defines a gradient: the points where
// the user pressed and released. The start point is the gradient
// center; the start-to-end direction is the zero angle of the sweep.
//
// Drag is a value type and carries no state beyond its two endpoints;
// all measurements are derived on demand.
type Drag struct {
	Start Point
	End   Point
}

// DragFromCoords creates a Drag from raw endpoint coordinates.
func DragFromCoords(x0, y0, x1, y1 float64) Drag {
	return Drag{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// Angle returns the draw angle: the angle of the start-to-end vector,
// in radians, in (-Pi, Pi].
func (d Drag) Angle() float64 {
	return d.End.Sub(d.Start).Angle()
}

// AngleTo returns the angle of the vector from the drag start to
// (x, y), in radians, in (-Pi, Pi].
func (d Drag) AngleTo(x, y float64) float64 {
	return math.Atan2(y-d.Start.Y, x-d.Start.X)
}

// TaxiCab returns the L1 distance from the drag start to (x, y),
// floored at 1 so the result is always a safe divisor.
func (d Drag) TaxiCab(x, y float64) float64 {
	dist := math.Abs(x-d.Start.X) + math.Abs(y-d.Start.Y)
	return math.Max(1, dist)
}

// Length returns the Euclidean length of the drag.
func (d Drag) Length() float64 {
	return d.Start.Distance(d.End)
}

// Center returns the midpoint of the drag. Hosts use it to place
// drag handles; the engine itself never needs it.
func (d Drag) Center() Point {
	return d.Start.Lerp(d.End, 0.5)
}

// IsDegenerate reports whether the drag is a click: start and end
// coincide within floating epsilon. No gradient is well-defined from a
// single point, so callers must skip the fill when this is true.
// Fill methods treat a degenerate drag as a no-op.
func (d Drag) IsDegenerate() bool {
	return math.Abs(d.End.X-d.Start.X) < dragEpsilon &&
		math.Abs(d.End.Y-d.Start.Y) < dragEpsilon
}
