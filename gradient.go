package conic

import (
	"fmt"
	"math"
)

// Default anti-aliasing policy. Both values are empirical: the
// threshold sets how wide (in gradient fraction, scaled by taxicab
// distance) the supersampled band around a seam is, and the resolution
// sets the side of the sub-pixel sample grid.
const (
	// DefaultAAThreshold is the default seam closeness threshold.
	DefaultAAThreshold = 0.2

	// DefaultAAResolution is the default supersampling grid side:
	// 4 means a 4x4 grid of 16 sub-samples per anti-aliased pixel.
	DefaultAAResolution = 4
)

// Gradient is an angle (conic) gradient: colors sweep from the start
// color around the drag's start point and back, with the drag
// direction as the zero angle. It implements the Brush interface.
//
// A Gradient is immutable after construction and safe for concurrent
// use; fills over disjoint output regions may run in parallel.
//
// Example:
//
//	drag := conic.DragFromCoords(100, 100, 200, 100)
//	g := conic.NewGradient(drag, conic.Red, conic.Blue, conic.CycleReflect)
//	c := g.ColorAt(150, 50)
type Gradient struct {
	drag  Drag
	start RGBA
	end   RGBA
	cycle CycleMode

	// drawAngle is the cached angle of the drag vector.
	drawAngle float64

	aaThreshold float64
	aaRes       int
}

// Option configures a Gradient during creation.
type Option func(*Gradient)

// WithAAThreshold overrides the seam closeness threshold used by the
// anti-aliasing heuristic. Larger values widen the supersampled band
// around seams. The default is DefaultAAThreshold.
func WithAAThreshold(threshold float64) Option {
	return func(g *Gradient) {
		if threshold > 0 {
			g.aaThreshold = threshold
		}
	}
}

// WithAAResolution overrides the supersampling grid side. A value of n
// takes n*n sub-samples per anti-aliased pixel. The default is
// DefaultAAResolution.
func WithAAResolution(res int) Option {
	return func(g *Gradient) {
		if res > 0 {
			g.aaRes = res
		}
	}
}

// NewGradient creates an angle gradient for the given drag gesture,
// endpoint colors, and cycle mode.
//
// NewGradient panics on a cycle mode outside the three defined values:
// an unmapped mode is a programming error, and silently defaulting
// would render the wrong gradient.
//
// A degenerate (zero-length) drag is accepted but produces no-op
// fills; callers should check Drag.IsDegenerate and skip the gradient
// entirely, as no sweep is well-defined from a single point.
func NewGradient(drag Drag, start, end RGBA, cycle CycleMode, opts ...Option) *Gradient {
	if cycle < CycleClamp || cycle > CycleRepeat {
		panic(fmt.Sprintf("conic: invalid cycle mode %d", int(cycle)))
	}
	g := &Gradient{
		drag:        drag,
		start:       start,
		end:         end,
		cycle:       cycle,
		drawAngle:   drag.Angle(),
		aaThreshold: DefaultAAThreshold,
		aaRes:       DefaultAAResolution,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Drag returns the gesture that defines the gradient.
func (g *Gradient) Drag() Drag { return g.drag }

// StartColor returns the color at fraction 0.
func (g *Gradient) StartColor() RGBA { return g.start }

// EndColor returns the color at fraction 1.
func (g *Gradient) EndColor() RGBA { return g.end }

// Cycle returns the gradient's cycle mode.
func (g *Gradient) Cycle() CycleMode { return g.cycle }

// Inverted returns a copy of the gradient with the endpoint colors
// swapped. Hosts expose this as an "invert" toggle; the swap happens
// here, before any sampling.
func (g *Gradient) Inverted() *Gradient {
	inv := *g
	inv.start, inv.end = g.end, g.start
	return &inv
}

// brushMarker implements the sealed Brush interface.
func (*Gradient) brushMarker() {}

// ColorAt returns the gradient color at the given point, with the
// same anti-aliasing the buffer fills apply. Implements Brush.
//
// For a degenerate drag the sweep angle is undefined and ColorAt
// returns the start color.
func (g *Gradient) ColorAt(x, y float64) RGBA {
	if g.drag.IsDegenerate() {
		return g.start
	}
	var px [4]byte
	g.newSampler(rgbaBlender(g.start, g.end)).sample(x, y, px[:])
	return RGBA{
		R: float64(px[0]) / 255,
		G: float64(px[1]) / 255,
		B: float64(px[2]) / 255,
		A: float64(px[3]) / 255,
	}
}

// sampler holds everything the per-pixel computation reads. It is
// built once per fill so the hot loop touches only local state.
type sampler struct {
	drag        Drag
	cycle       CycleMode
	drawAngle   float64
	aaThreshold float64
	aaRes       int
	blend       blender
}

func (g *Gradient) newSampler(bl blender) *sampler {
	return &sampler{
		drag:        g.drag,
		cycle:       g.cycle,
		drawAngle:   g.drawAngle,
		aaThreshold: g.aaThreshold,
		aaRes:       g.aaRes,
		blend:       bl,
	}
}

// interpolate returns the folded gradient fraction at (x, y).
//
// The relative angle lies in (-2*Pi, 2*Pi], and the negative range
// describes the same angular positions as the positive one, so
// shifting by one revolution and taking the result modulo 1 yields the
// base fraction in [0, 1). A relative angle of exactly +-2*Pi lands on
// the seam and folds to 0, the same result as angle 0.
func (s *sampler) interpolate(x, y float64) float64 {
	relativeAngle := s.drag.AngleTo(x, y) - s.drawAngle

	f := relativeAngle/(2*math.Pi) + 1 // in (0, 2]
	f = math.Mod(f, 1)                 // in [0, 1)

	return foldCycle(f, s.cycle)
}

// sample computes the output channels for the pixel at (x, y) into px,
// which must hold s.blend.channels() bytes.
//
// A pixel is supersampled when its fraction falls within
// aaThreshold/taxicab of a seam: seams get angularly thinner at larger
// radii, so the band narrows with distance from the drag start.
func (s *sampler) sample(x, y float64, px []byte) {
	t := s.interpolate(x, y)

	needsAA := false
	if s.cycle.hasSeam() {
		threshold := s.aaThreshold / s.drag.TaxiCab(x, y)
		needsAA = t > 1-threshold || t < threshold
	}

	if !needsAA {
		s.blend.blend(t, px)
		return
	}

	res := s.aaRes
	var acc [maxChannels]int
	for m := 0; m < res; m++ {
		yy := y + float64(m)/float64(res) - 0.5
		for n := 0; n < res; n++ {
			xx := x + float64(n)/float64(res) - 0.5
			s.blend.accumulate(s.interpolate(xx, yy), &acc)
		}
	}
	s.blend.average(&acc, res*res, px)
}
