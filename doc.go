// Package conic implements an angle (conic) gradient fill engine.
//
// # Overview
//
// conic produces per-pixel color values for an angular gradient defined
// by a drag gesture: colors sweep around the drag's start point, with
// the drag direction marking the gradient seam. It is a pure CPU
// sampling kernel designed to be embedded in image editors and drawing
// libraries from the GoGPU ecosystem.
//
// # Quick Start
//
//	import "github.com/gogpu/conic"
//
//	drag := conic.Drag{Start: conic.Pt(128, 128), End: conic.Pt(256, 128)}
//	g := conic.NewGradient(drag, conic.Black, conic.White, conic.CycleClamp)
//
//	pm := conic.NewPixmap(256, 256)
//	g.FillRGBA(pm.Data(), 0, 0, pm.Width(), pm.Height())
//	pm.SavePNG("angle.png")
//
// # Cycle Modes
//
// The gradient fraction can cycle in three ways as the angle sweeps a
// full revolution:
//   - CycleClamp: one transition around the circle, hard seam at the
//     drag direction
//   - CycleReflect: two mirrored half-circle transitions, no hard seam
//   - CycleRepeat: two independent repeats, hard seams at 0 and 180
//     degrees from the drag direction
//
// Pixels near a hard seam are supersampled on a sub-pixel grid so the
// seam stays smooth at any radius.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// # Concurrency
//
// Sampling is a pure function of the query point, so fills parallelize
// freely. Gradient's Fill methods are serial; Renderer runs the same
// fill across a worker pool, one row band per task, with byte-identical
// output.
package conic

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
