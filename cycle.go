package conic

import "fmt"

// CycleMode defines how the gradient fraction cycles as the angle
// sweeps one full revolution around the drag start.
type CycleMode int

const (
	// CycleClamp transitions once around the full circle, with a hard
	// seam where the fraction wraps from 1 back to 0.
	CycleClamp CycleMode = iota
	// CycleReflect mirrors the gradient into two half-circle
	// transitions that meet smoothly, leaving no hard seam.
	CycleReflect
	// CycleRepeat runs two independent repeats per revolution, each
	// with its own hard seam.
	CycleRepeat
)

// String returns the name of the cycle mode.
func (m CycleMode) String() string {
	switch m {
	case CycleClamp:
		return "clamp"
	case CycleReflect:
		return "reflect"
	case CycleRepeat:
		return "repeat"
	}
	return fmt.Sprintf("CycleMode(%d)", int(m))
}

// foldCycle maps a base fraction f in [0, 1) through the cycle mode.
// Clamp passes f through, Reflect folds it into a triangle wave, and
// Repeat doubles it into a sawtooth. The result stays in [0, 1] with
// 1 reachable only by Reflect at exactly f = 0.5.
//
// An out-of-range mode is a contract violation and panics: silently
// defaulting would render the wrong gradient.
func foldCycle(f float64, mode CycleMode) float64 {
	switch mode {
	case CycleClamp:
		return f
	case CycleReflect:
		if f < 0.5 {
			return 2 * f
		}
		return 2 * (1 - f)
	case CycleRepeat:
		if f < 0.5 {
			return 2 * f
		}
		return 2 * (f - 0.5)
	}
	panic(fmt.Sprintf("conic: invalid cycle mode %d", int(mode)))
}

// hasSeam reports whether the mode produces a hard discontinuity that
// anti-aliasing must smooth. Reflect is the only seamless mode.
func (m CycleMode) hasSeam() bool {
	return m != CycleReflect
}
