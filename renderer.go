package conic

import (
	"image"

	"github.com/gogpu/conic/internal/parallel"
)

// Renderer runs gradient fills across a worker pool.
//
// The per-pixel computation is a pure function of the query point, so
// the output window can be split into row bands filled concurrently
// with no locking; the result is byte-identical to the serial Fill
// methods. A Renderer can be reused for any number of fills and must
// be closed when no longer needed.
//
// An in-flight fill holds no external resources: a host that abandons
// a fill (the user cancels a drag) simply discards the target buffer.
type Renderer struct {
	pool *parallel.Pool
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers int
}

// WithWorkers sets the number of worker goroutines.
// If n is 0 or negative, GOMAXPROCS is used.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// NewRenderer creates a renderer with its own worker pool.
func NewRenderer(opts ...RendererOption) *Renderer {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{pool: parallel.NewPool(o.workers)}
}

// Workers returns the number of workers in the renderer's pool.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Close releases the worker pool.
// The renderer must not be used after Close.
func (r *Renderer) Close() {
	r.pool.Close()
}

// FillPixmap fills the whole pixmap with the gradient in parallel.
// origin is the position of the pixmap's top-left pixel in the
// gradient's coordinate space. A degenerate drag is a no-op.
func (r *Renderer) FillPixmap(g *Gradient, pm *Pixmap, origin image.Point) {
	if g == nil || pm == nil {
		return
	}
	r.fillBands(g, pm.Data(), pm.Width(), pm.Height(), 4, origin, g.FillRGBA)
}

// FillGraymap fills the whole graymap with the gradient in parallel.
// origin is the position of the graymap's top-left pixel in the
// gradient's coordinate space. A degenerate drag is a no-op.
func (r *Renderer) FillGraymap(g *Gradient, gm *Graymap, origin image.Point) {
	if g == nil || gm == nil {
		return
	}
	r.fillBands(g, gm.Data(), gm.Width(), gm.Height(), 1, origin, g.FillGray)
}

// fillBands splits the window into row bands and runs the serial fill
// on each band. Bands never overlap, so the workers write to disjoint
// slices of dst.
func (r *Renderer) fillBands(g *Gradient, dst []byte, width, height, channels int,
	origin image.Point, fill func(dst []byte, startX, startY, width, height int)) {
	if width <= 0 || height <= 0 || g.drag.IsDegenerate() {
		return
	}

	bands := parallel.Bands(height, r.pool.Workers()*2)
	Logger().Debug("parallel fill",
		"width", width, "height", height,
		"cycle", g.cycle.String(),
		"bands", len(bands), "workers", r.pool.Workers())

	stride := width * channels
	work := make([]func(), len(bands))
	for i, band := range bands {
		b := band
		work[i] = func() {
			fill(dst[b.Y*stride:(b.Y+b.Height)*stride],
				origin.X, origin.Y+b.Y, width, b.Height)
		}
	}
	r.pool.ExecuteAll(work)
}
