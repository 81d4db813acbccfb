// Package rasterpaint connects conic brushes to the rasterx scanline
// rasterizer, so arbitrary vector paths can be filled with the angle
// gradient.
package rasterpaint

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"

	"github.com/gogpu/conic"
)

// ColorFunc adapts a conic.Brush to a rasterx.ColorFunc. rasterx
// queries it once per covered pixel, so gradient anti-aliasing applies
// inside the painted shape exactly as it does in buffer fills.
func ColorFunc(b conic.Brush) rasterx.ColorFunc {
	return func(x, y int) color.Color {
		return b.ColorAt(float64(x), float64(y)).Color()
	}
}

// FillPath fills closed polygonal contours on img with the brush,
// using the non-zero winding rule. Contours with fewer than three
// points are skipped. Pixels outside the contours are left untouched.
func FillPath(img *image.RGBA, b conic.Brush, contours [][]conic.Point) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	scanner := rasterx.NewScannerGV(w, h, img, bounds)
	scanner.SetColor(ColorFunc(b))
	filler := rasterx.NewFiller(w, h, scanner)

	drawn := false
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		filler.Start(rasterx.ToFixedP(contour[0].X, contour[0].Y))
		for _, pt := range contour[1:] {
			filler.Line(rasterx.ToFixedP(pt.X, pt.Y))
		}
		filler.Stop(true)
		drawn = true
	}
	if drawn {
		filler.Draw()
	}
	filler.Clear()
}

// FillRect fills an axis-aligned rectangle on img with the brush.
func FillRect(img *image.RGBA, b conic.Brush, rect image.Rectangle) {
	x0, y0 := float64(rect.Min.X), float64(rect.Min.Y)
	x1, y1 := float64(rect.Max.X), float64(rect.Max.Y)
	FillPath(img, b, [][]conic.Point{{
		conic.Pt(x0, y0),
		conic.Pt(x1, y0),
		conic.Pt(x1, y1),
		conic.Pt(x0, y1),
	}})
}
