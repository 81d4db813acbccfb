package conic

import (
	"image"

	"golang.org/x/image/draw"
)

// Blit composites src over dst with the source's top-left pixel placed
// at 'at', using Porter-Duff Over. This is how a host typically lands
// a filled Pixmap on its drawing surface.
func Blit(dst draw.Image, src image.Image, at image.Point) {
	r := image.Rectangle{Min: at, Max: at.Add(src.Bounds().Size())}
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

// BlitScaled scales src into rect on dst with Over compositing.
// A nil interpolator defaults to draw.ApproxBiLinear, a reasonable
// quality/speed trade-off for preview surfaces.
func BlitScaled(dst draw.Image, rect image.Rectangle, src image.Image, interp draw.Interpolator) {
	if interp == nil {
		interp = draw.ApproxBiLinear
	}
	interp.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
}
