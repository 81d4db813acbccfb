package conic

import (
	"image"
	"image/color"
	"testing"
)

func TestBlit(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))

	pm := NewPixmap(5, 5)
	pm.Clear(Red)

	Blit(dst, pm, image.Pt(3, 4))

	// Inside the blit rect.
	if got := dst.RGBAAt(5, 6); got.R != 255 || got.A != 255 {
		t.Errorf("pixel inside blit = %+v, want opaque red", got)
	}
	// Outside stays untouched.
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("pixel outside blit = %+v, want zero", got)
	}
	if got := dst.RGBAAt(9, 4); got != (color.RGBA{}) {
		t.Errorf("pixel right of blit = %+v, want zero", got)
	}
}

func TestBlit_OverCompositing(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			dst.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	// A transparent source must leave the blue backdrop alone.
	pm := NewPixmap(4, 4)
	Blit(dst, pm, image.Point{})

	if got := dst.RGBAAt(2, 2); got.B != 255 || got.A != 255 {
		t.Errorf("transparent blit changed backdrop: %+v", got)
	}
}

func TestBlitScaled(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))

	pm := NewPixmap(2, 2)
	pm.Clear(Green)

	BlitScaled(dst, image.Rect(0, 0, 8, 8), pm, nil)

	if got := dst.RGBAAt(4, 4); got.G != 255 || got.A != 255 {
		t.Errorf("scaled pixel = %+v, want opaque green", got)
	}
	// Outside the target rect stays untouched.
	if got := dst.RGBAAt(12, 12); got != (color.RGBA{}) {
		t.Errorf("pixel outside scale rect = %+v, want zero", got)
	}
}

func TestBlit_GradientPixmap(t *testing.T) {
	// End to end: fill a pixmap with the gradient, blit it onto a
	// surface, and check a pixel against the brush query.
	g := NewGradient(DragFromCoords(8, 8, 16, 8), Black, White, CycleReflect)

	pm := NewPixmap(16, 16)
	g.FillRGBA(pm.Data(), 0, 0, 16, 16)

	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))
	Blit(dst, pm, image.Point{})

	want := g.ColorAt(0, 8) // directly behind the start: end color
	got := FromColor(dst.At(0, 8))
	if !colorsEqual(got, want, 0.02) {
		t.Errorf("blitted pixel = %+v, want %+v", got, want)
	}
}
