package conic

import "fmt"

// maxChannels is the widest channel layout (RGBA).
const maxChannels = 4

// blender turns a gradient fraction into output channel bytes.
//
// The RGBA and gray rendering paths share the angle, cycle-folding,
// and anti-aliasing logic bit for bit; the channel count and source
// channel values held here are the only per-layout state. Keeping the
// variation in data rather than in duplicated control flow is what
// keeps the two paths in lockstep.
type blender struct {
	n     int
	start [maxChannels]int
	end   [maxChannels]int
}

// rgbaBlender blends all four channels, R, G, B, A byte order.
func rgbaBlender(start, end RGBA) blender {
	return blender{n: 4, start: start.rgba8(), end: end.rgba8()}
}

// grayBlender blends the single intensity channel.
func grayBlender(start, end RGBA) blender {
	var b blender
	b.n = 1
	b.start[0] = start.gray8()
	b.end[0] = end.gray8()
	return b
}

// channels returns the number of output bytes per pixel.
func (b *blender) channels() int { return b.n }

// blend writes the channel values at fraction t into px.
// Each channel is start + t*(end-start), truncated to an integer, so
// every output byte lies between the two endpoint channel values.
func (b *blender) blend(t float64, px []byte) {
	for c := 0; c < b.n; c++ {
		px[c] = byte(int(float64(b.start[c]) + t*float64(b.end[c]-b.start[c])))
	}
}

// accumulate adds the truncated channel values at fraction t to acc.
// Truncating per sample and averaging in integers reproduces the
// reference renderer's sub-pixel rounding exactly.
func (b *blender) accumulate(t float64, acc *[maxChannels]int) {
	for c := 0; c < b.n; c++ {
		acc[c] += int(float64(b.start[c]) + t*float64(b.end[c]-b.start[c]))
	}
}

// average divides the accumulated channels by the sample count and
// writes the result into px.
func (b *blender) average(acc *[maxChannels]int, samples int, px []byte) {
	for c := 0; c < b.n; c++ {
		px[c] = byte(acc[c] / samples)
	}
}

// FillRGBA renders the gradient into dst for the window of the given
// width and height whose top-left pixel is (startX, startY) in the
// gradient's coordinate space. The output is row-major, four bytes per
// pixel in R, G, B, A order; dst must hold at least
// width*height*4 bytes.
//
// A non-positive width or height, or a degenerate drag, is a no-op
// that leaves dst untouched.
func (g *Gradient) FillRGBA(dst []byte, startX, startY, width, height int) {
	g.fill(dst, startX, startY, width, height, rgbaBlender(g.start, g.end))
}

// FillGray renders the gradient into dst as single-channel intensity,
// one byte per pixel, row-major; dst must hold at least width*height
// bytes. The intensity is blended from the red channel of each
// endpoint color and agrees exactly with the red channel FillRGBA
// produces for the same window.
//
// A non-positive width or height, or a degenerate drag, is a no-op
// that leaves dst untouched.
func (g *Gradient) FillGray(dst []byte, startX, startY, width, height int) {
	g.fill(dst, startX, startY, width, height, grayBlender(g.start, g.end))
}

// fill is the shared scanline loop behind both channel layouts.
func (g *Gradient) fill(dst []byte, startX, startY, width, height int, bl blender) {
	if width <= 0 || height <= 0 {
		return
	}
	if g.drag.IsDegenerate() {
		return
	}

	n := bl.channels()
	if len(dst) < width*height*n {
		panic(fmt.Sprintf("conic: fill buffer holds %d bytes, window %dx%d needs %d",
			len(dst), width, height, width*height*n))
	}

	s := g.newSampler(bl)
	for j := 0; j < height; j++ {
		y := float64(startY + j)
		row := dst[j*width*n : (j+1)*width*n]
		for i := 0; i < width; i++ {
			x := float64(startX + i)
			s.sample(x, y, row[i*n:(i+1)*n])
		}
	}
}
