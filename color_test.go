package conic

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"opaque with hash", "#ff0000", Red},
		{"opaque without hash", "00ff00", Green},
		{"with alpha", "#0000ff80", RGBA{B: 1, A: 128.0 / 255}},
		{"white", "#ffffff", White},
		{"invalid length", "#ff00", Black},
		{"garbage", "not-a-color", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestFromColor_RoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	c := FromColor(orig)
	back := c.Color().(color.NRGBA)
	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %+v, want Black", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %+v, want White", got)
	}
	mid := Black.Lerp(White, 0.5)
	if !colorsEqual(mid, RGBA{0.5, 0.5, 0.5, 1}, 1e-9) {
		t.Errorf("Lerp(0.5) = %+v, want mid gray", mid)
	}
}

func TestRGBA_Channels8(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	ch := c.rgba8()
	if ch[0] != 255 || ch[3] != 255 {
		t.Errorf("rgba8() = %v, want full red and alpha", ch)
	}
	if ch[1] != 127 {
		t.Errorf("rgba8() green = %d, want 127", ch[1])
	}
	if ch[2] != 0 {
		t.Errorf("rgba8() blue = %d, want 0", ch[2])
	}

	// Gray is the red channel.
	if got := c.gray8(); got != 255 {
		t.Errorf("gray8() = %d, want 255", got)
	}
	if got := (RGBA{R: 0.25, G: 1, B: 1, A: 1}).gray8(); got != 63 {
		t.Errorf("gray8() = %d, want 63", got)
	}

	// Out-of-range components clamp to [0, 255].
	wild := RGBA{R: 2, G: -1, B: 0.5, A: 3}
	ch = wild.rgba8()
	if ch[0] != 255 || ch[1] != 0 || ch[3] != 255 {
		t.Errorf("rgba8() of out-of-range color = %v", ch)
	}
}
