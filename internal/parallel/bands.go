package parallel

// Band is a horizontal run of rows inside an output window. Bands
// produced by Bands never overlap, so each one can be filled by a
// different worker with no locking.
type Band struct {
	// Y is the first row of the band, relative to the window top.
	Y int
	// Height is the number of rows in the band.
	Height int
}

// minBandHeight keeps bands tall enough that per-task overhead stays
// small next to the per-pixel work.
const minBandHeight = 8

// Bands splits height rows into at most n contiguous, non-overlapping
// bands covering [0, height). Short windows yield fewer bands than
// requested; a non-positive height yields none.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height/minBandHeight {
		n = height / minBandHeight
		if n == 0 {
			n = 1
		}
	}

	bands := make([]Band, 0, n)
	base := height / n
	extra := height % n
	y := 0
	for i := 0; i < n; i++ {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y: y, Height: h})
		y += h
	}
	return bands
}
