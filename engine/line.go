package engine

// PatternSolid is the line pattern used by DrawLine.
const PatternSolid uint32 = 0xFFFFFFFF

// DrawLine draws a solid line between both endpoints, inclusive.
func (e *Engine) DrawLine(x1, y1, x2, y2 int, p Pixel) error {
	return e.DrawLinePattern(x1, y1, x2, y2, p, PatternSolid)
}

// DrawLinePattern draws a line with Bresenham's algorithm. Every pixel goes
// through Draw and the first error stops the line.
//
// The pattern is accepted for call compatibility; lines are always solid.
func (e *Engine) DrawLinePattern(x1, y1, x2, y2 int, p Pixel, pattern uint32) error {
	return walkLine(x1, y1, x2, y2, func(x, y int) error {
		return e.Draw(x, y, p)
	})
}

// walkLine calls plot for every pixel of the line from (x1, y1) to (x2, y2)
// in increasing major-axis order. It stops at the first error.
func walkLine(x1, y1, x2, y2 int, plot func(x, y int) error) error {
	rise := y2 - y1
	run := x2 - x1

	if run == 0 {
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			if err := plot(x1, y); err != nil {
				return err
			}
		}
		return nil
	}

	absRise := absInt(rise)
	absRun := absInt(run)
	adjust := 1
	if (rise < 0) != (run < 0) && rise != 0 {
		adjust = -1
	}
	offset := 0

	if ceilDiv(absRise, absRun) <= 1 {
		// More horizontal: step x, occasionally y.
		delta := absRise * 2
		threshold := absRun
		thresholdInc := absRun * 2
		y := y1
		if x2 < x1 {
			x1, x2 = x2, x1
			y = y2
		}
		for x := x1; x <= x2; x++ {
			if err := plot(x, y); err != nil {
				return err
			}
			offset += delta
			if offset >= threshold {
				y += adjust
				threshold += thresholdInc
			}
		}
		return nil
	}

	// More vertical: step y, occasionally x.
	delta := absRun * 2
	threshold := absRise
	thresholdInc := absRise * 2
	x := x1
	if y2 < y1 {
		y1, y2 = y2, y1
		x = x2
	}
	for y := y1; y <= y2; y++ {
		if err := plot(x, y); err != nil {
			return err
		}
		offset += delta
		if offset >= threshold {
			x += adjust
			threshold += thresholdInc
		}
	}
	return nil
}

// ceilDiv returns ceil(a/b) for b != 0.
func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
