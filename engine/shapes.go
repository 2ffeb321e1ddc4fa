package engine

import "math"

// Vec2 is a 2D point or direction in model or screen space.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Rotate(rad float32) Vec2 {
	sin, cos := math.Sincos(float64(rad))
	x, y := float64(v.X), float64(v.Y)
	return Vec2{
		X: float32(x*cos - y*sin),
		Y: float32(x*sin + y*cos),
	}
}

// DrawRectangle draws the border of the w x h rectangle at (x, y).
func (e *Engine) DrawRectangle(x, y, w, h int, p Pixel) error {
	edges := [4][4]int{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range edges {
		if err := e.DrawLine(l[0], l[1], l[2], l[3], p); err != nil {
			return err
		}
	}
	return nil
}

// DrawWireFrame draws the closed outline of model after rotating by r
// radians, scaling by s and translating by trl, in that order. Transformed
// coordinates are truncated toward zero.
func (e *Engine) DrawWireFrame(model []Vec2, trl Vec2, r, s float32, p Pixel) error {
	n := len(model)
	if n == 0 {
		return nil
	}

	pts := make([]Vec2, n)
	for i, v := range model {
		pts[i] = v.Rotate(r).Scale(s).Add(trl)
	}

	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		if err := e.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), p); err != nil {
			return err
		}
	}
	return nil
}

// DrawTargetWidth returns the width of the draw target, or 0 without one.
func (e *Engine) DrawTargetWidth() int {
	if e.target == nil {
		return 0
	}
	return e.target.Width()
}

// DrawTargetHeight returns the height of the draw target, or 0 without one.
func (e *Engine) DrawTargetHeight() int {
	if e.target == nil {
		return 0
	}
	return e.target.Height()
}

// WrapX wraps x into [0, gridWidth). A zero gridWidth uses the screen width.
func (e *Engine) WrapX(x float32, gridWidth int) float32 {
	if gridWidth <= 0 {
		gridWidth = e.cfg.ScreenWidth
	}
	return wrap(x, float32(gridWidth))
}

// WrapY wraps y into [0, gridHeight). A zero gridHeight uses the screen height.
func (e *Engine) WrapY(y float32, gridHeight int) float32 {
	if gridHeight <= 0 {
		gridHeight = e.cfg.ScreenHeight
	}
	return wrap(y, float32(gridHeight))
}

func wrap(v, size float32) float32 {
	m := float32(math.Mod(float64(v), float64(size)))
	if m < 0 {
		m += size
	}
	if m >= size {
		m = 0
	}
	return m
}

// IsInsideCircle reports whether (x, y) lies strictly inside the circle.
func (e *Engine) IsInsideCircle(cx, cy, radius, x, y float32) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy < radius*radius
}
