package engine

import (
	"math"
	"testing"
)

func countColor(s *Sprite, p Pixel) int {
	n := 0
	for _, v := range s.Pixels() {
		if Pixel(v) == p {
			n++
		}
	}
	return n
}

func TestDrawRectangleBorder(t *testing.T) {
	e := newTestEngine(t, 8, 6)
	if err := e.DrawRectangle(1, 1, 4, 3, Red); err != nil {
		t.Fatalf("DrawRectangle: %v", err)
	}
	s := e.DrawTarget()
	if got := countColor(s, Red); got != 2*(4+3) {
		t.Fatalf("border pixels = %d, want %d", got, 2*(4+3))
	}
	for _, c := range []pt{{1, 1}, {5, 1}, {5, 4}, {1, 4}} {
		if s.GetPixel(c.x, c.y) != Red {
			t.Fatalf("corner %v not drawn", c)
		}
	}
	for y := 2; y <= 3; y++ {
		for x := 2; x <= 4; x++ {
			if s.GetPixel(x, y) == Red {
				t.Fatalf("interior %d,%d filled", x, y)
			}
		}
	}
}

func TestDrawWireFrameSquare(t *testing.T) {
	e := newTestEngine(t, 12, 12)
	model := []Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	if err := e.DrawWireFrame(model, Vec2{5, 5}, 0, 2, White); err != nil {
		t.Fatalf("DrawWireFrame: %v", err)
	}
	s := e.DrawTarget()
	for _, c := range []pt{{3, 3}, {7, 3}, {7, 7}, {3, 7}, {5, 3}, {3, 5}} {
		if s.GetPixel(c.x, c.y) != White {
			t.Fatalf("outline point %v not drawn", c)
		}
	}
	if s.GetPixel(5, 5) == White {
		t.Fatal("wireframe filled its interior")
	}
	if got := countColor(s, White); got != 16 {
		t.Fatalf("outline pixels = %d, want 16", got)
	}
}

func TestDrawWireFrameEmptyModel(t *testing.T) {
	e := newTestEngine(t, 2, 2)
	if err := e.DrawWireFrame(nil, Vec2{}, 0, 1, White); err != nil {
		t.Fatalf("DrawWireFrame(nil): %v", err)
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(float64(v.X)) > 1e-6 || math.Abs(float64(v.Y-1)) > 1e-6 {
		t.Fatalf("Rotate(pi/2) = %v, want {0 1}", v)
	}
	w := Vec2{2, 3}.Scale(2).Add(Vec2{1, 1})
	if w != (Vec2{5, 7}) {
		t.Fatalf("Scale/Add = %v, want {5 7}", w)
	}
}

func TestWrap(t *testing.T) {
	e := newTestEngine(t, 10, 20)
	cases := []struct {
		in, want float32
		grid     int
		y        bool
	}{
		{3, 3, 0, false},
		{10, 0, 0, false},
		{-1, 9, 0, false},
		{-21, 19, 0, true},
		{25, 5, 0, true},
		{7, 2, 5, false},
	}
	for _, tc := range cases {
		got := e.WrapX(tc.in, tc.grid)
		if tc.y {
			got = e.WrapY(tc.in, tc.grid)
		}
		if got != tc.want {
			t.Fatalf("wrap(%v, grid=%d, y=%v) = %v, want %v", tc.in, tc.grid, tc.y, got, tc.want)
		}
	}
}

func TestIsInsideCircle(t *testing.T) {
	e := newTestEngine(t, 1, 1)
	if !e.IsInsideCircle(0, 0, 2, 1, 1) {
		t.Fatal("(1,1) should be inside r=2")
	}
	if e.IsInsideCircle(0, 0, 2, 2, 0) {
		t.Fatal("(2,0) on the edge should be outside")
	}
}
