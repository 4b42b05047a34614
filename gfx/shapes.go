package gfx

import "github.com/flavioheleno/ssd1306/image1bit"

// DrawLine draws a line between (x0, y0) and (x1, y1), both inclusive.
//
// Horizontal and vertical lines are region fills; other lines are rasterized
// with Bresenham's algorithm.
func (s *Surface) DrawLine(x0, y0, x1, y1 int, c image1bit.Bit) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("DrawLine", x0, y0, x1, y1)
	}
	s.line(x0, y0, x1, y1, c)
	s.moveTo(x1, y1)
	return nil
}

func (s *Surface) line(x0, y0, x1, y1 int, c image1bit.Bit) {
	switch {
	case x0 == x1:
		s.composite(x0, y0, x0, y1, colorOp(c))
	case y0 == y1:
		s.composite(x0, y0, x1, y0, colorOp(c))
	default:
		s.bresenham(x0, y0, x1, y1, c)
	}
}

func (s *Surface) bresenham(x0, y0, x1, y1 int, c image1bit.Bit) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	e := dx / 2
	step := -1
	if y0 < y1 {
		step = 1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			s.plot(y, x, c)
		} else {
			s.plot(x, y, c)
		}
		e -= dy
		if e < 0 {
			y += step
			e += dx
		}
	}
}

// DrawRectangle draws the outline of the box with corners (x0, y0) and
// (x1, y1).
func (s *Surface) DrawRectangle(x0, y0, x1, y1 int, c image1bit.Bit) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("DrawRectangle", x0, y0, x1, y1)
	}
	s.line(x0, y0, x1, y0, c)
	s.line(x0, y1, x1, y1, c)
	s.line(x0, y0, x0, y1, c)
	s.line(x1, y0, x1, y1, c)
	s.moveTo(x1, y1)
	return nil
}

// DrawFilledRectangle fills the box with corners (x0, y0) and (x1, y1).
func (s *Surface) DrawFilledRectangle(x0, y0, x1, y1 int, c image1bit.Bit) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("DrawFilledRectangle", x0, y0, x1, y1)
	}
	s.composite(x0, y0, x1, y1, colorOp(c))
	s.moveTo(x1, y1)
	return nil
}

// DrawRoundRectangle draws the outline of a box with quarter circle corners
// of radius r. The radius is limited to half the shorter side.
func (s *Surface) DrawRoundRectangle(x0, y0, x1, y1, r int, c image1bit.Bit) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("DrawRoundRectangle", x0, y0, x1, y1, r)
	}
	defer s.moveTo(x1, y1)
	x0, y0, x1, y1, r = roundBox(x0, y0, x1, y1, r)

	s.line(x0+r, y0, x1-r, y0, c) // top
	s.line(x0+r, y1, x1-r, y1, c) // bottom
	s.line(x0, y0+r, x0, y1-r, c) // left
	s.line(x1, y0+r, x1, y1-r, c) // right

	t := 3 - 2*r
	x, y := 0, r
	for x <= y {
		// Upper left.
		s.plot(x0+r-x, y0+r-y, c)
		s.plot(x0+r-y, y0+r-x, c)
		// Upper right.
		s.plot(x1-r+x, y0+r-y, c)
		s.plot(x1-r+y, y0+r-x, c)
		// Lower left.
		s.plot(x0+r-x, y1-r+y, c)
		s.plot(x0+r-y, y1-r+x, c)
		// Lower right.
		s.plot(x1-r+x, y1-r+y, c)
		s.plot(x1-r+y, y1-r+x, c)

		if t < 0 {
			t += 4*x + 6
		} else {
			t += 4*(x-y) + 10
			y--
		}
		x++
	}
	return nil
}

// DrawFilledRoundRectangle fills a box with quarter circle corners of radius
// r. The radius is limited to half the shorter side.
func (s *Surface) DrawFilledRoundRectangle(x0, y0, x1, y1, r int, c image1bit.Bit) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("DrawFilledRoundRectangle", x0, y0, x1, y1, r)
	}
	defer s.moveTo(x1, y1)
	x0, y0, x1, y1, r = roundBox(x0, y0, x1, y1, r)

	// Center block, then the corner arcs as vertical spans.
	s.composite(x0+r, y0, x1-r, y1, colorOp(c))

	t := 3 - 2*r
	x, y := 0, r
	for x <= y {
		s.line(x0+r-x, y0+r-y, x0+r-x, y1-r+y, c)
		s.line(x0+r-y, y0+r-x, x0+r-y, y1-r+x, c)
		s.line(x1-r+x, y0+r-y, x1-r+x, y1-r+y, c)
		s.line(x1-r+y, y0+r-x, x1-r+y, y1-r+x, c)

		if t < 0 {
			t += 4*x + 6
		} else {
			t += 4*(x-y) + 10
			y--
		}
		x++
	}
	return nil
}

// roundBox orders the corners and limits the radius so every corner point
// stays inside the box.
func roundBox(x0, y0, x1, y1, r int) (int, int, int, int, int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r = max(0, min(r, (x1-x0)/2, (y1-y0)/2))
	return x0, y0, x1, y1, r
}

// DrawTriangle draws the outline of a triangle, edges in vertex order.
func (s *Surface) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c image1bit.Bit) error {
	if !s.in(x1, y1) || !s.in(x2, y2) || !s.in(x3, y3) {
		return s.outOfBounds("DrawTriangle", x1, y1, x2, y2, x3, y3)
	}
	s.line(x1, y1, x2, y2, c)
	s.line(x2, y2, x3, y3, c)
	s.line(x3, y3, x1, y1, c)
	s.moveTo(x3, y3)
	return nil
}

// DrawFilledTriangle fills a triangle with one horizontal span per row.
func (s *Surface) DrawFilledTriangle(x1, y1, x2, y2, x3, y3 int, c image1bit.Bit) error {
	if !s.in(x1, y1) || !s.in(x2, y2) || !s.in(x3, y3) {
		return s.outOfBounds("DrawFilledTriangle", x1, y1, x2, y2, x3, y3)
	}
	defer s.moveTo(x3, y3)

	// Order the vertices top to bottom.
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	if y1 == y3 {
		// Degenerate: every vertex on one row.
		s.span(min(x1, x2, x3), max(x1, x2, x3), y1, c)
		return nil
	}

	// The long edge from top to bottom vertex is never horizontal here.
	m3 := float64(x3-x1) / float64(y3-y1)

	if y1 == y2 {
		s.span(x1, x2, y1, c)
	} else {
		m1 := float64(x1-x2) / float64(y1-y2)
		for sl := y1; sl <= y2; sl++ {
			a := int(m1*float64(sl-y1) + float64(x1))
			b := int(m3*float64(sl-y1) + float64(x1))
			s.span(a, b, sl, c)
		}
	}

	if y2 == y3 {
		s.span(x2, x3, y3, c)
	} else {
		m2 := float64(x2-x3) / float64(y2-y3)
		for sl := y2; sl <= y3; sl++ {
			a := int(m2*float64(sl-y3) + float64(x3))
			b := int(m3*float64(sl-y1) + float64(x1))
			s.span(a, b, sl, c)
		}
	}
	return nil
}

// span fills row y between xa and xb in any order, clamped to the surface.
func (s *Surface) span(xa, xb, y int, c image1bit.Bit) {
	xa = max(0, min(xa, s.w-1))
	xb = max(0, min(xb, s.w-1))
	s.composite(xa, y, xb, y, colorOp(c))
}

// DrawCircle draws the outline of a circle with the midpoint algorithm.
// The whole circle must fit on the surface.
func (s *Surface) DrawCircle(cx, cy, r int, c image1bit.Bit) error {
	if !s.circleIn(cx, cy, r) {
		return s.outOfBounds("DrawCircle", cx, cy, r)
	}

	x, y := r, 0
	dx := 1 - 2*r
	dy := 1
	e := 0
	for x >= y {
		s.plot(cx+x, cy+y, c)
		s.plot(cx-x, cy+y, c)
		s.plot(cx-x, cy-y, c)
		s.plot(cx+x, cy-y, c)
		s.plot(cx+y, cy+x, c)
		s.plot(cx-y, cy+x, c)
		s.plot(cx-y, cy-x, c)
		s.plot(cx+y, cy-x, c)

		y++
		e += dy
		dy += 2
		if 2*e+dx > 0 {
			x--
			e += dx
			dx += 2
		}
	}
	s.moveTo(cx, cy)
	return nil
}

// DrawFilledCircle fills a circle with vertical spans.
// The whole circle must fit on the surface.
func (s *Surface) DrawFilledCircle(cx, cy, r int, c image1bit.Bit) error {
	if !s.circleIn(cx, cy, r) {
		return s.outOfBounds("DrawFilledCircle", cx, cy, r)
	}
	op := colorOp(c)

	s.composite(cx, cy-r, cx, cy+r, op)

	f := 1 - r
	ddx := 1
	ddy := -2 * r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx

		s.composite(cx+x, cy-y, cx+x, cy+y, op)
		s.composite(cx-x, cy-y, cx-x, cy+y, op)
		s.composite(cx+y, cy-x, cx+y, cy+x, op)
		s.composite(cx-y, cy-x, cx-y, cy+x, op)
	}
	s.moveTo(cx, cy)
	return nil
}

func (s *Surface) circleIn(cx, cy, r int) bool {
	return r >= 0 && s.in(cx-r, cy-r) && s.in(cx+r, cy+r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
