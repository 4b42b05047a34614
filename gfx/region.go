package gfx

import "github.com/flavioheleno/ssd1306/image1bit"

type regionOp uint8

const (
	opClear regionOp = iota
	opSet
	opInvert
)

func colorOp(c image1bit.Bit) regionOp {
	if c {
		return opSet
	}
	return opClear
}

// SetRegion sets every pixel of the box with corners (x0, y0) and (x1, y1),
// both inclusive, to c.
func (s *Surface) SetRegion(x0, y0, x1, y1 int, c image1bit.Bit) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("SetRegion", x0, y0, x1, y1)
	}
	s.composite(x0, y0, x1, y1, colorOp(c))
	s.moveTo(x1, y1)
	return nil
}

// InvertRegion flips every pixel of the box with corners (x0, y0) and
// (x1, y1), both inclusive.
func (s *Surface) InvertRegion(x0, y0, x1, y1 int) error {
	if !s.in(x0, y0) || !s.in(x1, y1) {
		return s.outOfBounds("InvertRegion", x0, y0, x1, y1)
	}
	s.composite(x0, y0, x1, y1, opInvert)
	s.moveTo(x1, y1)
	return nil
}

// InvertScreen flips every pixel of the surface.
func (s *Surface) InvertScreen() {
	s.composite(0, 0, s.w-1, s.h-1, opInvert)
}

// composite applies op to an in-bounds box one page byte at a time: a masked
// partial page at the top, whole pages in the middle and a masked partial
// page at the bottom.
func (s *Surface) composite(x0, y0, x1, y1 int, op regionOp) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	height := y1 - y0 + 1
	offset := y0 % 8
	y := y0 - offset

	// Top page: min(height, 8-offset) rows starting at bit offset.
	mask := byte(0xFF)
	var done int
	if height < 8-offset {
		mask >>= uint(8 - height)
		done = height
	} else {
		done = 8 - offset
	}
	mask <<= uint(offset)
	s.applyMask(x0, x1, y, mask, op)

	// Fully covered pages.
	for done+8 <= height {
		done += 8
		y += 8
		s.applyPage(x0, x1, y, op)
	}

	// Bottom page: the remaining rows from bit 0.
	if done < height {
		mask = ^(byte(0xFF) << uint(height-done))
		s.applyMask(x0, x1, y+8, mask, op)
	}
}

// applyMask read-modify-writes the masked bits of one page for columns x0..x1.
func (s *Surface) applyMask(x0, x1, y int, mask byte, op regionOp) {
	for x := x0; x <= x1; x++ {
		data := s.img.PageByte(x, y)
		switch op {
		case opSet:
			data |= mask
		case opClear:
			data &^= mask
		case opInvert:
			data ^= mask
		}
		s.img.SetPageByte(x, y, data)
	}
}

// applyPage writes or inverts whole page bytes for columns x0..x1.
func (s *Surface) applyPage(x0, x1, y int, op regionOp) {
	for x := x0; x <= x1; x++ {
		switch op {
		case opSet:
			s.img.SetPageByte(x, y, 0xFF)
		case opClear:
			s.img.SetPageByte(x, y, 0x00)
		case opInvert:
			s.img.SetPageByte(x, y, ^s.img.PageByte(x, y))
		}
	}
}
