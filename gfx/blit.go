package gfx

import "github.com/flavioheleno/ssd1306/bitfont"

// columnSource is packed page data: one byte per column per 8-row line.
type columnSource interface {
	Byte(col, line int) byte
}

// blitArea is the part of a source that fits on the surface.
type blitArea struct {
	cols     int  // columns drawn
	lines    int  // source lines drawn
	trailing bool // draw the bits spilling below the last line
	clipped  bool // some source pixel falls outside the surface
}

// clip computes which part of a width×height source with the given number of
// lines, placed at (x, y), fits on the surface.
func (s *Surface) clip(x, y, width, height, lines int) blitArea {
	a := blitArea{cols: width, lines: lines}
	if x+width > s.w {
		a.cols = s.w - x
		a.clipped = true
	}
	first := y / 8
	if first+lines > s.pages {
		a.lines = s.pages - first
		a.clipped = true
	}
	// Rows shifted down by y%8 may reach the page after the last line.
	if last := (y + height - 1) / 8; last >= first+lines {
		if first+lines < s.pages {
			a.trailing = true
		} else {
			a.clipped = true
		}
	}
	return a
}

// blit writes src at (x, y). Each destination byte of line j is the source
// byte of line j shifted down by y%8, completed with the bits shifted out of
// line j-1.
func (s *Surface) blit(src columnSource, x, y int, a blitArea, mode bitfont.Mode) {
	offset := uint(y % 8)
	for j := 0; j < a.lines; j++ {
		py := y + j*8
		for i := 0; i < a.cols; i++ {
			data := src.Byte(i, j) << offset
			if j > 0 {
				data |= src.Byte(i, j-1) >> (8 - offset)
			}
			s.compose(x+i, py, data, mode)
		}
		s.spacer(x+a.cols, py, mode)
	}

	if !a.trailing {
		return
	}
	py := y + a.lines*8
	for i := 0; i < a.cols; i++ {
		spill := src.Byte(i, a.lines-1) >> (8 - offset)
		if mode == bitfont.Invert {
			s.img.SetPageByte(x+i, py, s.img.PageByte(x+i, py)^spill)
		} else {
			s.img.SetPageByte(x+i, py, s.img.PageByte(x+i, py)|spill)
		}
	}
	s.spacer(x+a.cols, py, mode)
}

func (s *Surface) compose(x, y int, data byte, mode bitfont.Mode) {
	switch mode {
	case bitfont.Merge:
		data |= s.img.PageByte(x, y)
	case bitfont.Invert:
		data ^= s.img.PageByte(x, y)
	}
	s.img.SetPageByte(x, y, data)
}

// spacer blanks the column after an overwritten glyph or bitmap.
func (s *Surface) spacer(x, y int, mode bitfont.Mode) {
	if mode == bitfont.Overwrite && x < s.w {
		s.img.SetPageByte(x, y, 0)
	}
}
