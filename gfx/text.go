package gfx

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/bitfont"
)

// GotoX moves the cursor to column x. Columns outside the surface are ignored.
func (s *Surface) GotoX(x int) {
	if x >= 0 && x < s.w {
		s.x = x
	}
}

// GotoY moves the cursor to row y. Rows outside the surface are ignored.
func (s *Surface) GotoY(y int) {
	if y >= 0 && y < s.h {
		s.y = y
	}
}

// GotoXY moves the cursor to (x, y), each axis ignored when out of range.
func (s *Surface) GotoXY(x, y int) {
	s.GotoX(x)
	s.GotoY(y)
}

// GotoLine moves the cursor to the top row of page line.
func (s *Surface) GotoLine(line int) {
	if line >= 0 && line < s.pages {
		s.y = line * 8
	}
}

// X returns the cursor column.
func (s *Surface) X() int { return s.x }

// Y returns the cursor row.
func (s *Surface) Y() int { return s.y }

// Line returns the page holding the cursor row.
func (s *Surface) Line() int { return s.y / 8 }

// SetFont selects the font used by the text operations.
func (s *Surface) SetFont(f *bitfont.Font) {
	s.font = f
}

// Font returns the selected font, nil if none.
func (s *Surface) Font() *bitfont.Font {
	return s.font
}

// PutChar renders c at the cursor and moves the cursor right past the glyph
// and its spacing column. The cursor row is unchanged.
//
// Glyphs are clipped at the surface edges; characters missing from the font
// are skipped.
func (s *Surface) PutChar(c byte) error {
	if s.font == nil {
		return ErrNoFont
	}
	g, ok := s.font.Glyph(c)
	if !ok {
		if s.strict {
			return fmt.Errorf("gfx: PutChar(%q): %w", c, ErrUnknownGlyph)
		}
		return nil
	}
	x, y := s.x, s.y
	a := s.clip(x, y, g.Width, s.font.Height(), g.Lines())
	if a.clipped && s.strict {
		return s.outOfBounds("PutChar", x, y, g.Width, s.font.Height())
	}
	s.blit(g, x, y, a, s.font.Mode())
	s.advance(x + g.Width + 1)
	return nil
}

// PutString renders text from the cursor on a single line. It stops before
// the first character that could cross the right edge of the surface; there
// is no wrapping.
func (s *Surface) PutString(text string) error {
	if s.font == nil {
		return ErrNoFont
	}
	for i := 0; i < len(text); i++ {
		if s.x+s.font.Width() >= s.w {
			if s.strict {
				return fmt.Errorf("gfx: PutString truncated at %q: %w", text[i:], ErrOutOfBounds)
			}
			return nil
		}
		if err := s.PutChar(text[i]); err != nil {
			return err
		}
	}
	return nil
}

// GlyphWidth returns the space c takes when printed with the selected font,
// spacing column included.
func (s *Surface) GlyphWidth(c byte) int {
	if s.font == nil {
		return 0
	}
	return s.font.Advance(c)
}

// StringWidth returns the space text takes when printed with the selected
// font.
func (s *Surface) StringWidth(text string) int {
	if s.font == nil {
		return 0
	}
	return s.font.StringWidth(text)
}

// moveTo leaves the cursor on the last point given to a drawing call. The
// point has been bounds checked by the caller.
func (s *Surface) moveTo(x, y int) {
	s.x, s.y = x, y
}

// advance moves the cursor to column x, stopping at the last column.
func (s *Surface) advance(x int) {
	s.x = min(x, s.w-1)
}
