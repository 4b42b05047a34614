// Package bitfont describes proportional bitmap fonts packed in the page layout
// of monochrome display controllers.
//
// A font is an immutable table of glyphs for the printable ASCII range starting
// at FirstPrintable. Every glyph occupies 1+Width*Lines bytes, where Lines is
// the number of 8-row pages needed to hold Height rows:
//
//	[actual width] [col0 line0] [col0 line1] ... [col1 line0] [col1 line1] ...
//
// The first byte is the glyph's real width, which can be narrower than the
// font's nominal Width. Each following byte holds 8 vertical pixels of one
// column, bit 0 being the top row of the line.
package bitfont

import (
	"errors"
	"fmt"
)

// FirstPrintable is the character stored at index 0 of every glyph table.
const FirstPrintable = ' '

// Mode selects how rendered bytes are combined with the existing pixels.
type Mode uint8

const (
	// Overwrite replaces the destination bytes and leaves a blank column
	// after each glyph.
	Overwrite Mode = iota
	// Merge ORs the rendered bits into the destination.
	Merge
	// Invert XORs the rendered bits into the destination. Only bitmap blits
	// accept it; fonts are limited to Overwrite and Merge.
	Invert
)

func (m Mode) String() string {
	switch m {
	case Overwrite:
		return "Overwrite"
	case Merge:
		return "Merge"
	case Invert:
		return "Invert"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ErrInvalidFont is returned when a glyph table does not match its description.
var ErrInvalidFont = errors.New("bitfont: invalid font")

// Font is a read-only glyph table with its geometry.
type Font struct {
	data   []byte
	width  int
	height int
	lines  int
	mode   Mode
}

// Glyph is one character of a Font.
type Glyph struct {
	// Width is the number of columns actually used by the glyph.
	Width int

	lines int
	data  []byte
}

// New validates a packed glyph table and returns the Font describing it.
//
// width is the nominal (maximum) glyph width and height the glyph height in
// pixels. data must hold at least one glyph; trailing bytes that do not form a
// whole glyph are ignored.
func New(data []byte, width, height int, mode Mode) (*Font, error) {
	if width <= 0 || width > 255 {
		return nil, fmt.Errorf("%w: width %d out of range", ErrInvalidFont, width)
	}
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("%w: height %d out of range", ErrInvalidFont, height)
	}
	if mode != Overwrite && mode != Merge {
		return nil, fmt.Errorf("%w: unsupported mode %s", ErrInvalidFont, mode)
	}
	f := &Font{
		data:   data,
		width:  width,
		height: height,
		lines:  (height-1)/8 + 1,
		mode:   mode,
	}
	n := f.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: %d bytes cannot hold a %dx%d glyph", ErrInvalidFont, len(data), width, height)
	}
	stride := f.stride()
	for i := 0; i < n; i++ {
		if w := int(data[i*stride]); w > width {
			return nil, fmt.Errorf("%w: glyph %q is %d wide, font width is %d", ErrInvalidFont, rune(FirstPrintable+i), w, width)
		}
	}
	return f, nil
}

// WithMode returns a copy of f sharing the same table but printing in mode.
func (f *Font) WithMode(mode Mode) (*Font, error) {
	if mode != Overwrite && mode != Merge {
		return nil, fmt.Errorf("%w: unsupported mode %s", ErrInvalidFont, mode)
	}
	c := *f
	c.mode = mode
	return &c, nil
}

// Width returns the nominal glyph width in pixels.
func (f *Font) Width() int { return f.width }

// Height returns the glyph height in pixels.
func (f *Font) Height() int { return f.height }

// Lines returns the number of 8-row pages each glyph spans.
func (f *Font) Lines() int { return f.lines }

// Mode returns the print mode of the font.
func (f *Font) Mode() Mode { return f.mode }

// Len returns the number of glyphs in the table.
func (f *Font) Len() int { return len(f.data) / f.stride() }

func (f *Font) String() string {
	return fmt.Sprintf("bitfont.Font{%dx%d, %d glyphs, %s}", f.width, f.height, f.Len(), f.mode)
}

// Glyph returns the glyph for c. ok is false when c is outside the table.
func (f *Font) Glyph(c byte) (g Glyph, ok bool) {
	if c < FirstPrintable {
		return Glyph{}, false
	}
	i := int(c - FirstPrintable)
	if i >= f.Len() {
		return Glyph{}, false
	}
	start := i * f.stride()
	return Glyph{
		Width: int(f.data[start]),
		lines: f.lines,
		data:  f.data[start+1 : start+f.stride()],
	}, true
}

// Advance returns the horizontal space c takes when printed: its width plus
// one blank column. Characters missing from the table take no space.
func (f *Font) Advance(c byte) int {
	g, ok := f.Glyph(c)
	if !ok {
		return 0
	}
	return g.Width + 1
}

// StringWidth returns the sum of Advance over every byte of s.
func (f *Font) StringWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		w += f.Advance(s[i])
	}
	return w
}

func (f *Font) stride() int {
	return f.width*f.lines + 1
}

// Byte returns the packed byte of column col in page line of the glyph.
func (g Glyph) Byte(col, line int) byte {
	return g.data[col*g.lines+line]
}

// Lines returns the number of pages the glyph spans.
func (g Glyph) Lines() int { return g.lines }
