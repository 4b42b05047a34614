// Package gfx draws on a page-addressed monochrome frame buffer.
//
// A Surface owns an image1bit.VerticalLSB mirroring the controller RAM plus the
// text cursor and the active font. Every primitive is built from whole page
// byte reads and writes: region fills and inverts touch one byte per column
// and page, glyphs and bitmaps are spliced across page boundaries by shifting.
//
// Coordinates outside the surface are silently ignored by default. A Surface
// created with Opts.Strict reports them as ErrOutOfBounds instead.
//
// Every drawing call moves the cursor. Text and bitmaps leave it right of
// what they printed; pixels, lines, boxes and triangles leave it on their last
// coordinate argument and circles on their center. Calls rejected for being
// out of bounds, FillScreen, Clear and InvertScreen keep it in place.
//
// A Surface is not safe for concurrent use.
package gfx

import (
	"errors"
	"fmt"
	"image"

	"github.com/flavioheleno/ssd1306/bitfont"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// Pixel colors.
const (
	Set   = image1bit.On
	Clear = image1bit.Off
)

var (
	// ErrOutOfBounds is reported in strict mode when a call addresses pixels
	// outside the surface.
	ErrOutOfBounds = errors.New("gfx: out of bounds")
	// ErrNoFont is returned by text operations before a font is selected.
	ErrNoFont = errors.New("gfx: no font selected")
	// ErrUnknownGlyph is reported in strict mode for characters missing from
	// the active font.
	ErrUnknownGlyph = errors.New("gfx: character not in font")
	// ErrInvalidBitmap is returned for bitmaps whose data does not cover
	// their declared size.
	ErrInvalidBitmap = errors.New("gfx: invalid bitmap")
)

// Opts is the configuration of a Surface.
type Opts struct {
	// Strict makes out of range coordinates, clipped text and bitmaps and
	// unknown characters return errors instead of being ignored.
	Strict bool
}

// Surface is a drawing context over a page-addressed frame buffer.
type Surface struct {
	img    *image1bit.VerticalLSB
	w, h   int
	pages  int
	strict bool

	// Cursor
	x, y int
	font *bitfont.Font
}

// New creates a blank w×h surface. h must be a multiple of 8.
//
// opts can be nil to use defaults.
func New(w, h int, opts *Opts) (*Surface, error) {
	if w <= 0 || h <= 0 || h%8 != 0 {
		return nil, fmt.Errorf("gfx: invalid surface size %dx%d", w, h)
	}
	return Wrap(image1bit.NewVerticalLSB(image.Rect(0, 0, w, h)), opts)
}

// Wrap creates a surface drawing into img. The image must start at the origin.
func Wrap(img *image1bit.VerticalLSB, opts *Opts) (*Surface, error) {
	if img == nil {
		return nil, errors.New("gfx: nil image")
	}
	r := img.Bounds()
	if r.Min != (image.Point{}) {
		return nil, fmt.Errorf("gfx: image bounds %v must start at the origin", r)
	}
	if r.Dx() <= 0 || r.Dy() <= 0 || r.Dy()%8 != 0 || len(img.Pix) < r.Dx()*r.Dy()/8 {
		return nil, fmt.Errorf("gfx: invalid image %v", r)
	}
	if opts == nil {
		opts = &Opts{}
	}
	return &Surface{
		img:    img,
		w:      r.Dx(),
		h:      r.Dy(),
		pages:  r.Dy() / 8,
		strict: opts.Strict,
	}, nil
}

// Image returns the frame buffer the surface draws into.
func (s *Surface) Image() *image1bit.VerticalLSB {
	return s.img
}

// Bounds returns the surface bounds.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.h }

// Pages returns the number of 8-row pages.
func (s *Surface) Pages() int { return s.pages }

// Strict reports whether the surface reports clipping as errors.
func (s *Surface) Strict() bool { return s.strict }

func (s *Surface) String() string {
	return fmt.Sprintf("gfx.Surface{%dx%d}", s.w, s.h)
}

// Pixel returns the color of the pixel at (x, y); Clear outside the surface.
func (s *Surface) Pixel(x, y int) image1bit.Bit {
	if !s.in(x, y) {
		return Clear
	}
	return s.img.PageByte(x, y)&(1<<uint(y%8)) != 0
}

// SetPixel sets a single pixel and moves the cursor onto it.
func (s *Surface) SetPixel(x, y int, c image1bit.Bit) error {
	if !s.in(x, y) {
		return s.outOfBounds("SetPixel", x, y)
	}
	s.plot(x, y, c)
	s.moveTo(x, y)
	return nil
}

// FillScreen sets every pixel to c.
func (s *Surface) FillScreen(c image1bit.Bit) {
	var b byte
	if c {
		b = 0xFF
	}
	for page := 0; page < s.pages; page++ {
		for x := 0; x < s.w; x++ {
			s.img.SetPageByte(x, page*8, b)
		}
	}
}

// Clear clears every pixel. The cursor is not moved.
func (s *Surface) Clear() {
	s.FillScreen(Clear)
}

// ClearLine clears page line and moves the cursor to its start.
func (s *Surface) ClearLine(line int) error {
	if line < 0 || line >= s.pages {
		return s.outOfBounds("ClearLine", line)
	}
	for x := 0; x < s.w; x++ {
		s.img.SetPageByte(x, line*8, 0)
	}
	s.GotoXY(0, line*8)
	return nil
}

// plot is SetPixel without bounds checking.
func (s *Surface) plot(x, y int, c image1bit.Bit) {
	data := s.img.PageByte(x, y)
	if c {
		data |= 1 << uint(y%8)
	} else {
		data &^= 1 << uint(y%8)
	}
	s.img.SetPageByte(x, y, data)
}

func (s *Surface) in(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

func (s *Surface) outOfBounds(op string, args ...int) error {
	if !s.strict {
		return nil
	}
	return fmt.Errorf("gfx: %s%v on %dx%d: %w", op, args, s.w, s.h, ErrOutOfBounds)
}
