package gfx

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/flavioheleno/ssd1306/bitfont"
)

// Bitmap is a W×H monochrome picture in page layout: Lines() rows of W bytes,
// each byte holding 8 vertical pixels with bit 0 on top.
type Bitmap struct {
	Pix []byte
	W   int
	H   int
}

// Lines returns the number of 8-row lines of the bitmap.
func (b Bitmap) Lines() int {
	return (b.H + 7) / 8
}

// Byte returns the packed byte of column col in line. Bits of the last line
// below row H-1 read as zero.
func (b Bitmap) Byte(col, line int) byte {
	data := b.Pix[line*b.W+col]
	if rows := b.H % 8; rows != 0 && line == b.Lines()-1 {
		data &= ^(byte(0xFF) << uint(rows))
	}
	return data
}

// Validate checks that Pix covers the declared size.
func (b Bitmap) Validate() error {
	if b.W <= 0 || b.H <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBitmap, b.W, b.H)
	}
	if need := b.W * b.Lines(); len(b.Pix) < need {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrInvalidBitmap, b.W, b.H, need, len(b.Pix))
	}
	return nil
}

// BitmapFromImage scales src to w×h and packs it, lighting pixels brighter
// than mid gray.
func BitmapFromImage(src image.Image, w, h int) (Bitmap, error) {
	if w <= 0 || h <= 0 {
		return Bitmap{}, fmt.Errorf("%w: size %dx%d", ErrInvalidBitmap, w, h)
	}
	gray := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(gray, gray.Rect, src, src.Bounds(), xdraw.Src, nil)

	b := Bitmap{Pix: make([]byte, w*((h+7)/8)), W: w, H: h}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gray.GrayAt(x, y).Y >= 0x80 {
				b.Pix[(y/8)*w+x] |= 1 << uint(y%8)
			}
		}
	}
	return b, nil
}

// BitmapFromPoints builds a w×h bitmap with the listed pixels lit.
// Points outside the bitmap are ignored.
func BitmapFromPoints(w, h int, pts ...image.Point) Bitmap {
	b := Bitmap{Pix: make([]byte, w*((h+7)/8)), W: w, H: h}
	for _, p := range pts {
		if p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h {
			b.Pix[(p.Y/8)*w+p.X] |= 1 << uint(p.Y%8)
		}
	}
	return b
}

// DrawBitmap copies b at the cursor with the given mode and moves the cursor
// right past it. Parts that do not fit on the surface are dropped.
func (s *Surface) DrawBitmap(b Bitmap, mode bitfont.Mode) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if mode > bitfont.Invert {
		return fmt.Errorf("gfx: unsupported bitmap mode %s", mode)
	}
	x, y := s.x, s.y
	a := s.clip(x, y, b.W, b.H, b.Lines())
	if a.clipped && s.strict {
		return s.outOfBounds("DrawBitmap", x, y, b.W, b.H)
	}
	s.blit(b, x, y, a, mode)
	s.advance(x + a.cols + 1)
	return nil
}

// At implements image.Image so a Bitmap can be drawn with image/draw.
func (b Bitmap) At(x, y int) color.Color {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return color.Black
	}
	if b.Byte(x, y/8)&(1<<uint(y%8)) != 0 {
		return color.White
	}
	return color.Black
}

// Bounds implements image.Image.
func (b Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// ColorModel implements image.Image.
func (b Bitmap) ColorModel() color.Model {
	return color.GrayModel
}
