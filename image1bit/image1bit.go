package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel: On (bit value 1) or Off (bit value 0).
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit color to standard RGBA.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as color.GrayModel, lit above half intensity.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image stored as pages of 8 rows, one byte per column.
// Bit i of a page byte is row page*8+i.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 vertical pixels per byte)
	Stride int             // Bytes per page (the width)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8 (one page is 8 rows).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}

	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// Pages returns the number of 8-row pages in the image.
func (p *VerticalLSB) Pages() int {
	return p.Rect.Dy() / 8
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Out of bounds pixels are Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// PageByte returns the whole byte of the page containing row y at column x.
// The caller must ensure (x, y) lies within the image.
func (p *VerticalLSB) PageByte(x, y int) byte {
	return p.Pix[p.byteOffset(x, y)]
}

// SetPageByte stores data as the whole byte of the page containing row y at
// column x. The caller must ensure (x, y) lies within the image.
func (p *VerticalLSB) SetPageByte(x, y int, data byte) {
	p.Pix[p.byteOffset(x, y)] = data
}

// byteOffset returns the index in Pix of the page byte holding (x, y).
// Memory layout: page-major, then column.
func (p *VerticalLSB) byteOffset(x, y int) int {
	return ((y-p.Rect.Min.Y)/8)*p.Stride + (x - p.Rect.Min.X)
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	return p.byteOffset(x, y), 1 << uint((y-p.Rect.Min.Y)&7)
}
