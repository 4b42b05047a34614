package bitfont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LastPrintable is the last character FromFace rasterizes.
const LastPrintable = '~'

// FromFace rasterizes the printable ASCII range of face into a packed glyph
// table. Pixels whose mask alpha is at least half are lit.
//
// The font height is the face's ascent plus descent and the nominal width its
// widest advance. Runes the face cannot render get a zero width.
func FromFace(face font.Face, mode Mode) (*Font, error) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 {
		return nil, fmt.Errorf("%w: face height %d", ErrInvalidFont, height)
	}

	width := 0
	for r := rune(FirstPrintable); r <= LastPrintable; r++ {
		if adv, ok := face.GlyphAdvance(r); ok && adv.Ceil() > width {
			width = adv.Ceil()
		}
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: face has no printable glyphs", ErrInvalidFont)
	}

	lines := (height-1)/8 + 1
	stride := width*lines + 1
	data := make([]byte, 0, stride*(LastPrintable-FirstPrintable+1))
	dot := fixed.P(0, ascent)
	for r := rune(FirstPrintable); r <= LastPrintable; r++ {
		glyph := make([]byte, stride)
		dr, mask, mp, adv, ok := face.Glyph(dot, r)
		if ok {
			w := min(adv.Ceil(), width)
			glyph[0] = byte(w)
			for y := dr.Min.Y; y < dr.Max.Y; y++ {
				if y < 0 || y >= height {
					continue
				}
				for x := dr.Min.X; x < dr.Max.X; x++ {
					if x < 0 || x >= w {
						continue
					}
					_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
					if a >= 0x8000 {
						glyph[1+x*lines+y/8] |= 1 << uint(y%8)
					}
				}
			}
		}
		data = append(data, glyph...)
	}
	return New(data, width, height, mode)
}

var basic7x13 = sync.OnceValue(func() *Font {
	f, err := FromFace(basicfont.Face7x13, Overwrite)
	if err != nil {
		panic(err)
	}
	return f
})

// Basic7x13 returns the 7x13 fixed font of golang.org/x/image/font/basicfont
// in Overwrite mode.
func Basic7x13() *Font {
	return basic7x13()
}
