package gfx

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/flavioheleno/ssd1306/image1bit"
)

func newSurface(t *testing.T, w, h int, strict bool) *Surface {
	t.Helper()
	s, err := New(w, h, &Opts{Strict: strict})
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return s
}

// fillPattern fills the frame buffer with a deterministic non-trivial pattern.
func fillPattern(s *Surface) {
	for i := range s.img.Pix {
		s.img.Pix[i] = byte(i*37 + 11)
	}
}

func snapshot(s *Surface) []byte {
	return append([]byte(nil), s.img.Pix...)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"128x64", 128, 64, false},
		{"128x32", 128, 32, false},
		{"96x16", 96, 16, false},
		{"zero width", 0, 64, true},
		{"zero height", 128, 0, true},
		{"height not page aligned", 128, 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.w, tt.h, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Width() != tt.w || s.Height() != tt.h || s.Pages() != tt.h/8 {
				t.Errorf("geometry = %dx%d/%d, want %dx%d/%d", s.Width(), s.Height(), s.Pages(), tt.w, tt.h, tt.h/8)
			}
			if len(s.Image().Pix) != tt.w*tt.h/8 {
				t.Errorf("len(Pix) = %d, want %d", len(s.Image().Pix), tt.w*tt.h/8)
			}
			if s.Strict() {
				t.Error("nil opts should not be strict")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 16, 8))
	s, err := Wrap(img, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetPixel(3, 2, Set); err != nil {
		t.Fatal(err)
	}
	if img.Pix[3] != 0x04 {
		t.Errorf("wrapped image Pix[3] = 0x%02X, want 0x04", img.Pix[3])
	}

	if _, err := Wrap(image1bit.NewVerticalLSB(image.Rect(8, 0, 16, 8)), nil); err == nil {
		t.Error("Wrap should reject images not starting at the origin")
	}
	if _, err := Wrap(nil, nil); err == nil {
		t.Error("Wrap should reject a nil image")
	}
	if got, want := s.String(), "gfx.Surface{16x8}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetPixel(t *testing.T) {
	s := newSurface(t, 128, 64, false)
	fillPattern(s)

	for _, p := range []image.Point{{0, 0}, {127, 63}, {5, 7}, {64, 8}, {100, 33}} {
		for _, c := range []image1bit.Bit{Set, Clear} {
			before := snapshot(s)
			if err := s.SetPixel(p.X, p.Y, c); err != nil {
				t.Fatal(err)
			}
			if got := s.Pixel(p.X, p.Y); got != c {
				t.Errorf("Pixel(%d, %d) = %v, want %v", p.X, p.Y, got, c)
			}
			// Only the addressed bit may change.
			idx := (p.Y/8)*128 + p.X
			for i := range before {
				mask := byte(0xFF)
				if i == idx {
					mask = ^byte(1 << uint(p.Y%8))
				}
				if before[i]&mask != s.img.Pix[i]&mask {
					t.Fatalf("SetPixel(%d, %d, %v) changed Pix[%d] from 0x%02X to 0x%02X",
						p.X, p.Y, c, i, before[i], s.img.Pix[i])
				}
			}
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	s := newSurface(t, 16, 8, false)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {16, 0}, {0, 8}} {
		if err := s.SetPixel(p.X, p.Y, Set); err != nil {
			t.Errorf("SetPixel(%d, %d) error = %v, want nil", p.X, p.Y, err)
		}
	}
	if !bytes.Equal(s.img.Pix, make([]byte, 16)) {
		t.Errorf("out of bounds SetPixel modified the buffer: % X", s.img.Pix)
	}

	strict := newSurface(t, 16, 8, true)
	if err := strict.SetPixel(16, 0, Set); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("strict SetPixel error = %v, want ErrOutOfBounds", err)
	}
	if strict.Pixel(16, 0) != Clear {
		t.Error("Pixel outside the surface should be Clear")
	}
}

func TestFillScreen(t *testing.T) {
	s := newSurface(t, 32, 16, false)

	s.FillScreen(Set)
	if !bytes.Equal(s.img.Pix, bytes.Repeat([]byte{0xFF}, 64)) {
		t.Errorf("FillScreen(Set) = % X", s.img.Pix)
	}
	s.Clear()
	if !bytes.Equal(s.img.Pix, make([]byte, 64)) {
		t.Errorf("Clear() = % X", s.img.Pix)
	}
}

func TestClearLine(t *testing.T) {
	s := newSurface(t, 8, 24, false)
	s.FillScreen(Set)
	s.GotoXY(5, 3)

	if err := s.ClearLine(1); err != nil {
		t.Fatal(err)
	}
	want := append(append(bytes.Repeat([]byte{0xFF}, 8), make([]byte, 8)...), bytes.Repeat([]byte{0xFF}, 8)...)
	if !bytes.Equal(s.img.Pix, want) {
		t.Errorf("ClearLine(1) = % X, want % X", s.img.Pix, want)
	}
	if s.X() != 0 || s.Y() != 8 {
		t.Errorf("cursor = (%d, %d), want (0, 8)", s.X(), s.Y())
	}

	before := snapshot(s)
	if err := s.ClearLine(3); err != nil {
		t.Errorf("ClearLine(3) error = %v, want nil", err)
	}
	if !bytes.Equal(s.img.Pix, before) {
		t.Error("ClearLine past the last page modified the buffer")
	}
	strict := newSurface(t, 8, 24, true)
	if err := strict.ClearLine(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("strict ClearLine(-1) error = %v, want ErrOutOfBounds", err)
	}
}
