package gfx

import (
	"bytes"
	"math"
	"testing"

	"github.com/flavioheleno/ssd1306/bitfont"
)

func TestFormatTruncated(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{2.99, 1, "2.9"},
		{2.3, 2, "2.30"},
		{123.456, 2, "123.45"},
		{-1.5, 0, "-1"},
		{-1.99, 1, "-1.9"},
		{0, 1, "0.0"},
		{-0.04, 1, "0.0"},
		{1e-7, 3, "0.000"},
		{42, 0, "42"},
		{7, -3, "7"},
		{math.NaN(), 2, "NaN"},
		{math.Inf(-1), 2, "-Inf"},
	}

	for _, tt := range tests {
		if got := formatTruncated(tt.v, tt.decimals); got != tt.want {
			t.Errorf("formatTruncated(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestPutNumbers(t *testing.T) {
	tests := []struct {
		name string
		put  func(s *Surface) error
		text string
	}{
		{"int", func(s *Surface) error { return s.PutInt(-42) }, "-42"},
		{"float", func(s *Surface) error { return s.PutFloat(2.99, 1) }, "2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num := newSurface(t, 128, 64, false)
			num.SetFont(bitfont.Basic7x13())
			str := newSurface(t, 128, 64, false)
			str.SetFont(bitfont.Basic7x13())

			if err := tt.put(num); err != nil {
				t.Fatal(err)
			}
			if err := str.PutString(tt.text); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(num.img.Pix, str.img.Pix) || num.X() != str.X() {
				t.Errorf("number renders differently from %q", tt.text)
			}
		})
	}
}
