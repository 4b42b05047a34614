// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 stores pixels in pages: horizontal bands 8 pixels high where each
// byte holds one column of the band. Bit 0 is the top row of the page (LSB first).
//
// Memory layout example for the first two columns of a 128 pixel wide display:
//
//	Rows:   0..7        8..15
//	Byte:   Pix[0]      Pix[128]   (column 0)
//	        Pix[1]      Pix[129]   (column 1)
//	        (bit i of Pix[page*128+x] = pixel (x, page*8+i))
//
// This package provides:
//
// - Bit: A color type representing a lit or dark pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the controller RAM
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read back a whole page byte
//	b := img.PageByte(10, 20) // bit 4 set
package image1bit
