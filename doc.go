// Package ssd1306 controls a SSD1306 monochrome OLED display over I²C or SPI.
//
// The SSD1306 drives panels of up to 128×64 pixels. Its display RAM is split
// in pages of 8 rows; each byte holds 8 vertical pixels of one column, least
// significant bit on top. The driver keeps a copy of that RAM in memory, draws
// into it through a gfx.Surface and transfers it to the controller on demand.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1 bit per pixel (on or off)
// - Resolutions 128×64, 128×32 or any width up to 128 and page aligned height up to 64
// - Hardware scrolling support (horizontal and diagonal)
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
// Most modules use I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// 4-wire SPI modules add a Data/Command pin:
//
//	SCK/D0      → SPI Clock (SCLK)
//	SDA/D1      → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/bitfont"
//		"github.com/flavioheleno/ssd1306/gfx"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ssd1306.NewI2C(bus, nil)
//		defer dev.Halt()
//
//		s := dev.Surface()
//		s.SetFont(bitfont.Basic7x13())
//		s.GotoXY(0, 0)
//		s.PutString("Hello")
//		s.DrawCircle(100, 40, 12, gfx.Set)
//
//		dev.Render()
//	}
//
// # Drawing
//
// All drawing happens in memory. The gfx.Surface returned by Dev.Surface
// provides pixels, lines, rectangles, rounded rectangles, circles, triangles,
// region fills and inversions, text with packed bitmap fonts and bitmaps.
// Nothing reaches the display until Render, Update, Draw or Write is called.
//
// Coordinates outside the display are ignored. Set Opts.Strict to get
// gfx.ErrOutOfBounds instead.
//
// # Transfers
//
// Render sends the whole frame buffer: it programs the column and page address
// window, then streams the buffer in packets of 16 bytes.
//
// Update sends only the smallest page and column box that changed since the
// previous transfer. Draw composes an image.Image into the frame buffer and
// calls Update, which makes the device usable by any periph.io tool expecting a
// display.Drawer:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// Write replaces the frame buffer with raw page data and renders it:
//
//	pixels := make([]byte, 128*64/8) // 1024 bytes for 128×64
//	dev.Write(pixels)
//
// Every transfer is bounded by Opts.Timeout and fails with ErrTimeout when
// the bus does not complete in time. The stuck transfer keeps the bus until it
// returns; later transfers wait for it and never overlap it.
//
// # Hardware Scrolling
//
//	dev.Scroll(ssd1306.Left, ssd1306.FrameRate5, 0, 7)
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// # Logging
//
// Pass a *slog.Logger in Opts.Logger to trace every command and data packet at
// debug level.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
