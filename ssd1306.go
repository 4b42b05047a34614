package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/ssd1306/gfx"
	"github.com/flavioheleno/ssd1306/image1bit"
)

// Command opcodes.
const (
	cmdChargePump       = 0x8D
	cmdColumnAddr       = 0x21
	cmdComScanDec       = 0xC8
	cmdDeactivateScroll = 0x2E
	cmdActivateScroll   = 0x2F
	cmdDisplayAllOnRes  = 0xA4
	cmdDisplayOff       = 0xAE
	cmdDisplayOn        = 0xAF
	cmdInvertDisplay    = 0xA7
	cmdMemoryMode       = 0x20
	cmdNormalDisplay    = 0xA6
	cmdPageAddr         = 0x22
	cmdSegRemap         = 0xA1
	cmdSetComPins       = 0xDA
	cmdSetContrast      = 0x81
	cmdSetClockDiv      = 0xD5
	cmdSetDisplayOffset = 0xD3
	cmdSetMultiplex     = 0xA8
	cmdSetPrecharge     = 0xD9
	cmdSetStartLine     = 0x40
	cmdSetVcomDetect    = 0xDB
	cmdVScrollArea      = 0xA3
)

// packetSize is the number of frame buffer bytes sent per data transfer.
const packetSize = 16

var (
	// ErrHalted is returned by every operation after Halt.
	ErrHalted = errors.New("ssd1306: halted")
	// ErrTimeout is returned when a transfer does not complete in time.
	ErrTimeout = errors.New("ssd1306: transfer timed out")
	// ErrInvalidSize is returned for unsupported display sizes and pixel
	// buffers of the wrong length.
	ErrInvalidSize = errors.New("ssd1306: invalid size")
)

// DefaultOpts is the configuration of the common 128×64 I²C module.
var DefaultOpts = Opts{
	W:        128,
	H:        64,
	Addr:     0x3C,
	Timeout:  100 * time.Millisecond,
	Contrast: 0xFF,
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (1-128)
	H int // Height (8-64, multiple of 8)

	// Addr is the I²C address, usually 0x3C or 0x3D. Zero selects 0x3C.
	Addr uint16
	// Timeout bounds every transfer; zero or less waits forever.
	Timeout time.Duration
	// Contrast is sent during initialization as is.
	Contrast byte
	// Strict makes drawing report clipped coordinates as gfx.ErrOutOfBounds.
	Strict bool

	// Optional hardware reset pin
	RST gpio.PinOut
	// Logger receives debug records for every transfer. Nil discards them.
	Logger *slog.Logger
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.W > 128 {
		return fmt.Errorf("%w: width %d must be between 1 and 128", ErrInvalidSize, o.W)
	}
	if o.H < 8 || o.H > 64 || o.H%8 != 0 {
		return fmt.Errorf("%w: height %d must be a multiple of 8 between 8 and 64", ErrInvalidSize, o.H)
	}
	return nil
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	t       Transport
	timeout time.Duration
	log     *slog.Logger

	// Display geometry
	rect  image.Rectangle
	pages int

	// Pixel buffers
	img     *image1bit.VerticalLSB // Current frame, drawn by surface
	surface *gfx.Surface
	sent    []byte // Last transferred frame for differential updates

	// State
	synced   bool // sent mirrors the controller RAM
	inverted bool
	halted   bool
}

// NewI2C creates a new SSD1306 device connected via I²C at opts.Addr.
//
// opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := DefaultOpts.Addr
	if opts != nil && opts.Addr != 0 {
		addr = opts.Addr
	}
	return New(NewI2CTransport(b, addr), opts)
}

// NewSPI creates a new SSD1306 device connected via 4-wire SPI.
//
// The SPI port is configured for 3.3MHz, Mode0, 8-bit transfers. The dc
// (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	t, err := NewSPITransport(p, dc)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// New creates a device talking through t, initializes the controller and
// renders a blank frame.
//
// opts can be nil to use DefaultOpts.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	img := image1bit.NewVerticalLSB(rect)
	s, err := gfx.Wrap(img, &gfx.Opts{Strict: opts.Strict})
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	d := &Dev{
		t:       t,
		timeout: opts.Timeout,
		log:     log,
		rect:    rect,
		pages:   opts.H / 8,
		img:     img,
		surface: s,
		sent:    make([]byte, len(img.Pix)),
	}

	if err := d.reset(opts.RST); err != nil {
		return nil, err
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	if err := d.Render(); err != nil {
		return nil, err
	}
	d.log.Debug("ssd1306: initialized", "width", opts.W, "height", opts.H)
	return d, nil
}

// resetPulse is how long RST is held low, then how long the controller is
// given to come back.
const resetPulse = 10 * time.Millisecond

// reset pulses the RST pin when one is configured.
func (d *Dev) reset(rst gpio.PinOut) error {
	if rst == nil {
		return nil
	}
	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
	}
	time.Sleep(resetPulse)
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
	}
	time.Sleep(resetPulse)
	return nil
}

// initCmds returns the initialization sequence for opts.
func initCmds(opts *Opts) []byte {
	comPins := byte(0x02) // Sequential COM pins
	if opts.H > 32 {
		comPins = 0x12 // Alternative COM pins
	}
	return []byte{
		cmdDisplayOff,
		cmdSetClockDiv, 0xF0, // Max oscillator frequency, divide ratio 1
		cmdSetMultiplex, byte(opts.H - 1),
		cmdSetDisplayOffset, 0x00,
		cmdChargePump, 0x14, // Enable charge pump
		cmdSetStartLine,     // Start line 0
		cmdMemoryMode, 0x00, // Horizontal addressing
		cmdSegRemap,         // Column 127 is SEG0
		cmdComScanDec,       // Scan from COM[N-1] to COM0
		cmdSetComPins, comPins,
		cmdSetContrast, opts.Contrast,
		cmdSetPrecharge, 0xF1,
		cmdSetVcomDetect, 0x20, // 0.77×Vcc
		cmdDisplayAllOnRes,     // Display follows RAM content
		cmdNormalDisplay,
		cmdDeactivateScroll,
		cmdDisplayOn,
	}
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if err := d.sendCommands(initCmds(opts)...); err != nil {
		return fmt.Errorf("ssd1306: init: %w", err)
	}
	return nil
}

// sendCommands sends each command byte as its own transfer.
func (d *Dev) sendCommands(cmds ...byte) error {
	for _, c := range cmds {
		d.log.Debug("ssd1306: command", "byte", fmt.Sprintf("0x%02X", c))
		if err := d.t.Transmit(true, []byte{c}, d.timeout); err != nil {
			return err
		}
	}
	return nil
}

// sendData sends data in packets of packetSize bytes.
func (d *Dev) sendData(data []byte) error {
	for len(data) > 0 {
		n := min(packetSize, len(data))
		d.log.Debug("ssd1306: data", "bytes", fmt.Sprintf("% X", data[:n]))
		if err := d.t.Transmit(false, data[:n], d.timeout); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// writeRect programs the address window for pages startPage..endPage-1 and
// columns startCol..endCol-1, then sends the matching frame buffer bytes.
func (d *Dev) writeRect(startPage, endPage, startCol, endCol int) error {
	err := d.sendCommands(
		cmdColumnAddr, byte(startCol), byte(endCol-1),
		cmdPageAddr, byte(startPage), byte(endPage-1),
	)
	if err != nil {
		return err
	}
	return d.sendData(d.extractRegion(startPage, endPage, startCol, endCol))
}

// Surface returns the drawing context of the frame buffer. Changes become
// visible on the next Render or Update.
func (d *Dev) Surface() *gfx.Surface {
	return d.surface
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Render sends the whole frame buffer to the display.
func (d *Dev) Render() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.writeRect(0, d.pages, 0, d.rect.Dx()); err != nil {
		d.synced = false
		return fmt.Errorf("ssd1306: render: %w", err)
	}
	copy(d.sent, d.img.Pix)
	d.synced = true
	return nil
}

// Update sends the part of the frame buffer that changed since the last
// transfer, as a single page and column box. It renders the whole frame when
// the controller RAM is not known to match the last transfer.
func (d *Dev) Update() error {
	if d.halted {
		return ErrHalted
	}
	if !d.synced {
		return d.Render()
	}
	startPage, endPage, startCol, endCol, skip := d.calculateDiff()
	if skip {
		return nil
	}
	d.log.Debug("ssd1306: update", "pages", [2]int{startPage, endPage - 1}, "columns", [2]int{startCol, endCol - 1})
	if err := d.writeRect(startPage, endPage, startCol, endCol); err != nil {
		d.synced = false
		return fmt.Errorf("ssd1306: update: %w", err)
	}
	copy(d.sent, d.img.Pix)
	return nil
}

// Draw implements display.Drawer.
//
// It composes src into the frame buffer and sends the changed region. Once
// this function returns, the display is updated.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		copy(d.img.Pix, img.Pix)
	} else {
		draw.Draw(d.img, r, src, sp, draw.Src)
	}
	return d.Update()
}

// Write replaces the frame buffer with pixels and renders it.
//
// The format is the one of image1bit.VerticalLSB.Pix: pages of 8 rows, one
// byte per column, least significant bit on top.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.img.Pix) {
		return 0, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSize, len(d.img.Pix), len(pixels))
	}
	copy(d.img.Pix, pixels)
	if err := d.Render(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands(cmdSetContrast, contrast)
}

// SetDisplay turns the panel on or off. RAM content is kept while off.
func (d *Dev) SetDisplay(on bool) error {
	if d.halted {
		return ErrHalted
	}
	if on {
		return d.sendCommands(cmdDisplayOn)
	}
	return d.sendCommands(cmdDisplayOff)
}

// Invert selects inverse video (lit pixels for clear bits) or normal video.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInvertDisplay
	}
	if err := d.sendCommands(mode); err != nil {
		return err
	}
	d.inverted = invert
	return nil
}

// InvertScreen toggles between normal and inverse video.
func (d *Dev) InvertScreen() error {
	return d.Invert(!d.inverted)
}

// Inverted reports whether the display is in inverse video.
func (d *Dev) Inverted() bool {
	return d.inverted
}

// Halt turns the display off. Every later call returns ErrHalted.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.sendCommands(cmdDisplayOff); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
