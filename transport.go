package ssd1306

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Transport carries command and data bytes to the controller.
//
// Transmit must deliver payload as a single transfer and return once it is
// complete, failed or timeout elapsed. A timeout of zero or less waits
// forever. A transfer must not start while an earlier one, even one given up
// on, is still using the bus.
type Transport interface {
	Transmit(isCommand bool, payload []byte, timeout time.Duration) error
}

// I²C control bytes, sent ahead of every transfer.
const (
	i2cCmd  = 0x00 // Co=0, D/C#=0
	i2cData = 0x40 // Co=0, D/C#=1
)

// I2CTransport talks to the controller over I²C.
type I2CTransport struct {
	c    conn.Conn
	busy busy
}

// NewI2CTransport returns a Transport for the controller at addr on b.
//
// The controller runs at up to 400kHz, the bus speed is left untouched.
func NewI2CTransport(b i2c.Bus, addr uint16) *I2CTransport {
	return &I2CTransport{c: &i2c.Dev{Bus: b, Addr: addr}, busy: newBusy()}
}

// Transmit implements Transport.
func (t *I2CTransport) Transmit(isCommand bool, payload []byte, timeout time.Duration) error {
	ctrl := byte(i2cData)
	if isCommand {
		ctrl = i2cCmd
	}
	w := make([]byte, 0, len(payload)+1)
	w = append(append(w, ctrl), payload...)
	return t.busy.run(timeout, func() error {
		return t.c.Tx(w, nil)
	})
}

func (t *I2CTransport) String() string {
	return fmt.Sprintf("i2c{%s}", t.c)
}

// SPITransport talks to the controller over 4-wire SPI, the DC pin telling
// commands (low) from data (high).
type SPITransport struct {
	c    conn.Conn
	dc   gpio.PinOut
	busy busy
}

// NewSPITransport connects to p at 3.3MHz in mode 0.
func NewSPITransport(p spi.Port, dc gpio.PinOut) (*SPITransport, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ssd1306: a DC pin is required for 4-wire SPI")
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("ssd1306: failed to drive DC low: %w", err)
	}
	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: failed to connect SPI port: %w", err)
	}
	return &SPITransport{c: c, dc: dc, busy: newBusy()}, nil
}

// Transmit implements Transport.
func (t *SPITransport) Transmit(isCommand bool, payload []byte, timeout time.Duration) error {
	level := gpio.High
	if isCommand {
		level = gpio.Low
	}
	return t.busy.run(timeout, func() error {
		if err := t.dc.Out(level); err != nil {
			return err
		}
		return t.c.Tx(payload, nil)
	})
}

func (t *SPITransport) String() string {
	return fmt.Sprintf("spi{%s, %s}", t.c, t.dc)
}

// busy holds the bus for one transfer at a time.
type busy chan struct{}

func newBusy() busy {
	return make(busy, 1)
}

// run takes the bus, runs fn and gives up waiting after timeout. A transfer
// abandoned on timeout keeps the bus until the call returns, so the next run
// waits for it within its own timeout and fails with ErrTimeout if it is still
// in flight. A timeout of zero or less waits forever.
func (b busy) run(timeout time.Duration, fn func() error) error {
	if timeout <= 0 {
		b <- struct{}{}
		defer func() { <-b }()
		return fn()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case b <- struct{}{}:
	case <-timer.C:
		return ErrTimeout
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-b }()
		done <- fn()
	}()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		return ErrTimeout
	}
}
