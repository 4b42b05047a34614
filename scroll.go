package ssd1306

import "fmt"

// FrameRate determines scrolling speed: the number of frames between two
// scroll steps.
type FrameRate byte

// Possible frame rates. The lower the value, the higher the speed.
const (
	FrameRate2   FrameRate = 0x07
	FrameRate3   FrameRate = 0x04
	FrameRate4   FrameRate = 0x05
	FrameRate5   FrameRate = 0x00
	FrameRate25  FrameRate = 0x06
	FrameRate64  FrameRate = 0x01
	FrameRate128 FrameRate = 0x02
	FrameRate256 FrameRate = 0x03
)

// Orientation is the scrolling direction.
type Orientation byte

// Possible orientations. The diagonal ones also scroll the whole display
// vertically by one row per step.
const (
	Left      Orientation = 0x27
	Right     Orientation = 0x26
	DiagRight Orientation = 0x29
	DiagLeft  Orientation = 0x2A
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case DiagRight:
		return "DiagRight"
	case DiagLeft:
		return "DiagLeft"
	default:
		return fmt.Sprintf("Orientation(0x%02X)", byte(o))
	}
}

// Scroll starts hardware scrolling of pages startPage..endPage, both
// inclusive.
//
// Only one scrolling operation runs at a time. Scrolling moves the content
// of the controller RAM, so the next Update sends the whole frame.
func (d *Dev) Scroll(o Orientation, rate FrameRate, startPage, endPage int) error {
	if d.halted {
		return ErrHalted
	}
	if startPage < 0 || startPage >= d.pages || endPage < startPage || endPage >= d.pages {
		return fmt.Errorf("ssd1306: invalid scroll pages %d..%d", startPage, endPage)
	}
	if rate > 0x07 {
		return fmt.Errorf("ssd1306: invalid frame rate 0x%02X", byte(rate))
	}

	switch o {
	case Left, Right:
		d.synced = false
		// <op>, dummy, <start page>, <rate>, <end page>, dummy, dummy, <enable>
		return d.sendCommands(byte(o), 0x00, byte(startPage), byte(rate), byte(endPage), 0x00, 0xFF, cmdActivateScroll)
	case DiagRight, DiagLeft:
		d.synced = false
		// The vertical scroll area covers the whole display.
		if err := d.sendCommands(cmdVScrollArea, 0x00, byte(d.rect.Dy())); err != nil {
			return err
		}
		// <op>, dummy, <start page>, <rate>, <end page>, <vertical offset>, <enable>
		return d.sendCommands(byte(o), 0x00, byte(startPage), byte(rate), byte(endPage), 0x01, cmdActivateScroll)
	default:
		return fmt.Errorf("ssd1306: invalid scroll orientation %s", o)
	}
}

// StopScroll stops any scrolling previously started.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands(cmdDeactivateScroll)
}
