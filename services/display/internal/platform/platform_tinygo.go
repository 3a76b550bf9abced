//go:build tinygo

package platform

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/gc9a01"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/drivers/st7789"

	"displaycode-go/errcode"
	"displaycode-go/types"
)

type tinygoPanel struct {
	d       drivers.Displayer
	bl      machine.Pin
	backlit bool
}

func (p *tinygoPanel) Size() (int16, int16) { return p.d.Size() }

func (p *tinygoPanel) Close() error {
	if p.backlit {
		p.bl.Low()
	}
	return nil
}

// Displayer exposes the driver for the display library (tinyfont etc.).
func (p *tinygoPanel) Displayer() drivers.Displayer { return p.d }

func pinFor(n int) machine.Pin {
	if n == types.NoPin {
		return machine.NoPin
	}
	return machine.Pin(n)
}

// Attach configures the SPI controller for the setup's pins and clock and
// constructs the matching panel driver. The setup must already have been
// validated; Attach does not re-check wiring.
func Attach(s types.Setup) (Panel, error) {
	bus, err := spiBus(s)
	if err != nil {
		return nil, err
	}

	rst := pinFor(s.Pins.RST)
	dc := pinFor(s.Pins.DC)
	cs := pinFor(s.Pins.CS)
	bl := pinFor(s.Pins.BL)

	var d drivers.Displayer
	switch s.Driver {
	case types.DriverGC9A01:
		dev := gc9a01.New(bus, rst, dc, cs, bl)
		dev.Configure(gc9a01.Config{})
		d = &dev
	case types.DriverST7789:
		dev := st7789.New(bus, rst, dc, cs, bl)
		dev.Configure(st7789.Config{
			Width:  int16(s.Width),
			Height: int16(s.Height),
		})
		d = &dev
	case types.DriverST7735:
		dev := st7735.New(bus, rst, dc, cs, bl)
		dev.Configure(st7735.Config{
			Width:  int16(s.Width),
			Height: int16(s.Height),
		})
		d = &dev
	case types.DriverILI9341:
		dev := ili9341.NewSPI(bus, dc, cs, rst)
		dev.Configure(ili9341.Config{
			Width:  int16(s.Width),
			Height: int16(s.Height),
		})
		d = dev
	default:
		// ILI9488 and friends have no driver in tinygo.org/x/drivers.
		return nil, &errcode.E{C: errcode.Unsupported, Op: "attach", Msg: string(s.Driver)}
	}

	if r, ok := d.(interface {
		SetRotation(drivers.Rotation) error
	}); ok && s.Rotation != types.Rotation0 {
		if err := r.SetRotation(drivers.Rotation(s.Rotation)); err != nil {
			return nil, err
		}
	}
	if inv, ok := d.(interface{ InvertColors(bool) }); ok && s.Invert {
		inv.InvertColors(true)
	}

	backlit := s.Backlit()
	if backlit {
		bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
		bl.High()
	}

	return &tinygoPanel{d: d, bl: bl, backlit: backlit}, nil
}
