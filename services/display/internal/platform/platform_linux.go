//go:build linux && !tinygo

package platform

import (
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"displaycode-go/errcode"
	"displaycode-go/types"
)

// LinuxPanel owns the opened SPI port and control lines on a Linux SBC.
// The external panel driver consumes Conn/DC as-is; this provider only
// opens and parks the hardware.
type LinuxPanel struct {
	setup types.Setup
	port  spi.PortCloser

	Conn spi.Conn
	DC   gpio.PinOut
	RST  gpio.PinOut
	BL   gpio.PinOut
}

func (p *LinuxPanel) Size() (int16, int16) {
	return int16(p.setup.Width), int16(p.setup.Height)
}

func (p *LinuxPanel) Close() error {
	if p.BL != nil {
		_ = p.BL.Out(gpio.Low)
	}
	return p.port.Close()
}

func outPin(signal string, n int) (gpio.PinOut, error) {
	if n == types.NoPin {
		return nil, nil
	}
	p := gpioreg.ByName(strconv.Itoa(n))
	if p == nil {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "attach",
			Msg: signal + " gpio " + strconv.Itoa(n) + " not exported by host"}
	}
	return p, nil
}

// Attach opens the first SPI port, clocks it at the setup's frequency and
// claims the control lines. CS stays with the kernel driver, so the pin
// map's CS number is informational here. The reset line gets one hardware
// pulse; everything after SLPOUT is the display library's business.
func Attach(s types.Setup) (Panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "attach", Msg: "host init", Err: err}
	}

	port, err := spireg.Open("")
	if err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "attach", Msg: "spi open", Err: err}
	}

	conn, err := port.Connect(physic.Frequency(s.SPIHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, &errcode.E{C: errcode.Error, Op: "attach", Msg: "spi connect", Err: err}
	}

	p := &LinuxPanel{setup: s, port: port, Conn: conn}

	if p.DC, err = outPin("dc", s.Pins.DC); err != nil {
		_ = port.Close()
		return nil, err
	}
	if p.RST, err = outPin("rst", s.Pins.RST); err != nil {
		_ = port.Close()
		return nil, err
	}
	if p.BL, err = outPin("bl", s.Pins.BL); err != nil {
		_ = port.Close()
		return nil, err
	}

	if p.DC != nil {
		_ = p.DC.Out(gpio.High)
	}
	if p.RST != nil {
		_ = p.RST.Out(gpio.Low)
		time.Sleep(100 * time.Millisecond)
		_ = p.RST.Out(gpio.High)
		time.Sleep(120 * time.Millisecond)
	}
	if p.BL != nil {
		_ = p.BL.Out(gpio.High)
	}

	return p, nil
}
