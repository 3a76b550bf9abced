//go:build tinygo && (rp2040 || rp2350)

package platform

import (
	"machine"

	"tinygo.org/x/drivers"

	"displaycode-go/errcode"
	"displaycode-go/types"
)

// spiBus picks the RP2 SPI controller that owns the setup's SCK pin and
// configures it. The pin muxing is fixed per controller on this chip, so
// the SCK number decides spi0 vs spi1.
func spiBus(s types.Setup) (drivers.SPI, error) {
	var bus *machine.SPI
	switch s.Pins.SCK {
	case 2, 6, 18, 22:
		bus = machine.SPI0
	case 10, 14, 26:
		bus = machine.SPI1
	default:
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "spi",
			Msg: "no SPI controller muxes SCK here"}
	}
	err := bus.Configure(machine.SPIConfig{
		SCK:       pinFor(s.Pins.SCK),
		SDO:       pinFor(s.Pins.SDO),
		SDI:       pinFor(s.Pins.SDI),
		Frequency: s.SPIHz,
	})
	if err != nil {
		return nil, err
	}
	return bus, nil
}
