//go:build tinygo && esp32

package platform

import (
	"machine"

	"tinygo.org/x/drivers"

	"displaycode-go/types"
)

// spiBus configures the ESP32's VSPI controller. Any GPIO works through
// the matrix; the IO_MUX defaults (SCK 18, SDO 23) are just the fast path.
func spiBus(s types.Setup) (drivers.SPI, error) {
	err := machine.SPI3.Configure(machine.SPIConfig{
		SCK:       pinFor(s.Pins.SCK),
		SDO:       pinFor(s.Pins.SDO),
		SDI:       pinFor(s.Pins.SDI),
		Frequency: s.SPIHz,
	})
	if err != nil {
		return nil, err
	}
	return machine.SPI3, nil
}
