package setups

import (
	"displaycode-go/services/display"
	"displaycode-go/types"
)

// picocalc wires the PicoCalc's ILI9488 320x480 panel to SPI1 on the
// RP2040 (GP10-GP15). The panel wants inversion on; the backlight is
// managed by the keyboard MCU, not a GPIO. Terminal-style builds carry
// the small bitmap fonts.
var picocalc = types.Setup{
	Name:   "picocalc",
	Board:  "rp2040",
	Driver: types.DriverILI9488,
	Width:  320,
	Height: 480,
	Pins: types.PinMap{
		SDO: 11,
		SDI: 12,
		SCK: 10,
		CS:  13,
		DC:  14,
		RST: 15,
		BL:  types.NoPin,
	},
	SPIHz:  40_000_000,
	Invert: true,
	Fonts:  types.FontGLCD.With(types.Font2),
}

func init() { display.Register(picocalc) }
