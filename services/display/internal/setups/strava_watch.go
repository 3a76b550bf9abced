package setups

import (
	"displaycode-go/services/display"
	"displaycode-go/types"
)

// stravaWatch is the round-watch build: a GC9A01 240x240 panel on the
// ESP32 VSPI IO_MUX pins at 40 MHz. RST on GPIO4; backlight hard-wired,
// so no BL pin. Only the classic bitmap font ships.
var stravaWatch = types.Setup{
	Name:   "strava-watch",
	Board:  "esp32",
	Driver: types.DriverGC9A01,
	Width:  240,
	Height: 240,
	Pins: types.PinMap{
		SDO: 23,
		SDI: types.NoPin,
		SCK: 18,
		CS:  5,
		DC:  2,
		RST: 4,
		BL:  types.NoPin,
	},
	SPIHz: 40_000_000,
	Fonts: types.FontGLCD,
}

func init() { display.Register(stravaWatch) }
