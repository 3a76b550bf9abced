package setups

import (
	"displaycode-go/services/display"
	"displaycode-go/types"
)

// tdisplay is the LilyGO T-Display: an ST7789 driving a 135x240 strip
// panel, with the backlight on GPIO4. The panel is offset inside the
// controller RAM and needs inversion.
var tdisplay = types.Setup{
	Name:   "t-display",
	Board:  "esp32",
	Driver: types.DriverST7789,
	Width:  135,
	Height: 240,
	Pins: types.PinMap{
		SDO: 19,
		SDI: types.NoPin,
		SCK: 18,
		CS:  5,
		DC:  16,
		RST: 23,
		BL:  4,
	},
	SPIHz:  40_000_000,
	Invert: true,
	Fonts:  types.FontGLCD.With(types.Font2).With(types.Font4),
}

func init() { display.Register(tdisplay) }
