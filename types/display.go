package types

// ---- Panel controller selection ----

// Driver identifies the panel-controller protocol implementation the
// display library compiles in. Exactly one driver is active per setup.
type Driver string

const (
	DriverGC9A01  Driver = "GC9A01"
	DriverILI9341 Driver = "ILI9341"
	DriverILI9488 Driver = "ILI9488"
	DriverST7735  Driver = "ST7735"
	DriverST7789  Driver = "ST7789"
)

// ---- Wiring ----

// NoPin marks a signal that is not wired, or not software-controlled.
// A setup with BL == NoPin has a hard-wired (or absent) backlight.
const NoPin = -1

// PinMap wires the panel's SPI bus and control lines to host GPIO numbers.
// These are plain GPIO numbers; mapping to machine.Pin (or a host GPIO
// handle) happens in the platform layer.
type PinMap struct {
	SDO int `json:"sdo"` // MOSI, host -> panel
	SDI int `json:"sdi"` // MISO; most panels leave this unwired
	SCK int `json:"sck"`
	CS  int `json:"cs"`
	DC  int `json:"dc"`  // data/command select
	RST int `json:"rst"` // NoPin when tied to board reset
	BL  int `json:"bl"`  // backlight enable
}

// NamedPin pairs a signal name with its GPIO number, for diagnostics.
type NamedPin struct {
	Signal string
	Pin    int
}

// Assigned returns the wired signals in a stable order, skipping NoPin.
func (m PinMap) Assigned() []NamedPin {
	all := []NamedPin{
		{"sdo", m.SDO},
		{"sdi", m.SDI},
		{"sck", m.SCK},
		{"cs", m.CS},
		{"dc", m.DC},
		{"rst", m.RST},
		{"bl", m.BL},
	}
	out := all[:0]
	for _, np := range all {
		if np.Pin != NoPin {
			out = append(out, np)
		}
	}
	return out
}

// ---- Rotation ----

// Rotation is the panel orientation applied at init, in 90° steps
// counted clockwise. Numeric values match drivers.Rotation.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// ---- Font selection ----

// FontSet is a bitmask of font families compiled into the build.
// The flags are independent; enabling more costs flash, nothing else.
type FontSet uint8

const (
	FontGLCD FontSet = 1 << iota // classic 8px bitmap font ("font 1")
	Font2                        // small 16px
	Font4                        // medium 26px
	Font6                        // large 48px, numeric-oriented
	Font7                        // 7-segment style
	Font8                        // very large 75px
	FontGFX                      // FreeFont vector-style faces
)

var fontNames = []struct {
	f    FontSet
	name string
}{
	{FontGLCD, "glcd"},
	{Font2, "font2"},
	{Font4, "font4"},
	{Font6, "font6"},
	{Font7, "font7"},
	{Font8, "font8"},
	{FontGFX, "gfx"},
}

func (f FontSet) Has(o FontSet) bool     { return f&o != 0 }
func (f FontSet) With(o FontSet) FontSet { return f | o }

func (f FontSet) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	for _, fn := range fontNames {
		if f.Has(fn.f) {
			if s != "" {
				s += "+"
			}
			s += fn.name
		}
	}
	return s
}

// ---- Setup ----

// Setup is the full build-time description of one attached panel: which
// controller it speaks, its geometry, how it is wired, how fast the bus
// runs, and which fonts ship with the build. The value is immutable once
// constructed; the platform layer reads it exactly once at init.
type Setup struct {
	Name   string `json:"name"`
	Board  string `json:"board,omitempty"` // target board, e.g. "esp32"
	Driver Driver `json:"driver"`

	// Logical panel size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	Pins PinMap `json:"pins"`

	// SPI write clock in Hz. Zero means "use the driver default".
	SPIHz uint32 `json:"spi_hz"`

	Rotation Rotation `json:"rotation,omitempty"`
	Invert   bool     `json:"invert,omitempty"` // panel inversion (INVON)
	Fonts    FontSet  `json:"fonts,omitempty"`
}

// Backlit reports whether the backlight is software-controlled.
func (s Setup) Backlit() bool { return s.Pins.BL != NoPin }
