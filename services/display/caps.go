package display

import "displaycode-go/types"

// Caps describes what one panel controller supports. The numbers are the
// documented limits for SPI writes; read clocks are always lower but this
// module never configures a read path.
type Caps struct {
	// Controller RAM geometry. Panels may be smaller than the RAM
	// (offsets handled by the display library); FixedGeometry controllers
	// accept exactly this size.
	Width, Height int
	FixedGeometry bool

	// MaxHz is the highest SPI write clock the controller is rated for.
	// DefaultHz is used when a setup leaves SPIHz at zero.
	MaxHz     uint32
	DefaultHz uint32
}

var caps = map[types.Driver]Caps{
	// Round 240x240 watch panels. Geometry is not configurable.
	types.DriverGC9A01: {Width: 240, Height: 240, FixedGeometry: true, MaxHz: 40_000_000, DefaultHz: 40_000_000},

	types.DriverILI9341: {Width: 240, Height: 320, MaxHz: 40_000_000, DefaultHz: 27_000_000},
	types.DriverILI9488: {Width: 320, Height: 480, MaxHz: 40_000_000, DefaultHz: 27_000_000},
	types.DriverST7735:  {Width: 132, Height: 162, MaxHz: 27_000_000, DefaultHz: 27_000_000},
	types.DriverST7789:  {Width: 240, Height: 320, MaxHz: 62_500_000, DefaultHz: 40_000_000},
}

// CapsFor returns the capability entry for a driver.
func CapsFor(d types.Driver) (Caps, bool) {
	c, ok := caps[d]
	return c, ok
}

// Drivers lists the supported driver identifiers in no particular order.
func Drivers() []types.Driver {
	out := make([]types.Driver, 0, len(caps))
	for d := range caps {
		out = append(out, d)
	}
	return out
}
