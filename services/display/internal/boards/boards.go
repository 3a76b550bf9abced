package boards

// Board describes what the SoC/PCB can do: the GPIO range and which pins
// cannot drive a panel. It must not include wiring choices (pins) or
// operating parameters (clock rates); those belong to setups.
type Board struct {
	Name             string
	GPIOMin, GPIOMax int

	// Reserved pins cannot be assigned to panel signals: flash pins,
	// input-only pads, strapping pins that must stay free.
	Reserved []int

	// SPI controllers present (identities only; e.g. "spi2", "spi3").
	SPI []string
}

// ValidGPIO reports whether a panel signal may use GPIO n on this board.
func (b Board) ValidGPIO(n int) bool {
	if n < b.GPIOMin || n > b.GPIOMax {
		return false
	}
	for _, r := range b.Reserved {
		if n == r {
			return false
		}
	}
	return true
}

// ESP32 (classic). GPIO 6-11 are wired to the SPI flash; 34-39 are
// input-only pads and can never drive CS/DC/RST.
var ESP32 = Board{
	Name:    "esp32",
	GPIOMin: 0, GPIOMax: 39,
	Reserved: []int{6, 7, 8, 9, 10, 11, 34, 35, 36, 37, 38, 39},
	SPI:      []string{"spi2", "spi3"},
}

// RP2040 (Pico). All 30 user GPIOs can drive outputs.
var RP2040 = Board{
	Name:    "rp2040",
	GPIOMin: 0, GPIOMax: 29,
	SPI:     []string{"spi0", "spi1"},
}

var byName = map[string]Board{
	ESP32.Name:  ESP32,
	RP2040.Name: RP2040,
}

// ByName looks up a board definition.
func ByName(name string) (Board, bool) {
	b, ok := byName[name]
	return b, ok
}

// Names lists the known boards in no particular order.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	return out
}
