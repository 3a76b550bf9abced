// Package usersetup ingests TFT_eSPI-style User_Setup.h headers into a
// types.Setup. This is the legacy representation of the same facts the
// Go setups carry: one driver define, geometry, TFT_* pin defines, the
// SPI clock and LOAD_* font flags.
//
// Only the define surface is parsed. Anything the display library treats
// as a tuning knob (gamma tables, read clocks, touch CS) is ignored here.
package usersetup

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"displaycode-go/errcode"
	"displaycode-go/types"
)

var driverDefines = map[string]types.Driver{
	"GC9A01_DRIVER":  types.DriverGC9A01,
	"ILI9341_DRIVER": types.DriverILI9341,
	"ILI9488_DRIVER": types.DriverILI9488,
	"ST7735_DRIVER":  types.DriverST7735,
	"ST7789_DRIVER":  types.DriverST7789,
}

var fontDefines = map[string]types.FontSet{
	"LOAD_GLCD":  types.FontGLCD,
	"LOAD_FONT2": types.Font2,
	"LOAD_FONT4": types.Font4,
	"LOAD_FONT6": types.Font6,
	"LOAD_FONT7": types.Font7,
	"LOAD_FONT8": types.Font8,
	"LOAD_GFXFF": types.FontGFX,
}

// Parse reads header text and returns the setup it describes. The result
// is not normalized or validated; callers hand it to display.Check.
//
// Enforced here, because only this representation can get them wrong:
// exactly one *_DRIVER define must be active, and numeric defines must
// parse. Unknown defines are ignored the way the C preprocessor would.
func Parse(r io.Reader) (types.Setup, error) {
	s := types.Setup{
		Pins: types.PinMap{
			SDO: types.NoPin, SDI: types.NoPin, SCK: types.NoPin,
			CS: types.NoPin, DC: types.NoPin, RST: types.NoPin, BL: types.NoPin,
		},
	}

	var activeDrivers []string

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		// Commented-out defines are disabled defines.
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) < 2 || fields[0] != "#define" {
			continue
		}
		name := fields[1]

		if d, ok := driverDefines[name]; ok {
			activeDrivers = append(activeDrivers, name)
			s.Driver = d
			continue
		}
		if strings.HasSuffix(name, "_DRIVER") {
			return s, &errcode.E{C: errcode.UnknownDriver, Op: "parse",
				Msg: name + " (line " + strconv.Itoa(line) + ")"}
		}
		if f, ok := fontDefines[name]; ok {
			s.Fonts = s.Fonts.With(f)
			continue
		}

		switch name {
		case "TFT_INVERSION_ON":
			s.Invert = true
			continue
		case "TFT_INVERSION_OFF", "USER_SETUP_LOADED":
			continue
		}

		if len(fields) < 3 {
			continue
		}
		value := fields[2]

		if name == "USER_SETUP_INFO" {
			s.Name = strings.Trim(value, `"`)
			continue
		}

		if name == "SPI_FREQUENCY" {
			// Bit size 32 so absurd clocks overflow here instead of
			// wrapping into a value that happens to validate.
			n, err := strconv.ParseUint(value, 0, 32)
			if err != nil {
				return s, &errcode.E{C: errcode.ParseError, Op: "parse",
					Msg: name + "=" + value + " (line " + strconv.Itoa(line) + ")", Err: err}
			}
			s.SPIHz = uint32(n)
			continue
		}

		dst := numericDst(&s, name)
		if dst == nil {
			continue // unknown define, preprocessor would not care either
		}
		n, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return s, &errcode.E{C: errcode.ParseError, Op: "parse",
				Msg: name + "=" + value + " (line " + strconv.Itoa(line) + ")", Err: err}
		}
		*dst = int(n)
	}
	if err := sc.Err(); err != nil {
		return s, &errcode.E{C: errcode.ParseError, Op: "parse", Err: err}
	}

	switch len(activeDrivers) {
	case 1:
	case 0:
		return s, &errcode.E{C: errcode.UnknownDriver, Op: "parse", Msg: "no *_DRIVER define active"}
	default:
		return s, &errcode.E{C: errcode.DriverConflict, Op: "parse",
			Msg: strings.Join(activeDrivers, " + ")}
	}

	return s, nil
}

// numericDst maps a define name to the int field it sets. Both the
// TFT_eSPI and the older SDO/SDI spellings of the bus pins are accepted.
func numericDst(s *types.Setup, name string) *int {
	switch name {
	case "TFT_WIDTH":
		return &s.Width
	case "TFT_HEIGHT":
		return &s.Height
	case "TFT_MOSI", "TFT_SDO":
		return &s.Pins.SDO
	case "TFT_MISO", "TFT_SDI":
		return &s.Pins.SDI
	case "TFT_SCLK", "TFT_SCK":
		return &s.Pins.SCK
	case "TFT_CS":
		return &s.Pins.CS
	case "TFT_DC":
		return &s.Pins.DC
	case "TFT_RST":
		return &s.Pins.RST
	case "TFT_BL":
		return &s.Pins.BL
	}
	return nil
}

// ParseFile is Parse on a file path.
func ParseFile(path string) (types.Setup, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Setup{}, &errcode.E{C: errcode.ParseError, Op: "open", Msg: path, Err: err}
	}
	defer f.Close()
	s, perr := Parse(f)
	if s.Name == "" {
		s.Name = strings.TrimSuffix(stem(path), ".h")
	}
	return s, perr
}

func stem(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
