package display

import (
	"testing"

	"displaycode-go/errcode"
	"displaycode-go/services/display/internal/boards"
	"displaycode-go/types"
)

// watchSetup is the round GC9A01 watch wiring; the canonical valid case.
func watchSetup() types.Setup {
	return types.Setup{
		Name:   "watch",
		Board:  "esp32",
		Driver: types.DriverGC9A01,
		Width:  240,
		Height: 240,
		Pins: types.PinMap{
			SDO: 23, SDI: types.NoPin, SCK: 18,
			CS: 5, DC: 2, RST: 4, BL: types.NoPin,
		},
		SPIHz: 40_000_000,
		Fonts: types.FontGLCD,
	}
}

func esp32(t *testing.T) boards.Board {
	t.Helper()
	b, ok := boards.ByName("esp32")
	if !ok {
		t.Fatalf("esp32 board missing")
	}
	return b
}

func TestValidate_WatchSetup(t *testing.T) {
	if err := Validate(watchSetup(), esp32(t)); err != nil {
		t.Fatalf("watch setup must validate, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*types.Setup)
		want errcode.Code
	}{
		{"unknown driver", func(s *types.Setup) { s.Driver = "HX8357" }, errcode.UnknownDriver},
		{"zero width", func(s *types.Setup) { s.Width = 0 }, errcode.BadGeometry},
		{"negative height", func(s *types.Setup) { s.Height = -240 }, errcode.BadGeometry},
		{"gc9a01 geometry is fixed", func(s *types.Setup) { s.Height = 320 }, errcode.BadGeometry},
		{"cs unwired", func(s *types.Setup) { s.Pins.CS = types.NoPin }, errcode.InvalidParams},
		{"pin beyond gpio range", func(s *types.Setup) { s.Pins.RST = 45 }, errcode.UnknownPin},
		{"input-only pad as output", func(s *types.Setup) { s.Pins.DC = 35 }, errcode.UnknownPin},
		{"flash pin", func(s *types.Setup) { s.Pins.SCK = 6 }, errcode.UnknownPin},
		{"dc and cs share a pin", func(s *types.Setup) { s.Pins.DC = 5 }, errcode.PinConflict},
		{"overclocked bus", func(s *types.Setup) { s.SPIHz = 80_000_000 }, errcode.FreqRange},
		{"clock not set", func(s *types.Setup) { s.SPIHz = 0 }, errcode.FreqRange},
	}
	for _, tc := range cases {
		s := watchSetup()
		tc.mut(&s)
		err := Validate(s, esp32(t))
		if err == nil {
			t.Fatalf("%s: validated, want %s", tc.name, tc.want)
		}
		if got := errcode.Of(err); got != tc.want {
			t.Fatalf("%s: code %s, want %s (%v)", tc.name, got, tc.want, err)
		}
	}
}

func TestValidate_MissingPinReportIsStable(t *testing.T) {
	s := watchSetup()
	s.Pins.SDO = types.NoPin
	s.Pins.CS = types.NoPin
	for i := 0; i < 16; i++ {
		err := Validate(s, esp32(t))
		if errcode.Of(err) != errcode.InvalidParams {
			t.Fatalf("code %s, want %s", errcode.Of(err), errcode.InvalidParams)
		}
		if got := err.Error(); got != "invalid_params: sdo not wired" {
			t.Fatalf("error %q, want the first unwired signal in wiring order", got)
		}
	}
}

func TestValidate_OversizePanel(t *testing.T) {
	s := watchSetup()
	s.Driver = types.DriverST7789
	s.Width, s.Height = 300, 400 // exceeds the controller RAM
	if got := errcode.Of(Validate(s, esp32(t))); got != errcode.BadGeometry {
		t.Fatalf("code %s, want %s", got, errcode.BadGeometry)
	}

	// Smaller than RAM is fine for non-fixed controllers.
	s.Width, s.Height = 135, 240
	if err := Validate(s, esp32(t)); err != nil {
		t.Fatalf("135x240 on ST7789 must validate, got %v", err)
	}
}

func TestNormalize_FillsDriverDefaults(t *testing.T) {
	s := watchSetup()
	s.Width, s.Height, s.SPIHz = 0, 0, 0
	n := Normalize(s)
	if n.Width != 240 || n.Height != 240 {
		t.Fatalf("geometry %dx%d, want native 240x240", n.Width, n.Height)
	}
	if n.SPIHz != 40_000_000 {
		t.Fatalf("SPIHz %d, want driver default", n.SPIHz)
	}

	// Unknown drivers pass through for Validate to report.
	s.Driver = "NOPE"
	n = Normalize(s)
	if n.Width != 0 || n.SPIHz != 0 {
		t.Fatalf("unknown driver must not be defaulted: %+v", n)
	}
}

func TestCheck_ResolvesBoard(t *testing.T) {
	s := watchSetup()
	s.Width, s.Height, s.SPIHz = 0, 0, 0
	checked, err := Check(s)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if checked.Width != 240 || checked.SPIHz != 40_000_000 {
		t.Fatalf("Check did not normalize: %+v", checked)
	}

	s.Board = "teensy"
	if _, err := Check(s); errcode.Of(err) != errcode.UnknownBoard {
		t.Fatalf("unknown board: got %v", err)
	}
}
