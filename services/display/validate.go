package display

import (
	"strconv"

	"displaycode-go/errcode"
	"displaycode-go/services/display/internal/boards"
	"displaycode-go/types"
)

// Normalize fills driver defaults into a setup: native geometry when
// width/height are zero and the default bus clock when SPIHz is zero.
// Unknown drivers pass through untouched; Validate reports them.
func Normalize(s types.Setup) types.Setup {
	c, ok := caps[s.Driver]
	if !ok {
		return s
	}
	if s.Width == 0 && s.Height == 0 {
		s.Width, s.Height = c.Width, c.Height
	}
	if s.SPIHz == 0 {
		s.SPIHz = c.DefaultHz
	}
	return s
}

// Validate checks a setup against the driver capability table and the
// target board's GPIO surface. A nil return means the setup is safe to
// hand to the platform layer. Run Normalize first if the setup may carry
// zero defaults.
func Validate(s types.Setup, b boards.Board) error {
	c, ok := caps[s.Driver]
	if !ok {
		return &errcode.E{C: errcode.UnknownDriver, Op: "validate", Msg: string(s.Driver)}
	}

	if s.Width <= 0 || s.Height <= 0 {
		return &errcode.E{C: errcode.BadGeometry, Op: "validate",
			Msg: "size " + strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)}
	}
	if c.FixedGeometry && (s.Width != c.Width || s.Height != c.Height) {
		return &errcode.E{C: errcode.BadGeometry, Op: "validate",
			Msg: string(s.Driver) + " is fixed at " + strconv.Itoa(c.Width) + "x" + strconv.Itoa(c.Height)}
	}
	if s.Width > c.Width || s.Height > c.Height {
		return &errcode.E{C: errcode.BadGeometry, Op: "validate",
			Msg: string(s.Driver) + " addresses at most " + strconv.Itoa(c.Width) + "x" + strconv.Itoa(c.Height)}
	}

	if err := validatePins(s.Pins, b); err != nil {
		return err
	}

	if s.SPIHz == 0 {
		return &errcode.E{C: errcode.FreqRange, Op: "validate", Msg: "spi clock not set"}
	}
	if s.SPIHz > c.MaxHz {
		return &errcode.E{C: errcode.FreqRange, Op: "validate",
			Msg: string(s.Driver) + " is rated up to " + strconv.FormatUint(uint64(c.MaxHz), 10) + " Hz"}
	}

	return nil
}

// Signals the bus cannot work without, in reporting order. RST may be
// tied to board reset and BL/SDI are optional, so only the write path is
// mandatory.
var requiredSignals = []string{"sdo", "sck", "cs", "dc"}

func validatePins(m types.PinMap, b boards.Board) error {
	assigned := m.Assigned()

	present := map[string]bool{}
	for _, np := range assigned {
		present[np.Signal] = true
	}
	for _, sig := range requiredSignals {
		if !present[sig] {
			return &errcode.E{C: errcode.InvalidParams, Op: "validate", Msg: sig + " not wired"}
		}
	}

	owner := map[int]string{}
	for _, np := range assigned {
		if !b.ValidGPIO(np.Pin) {
			return &errcode.E{C: errcode.UnknownPin, Op: "validate",
				Msg: np.Signal + " on gpio " + strconv.Itoa(np.Pin) + " (" + b.Name + ")"}
		}
		if prev, dup := owner[np.Pin]; dup {
			return &errcode.E{C: errcode.PinConflict, Op: "validate",
				Msg: prev + " and " + np.Signal + " share gpio " + strconv.Itoa(np.Pin)}
		}
		owner[np.Pin] = np.Signal
	}
	return nil
}

// Check resolves the setup's board, normalizes and validates in one step.
// It is the entry point host tooling uses.
func Check(s types.Setup) (types.Setup, error) {
	b, ok := boards.ByName(s.Board)
	if !ok {
		return s, &errcode.E{C: errcode.UnknownBoard, Op: "check", Msg: s.Board}
	}
	s = Normalize(s)
	if err := Validate(s, b); err != nil {
		return s, err
	}
	return s, nil
}
