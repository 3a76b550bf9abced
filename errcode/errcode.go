package errcode

// Code is a stable error identifier for configuration faults.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"

	UnknownDriver  Code = "unknown_driver"
	DriverConflict Code = "driver_conflict"
	BadGeometry    Code = "bad_geometry"
	UnknownPin     Code = "unknown_pin"
	PinConflict    Code = "pin_conflict"
	FreqRange      Code = "freq_range"
	UnknownBoard   Code = "unknown_board"
	NoSetup        Code = "no_setup"
	ParseError     Code = "parse_error"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
