package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil)")
	}
	if Of(FreqRange) != FreqRange {
		t.Fatalf("bare code lost")
	}
	e := &E{C: PinConflict, Op: "validate", Msg: "dc and cs share gpio 5"}
	if Of(e) != PinConflict {
		t.Fatalf("wrapped code lost")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("foreign error must map to generic code")
	}
}

func TestE_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("strconv")
	e := &E{C: ParseError, Err: cause}
	if e.Error() != string(ParseError) {
		t.Fatalf("Error()=%q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Fatalf("Unwrap chain broken")
	}
	e.Msg = "TFT_CS=five"
	if e.Error() != "parse_error: TFT_CS=five" {
		t.Fatalf("Error()=%q", e.Error())
	}
}
