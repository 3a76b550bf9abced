package types

import "testing"

func TestFontSet_HasWithString(t *testing.T) {
	var f FontSet
	if f.String() != "none" {
		t.Fatalf("empty set String()=%q", f.String())
	}
	f = f.With(FontGLCD).With(Font4)
	if !f.Has(FontGLCD) || !f.Has(Font4) {
		t.Fatalf("set %v missing flags", f)
	}
	if f.Has(Font7) {
		t.Fatalf("set %v has flag it was never given", f)
	}
	if got := f.String(); got != "glcd+font4" {
		t.Fatalf("String()=%q", got)
	}
}

func TestPinMap_AssignedSkipsNoPin(t *testing.T) {
	m := PinMap{SDO: 23, SDI: NoPin, SCK: 18, CS: 5, DC: 2, RST: 4, BL: NoPin}
	got := m.Assigned()
	if len(got) != 5 {
		t.Fatalf("Assigned()=%v, want 5 wired signals", got)
	}
	for _, np := range got {
		if np.Pin == NoPin {
			t.Fatalf("Assigned() leaked NoPin for %s", np.Signal)
		}
		if np.Signal == "sdi" || np.Signal == "bl" {
			t.Fatalf("Assigned() includes unwired %s", np.Signal)
		}
	}
	if got[0].Signal != "sdo" || got[0].Pin != 23 {
		t.Fatalf("order not stable: first=%v", got[0])
	}
}

func TestSetup_Backlit(t *testing.T) {
	s := Setup{Pins: PinMap{BL: NoPin}}
	if s.Backlit() {
		t.Fatalf("BL=NoPin must mean not software-controlled")
	}
	s.Pins.BL = 15
	if !s.Backlit() {
		t.Fatalf("BL=15 must mean software-controlled")
	}
}
