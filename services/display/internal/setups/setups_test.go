package setups

import (
	"testing"

	"displaycode-go/services/display"
)

// Every registered setup must survive the same check the tooling and the
// platform layer run. A setup that fails here would brick the build it
// ships in.
func TestRegisteredSetupsAreValid(t *testing.T) {
	names := display.Names()
	if len(names) < 3 {
		t.Fatalf("expected the shipped setups to be registered, got %v", names)
	}
	for _, name := range names {
		s, ok := display.Lookup(name)
		if !ok {
			t.Fatalf("%s: lookup failed", name)
		}
		if _, err := display.Check(s); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
}

func TestSelected_HostBuildsHaveNoBakedSetup(t *testing.T) {
	if _, ok := Selected(); ok {
		t.Fatalf("host builds must not bake in a setup")
	}
}
