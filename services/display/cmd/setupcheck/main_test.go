package main

import (
	"os"
	"path/filepath"
	"testing"

	"displaycode-go/errcode"
	"displaycode-go/types"
)

func TestLoad_RegisteredName(t *testing.T) {
	s, err := load("strava-watch")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Driver != types.DriverGC9A01 || s.Board != "esp32" {
		t.Fatalf("loaded %+v", s)
	}

	_, err = load("no-such-setup")
	if errcode.Of(err) != errcode.NoSetup {
		t.Fatalf("unknown name: got %v", err)
	}
}

func TestLoad_HeaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.h")
	src := "#define GC9A01_DRIVER\n#define TFT_MOSI 23\n#define SPI_FREQUENCY 40000000\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Driver != types.DriverGC9A01 || s.SPIHz != 40_000_000 {
		t.Fatalf("loaded %+v", s)
	}
	if s.Name != "panel" {
		t.Fatalf("name %q, want file stem", s.Name)
	}
}
