// Command watch-demo: panel bring-up for the setup baked into this image.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target esp32-coreboard-v2 ./services/display/cmd/watch-demo
//
// The wiring comes from internal/setups (setup_selected.go picks the
// watch build). The demo attaches the panel, clears it and writes one
// line with the first compiled-in font.
package main

import (
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"displaycode-go/services/display"
	"displaycode-go/services/display/fonts"
	"displaycode-go/services/display/internal/setups"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	s, ok := setups.Selected()
	if !ok {
		println("no setup selected for this target")
		return
	}

	panel, err := display.Attach(s)
	if err != nil {
		println("attach failed:", err.Error())
		return
	}

	dp, ok := panel.(interface{ Displayer() drivers.Displayer })
	if !ok {
		println("provider exposes no displayer")
		return
	}
	d := dp.Displayer()

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if f, ok := d.(interface{ FillScreen(color.RGBA) }); ok {
		f.FillScreen(black)
	}

	face := fonts.Default()
	if fs := fonts.Faces(s.Fonts); len(fs) > 0 {
		face = fs[0]
	}
	w, h := d.Size()
	tinyfont.WriteLine(d, face, w/4, h/2, s.Name, white)
	if err := d.Display(); err != nil {
		println("display:", err.Error())
	}

	for {
		time.Sleep(time.Minute)
	}
}
