package display

import (
	"strconv"
	"strings"

	"periph.io/x/conn/v3/physic"

	"displaycode-go/types"
)

// Freq renders a bus clock the way periph prints frequencies ("40MHz").
func Freq(hz uint32) string {
	return (physic.Frequency(hz) * physic.Hertz).String()
}

// Describe renders a one-setup report for humans. The layout is stable
// enough to diff but is not a machine interface; tooling wanting structure
// should marshal the Setup instead.
func Describe(s types.Setup) string {
	var b strings.Builder
	b.WriteString("setup    " + s.Name + "\n")
	if s.Board != "" {
		b.WriteString("board    " + s.Board + "\n")
	}
	b.WriteString("driver   " + string(s.Driver) + "\n")
	b.WriteString("panel    " + strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height))
	if s.Rotation != types.Rotation0 {
		b.WriteString(" rot" + strconv.Itoa(int(s.Rotation)*90))
	}
	if s.Invert {
		b.WriteString(" inverted")
	}
	b.WriteString("\n")
	b.WriteString("spi      " + Freq(s.SPIHz) + "\n")
	for _, np := range s.Pins.Assigned() {
		b.WriteString("pin      " + np.Signal + "=" + strconv.Itoa(np.Pin) + "\n")
	}
	if !s.Backlit() {
		b.WriteString("pin      bl=(not software-controlled)\n")
	}
	b.WriteString("fonts    " + s.Fonts.String() + "\n")
	return b.String()
}
