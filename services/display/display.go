// Package display is the configuration surface for an SPI-attached TFT
// panel: which controller driver to use, the panel geometry, the pin map,
// the bus clock and the font families compiled in. Setups are immutable
// values, validated against a driver capability table and the target
// board's GPIO surface, then consumed exactly once by a platform provider
// at init.
package display

import (
	"displaycode-go/services/display/internal/platform"
	"displaycode-go/types"
)

// Panel is the handle a platform provider returns for an attached panel.
type Panel = platform.Panel

// Attach normalizes and validates a setup, then brings the panel up on
// the current platform. This is the single point where the configuration
// is handed over; nothing reads it again afterwards.
func Attach(s types.Setup) (Panel, error) {
	s, err := Check(s)
	if err != nil {
		return nil, err
	}
	return platform.Attach(s)
}
