//go:build tinygo

package setups

import "displaycode-go/types"

// Selected returns the setup compiled into this firmware image.
// Firmware builds bake in the watch wiring; pick a different setup here
// (or add a target-specific file) when flashing other hardware.
func Selected() (types.Setup, bool) { return stravaWatch, true }
