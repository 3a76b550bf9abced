// Package fonts binds the font inclusion flags to tinyfont faces.
// A face referenced from Face is linked into the binary, so firmware
// that wants the size win of a slim FontSet should call Face with
// constant flags rather than iterating Faces.
package fonts

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"

	"displaycode-go/types"
)

// Face returns the face backing one font flag. The mapping follows the
// role each legacy font slot plays: a tiny bitmap font, then ascending
// sizes, a bold numeric face for the 7-segment slot, and a default
// FreeFont face for the GFX slot.
func Face(f types.FontSet) (tinyfont.Fonter, bool) {
	switch f {
	case types.FontGLCD:
		return &proggy.TinySZ8pt7b, true
	case types.Font2:
		return &freesans.Regular9pt7b, true
	case types.Font4:
		return &freesans.Regular12pt7b, true
	case types.Font6:
		return &freesans.Regular18pt7b, true
	case types.Font7:
		return &freemono.Bold18pt7b, true
	case types.Font8:
		return &freesans.Regular24pt7b, true
	case types.FontGFX:
		return &freesans.Bold12pt7b, true
	}
	return nil, false
}

var allFlags = []types.FontSet{
	types.FontGLCD, types.Font2, types.Font4,
	types.Font6, types.Font7, types.Font8, types.FontGFX,
}

// Faces expands a font set into its faces, smallest slot first.
func Faces(set types.FontSet) []tinyfont.Fonter {
	var out []tinyfont.Fonter
	for _, f := range allFlags {
		if set.Has(f) {
			if face, ok := Face(f); ok {
				out = append(out, face)
			}
		}
	}
	return out
}

// Default is the face used when a setup ships no fonts at all.
func Default() tinyfont.Fonter { return &proggy.TinySZ8pt7b }
