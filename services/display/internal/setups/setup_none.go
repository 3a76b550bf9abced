//go:build !tinygo

package setups

import "displaycode-go/types"

// Selected reports no baked-in setup on host builds; host tooling chooses
// a registered setup by name instead.
func Selected() (types.Setup, bool) { return types.Setup{}, false }
