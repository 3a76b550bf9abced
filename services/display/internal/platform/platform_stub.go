//go:build !tinygo && !linux

package platform

import (
	"displaycode-go/errcode"
	"displaycode-go/types"
)

// Attach has no provider on this host; setups can still be validated and
// described, just not brought up.
func Attach(s types.Setup) (Panel, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "attach", Msg: "no platform provider"}
}
