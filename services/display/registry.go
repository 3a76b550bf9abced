// services/display/registry.go
package display

import (
	"sort"
	"sync"

	"displaycode-go/types"
)

var (
	muSetups sync.RWMutex
	setups   = map[string]types.Setup{}
)

// Register installs a named setup. It panics on duplicate or unnamed
// registration to catch mistakes at start-up; setups are registered from
// init functions and the name is the lookup key.
func Register(s types.Setup) {
	muSetups.Lock()
	defer muSetups.Unlock()
	if s.Name == "" {
		panic("display: setup with empty name")
	}
	if _, dup := setups[s.Name]; dup {
		panic("display: duplicate setup " + s.Name)
	}
	setups[s.Name] = s
}

// Lookup returns a registered setup by name.
func Lookup(name string) (types.Setup, bool) {
	muSetups.RLock()
	defer muSetups.RUnlock()
	s, ok := setups[name]
	return s, ok
}

// Names lists the registered setups, sorted.
func Names() []string {
	muSetups.RLock()
	defer muSetups.RUnlock()
	out := make([]string, 0, len(setups))
	for n := range setups {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
