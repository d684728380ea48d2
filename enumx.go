/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package enumx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
)

// init initializes the global enumx state.
func init() {
	// Initialize state with default cfg, reg, and dis.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.dis = b.BuildDiscoverer(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("enumx: builder returned nil registry")
	// ErrNilDiscoverer is returned when a builder returns a nil discoverer.
	ErrNilDiscoverer = errors.New("enumx: builder returned nil discoverer")
)

// SetAll explicitly sets all global enumx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, dis apis.Discoverer, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Discoverer
	ndis := dis
	npdis := false
	if ndis == nil {
		ndis = nbld.BuildDiscoverer(ncfg, nreg, old.dis, next)
	} else {
		npdis = true
	}

	// Ensure non-nil reg and dis.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ndis == nil {
		panic(ErrNilDiscoverer)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			dis:  ndis,
			bld:  nbld,
			preg: npreg,
			pdis: npdis,
		},
	)
}

// Config returns the global enumx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global enumx configuration to cfg.
// It rebuilds the global reg and dis using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and dis based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	ndis := old.dis
	if !old.pdis {
		ndis = b.BuildDiscoverer(cfg, nreg, old.dis, old.ext)
	}

	// Ensure non-nil reg and dis.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ndis == nil {
		panic(ErrNilDiscoverer)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			dis:  ndis,
			bld:  b,
			preg: old.preg,
			pdis: old.pdis,
		},
	)
}

// Registry returns the global enumx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global enumx reg to reg.
// It uses the global enumx configuration to rebuild the global dis.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new dis based on the old cfg and new reg.
	ndis := old.dis
	if !old.pdis {
		ndis = b.BuildDiscoverer(old.cfg, reg, old.dis, old.ext)
	}

	// Ensure non-nil dis.
	if ndis == nil {
		panic(ErrNilDiscoverer)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			dis:  ndis,
			bld:  b,
			preg: true,
			pdis: old.pdis,
		},
	)
}

// Discoverer returns the global enumx dis.
func Discoverer() apis.Discoverer {
	return st.Load().dis
}

// SetDiscoverer sets the global enumx dis to dis.
// It uses the global enumx configuration and reg.
// This is a convenience wrapper around the global state.
func SetDiscoverer(dis apis.Discoverer) {
	if dis == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			dis:  dis,
			bld:  old.bld,
			preg: old.preg,
			pdis: true,
		},
	)
}

// Builder returns the global enumx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global enumx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and dis based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	ndis := old.dis
	if !old.pdis {
		ndis = b.BuildDiscoverer(old.cfg, nreg, old.dis, old.ext)
	}

	// Ensure non-nil reg and dis.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ndis == nil {
		panic(ErrNilDiscoverer)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			dis:  ndis,
			bld:  b,
			preg: old.preg,
			pdis: old.pdis,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and dis based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	ndis := old.dis
	if !old.pdis {
		ndis = b.BuildDiscoverer(old.cfg, nreg, old.dis, ext)
	}

	// Ensure non-nil reg and dis.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ndis == nil {
		panic(ErrNilDiscoverer)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			dis:  ndis,
			bld:  b,
			preg: old.preg,
			pdis: old.pdis,
		},
	)
}

// ExtAs returns the global enumx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global enumx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global enumx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			dis:  old.dis,
			bld:  old.bld,
			preg: true,
			pdis: old.pdis,
		},
	)
}

// UnpinRegistry makes the global enumx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			dis:  old.dis,
			bld:  old.bld,
			preg: false,
			pdis: old.pdis,
		},
	)
}

// IsDiscovererPinned returns whether the global enumx dis is pinned (immutable).
func IsDiscovererPinned() bool {
	return st.Load().pdis
}

// PinDiscoverer makes the global enumx dis immutable.
func PinDiscoverer() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			dis:  old.dis,
			bld:  old.bld,
			preg: old.preg,
			pdis: true,
		},
	)
}

// UnpinDiscoverer makes the global enumx dis mutable again.
func UnpinDiscoverer() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			dis:  old.dis,
			bld:  old.bld,
			preg: old.preg,
			pdis: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global enumx configuration.
	cfg apis.Config
	// ext is the global enumx extension configuration.
	ext any
	// reg is the global enumx reg.
	reg apis.Registry
	// dis is the global enumx dis.
	dis apis.Discoverer
	// bld is the global enumx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pdis indicates whether the dis is pinned (immutable).
	pdis bool
}
