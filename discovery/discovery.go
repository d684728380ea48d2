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

package discovery

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/store"
)

// New constructs an apis.Discoverer that merges the given sources in order.
// Earlier sources win when the same case name appears more than once.
// Nil sources are ignored.
//
// version, when non-nil, keys cached snapshots: a snapshot built while the
// function reported N is served until the function reports something else.
// Passing a registry's Generation method ties snapshot freshness to
// declarations. A nil version disables caching invalidation entirely
// (every call may serve the first snapshot built).
func New(version func() uint64, sources ...apis.Source) apis.Discoverer {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return &merger{version: version, sources: out}
}

// merger assembles stores by merging source contributions, caching one
// immutable snapshot per (set, config) until the version moves.
type merger struct {
	// version reports the declaration generation snapshots are keyed on.
	version func() uint64
	// sources in precedence order.
	sources []apis.Source
	// group collapses concurrent rebuilds of the same snapshot.
	group singleflight.Group
	// cache maps cacheKey to *snapshot. Entries are immutable; invalidation
	// is by version comparison, replacement is an atomic map store.
	cache sync.Map
}

// snapshot pairs a built store with the version observed before building.
type snapshot struct {
	version uint64
	store   apis.Store
}

// cacheKey ensures memoization respects all config knobs that affect merging.
type cacheKey struct {
	set              string
	identityEquality bool
	reservedPrefix   string
	maxCases         int
}

// flightKey renders the key for singleflight, which requires strings.
func (k cacheKey) flightKey() string {
	return fmt.Sprintf("%s|%t|%q|%d", k.set, k.identityEquality, k.reservedPrefix, k.maxCases)
}

// Ensure merger implements apis.Discoverer.
var _ apis.Discoverer = (*merger)(nil)

// Discover returns the current snapshot for set, rebuilding it when a
// declaration happened since the cached one was assembled.
func (m *merger) Discover(set string, cfg apis.Config) apis.Store {
	key := cacheKey{
		set:              set,
		identityEquality: cfg.IdentityEquality,
		reservedPrefix:   cfg.ReservedPrefix,
		maxCases:         cfg.MaxCases,
	}
	if snap, ok := m.lookup(key); ok {
		return snap.store
	}

	v, _, _ := m.group.Do(key.flightKey(), func() (any, error) {
		// Re-check: a completed flight may have stored a fresh snapshot
		// between our lookup and this call.
		if snap, ok := m.lookup(key); ok {
			return snap, nil
		}
		snap := m.build(set, cfg)
		m.cache.Store(key, snap)
		return snap, nil
	})
	return v.(*snapshot).store
}

// lookup returns the cached snapshot if it is still current.
func (m *merger) lookup(key cacheKey) (*snapshot, bool) {
	v, ok := m.cache.Load(key)
	if !ok {
		return nil, false
	}
	snap := v.(*snapshot)
	if m.version != nil && snap.version != m.version() {
		return nil, false
	}
	return snap, true
}

// build merges all sources into a fresh immutable snapshot. The version is
// stamped before the sources are read: a declaration racing the merge makes
// the new snapshot stale immediately instead of hiding behind it.
func (m *merger) build(set string, cfg apis.Config) *snapshot {
	var ver uint64
	if m.version != nil {
		ver = m.version()
	}

	var merged []apis.Case
	for _, src := range m.sources {
		merged = append(merged, src.Contribute(set, cfg)...)
	}
	return &snapshot{version: ver, store: store.New(merged, cfg)}
}
