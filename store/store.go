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

package store

import (
	"sort"
	"strings"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	ueq "dirpx.dev/enumx/utils/equality"
)

// New builds an immutable apis.Store from raw merged cases.
//
// Merge policy (the discovery-side filter):
//   - the first occurrence of a name wins; later duplicates are dropped;
//   - entries with an empty name, a reserved-prefix name, or a nil value are
//     dropped silently (partial success is expected, never fatal);
//   - at most cfg.MaxCases entries survive; the rest are dropped.
//
// The returned store orders keys ascending and keeps values aligned.
func New(cases []apis.Case, cfg apis.Config) apis.Store {
	maxCases := cfg.MaxCases
	if maxCases <= 0 {
		maxCases = config.DefaultMaxCases
	}

	s := &store{
		cfg:   cfg,
		index: make(map[string]int, len(cases)),
	}
	for _, c := range cases {
		if c.Name == "" || c.Value == nil {
			continue
		}
		if cfg.ReservedPrefix != "" && strings.HasPrefix(c.Name, cfg.ReservedPrefix) {
			continue
		}
		if _, ok := s.index[c.Name]; ok {
			continue // first occurrence wins
		}
		if len(s.keys) >= maxCases {
			break
		}
		s.index[c.Name] = len(s.keys)
		s.keys = append(s.keys, c.Name)
		s.values = append(s.values, c.Value)
	}

	// Sort keys ascending and realign values and index.
	sort.Strings(s.keys)
	values := make([]any, len(s.keys))
	for i, k := range s.keys {
		values[i] = s.values[s.index[k]]
	}
	for i, k := range s.keys {
		s.index[k] = i
	}
	s.values = values

	return s
}

// store is an immutable snapshot: never mutated after New returns,
// safe for concurrent reads without locking.
type store struct {
	// cfg is the configuration captured at build time (equality mode).
	cfg apis.Config
	// keys holds case names, sorted ascending.
	keys []string
	// values holds case values, aligned with keys.
	values []any
	// index maps case name to its position in keys.
	index map[string]int
}

// Ensure store implements apis.Store.
var _ apis.Store = (*store)(nil)

// Keys returns every case name exactly once, sorted ascending.
func (s *store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values returns the case values, ordered to match Keys.
func (s *store) Values() []any {
	out := make([]any, len(s.values))
	copy(out, s.values)
	return out
}

// Mapping returns a fresh name-to-value map.
func (s *store) Mapping() map[string]any {
	out := make(map[string]any, len(s.keys))
	for i, k := range s.keys {
		out[k] = s.values[i]
	}
	return out
}

// Count returns the number of distinct case names.
func (s *store) Count() int {
	return len(s.keys)
}

// Value returns the value bound to name, or (nil, false) if name is unknown.
func (s *store) Value(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.values[i], true
}

// NameOf scans cases in ascending-name order and returns the first name
// whose value equals v under the configured equality. The ascending scan
// makes the duplicate-value tie-break deterministic: the smallest name wins.
func (s *store) NameOf(v any) (string, bool) {
	for i, k := range s.keys {
		if ueq.Equal(s.values[i], v, s.cfg) {
			return k, true
		}
	}
	return "", false
}

// Each visits (name, value) pairs in ascending-name order until fn
// returns false.
func (s *store) Each(fn func(name string, value any) bool) {
	for i, k := range s.keys {
		if !fn(k, s.values[i]) {
			return
		}
	}
}
