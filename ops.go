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
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
)

// Register adds the named case to a set in the global enumx reg.
// Re-registering an equal (name, value) pair is a no-op; binding the same
// name to a different value is an error.
// This is a convenience wrapper around the global reg.
func Register(set, name string, value any) error {
	return st.Load().reg.Register(set, apis.Case{Name: name, Value: value})
}

// MustRegister is like Register but panics on error.
// Intended for package-level declarations where a rejected case is a
// programming error.
func MustRegister(set, name string, value any) {
	if err := Register(set, name, value); err != nil {
		panic(fmt.Errorf("enumx: register %s/%s: %w", set, name, err))
	}
}

// Attach adds a lazily-consulted case provider to a set in the global reg.
// This is a convenience wrapper around the global reg.
func Attach(set string, p apis.Provider) error {
	return st.Load().reg.Attach(set, p)
}

// Bind fixes the payload type of a set in the global reg.
// This is a convenience wrapper around the global reg.
func Bind(set string, payload reflect.Type) error {
	return st.Load().reg.Bind(set, payload)
}

// PayloadOf returns the payload type bound to a set in the global reg.
// This is a convenience wrapper around the global reg.
func PayloadOf(set string) (reflect.Type, bool) {
	return st.Load().reg.PayloadOf(set)
}

// Snapshot returns the current immutable case store of a set.
// It uses the global enumx configuration and dis.
// This is a convenience wrapper around the global dis.
func Snapshot(set string) apis.Store {
	s := st.Load()
	return s.dis.Discover(set, s.cfg)
}

// Keys returns every case name of a set, sorted ascending.
// This is a convenience wrapper around the global dis.
func Keys(set string) []string {
	return Snapshot(set).Keys()
}

// Values returns the case values of a set, ordered to match Keys.
// This is a convenience wrapper around the global dis.
func Values(set string) []any {
	return Snapshot(set).Values()
}

// Mapping returns a fresh name-to-value map of a set.
// This is a convenience wrapper around the global dis.
func Mapping(set string) map[string]any {
	return Snapshot(set).Mapping()
}

// Count returns the number of distinct case names in a set.
// This is a convenience wrapper around the global dis.
func Count(set string) int {
	return Snapshot(set).Count()
}

// Value returns the value bound to name in a set, or (nil, false) if the
// name is unknown.
// This is a convenience wrapper around the global dis.
func Value(set, name string) (any, bool) {
	return Snapshot(set).Value(name)
}

// NameOf returns the case name of v in a set.
// A value implementing apis.CaseNamer answers directly and skips the store
// scan; otherwise cases are scanned in ascending-name order and the first
// value equal to v under the configured equality wins.
func NameOf(set string, v any) (string, bool) {
	if n, ok := v.(apis.CaseNamer); ok {
		return n.CaseName(), true
	}
	return Snapshot(set).NameOf(v)
}

// Each visits the (name, value) pairs of a set in ascending-name order until
// fn returns false.
// This is a convenience wrapper around the global dis.
func Each(set string, fn func(name string, value any) bool) {
	Snapshot(set).Each(fn)
}

// Sets returns the names of all sets known to the global reg, sorted ascending.
// This is a convenience wrapper around the global reg.
func Sets() []string {
	return st.Load().reg.Sets()
}
