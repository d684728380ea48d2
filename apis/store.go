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

package apis

// Store is an immutable snapshot of one set's discovered cases.
// Implementations must be safe for concurrent reads; a Store never changes
// after construction, so two stores obtained at different times may differ
// if cases were declared in between.
type Store interface {
	// Keys returns every case name exactly once, sorted ascending.
	Keys() []string
	// Values returns the case values, ordered to match Keys.
	Values() []any
	// Mapping returns a fresh name-to-value map (callers may mutate it).
	Mapping() map[string]any
	// Count returns the number of distinct case names.
	Count() int
	// Value returns the value bound to name, or (nil, false) if name is unknown.
	Value(name string) (any, bool)
	// NameOf scans cases in ascending-name order and returns the first name
	// whose value equals v under the configured equality, or ("", false)
	// if no case value matches.
	NameOf(v any) (string, bool)
	// Each visits (name, value) pairs in ascending-name order until fn
	// returns false. Once fn signals stop, no further pair is visited.
	Each(fn func(name string, value any) bool)
}
