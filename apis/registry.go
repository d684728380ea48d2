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

import "reflect"

// Registry is the process-wide declaration table for enumeration sets.
// Declaration sites (typically package-level var and init statements in
// independently compiled packages) append cases, payload bindings, and
// providers; the discovery layer reads them back when assembling a Store.
type Registry interface {
	// Register appends a case to a set. Implementations should be idempotent
	// for an equal (name, value) pair and reject a re-registration that binds
	// the same name to a different value.
	Register(set string, c Case) error
	// Bind fixes the payload type of a set. Binding the same type again is a
	// no-op; binding a different type is a conflict. A set may hold cases
	// without a binding (purely type-erased use).
	Bind(set string, payload reflect.Type) error
	// PayloadOf returns the bound payload type of a set, if any.
	PayloadOf(set string) (reflect.Type, bool)
	// Attach adds a lazily-consulted case provider to a set.
	Attach(set string, p Provider) error
	// Cases returns a snapshot of a set's directly registered cases in
	// declaration order. Provider-contributed cases are not included.
	Cases(set string) []Case
	// Providers returns a snapshot of a set's attached providers in
	// attachment order.
	Providers(set string) []Provider
	// Sets returns the names of all known sets, sorted ascending.
	Sets() []string
	// Count returns the number of directly registered cases in a set.
	Count(set string) int
	// Generation returns a counter that increases on every successful
	// mutation. Snapshot caches key their entries on it.
	Generation() uint64
	// Reset clears all sets, bindings, and providers.
	Reset()
}
