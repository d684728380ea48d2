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

package equality

import (
	"reflect"

	"dirpx.dev/enumx/apis"
)

// Equal reports whether two payload values are equal according to config
// (IdentityEquality).
//
// Comparison policy:
//   - nil matches only nil.
//   - values of different dynamic types never match.
//   - comparable values compare with ==; for pointer payloads this is
//     identity, for value payloads it is the type's own equality.
//   - non-comparable values (slices, maps, funcs) fall back to
//     reflect.DeepEqual, unless IdentityEquality is set, in which case they
//     never match.
//
// Equal never panics: comparability is checked on the values, not their
// type, so a comparable struct type holding a slice behind an interface
// field still takes the DeepEqual path.
func Equal(a, b any, cfg apis.Config) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	if cfg.IdentityEquality {
		// Strict mode: a non-comparable value has no identity to compare.
		return false
	}
	return reflect.DeepEqual(a, b)
}
