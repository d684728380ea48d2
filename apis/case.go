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

// Case is a single (name, value) pair belonging to an enumeration set.
// The name is an identifier string unique within its set; the value is
// type-erased here and narrowed by the typed layer on read.
type Case struct {
	// Name is the case identifier, unique within the owning set.
	Name string
	// Value is the payload bound to the name.
	Value any
}

// Provider contributes cases to a set lazily, at discovery time rather than
// at registration time. Attach one to a set when its cases are produced by
// a plugin, a generated table, or any source that is not a static literal.
type Provider interface {
	// EnumCases returns the cases this provider currently contributes.
	// Implementations must be safe for concurrent calls and deterministic
	// between declarations (two calls with no intervening declarations
	// return equal cases).
	EnumCases() []Case
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() []Case

// EnumCases implements Provider for ProviderFunc.
func (f ProviderFunc) EnumCases() []Case {
	return f()
}
