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

// Config carries read-only discovery knobs that influence registries and stores.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// IdentityEquality selects strict identity comparison for reverse lookups.
	// If false (the default), values of comparable type compare with ==, and
	// non-comparable values fall back to deep structural equality. If true,
	// non-comparable values never match.
	IdentityEquality bool

	// ReservedPrefix marks names that can never be cases. Names carrying the
	// prefix are rejected at registration and silently dropped at discovery.
	// An empty prefix disables the reservation.
	ReservedPrefix string

	// MaxCases bounds how many cases one set may hold after merging.
	// Acts as a safety guard against runaway providers.
	MaxCases int
}
