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

// Discoverer assembles the current Store for a set by merging sources.
// Typical chain: Table -> Providers.
type Discoverer interface {
	// Discover returns a snapshot of every case currently declared for set.
	// A set with no declarations yields an empty Store, never nil. Two calls
	// with no intervening declarations return equal snapshots; a call after
	// a new declaration must include it.
	Discover(set string, cfg Config) Store
}
