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

// CaseNamer is the zero-cost fast path for reverse lookup. A payload value
// implementing it answers its own case name, and the lookup logic prefers
// this interface over scanning the Store. The returned name must be the name
// the value was declared under; it takes priority without verification.
type CaseNamer interface {
	// CaseName returns the case name this value was declared under.
	// Must be non-empty, deterministic, and safe for concurrent calls.
	CaseName() string
}
