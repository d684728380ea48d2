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

// Source is one pluggable step of case discovery. A Discoverer consults
// multiple sources in order (e.g. Table -> Providers) and merges their
// contributions, earlier sources winning on name collisions.
type Source interface {
	// Contribute returns the cases this source knows for a set according
	// to cfg. Invalid entries may be included; the discovery layer filters
	// them. Returning nil or an empty slice means "nothing to contribute".
	Contribute(set string, cfg Config) []Case
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(set string, cfg Config) []Case

// Contribute implements Source for SourceFunc.
func (f SourceFunc) Contribute(set string, cfg Config) []Case {
	return f(set, cfg)
}
