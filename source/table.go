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

package source

import (
	"dirpx.dev/enumx/apis"
)

// NewTable creates an apis.Source that reads a registry's directly
// registered cases (the static declaration table).
func NewTable(reg apis.Registry) apis.Source {
	return &tableSource{reg: reg}
}

// tableSource consults a provided registry's case table.
type tableSource struct {
	reg apis.Registry
}

// Ensure tableSource implements apis.Source.
var _ apis.Source = (*tableSource)(nil)

// Contribute returns the set's directly registered cases in declaration order.
func (s *tableSource) Contribute(set string, _ apis.Config) []apis.Case {
	if set == "" || s.reg == nil {
		return nil
	}
	return s.reg.Cases(set)
}
