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

// NewProviders creates an apis.Source that invokes a registry's attached
// providers at contribution time. Providers run lazily: a provider attached
// after the set was first discovered still contributes on the next rebuild.
func NewProviders(reg apis.Registry) apis.Source {
	return &providerSource{reg: reg}
}

// providerSource consults a registry's attached providers in order.
type providerSource struct {
	reg apis.Registry
}

// Ensure providerSource implements apis.Source.
var _ apis.Source = (*providerSource)(nil)

// Contribute collects the cases of every attached provider, in attachment
// order. A nil provider slot contributes nothing.
func (s *providerSource) Contribute(set string, _ apis.Config) []apis.Case {
	if set == "" || s.reg == nil {
		return nil
	}
	var out []apis.Case
	for _, p := range s.reg.Providers(set) {
		if p == nil {
			continue
		}
		out = append(out, p.EnumCases()...)
	}
	return out
}
