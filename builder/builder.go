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

package builder

import (
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/discovery"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/source"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its declarations are migrated into the new one: payload bindings
// first, then cases in declaration order, then providers in attachment order.
// Declarations the new configuration rejects (for example under a longer
// reserved prefix) are dropped during migration.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, set := range preg.Sets() {
			if payload, ok := preg.PayloadOf(set); ok {
				_ = nreg.Bind(set, payload)
			}
			for _, c := range preg.Cases(set) {
				_ = nreg.Register(set, c)
			}
			for _, p := range preg.Providers(set) {
				_ = nreg.Attach(set, p)
			}
		}
	}
	return nreg
}

// BuildDiscoverer builds and returns a new apis.Discoverer based on the
// provided configuration and registry. Directly registered cases take
// precedence over provider contributions when a name appears in both.
func (b *builder) BuildDiscoverer(cfg apis.Config, reg apis.Registry, _ apis.Discoverer, _ any) apis.Discoverer {
	var version func() uint64
	if reg != nil {
		version = reg.Generation
	}
	return discovery.New(
		version,
		source.NewTable(reg),
		source.NewProviders(reg),
	)
}
