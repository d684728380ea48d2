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

package config

import (
	"dirpx.dev/enumx/apis"
)

const (
	// DefaultIdentityEquality represents the default for IdentityEquality.
	// When false, reverse lookups use structural equality.
	DefaultIdentityEquality = false
	// DefaultReservedPrefix represents the default for ReservedPrefix.
	// Names starting with it are never user-declared cases.
	DefaultReservedPrefix = "enumx:"
	// DefaultMaxCases represents the default for MaxCases.
	// A value of 4096 should be sufficient for all practical purposes.
	DefaultMaxCases = 4096
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxCases is valid.
	if cfg.MaxCases < 0 {
		cfg.MaxCases = DefaultMaxCases
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IdentityEquality: DefaultIdentityEquality,
		ReservedPrefix:   DefaultReservedPrefix,
		MaxCases:         DefaultMaxCases,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIdentityEquality sets the IdentityEquality option.
func WithIdentityEquality(identity bool) Option {
	return func(c *apis.Config) {
		c.IdentityEquality = identity
	}
}

// WithReservedPrefix sets the ReservedPrefix option.
// An empty prefix disables name reservation.
func WithReservedPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.ReservedPrefix = prefix
	}
}

// WithMaxCases sets the MaxCases option.
// A negative value resets to the default.
func WithMaxCases(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxCases = DefaultMaxCases
			return
		}
		c.MaxCases = max
	}
}
