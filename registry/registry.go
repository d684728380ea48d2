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

package registry

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	ueq "dirpx.dev/enumx/utils/equality"
)

var (
	// ErrEmptySet is returned when an empty set name is provided.
	ErrEmptySet = errors.New("enumx(registry): empty set name provided")
	// ErrEmptyName is returned when an empty case name is provided.
	ErrEmptyName = errors.New("enumx(registry): empty case name provided")
	// ErrReservedName is returned when a case name carries the reserved prefix.
	ErrReservedName = errors.New("enumx(registry): reserved case name provided")
	// ErrNilValue is returned when a nil case value is provided.
	ErrNilValue = errors.New("enumx(registry): nil case value provided")
	// ErrConflictingCase indicates an attempt to re-register a name
	// with a different value.
	ErrConflictingCase = errors.New("enumx(registry): conflicting case registration")
	// ErrNilPayload is returned when a nil payload type is provided.
	ErrNilPayload = errors.New("enumx(registry): nil payload type provided")
	// ErrConflictingPayload indicates an attempt to re-bind a set
	// to a different payload type.
	ErrConflictingPayload = errors.New("enumx(registry): conflicting payload binding")
	// ErrNilProvider is returned when a nil provider is provided.
	ErrNilProvider = errors.New("enumx(registry): nil provider provided")
)

// New constructs a Registry that validates names according to cfg.
// Only ReservedPrefix and IdentityEquality are used here (MaxCases is a
// discovery concern).
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg, sets: make(map[string]*setEntry)}
}

// registry is the mutex-guarded declaration table. Writes happen during
// static initialization; reads happen rarely (snapshot rebuilds), so a
// single mutex over plain maps keeps the invariants simple. The hot read
// path is the discovered Store, not this table.
type registry struct {
	// cfg is the configuration used for name validation and value equality.
	cfg apis.Config
	// mu guards sets and every entry behind it.
	mu sync.Mutex
	// sets maps set name to its declaration entry.
	sets map[string]*setEntry
	// gen increases on every successful mutation.
	gen atomic.Uint64
}

// setEntry holds everything declared for one set.
type setEntry struct {
	// cases in declaration order.
	cases []apis.Case
	// index maps case name to its position in cases.
	index map[string]int
	// payload is the bound payload type; nil until Bind.
	payload reflect.Type
	// providers in attachment order.
	providers []apis.Provider
}

// Register appends a case to a set.
// It is idempotent for an equal (name, value) pair.
func (r *registry) Register(set string, c apis.Case) error {
	// Validate inputs early.
	if set == "" {
		return ErrEmptySet
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if r.cfg.ReservedPrefix != "" && strings.HasPrefix(c.Name, r.cfg.ReservedPrefix) {
		return ErrReservedName
	}
	if c.Value == nil {
		return ErrNilValue
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(set)
	if i, ok := e.index[c.Name]; ok {
		if ueq.Equal(e.cases[i].Value, c.Value, r.cfg) {
			return nil // idempotent re-registration
		}
		return ErrConflictingCase
	}

	e.index[c.Name] = len(e.cases)
	e.cases = append(e.cases, c)
	r.gen.Add(1)
	return nil
}

// Bind fixes the payload type of a set.
// It is idempotent for the same type.
func (r *registry) Bind(set string, payload reflect.Type) error {
	if set == "" {
		return ErrEmptySet
	}
	if payload == nil {
		return ErrNilPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(set)
	if e.payload != nil {
		if e.payload == payload {
			return nil
		}
		return ErrConflictingPayload
	}

	e.payload = payload
	r.gen.Add(1)
	return nil
}

// PayloadOf returns the bound payload type of a set, if any.
func (r *registry) PayloadOf(set string) (reflect.Type, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sets[set]
	if !ok || e.payload == nil {
		return nil, false
	}
	return e.payload, true
}

// Attach adds a provider to a set. Attaching the same provider again
// contributes its cases again; duplicate names resolve at discovery.
func (r *registry) Attach(set string, p apis.Provider) error {
	if set == "" {
		return ErrEmptySet
	}
	if p == nil {
		return ErrNilProvider
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(set)
	e.providers = append(e.providers, p)
	r.gen.Add(1)
	return nil
}

// Cases returns a snapshot of a set's directly registered cases.
func (r *registry) Cases(set string) []apis.Case {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sets[set]
	if !ok || len(e.cases) == 0 {
		return nil
	}
	out := make([]apis.Case, len(e.cases))
	copy(out, e.cases)
	return out
}

// Providers returns a snapshot of a set's attached providers.
func (r *registry) Providers(set string) []apis.Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sets[set]
	if !ok || len(e.providers) == 0 {
		return nil
	}
	out := make([]apis.Provider, len(e.providers))
	copy(out, e.providers)
	return out
}

// Sets returns the names of all known sets, sorted ascending.
func (r *registry) Sets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.sets))
	for name := range r.sets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of directly registered cases in a set.
func (r *registry) Count(set string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sets[set]
	if !ok {
		return 0
	}
	return len(e.cases)
}

// Generation returns the mutation counter.
func (r *registry) Generation() uint64 {
	return r.gen.Load()
}

// Reset clears all sets, bindings, and providers.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets = make(map[string]*setEntry)
	r.gen.Add(1)
}

// entry returns the set's entry, creating it if needed. Callers hold r.mu.
func (r *registry) entry(set string) *setEntry {
	e, ok := r.sets[set]
	if !ok {
		e = &setEntry{index: make(map[string]int)}
		r.sets[set] = e
	}
	return e
}
