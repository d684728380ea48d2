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

// Package enumx provides a global, process-wide extensible enumeration
// service.
//
// enumx turns a string-keyed family of named cases into something packages
// can extend independently: any compilation unit may declare new cases of a
// set at initialization time, and every reader observes the union of all
// declarations. Examples: a "colors" set grown by plugins, a "codec" set
// where each codec package declares itself, a "policy" set assembled from
// several modules of one binary.
//
// # Design
//
// The core of enumx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control how declarations are screened and how
//     values are compared (reserved name prefix, case capacity, whether
//     reverse lookup uses structural or identity equality).
//
//   - Registry: the process-wide declaration table. Packages append cases
//     (name, value pairs), bind a set's payload type, and attach lazy case
//     providers. The registry can be written to at runtime (Register) and
//     is the only mutable layer.
//
//   - Discoverer: a read-only object that answers "what are the cases of
//     this set right now?". It merges the registry's direct cases with
//     provider contributions into an immutable, name-sorted Store, and
//     caches that store until another declaration lands. Discoverer is
//     expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Discoverer instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Discoverer instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means enumx reads are lock-free on the hot path:
//
//	keys := enumx.Keys("colors")
//	v, ok := enumx.Value("colors", "red")
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Keys(set string) []string
//     Values(set string) []any
//     Mapping(set string) map[string]any
//     Count(set string) int
//     Value(set, name string) (any, bool)
//     NameOf(set string, v any) (string, bool)
//     Each(set string, fn func(string, any) bool)
//     Snapshot(set string) apis.Store
//     Sets() []string
//     Registry() apis.Registry
//     Discoverer() apis.Discoverer
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register(set, name string, value any) error
//     Attach(set string, p apis.Provider) error
//     Bind(set string, payload reflect.Type) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetDiscoverer(dis apis.Discoverer)
//     UnpinRegistry()
//     UnpinDiscoverer()
//     SetAll(...)
//
//     Register/Attach/Bind append declarations to the current registry;
//     they are what package init functions call. The Set* helpers acquire
//     an internal build lock, derive a new snapshot (rebuilding or reusing
//     Registry / Discoverer as needed), and then atomically publish that
//     snapshot.
//
//     Semantics in short:
//
//     - Config affects how declarations are screened and compared.
//     Calling SetConfig() may trigger a rebuild of Registry and/or
//     Discoverer, unless they are explicitly "pinned". A rebuild
//     migrates prior declarations into the new Registry.
//
//     - Builder controls how Registry and Discoverer are constructed.
//     Swapping the Builder lets you replace discovery logic
//     (different sources, different merge policies) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     enumx itself. It is simply passed down to the Builder so custom
//     builders (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetDiscoverer() directly overwrite the current
//     Registry / Discoverer in the snapshot and "pin" them. Once a
//     layer is pinned, enumx will stop rebuilding that layer
//     automatically until you call UnpinRegistry()/UnpinDiscoverer().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Discoverer in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Typed facade:
//
//     NewSet[V](name) (Set[V], error)
//     Set[V].Declare / Keys / Values / Value / From / NameOf / All / Sequence
//     Member[V].Value / Name / MarshalText / UnmarshalText
//
//     Set[V] narrows the type-erased store to one payload type; Member[V]
//     carries a single typed case value and bridges it to text encodings.
//
// # Concurrency model
//
// Reads (Keys, Value, NameOf, Snapshot, Registry, Discoverer) are wait-free
// at the snapshot level: they load the current *state atomically and never
// take locks. The Discoverer and Registry returned by that state must
// themselves be concurrency-safe for reads.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetDiscoverer, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-read
// locking. Declarations (Register, Attach, Bind) do not swap the snapshot
// at all; they append to the current registry, whose generation counter
// invalidates the discoverer's cached stores.
//
// # Pinning
//
// enumx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetDiscoverer(dis), that Discoverer is pinned and will
//     not be rebuilt automatically until UnpinDiscoverer().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Discoverer that reads cases from a sidecar file
// but still allow the rest of the system to change Config values.
//
// # Extension config
//
// The snapshot also carries an "ext" field. This is an opaque interface{}
// (any) value owned by the embedding binary. enumx does not interpret ext.
// The active Builder receives ext on each rebuild, so out-of-tree builders
// can inject custom sources or merge policies without hacking the enumx
// core.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let enumx init with default builder/config.
//
//  2. Declare a typed set and its well-known cases up front:
//
//     var Colors = enumx.MustSet[RGB]("colors")
//     var Red    = Colors.MustDeclare("red",   RGB{255, 0, 0})
//     var Green  = Colors.MustDeclare("green", RGB{0, 255, 0})
//
//  3. Let other packages extend the same set from their own init:
//
//     enumx.MustRegister("colors", "yellow", RGB{255, 255, 0})
//
//  4. Read the union anywhere: Colors.Keys(), Colors.Value("yellow"),
//     Colors.NameOf(v), or range Colors.All().
//
//  5. In tests, call enumx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// enumx is intentionally small. It does not try to be a general plugin
// framework or configuration system. It only solves one job:
//
//	"Let independently compiled packages add named cases to a shared
//	 enumeration, and give every reader the sorted union with both a
//	 type-erased and a statically typed view."
//
// Everything else (plugin loading, code generation, persistence, etc.)
// belongs to higher layers.
package enumx
