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

package common

// CaseNamer identifies enumeration case values by their declared case name.
//
// # Overview
//
// CaseNamer is the primary, zero-reflection fast-path for reverse lookup
// inside the enumx enumeration subsystem. When a payload value implements
// CaseNamer, the lookup logic MUST prefer this interface and MUST NOT scan
// the discovered case store for that value.
//
// Semantically, CaseNamer is a value-level contract: CaseName answers for
// *this* payload value, the one the case was declared with. The returned
// name is expected to match the name used at declaration time and to remain
// stable across program executions, deployments, and process restarts, as
// long as the underlying declarations do not change.
//
// # Performance
//
// Implementations are intended to be extremely cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations on the hot path.
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//
// # Usage
//
// Typical usage is to carry the case name inside the payload value itself,
// so that reverse lookup never pays for a store scan:
//
//	type Color struct {
//	    name    string
//	    R, G, B uint8
//	}
//
//	func (c Color) CaseName() string {
//	    return c.name
//	}
//
//	red := Color{name: "red", R: 255}
//	name, _ := enumx.NameOf("colors", red) // Returns "red" via the fast path.
//
// # Naming guidelines
//
// In general, the CaseName value is expected to be:
//
//   - Equal to the name the case was declared under (MUST).
//   - Stable across program executions (MUST).
//   - Unique within its enumeration set (SHOULD).
//   - Short and human-readable (SHOULD; <64 characters RECOMMENDED).
type CaseNamer interface {
	// CaseName returns the case name this payload value was declared under.
	//
	// # Contract
	//
	//   - The returned name MUST be non-empty.
	//   - The returned name MUST be deterministic for a given value.
	//   - The returned name MUST NOT depend on state that changes after the
	//     value was declared as a case.
	//   - The implementation MUST be safe for concurrent calls from multiple
	//     goroutines.
	//
	// # Performance and side-effects
	//
	//   - Implementations SHOULD avoid heap allocations; returning a stored
	//     field or a precomputed value is RECOMMENDED.
	//   - Implementations MUST NOT perform blocking operations, system calls,
	//     or I/O.
	//   - Implementations MUST NOT perform expensive computations on the hot
	//     path; if a name needs to be derived, it SHOULD be computed when the
	//     value is constructed and stored.
	//
	// # Semantics
	//
	// The returned value is taken at face value by the lookup logic: it is
	// NOT verified against the declared cases of any set. A value answering
	// a name it was never declared under will be reported under that name.
	//
	// Callers MAY treat this name as stable across the lifetime of the
	// process, but they MUST NOT assume that different applications or
	// binaries use the same naming scheme unless explicitly coordinated.
	CaseName() string
}

// TypedCaseNamer provides generic, strategy-driven naming for payload
// values of type T.
//
// # Overview
//
// TypedCaseNamer is a generic, type-parametric naming interface. It allows
// different naming strategies to be expressed in terms of a Go type
// parameter `T`, while still producing case names that can be consumed by
// the enumx enumeration subsystem, serializers, loggers, or metrics
// backends.
//
// Unlike CaseNamer, which is implemented by the payload value itself,
// TypedCaseNamer[T] separates:
//
//   - The *subject* being named (a value of type T), and
//   - The *strategy* that decides how to derive its name.
//
// This is useful when:
//
//   - The same naming strategy should be reused across multiple payload
//     types.
//   - Name derivation needs to be configured or injected (for example,
//     per module, per subsystem, or per environment).
//   - The payload type cannot be modified to carry a CaseName method.
//
// Implementations MAY inspect both the static type T and the dynamic type
// (when T is an interface), as well as selected aspects of the value v.
// For use as case identifiers, names SHOULD be derived from properties
// fixed at declaration time.
//
// # Usage
//
// A typical pattern is to define a generic struct that implements
// TypedCaseNamer for any T:
//
//	type PrefixNamer[T any] struct{ Prefix string }
//
//	func (n PrefixNamer[T]) CaseName(v T) string {
//	    return n.Prefix + fmt.Sprint(v)
//	}
//
//	var namer TypedCaseNamer[int] = PrefixNamer[int]{Prefix: "level-"}
//	name := namer.CaseName(3) // "level-3"
//
// Implementations MAY be adapted to CaseNamer by capturing a particular
// value and exposing a zero-argument CaseName.
type TypedCaseNamer[T any] interface {
	// CaseName returns a case name for a value of type T.
	//
	// # Contract
	//
	//   - The returned name MUST be a valid case name according to the
	//     conventions used by the surrounding system (for example, the same
	//     rules that apply to CaseNamer).
	//   - The returned name MUST be deterministic for a given input v.
	//   - Implementations MUST be safe for concurrent calls from multiple
	//     goroutines.
	//
	// # Performance and side-effects
	//
	//   - Implementations SHOULD keep per-call cost low (ideally O(1) with
	//     respect to v), and SHOULD avoid unnecessary heap allocations.
	//   - Implementations MUST NOT perform blocking operations or I/O in
	//     CaseName.
	//   - If computing the name requires reflection or string building,
	//     implementations SHOULD precompute and cache reusable components
	//     where feasible.
	//
	// # Semantics
	//
	// The returned name is suitable for use as:
	//
	//   - A case identifier within an enumeration set.
	//   - A key in registries, caches, or configuration files.
	//   - A label for logging and metrics.
	//
	// Callers MAY assume that names produced by a given TypedCaseNamer[T]
	// are consistent over the lifetime of the process, but they MUST NOT
	// assume cross-process or cross-application compatibility unless
	// explicitly documented by the implementation.
	CaseName(v T) string
}

// CaseNamerFunc adapts a plain function to the CaseNamer interface.
//
// # Overview
//
// CaseNamerFunc is a convenience adapter that allows standalone functions
// with signature `func() string` to satisfy the CaseNamer interface. This
// is useful when the case name is naturally expressed as a function (for
// example, when it must be computed once, or when you want to pass naming
// behavior as a dependency) rather than as a method on the payload type
// itself.
//
// Using CaseNamerFunc does not change the semantics of CaseNamer: the
// function is still expected to return the stable declared name of a case,
// independent of mutable state, for as long as the declarations are
// unchanged.
//
// # Usage
//
//	func redName() string { return "red" }
//
//	var namer CaseNamer = CaseNamerFunc(redName)
//	name := namer.CaseName() // "red"
//
// # Contract
//
//   - A CaseNamerFunc MUST return a non-empty, deterministic string.
//   - The returned name MUST match the name the associated case was
//     declared under.
//   - CaseNamerFunc implementations MUST be safe to call from multiple
//     goroutines concurrently.
//   - CaseNamerFunc SHOULD avoid heap allocations and expensive work on
//     the hot path, just like any other CaseNamer implementation.
//   - CaseNamerFunc MUST NOT perform blocking operations or I/O.
//
// # Performance
//
// CaseNamerFunc adds virtually no overhead compared to calling the
// underlying function directly: CaseName is a single function call
// indirection with no additional allocations under normal circumstances.
type CaseNamerFunc func() string

// CaseName implements CaseNamer for CaseNamerFunc.
//
// # Semantics
//
// Calling CaseName on a CaseNamerFunc is equivalent to invoking the
// underlying function value directly. All contractual requirements of
// CaseNamer apply to the wrapped function:
//
//   - It MUST return a non-empty, deterministic case name.
//   - It MUST be safe for concurrent use by multiple goroutines.
//   - It MUST NOT perform blocking I/O or long-running computations on the
//     hot path.
//   - It SHOULD keep per-call overhead minimal (ideally constant-time, with
//     no heap allocations).
//
// # Notes
//
// If the underlying function performs caching or precomputation, that logic
// SHOULD be implemented in a concurrency-safe manner (for example, using
// package-level initialization or sync.Once) so that repeated calls to
// CaseName remain cheap and predictable.
func (f CaseNamerFunc) CaseName() string {
	return f()
}
