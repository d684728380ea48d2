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

// Describer augments CaseNamer with human-oriented metadata about a case.
//
// # Overview
//
// Describer is a higher-level contract that extends CaseNamer with
// additional, human-readable metadata about an enumeration case. While
// CaseNamer focuses on a compact, canonical identifier (for lookup,
// serialization, and logging), Describer provides context that is useful
// for:
//
//   - Documentation and API browsers.
//   - Debugging and introspection tools.
//   - Administrative and developer-facing UIs.
//   - Schema evolution and compatibility checks.
//
// All methods on Describer are case-level: they describe the declared case,
// not transient runtime conditions. Implementations SHOULD return values
// that are stable for a given version of the declaring package and do not
// depend on mutable runtime state.
//
// # Usage
//
//	type Color struct {
//	    name    string
//	    R, G, B uint8
//	}
//
//	func (c Color) CaseName() string        { return c.name }
//	func (c Color) CaseDescription() string { return "Primary additive color" }
//	func (c Color) CaseGroup() string       { return "primary" }
//	func (c Color) CaseSince() string       { return "v1" }
//
// This metadata can then be consumed by higher-level tooling to generate
// documentation, drive navigation, or display human-friendly descriptions
// alongside case names.
//
// # Contract
//
//   - All methods MUST be safe for concurrent use by multiple goroutines.
//   - All methods SHOULD be inexpensive and ideally allocation-free on the
//     hot path (for example, returning string literals or precomputed values).
//   - Implementations MUST NOT perform blocking operations or I/O.
//   - Returned values SHOULD be deterministic for a given declaration;
//     changes SHOULD correspond to deliberate declaration changes rather
//     than transient runtime conditions.
type Describer interface {
	CaseNamer

	// CaseDescription returns a human-readable description of the case.
	//
	// # Semantics
	//
	// CaseDescription is intended to be a concise, human-oriented summary
	// of what the case represents in the domain model. It is typically
	// used in:
	//
	//   - Documentation or schema browsers.
	//   - Admin consoles and configuration UIs.
	//   - Debugging tools and introspection views.
	//
	// Recommended properties:
	//
	//   - SHOULD be a short, single-sentence description.
	//   - SHOULD be stable for a given version of the declaring package.
	//   - SHOULD be understandable by humans without requiring knowledge
	//     of internal naming conventions.
	//
	// Localization:
	//
	//   - Implementations MAY return a description in a default locale
	//     (for example, English) if the system is not localization-aware.
	//   - If multiple locales are supported, higher-level infrastructure
	//     SHOULD handle locale selection; this interface models only the
	//     default, locale-agnostic description.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if no description is available,
	//     but callers SHOULD handle that case gracefully (for example, by
	//     falling back to CaseName).
	//   - The implementation MUST be safe for concurrent calls and MUST NOT
	//     perform blocking I/O or long-running computations.
	CaseDescription() string

	// CaseGroup returns a coarse-grained grouping for the case.
	//
	// # Semantics
	//
	// CaseGroup provides a high-level grouping that can be used for
	// organizing cases in UIs, documentation, or metrics dashboards. It
	// is typically drawn from a small, controlled vocabulary such as:
	//
	//   - "primary"
	//   - "deprecated"
	//   - "experimental"
	//   - "internal"
	//
	// Recommended properties:
	//
	//   - SHOULD be relatively short (for example, a single word or slug).
	//   - SHOULD be stable across versions of the same case.
	//   - SHOULD come from an application-wide controlled set of groups
	//     to keep navigation and grouping consistent.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if the case does not belong
	//     to a well-defined group, but infrastructure SHOULD be prepared
	//     to handle that case (for example, by grouping under "ungrouped").
	//   - The implementation MUST be safe for concurrent calls and SHOULD
	//     avoid allocations on the hot path (for example, by returning a
	//     string literal or precomputed value).
	CaseGroup() string

	// CaseSince returns the version in which the case was introduced.
	//
	// # Semantics
	//
	// CaseSince is intended to convey when a case became part of the
	// enumeration's external contract. Typical representations include:
	//
	//   - Simple labels: "v1", "v2".
	//   - Semantic versions: "v1.2.0".
	//   - Date-based versions: "2024-01-15".
	//
	// This value can be used by:
	//
	//   - Migration tools and schema registries.
	//   - Backwards-compatibility checks.
	//   - Client libraries that need to know whether a peer understands
	//     a given case.
	//
	// Recommended properties:
	//
	//   - MUST NOT change once the case has shipped in a release.
	//   - SHOULD remain constant across deployments of the same build.
	//   - SHOULD be machine-readable enough to allow simple equality or
	//     ordering checks, where applicable.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if versioning is not relevant
	//     or not modeled, but callers SHOULD treat the empty string as
	//     "version unknown" rather than "no version".
	//   - The implementation MUST be safe for concurrent use and MUST NOT
	//     perform blocking I/O or heavyweight computations.
	//   - Implementations SHOULD prefer returning a constant or precomputed
	//     version string tied to the declaring package, rather than
	//     deriving it at runtime.
	CaseSince() string
}
