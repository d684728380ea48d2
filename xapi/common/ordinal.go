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

// Ordinal extends CaseNamer with a numeric position for the case.
//
// # Overview
//
// Ordinal is an extended naming contract that combines:
//
//   - A declared case name (via CaseNamer.CaseName), and
//   - A numeric ordinal (via CaseOrdinal).
//
// This is particularly useful for persistence, wire protocols, and
// interop with systems that index enumeration cases numerically, where it
// is often necessary to carry not only *which* case a value is, but also
// *where* it sits in a numbering scheme fixed by the domain.
//
// The name and the ordinal are conceptually orthogonal:
//
//   - CaseName identifies the case within its set by the identifier the
//     declaring package chose (for example, "red").
//   - CaseOrdinal places the case in a numeric order that external
//     systems rely on (for example, 0 for the first protocol constant).
//
// Note that an enumeration set itself orders cases by name; CaseOrdinal
// exists precisely for domains whose numbering differs from that order.
//
// # Usage
//
// A typical pattern is to implement both CaseNamer and Ordinal on the same
// payload type:
//
//	type Signal struct {
//	    name string
//	    num  int
//	}
//
//	func (s Signal) CaseName() string { return s.name }
//	func (s Signal) CaseOrdinal() int { return s.num }
//
//	hup := Signal{name: "hangup", num: 1}
//	// hup.CaseName()    -> "hangup"
//	// hup.CaseOrdinal() -> 1
//
// Callers MAY use CaseName for human-facing surfaces (configuration,
// logs) and CaseOrdinal for compact encodings or for bridging to systems
// that predate the named declaration.
type Ordinal interface {
	CaseNamer

	// CaseOrdinal returns the numeric position of this case.
	//
	// # Semantics
	//
	// CaseOrdinal is the numeric counterpart to CaseName:
	//
	//   - CaseName identifies the case symbolically.
	//   - CaseOrdinal identifies it numerically, in a scheme owned by the
	//     declaring domain.
	//
	// The returned value is intended to be:
	//
	//   - Stable for the lifetime of the declaration (MUST).
	//   - Unique within the scope of the owning set (SHOULD), or at least
	//     unique within the numbering scheme it encodes.
	//   - Safe to persist and to exchange with external systems, subject
	//     to the schema-compatibility rules of the domain (MUST be
	//     considered by the implementation).
	//
	// Implementations MAY return a negative value to indicate that the
	// case has no meaningful ordinal (for example, cases that exist only
	// for in-process use). Callers MUST be prepared to handle negative
	// values as "no ordinal" and SHOULD NOT assume non-negativity unless
	// explicitly guaranteed by the domain model.
	//
	// # Contract
	//
	//   - CaseOrdinal MUST be deterministic for a given value over its
	//     lifetime (no spontaneous changes).
	//   - CaseOrdinal MUST be safe for concurrent calls from multiple
	//     goroutines.
	//   - CaseOrdinal SHOULD avoid heap allocations on the hot path (for
	//     example, by returning a field or a precomputed value).
	//   - CaseOrdinal MUST NOT perform blocking operations or I/O.
	//   - CaseOrdinal MUST be reasonably cheap to compute; if the ordinal
	//     is derived from expensive state, it SHOULD be precomputed and
	//     cached.
	//
	// # Usage in infrastructure
	//
	// Serialization and interop layers MAY use the combination of
	// (CaseName, CaseOrdinal) as a composite key for:
	//
	//   - Emitting both symbolic and numeric encodings of the same case.
	//   - Migrating stored data between numbering schemes.
	//   - Validating that two processes agree on a shared enumeration.
	//
	// However, infrastructure MUST NOT rely on CaseOrdinal being globally
	// unique across all sets unless such a property is explicitly
	// documented by the application or implementation.
	CaseOrdinal() int
}
