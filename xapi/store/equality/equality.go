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

package equality

import (
	"fmt"
	"strings"
)

// Mode controls how a case store compares payload values.
//
// # Overview
//
// Mode is a small enumerated type that describes how reverse lookup and
// duplicate detection decide whether two payload values are "the same".
// Concrete store implementations use this value to select the comparison
// applied when scanning cases for a match and when recognizing idempotent
// re-declarations.
//
// Mode is intentionally minimal and format-agnostic: it does not define
// which fields participate in comparison or how deeply values are walked,
// but instead selects a broad class of behavior (structural vs identity).
//
// # Values
//
// The following modes are defined:
//
//   - Structural: values match when their contents are equal.
//   - Identity:   values match only when they are the same object.
//
// Implementations MAY support additional, implementation-specific tuning
// parameters (such as which fields are part of a value's identity), but
// those are configured separately from Mode.
//
// # Contract
//
//   - Store implementations MUST treat Mode as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - Mode values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Mode SHOULD be used as an input to configuration or factory code,
//     not mutated at runtime in performance-critical paths.
type Mode int

const (
	// Structural selects content-based comparison.
	//
	// # Semantics
	//
	// Under Structural, two payload values match when their dynamic types
	// are identical and their contents are equal. For comparable types this
	// is plain equality; for composite types implementations typically fall
	// back to a deep comparison. "Contents" includes:
	//
	//   - Scalar fields and their values.
	//   - Nested structs, arrays, slices, and maps, element by element.
	//
	// Recommended usage:
	//
	//   - Value-like payloads (colors, codes, tuples) where two equal
	//     literals declared in different packages mean the same case.
	//   - The common default for enumerations whose payloads are plain
	//     data.
	//
	// Implementation notes:
	//
	//   - Deep comparison can be arbitrarily expensive for large values;
	//     implementations SHOULD keep payloads small or provide a faster
	//     path (for example, the value answering its own name).
	//   - Implementations MUST NOT panic when a value is not comparable;
	//     they SHOULD degrade to a deep comparison instead.
	Structural Mode = iota

	// Identity selects object-identity comparison.
	//
	// # Semantics
	//
	// Under Identity, two payload values match only when they are the same
	// object: equal pointers, or values whose comparison under Go's ==
	// operator observes shared identity. Structurally equal but distinct
	// values MUST NOT match. Implementations MAY treat non-comparable,
	// non-pointer values as never matching.
	//
	// Recommended usage:
	//
	//   - Handle-like payloads (connections, sessions, singletons) where
	//     two structurally similar objects are still different cases.
	//   - Sets whose payloads intentionally embed distinguishing state
	//     that a deep comparison would ignore or overweight.
	//
	// Implementation notes:
	//
	//   - Identity comparison is constant-time and allocation-free.
	//   - Implementations SHOULD document how interface values wrapping
	//     non-pointer types behave under this mode.
	Identity
)

// String returns a human-readable representation of the Mode value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, metrics labels, configuration dumps, and debugging.
// For all defined enum values, the returned strings are:
//
//   - Structural -> "Structural"
//   - Identity   -> "Identity"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This behavior
// is intentional and MUST NOT panic, so that corrupted or unexpected values
// can still be surfaced safely in logs and diagnostics.
//
// # Contract
//
//   - The mapping from known Mode values to strings MUST remain stable;
//     changing the spelling or casing is a breaking change for systems that
//     persist or parse these strings.
//   - Callers MAY use the returned string for display or logging, but they
//     SHOULD NOT rely on it as a primary configuration format unless this
//     is explicitly documented and properly versioned.
func (m Mode) String() string {
	switch m {
	case Structural:
		return "Structural"
	case Identity:
		return "Identity"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Parse parses a textual representation of a Mode.
//
// # Overview
//
// Parse converts a string token into the corresponding Mode value. It
// accepts the same canonical tokens that are produced by Mode.String()
// for known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "Structural" -> Structural
//   - "Identity"   -> Identity
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, Parse returns a valid Mode and a nil error.
//   - On failure, Parse returns Structural and a non-nil error;
//     callers MUST NOT rely on the returned Mode value in the error case.
//   - Parse MUST NOT panic for any input.
//
// # Usage
//
// Parse is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs. For
// hard-coded values that are expected to be valid, callers MAY prefer
// MustParse for brevity.
//
// Example:
//
//	mode, err := Parse("identity")
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	_ = mode // Identity
func Parse(s string) (Mode, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Structural, fmt.Errorf("store: empty equality mode")
	}

	switch strings.ToUpper(trimmed) {
	case "STRUCTURAL":
		return Structural, nil
	case "IDENTITY":
		return Identity, nil
	default:
		return Structural, fmt.Errorf("store: unknown equality mode %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// # Overview
//
// MustParse is a convenience helper for contexts where the input string is
// expected to be a valid Mode token and encountering an invalid value is
// considered a programmer error rather than a recoverable condition.
//
// It is intended for:
//
//   - Hard-coded configuration in Go code.
//   - Tests and examples.
//   - Initialization code where failing fast with a panic is acceptable.
//
// # Contract
//
//   - On valid input, MustParse returns the same value as Parse and
//     MUST NOT panic.
//   - On invalid input (including empty strings), MustParse panics
//     with a diagnostic message.
//   - Callers MUST NOT use MustParse on untrusted or user-supplied
//     data; they SHOULD use Parse instead and handle errors.
//
// # Usage
//
//	var defaultMode = MustParse("Structural")
func MustParse(s string) Mode {
	mode, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return mode
}

// MarshalText encodes Mode as text.
//
// # Overview
//
// MarshalText implements encoding.TextMarshaler for Mode. It converts a
// Mode value into its canonical textual representation, suitable for use
// in textual encodings such as:
//
//   - encoding/json (when using ",string" struct tags or custom handling),
//   - encoding/xml,
//   - encoding/yaml (via third-party libraries),
//   - configuration files and human-readable dumps.
//
// For all defined Mode values, MarshalText returns the same tokens as
// Mode.String() for known values ("Structural", "Identity").
//
// # Contract
//
//   - On success, MarshalText returns a non-nil byte slice and a nil error.
//   - For unknown or out-of-range Mode values, MarshalText returns a
//     non-nil error and MUST NOT silently serialize an "Unknown(...)" form;
//     this avoids persisting potentially invalid states.
//   - MarshalText MUST NOT panic for any Mode value.
//
// # Usage
//
// MarshalText is typically called indirectly by encoding frameworks. Direct
// callers MAY use it when they need an explicit textual form:
//
//	b, err := mode.MarshalText()
//	if err != nil {
//	    // handle unknown/invalid mode
//	}
//	fmt.Println(string(b)) // e.g. "Structural"
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Structural, Identity:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("store: cannot marshal unknown equality mode %d", m)
	}
}

// UnmarshalText decodes a Mode from its textual representation.
//
// # Overview
//
// UnmarshalText implements encoding.TextUnmarshaler for Mode. It accepts
// the same textual tokens as Parse, with case-insensitive matching:
//
//   - "Structural" -> Structural
//   - "Identity"   -> Identity
//
// Leading and trailing whitespace are ignored. Any other value results in
// a non-nil error, and the target is left unchanged.
//
// # Contract
//
//   - text MAY contain surrounding whitespace; it will be trimmed.
//   - On success, *m is set to the parsed value and a nil error is returned.
//   - On failure, *m MUST NOT be modified and a non-nil error is returned.
//   - UnmarshalText MUST NOT panic for any input.
//   - Callers MUST NOT assume that an empty text slice is valid; it is
//     treated as an error.
//
// # Usage
//
// UnmarshalText is typically invoked by encoding frameworks when decoding
// configuration or serialized state. It can also be used directly:
//
//	var mode Mode
//	if err := mode.UnmarshalText([]byte("identity")); err != nil {
//	    // handle invalid input
//	}
//
//	_ = mode // Identity
func (m *Mode) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("store: empty equality mode")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*m = value
	return nil
}
