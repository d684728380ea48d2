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

package enumx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Member is one case of a set, carrying its typed payload value. Members
// come from Set.Declare, Set.Of, Set.From, or Set.FromText; the zero Member
// belongs to no set, and unmarshalling into it infers the set from the
// payload type binding.
type Member[V any] struct {
	set   string
	value V
}

// Value returns the payload value. A Member can only be constructed around
// a value of type V, so the accessor is total and involves no assertion.
func (m Member[V]) Value() V {
	return m.value
}

// SetName returns the name of the set this member belongs to.
// It is empty for the zero Member.
func (m Member[V]) SetName() string {
	return m.set
}

// Name returns the case name of the member's value. A value implementing
// apis.CaseNamer answers directly; otherwise the set's cases are scanned in
// ascending-name order. Returns false when no case was declared with an
// equal value.
func (m Member[V]) Name() (string, bool) {
	return NameOf(m.set, m.value)
}

// String returns the case name, or a diagnostic rendering of the raw value
// when the member is unnamed.
func (m Member[V]) String() string {
	if name, ok := m.Name(); ok {
		return name
	}
	return fmt.Sprintf("Unnamed(%v)", m.value)
}

// MarshalText encodes the member as its case name.
// Unnamed members cannot be encoded.
func (m Member[V]) MarshalText() ([]byte, error) {
	name, ok := m.Name()
	if !ok {
		return nil, fmt.Errorf("enumx: value %v of set %q has no case name", m.value, m.set)
	}
	return []byte(name), nil
}

// UnmarshalText decodes a case name into the member. Surrounding whitespace
// is trimmed; matching is exact otherwise. On a zero Member the set is
// inferred from the payload type bound to V, which must identify exactly
// one set. The receiver is left unchanged on error.
func (m *Member[V]) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	if name == "" {
		return errors.New("enumx: empty case name")
	}

	set := m.set
	if set == "" {
		inferred, err := setForPayload(reflect.TypeOf((*V)(nil)).Elem())
		if err != nil {
			return err
		}
		set = inferred
	}

	v, ok := Value(set, name)
	if !ok {
		return fmt.Errorf("enumx: unknown case %q in set %q", name, set)
	}
	tv, ok := v.(V)
	if !ok {
		return fmt.Errorf("enumx: case %q of set %q does not hold a %v", name, set, reflect.TypeOf((*V)(nil)).Elem())
	}

	m.set = set
	m.value = tv
	return nil
}

// setForPayload returns the single set whose payload binding is t.
// It uses the global enumx reg.
func setForPayload(t reflect.Type) (string, error) {
	reg := st.Load().reg
	var found []string
	for _, set := range reg.Sets() {
		if payload, ok := reg.PayloadOf(set); ok && payload == t {
			found = append(found, set)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("enumx: no set bound to payload type %v", t)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("enumx: payload type %v bound to %d sets", t, len(found))
	}
}
