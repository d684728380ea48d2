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
	"iter"
	"reflect"
)

// Set is the statically typed facade over one enumeration set. It narrows
// the type-erased store to payload type V on every read: cases carrying a
// value of any other type are invisible through it. The facade holds no
// case data itself, so it is a cheap value to copy and every read observes
// the current global state.
type Set[V any] struct {
	name string
}

// NewSet constructs the typed facade for the named set and binds the set's
// payload type to V in the global reg. Constructing a second facade with the
// same name and payload type is a no-op; a different payload type fails with
// the registry's conflicting-payload error.
func NewSet[V any](name string) (Set[V], error) {
	if err := Bind(name, reflect.TypeOf((*V)(nil)).Elem()); err != nil {
		return Set[V]{}, err
	}
	return Set[V]{name: name}, nil
}

// MustSet is like NewSet but panics on error.
// Intended for package-level declarations.
func MustSet[V any](name string) Set[V] {
	s, err := NewSet[V](name)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the set name this facade reads.
func (s Set[V]) Name() string {
	return s.name
}

// Declare registers a named case and returns its typed member.
func (s Set[V]) Declare(name string, v V) (Member[V], error) {
	if err := Register(s.name, name, v); err != nil {
		return Member[V]{}, err
	}
	return Member[V]{set: s.name, value: v}, nil
}

// MustDeclare is like Declare but panics on error.
// Intended for package-level declarations.
func (s Set[V]) MustDeclare(name string, v V) Member[V] {
	m, err := s.Declare(name, v)
	if err != nil {
		panic(err)
	}
	return m
}

// Keys returns the names of cases whose value narrows to V, sorted ascending.
func (s Set[V]) Keys() []string {
	var keys []string
	Snapshot(s.name).Each(func(name string, value any) bool {
		if _, ok := value.(V); ok {
			keys = append(keys, name)
		}
		return true
	})
	return keys
}

// Values returns the typed case values, ordered to match Keys.
func (s Set[V]) Values() []V {
	var values []V
	Snapshot(s.name).Each(func(name string, value any) bool {
		if v, ok := value.(V); ok {
			values = append(values, v)
		}
		return true
	})
	return values
}

// Mapping returns a fresh name-to-value map of the cases whose value
// narrows to V.
func (s Set[V]) Mapping() map[string]V {
	out := make(map[string]V)
	Snapshot(s.name).Each(func(name string, value any) bool {
		if v, ok := value.(V); ok {
			out[name] = v
		}
		return true
	})
	return out
}

// Count returns the number of cases whose value narrows to V.
func (s Set[V]) Count() int {
	n := 0
	Snapshot(s.name).Each(func(name string, value any) bool {
		if _, ok := value.(V); ok {
			n++
		}
		return true
	})
	return n
}

// Value returns the typed value bound to name. It returns false when the
// name is unknown or its value does not narrow to V.
func (s Set[V]) Value(name string) (V, bool) {
	var zero V
	v, ok := Value(s.name, name)
	if !ok {
		return zero, false
	}
	tv, ok := v.(V)
	if !ok {
		return zero, false
	}
	return tv, true
}

// Of wraps a payload value as a member of this set without consulting the
// store. The member is unnamed if no case was declared with an equal value.
func (s Set[V]) Of(v V) Member[V] {
	return Member[V]{set: s.name, value: v}
}

// From narrows a type-erased value into a member of this set. It checks the
// payload type only, never membership; ask Member.Name whether a case was
// declared for the value.
func (s Set[V]) From(v any) (Member[V], bool) {
	tv, ok := v.(V)
	if !ok {
		return Member[V]{}, false
	}
	return Member[V]{set: s.name, value: tv}, true
}

// FromText returns the member declared under name. It returns false when
// the name is unknown or its value does not narrow to V.
func (s Set[V]) FromText(name string) (Member[V], bool) {
	v, ok := s.Value(name)
	if !ok {
		return Member[V]{}, false
	}
	return Member[V]{set: s.name, value: v}, true
}

// NameOf returns the case name of v. A value implementing apis.CaseNamer
// answers directly; otherwise cases are scanned in ascending-name order and
// the first value equal to v under the configured equality wins.
func (s Set[V]) NameOf(v V) (string, bool) {
	return NameOf(s.name, v)
}

// All returns a restartable iterator over (name, value) pairs in
// ascending-name order, skipping foreign-typed values. Every range over the
// returned sequence re-reads the current snapshot, so cases declared between
// two ranges appear in the second.
func (s Set[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		Snapshot(s.name).Each(func(name string, value any) bool {
			v, ok := value.(V)
			if !ok {
				return true
			}
			return yield(name, v)
		})
	}
}

// Sequence materializes the current snapshot into an immutable typed
// sequence. Cases declared afterwards do not alter it.
func (s Set[V]) Sequence() Sequence[V] {
	var q Sequence[V]
	Snapshot(s.name).Each(func(name string, value any) bool {
		if v, ok := value.(V); ok {
			q.keys = append(q.keys, name)
			q.values = append(q.values, v)
		}
		return true
	})
	return q
}
