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

import "iter"

// Sequence is an immutable, name-sorted materialization of a set's typed
// cases. It does not observe declarations made after it was built; obtain a
// fresh one from Set.Sequence to see them.
type Sequence[V any] struct {
	keys   []string
	values []V
}

// Len returns the number of entries.
func (q Sequence[V]) Len() int {
	return len(q.keys)
}

// Keys returns the case names in ascending order.
func (q Sequence[V]) Keys() []string {
	out := make([]string, len(q.keys))
	copy(out, q.keys)
	return out
}

// Values returns the case values, ordered to match Keys.
func (q Sequence[V]) Values() []V {
	out := make([]V, len(q.values))
	copy(out, q.values)
	return out
}

// All returns a restartable iterator over the entries in ascending-name
// order. Ranging over it any number of times yields the same entries.
func (q Sequence[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, k := range q.keys {
			if !yield(k, q.values[i]) {
				return
			}
		}
	}
}

// Each visits entries in ascending-name order until fn returns false.
func (q Sequence[V]) Each(fn func(name string, value V) bool) {
	for i, k := range q.keys {
		if !fn(k, q.values[i]) {
			return
		}
	}
}

// Filter returns a new sequence holding only the entries keep accepts.
// Order is preserved.
func (q Sequence[V]) Filter(keep func(name string, value V) bool) Sequence[V] {
	var out Sequence[V]
	for i, k := range q.keys {
		if keep(k, q.values[i]) {
			out.keys = append(out.keys, k)
			out.values = append(out.values, q.values[i])
		}
	}
	return out
}

// MapSequence transforms each value of a sequence through fn, preserving
// names and order.
func MapSequence[V, U any](q Sequence[V], fn func(name string, value V) U) Sequence[U] {
	out := Sequence[U]{
		keys:   make([]string, len(q.keys)),
		values: make([]U, 0, len(q.keys)),
	}
	copy(out.keys, q.keys)
	for i, k := range q.keys {
		out.values = append(out.values, fn(k, q.values[i]))
	}
	return out
}
