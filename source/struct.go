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

package source

import (
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/enumx/apis"
)

// StructOf creates an apis.Provider that contributes one case per usable
// exported field of v: the field name becomes the case name and the field
// value becomes the case value. v may be a struct or a pointer to one;
// anything else contributes nothing.
//
// The field filter is fixed and stable. A field is skipped when it is:
//   - unexported,
//   - embedded,
//   - tagged `enum:"-"`,
//   - an interface holding no value.
//
// A non-empty `enum:"name"` tag overrides the case name. Reserved-prefix
// names survive the scan and are dropped later by the discovery merge,
// like every other invalid entry.
func StructOf(v any) apis.Provider {
	return &structProvider{v: v}
}

// structProvider scans its captured value lazily, on each EnumCases call.
type structProvider struct {
	v any
}

// Ensure structProvider implements apis.Provider.
var _ apis.Provider = (*structProvider)(nil)

// fieldSpec is one surviving field of a scanned struct type.
type fieldSpec struct {
	index int
	name  string
}

// planCache caches scan plans by struct type: which fields become cases
// is a property of the type, not the value.
var planCache sync.Map // key: reflect.Type, val: []fieldSpec

// EnumCases reflects over the captured value and extracts its cases.
func (p *structProvider) EnumCases() []apis.Case {
	rv := reflect.ValueOf(p.v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	plan := planFor(rv.Type())
	out := make([]apis.Case, 0, len(plan))
	for _, f := range plan {
		fv := rv.Field(f.index)
		if fv.Kind() == reflect.Interface && fv.IsNil() {
			// No dynamic value to bind; drop the entry.
			continue
		}
		out = append(out, apis.Case{Name: f.name, Value: fv.Interface()})
	}
	return out
}

// planFor computes the scan plan for t with memoization.
func planFor(t reflect.Type) []fieldSpec {
	if v, ok := planCache.Load(t); ok {
		return v.([]fieldSpec)
	}

	var plan []fieldSpec
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("enum"); ok {
			tag = strings.Split(tag, ",")[0]
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		plan = append(plan, fieldSpec{index: i, name: name})
	}

	planCache.Store(t, plan)
	return plan
}
