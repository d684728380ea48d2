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

package registry_test

import (
	"reflect"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

type rgb struct{ R, G, B uint8 }

func TestRegister_IdempotentAndCases(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	err := reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}})
	if err != nil {
		t.Fatalf("Register(red): unexpected error: %v", err)
	}
	// idempotent re-register with an equal value
	if err := reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}}); err != nil {
		t.Fatalf("Register(red) idempotent: unexpected error: %v", err)
	}

	cases := reg.Cases("colors")
	if len(cases) != 1 {
		t.Fatalf("Cases len = %d, want 1", len(cases))
	}
	if cases[0].Name != "red" || cases[0].Value != (rgb{255, 0, 0}) {
		t.Fatalf("Cases[0] = %+v, want {red {255 0 0}}", cases[0])
	}

	if reg.Count("colors") != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count("colors"))
	}
}

func TestRegister_Conflict(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same name, different value -> conflict
	err := reg.Register("colors", apis.Case{Name: "red", Value: rgb{0, 0, 255}})
	if err == nil || err != registry.ErrConflictingCase {
		t.Fatalf("expected ErrConflictingCase, got: %v", err)
	}
	// The first registration stays in place.
	if cases := reg.Cases("colors"); cases[0].Value != (rgb{255, 0, 0}) {
		t.Fatalf("Cases[0].Value = %+v, want {255 0 0}", cases[0].Value)
	}
}

func TestRegister_InterfacePayloadHoldingSlice(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	type payload struct{ X any }

	// Equal contents re-register idempotently even when the payload holds
	// non-comparable content behind an interface field.
	if err := reg.Register("fills", apis.Case{Name: "stripes", Value: payload{X: []int{1, 2}}}); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	if err := reg.Register("fills", apis.Case{Name: "stripes", Value: payload{X: []int{1, 2}}}); err != nil {
		t.Fatalf("Register idempotent: unexpected error: %v", err)
	}
	if err := reg.Register("fills", apis.Case{Name: "stripes", Value: payload{X: []int{3}}}); err != registry.ErrConflictingCase {
		t.Fatalf("want ErrConflictingCase, got %v", err)
	}
	if reg.Count("fills") != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count("fills"))
	}
}

func TestRegister_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register("", apis.Case{Name: "x", Value: 1}); err != registry.ErrEmptySet {
		t.Fatalf("empty set: want ErrEmptySet, got %v", err)
	}
	if err := reg.Register("colors", apis.Case{Name: "", Value: 1}); err != registry.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
	if err := reg.Register("colors", apis.Case{Name: "enumx:meta", Value: 1}); err != registry.ErrReservedName {
		t.Fatalf("reserved name: want ErrReservedName, got %v", err)
	}
	if err := reg.Register("colors", apis.Case{Name: "red", Value: nil}); err != registry.ErrNilValue {
		t.Fatalf("nil value: want ErrNilValue, got %v", err)
	}
}

func TestRegister_ReservedPrefixDisabled(t *testing.T) {
	cfg := config.NewConfig(config.WithReservedPrefix(""))
	reg := registry.New(cfg)

	// With an empty prefix, any non-empty name goes through.
	if err := reg.Register("colors", apis.Case{Name: "enumx:meta", Value: 1}); err != nil {
		t.Fatalf("Register with disabled prefix: unexpected error: %v", err)
	}
}

func TestRegister_NoCaseCap(t *testing.T) {
	// MaxCases bounds discovery snapshots, not declarations: the registry
	// accepts every valid case regardless of the configured cap.
	reg := registry.New(config.NewConfig(config.WithMaxCases(2)))

	for _, name := range []string{"a", "b", "c", "d"} {
		if err := reg.Register("s", apis.Case{Name: name, Value: name}); err != nil {
			t.Fatalf("Register(%s): unexpected error: %v", name, err)
		}
	}
	if got := reg.Count("s"); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
}

func TestBind_IdempotentAndConflict(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	rgbType := reflect.TypeOf(rgb{})
	if err := reg.Bind("colors", rgbType); err != nil {
		t.Fatalf("Bind: unexpected error: %v", err)
	}
	// Re-binding the same type is a no-op.
	if err := reg.Bind("colors", rgbType); err != nil {
		t.Fatalf("Bind idempotent: unexpected error: %v", err)
	}
	// Binding a different type is a conflict.
	err := reg.Bind("colors", reflect.TypeOf(""))
	if err == nil || err != registry.ErrConflictingPayload {
		t.Fatalf("expected ErrConflictingPayload, got: %v", err)
	}

	got, ok := reg.PayloadOf("colors")
	if !ok || got != rgbType {
		t.Fatalf("PayloadOf = (%v,%v), want (%v,true)", got, ok, rgbType)
	}
}

func TestBind_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if err := reg.Bind("", reflect.TypeOf(0)); err != registry.ErrEmptySet {
		t.Fatalf("empty set: want ErrEmptySet, got %v", err)
	}
	if err := reg.Bind("colors", nil); err != registry.ErrNilPayload {
		t.Fatalf("nil payload: want ErrNilPayload, got %v", err)
	}
	if _, ok := reg.PayloadOf("unbound"); ok {
		t.Fatalf("PayloadOf(unbound): got ok=true, want false")
	}
}

func TestAttach_AndProviders(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	p := apis.ProviderFunc(func() []apis.Case {
		return []apis.Case{{Name: "yellow", Value: rgb{255, 255, 0}}}
	})
	if err := reg.Attach("colors", p); err != nil {
		t.Fatalf("Attach: unexpected error: %v", err)
	}
	if err := reg.Attach("", p); err != registry.ErrEmptySet {
		t.Fatalf("empty set: want ErrEmptySet, got %v", err)
	}
	if err := reg.Attach("colors", nil); err != registry.ErrNilProvider {
		t.Fatalf("nil provider: want ErrNilProvider, got %v", err)
	}

	providers := reg.Providers("colors")
	if len(providers) != 1 {
		t.Fatalf("Providers len = %d, want 1", len(providers))
	}
	got := providers[0].EnumCases()
	if len(got) != 1 || got[0].Name != "yellow" {
		t.Fatalf("provider cases = %+v, want [{yellow ...}]", got)
	}
}

func TestGeneration_BumpsOnMutationOnly(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	g0 := reg.Generation()
	if err := reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	g1 := reg.Generation()
	if g1 <= g0 {
		t.Fatalf("Generation after Register = %d, want > %d", g1, g0)
	}

	// Idempotent re-registration must not bump.
	if err := reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}}); err != nil {
		t.Fatalf("Register idempotent: %v", err)
	}
	if g := reg.Generation(); g != g1 {
		t.Fatalf("Generation after idempotent Register = %d, want %d", g, g1)
	}

	// Failed registrations must not bump either.
	_ = reg.Register("colors", apis.Case{Name: "red", Value: rgb{9, 9, 9}})
	if g := reg.Generation(); g != g1 {
		t.Fatalf("Generation after failed Register = %d, want %d", g, g1)
	}

	if err := reg.Bind("colors", reflect.TypeOf(rgb{})); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if g := reg.Generation(); g <= g1 {
		t.Fatalf("Generation after Bind = %d, want > %d", g, g1)
	}
}

func TestSetsAndReset(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	_ = reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}})
	_ = reg.Register("animals", apis.Case{Name: "cat", Value: "meow"})

	sets := reg.Sets()
	if len(sets) != 2 || sets[0] != "animals" || sets[1] != "colors" {
		t.Fatalf("Sets() = %v, want [animals colors]", sets)
	}

	gBefore := reg.Generation()
	reg.Reset()

	if reg.Count("colors") != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count("colors"))
	}
	if len(reg.Sets()) != 0 {
		t.Fatalf("after Reset, Sets() = %v, want empty", reg.Sets())
	}
	if reg.Generation() <= gBefore {
		t.Fatalf("Reset must bump the generation")
	}
}

func TestCasesSnapshot_IsACopy(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_ = reg.Register("colors", apis.Case{Name: "red", Value: rgb{255, 0, 0}})
	snap := reg.Cases("colors")
	snap[0].Name = "mangled"

	if got := reg.Cases("colors"); got[0].Name != "red" {
		t.Fatalf("Cases snapshot leaked: got %q, want %q", got[0].Name, "red")
	}
}

func TestCasesUnknownSet(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if cases := reg.Cases("unknown"); cases != nil {
		t.Fatalf("Cases(unknown) = %v, want nil", cases)
	}
	if n := reg.Count("unknown"); n != 0 {
		t.Fatalf("Count(unknown) = %d, want 0", n)
	}
}
