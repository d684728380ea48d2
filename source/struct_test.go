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

package source_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/enumx/source"
)

type rgb struct{ R, G, B uint8 }

type base struct{ Inherited int }

type palette struct {
	base       // embedded: skipped
	Red    rgb // case "Red"
	Green  rgb `enum:"green"` // renamed
	Blue   rgb `enum:"-"`     // skipped
	hidden rgb // unexported: skipped
	Extra  any // nil interface: skipped
	Boxed  any // non-nil interface: kept
	Zero   int // zero value: kept (zero is a legitimate value)
}

func testPalette() palette {
	return palette{
		Red:    rgb{255, 0, 0},
		Green:  rgb{0, 255, 0},
		Blue:   rgb{0, 0, 255},
		hidden: rgb{1, 1, 1},
		Boxed:  "boxed",
	}
}

func TestStructOf_FilterAndNames(t *testing.T) {
	p := source.StructOf(testPalette())

	got := map[string]any{}
	for _, c := range p.EnumCases() {
		got[c.Name] = c.Value
	}

	if len(got) != 4 {
		t.Fatalf("cases = %v, want 4 entries (Red, green, Boxed, Zero)", got)
	}
	if got["Red"] != (rgb{255, 0, 0}) {
		t.Fatalf("Red = %v, want {255 0 0}", got["Red"])
	}
	if got["green"] != (rgb{0, 255, 0}) {
		t.Fatalf("green = %v, want {0 255 0} (tag rename)", got["green"])
	}
	if got["Boxed"] != "boxed" {
		t.Fatalf("Boxed = %v, want boxed", got["Boxed"])
	}
	if got["Zero"] != 0 {
		t.Fatalf("Zero = %v, want 0", got["Zero"])
	}

	for _, name := range []string{"Blue", "hidden", "Extra", "Inherited", "base"} {
		if _, ok := got[name]; ok {
			t.Fatalf("filtered field %q appeared as a case", name)
		}
	}
}

func TestStructOf_PointerAndNonStruct(t *testing.T) {
	v := testPalette()

	// Pointer to struct behaves like the struct.
	p := source.StructOf(&v)
	if got := p.EnumCases(); len(got) != 4 {
		t.Fatalf("pointer cases = %d, want 4", len(got))
	}

	// Nil pointer contributes nothing.
	var nilPal *palette
	if got := source.StructOf(nilPal).EnumCases(); got != nil {
		t.Fatalf("nil pointer cases = %v, want nil", got)
	}

	// Non-struct values contribute nothing.
	if got := source.StructOf(42).EnumCases(); got != nil {
		t.Fatalf("non-struct cases = %v, want nil", got)
	}
	if got := source.StructOf(nil).EnumCases(); got != nil {
		t.Fatalf("nil cases = %v, want nil", got)
	}
}

// TestStructOf_ConcurrentScan_NoRace verifies that concurrent EnumCases calls
// over the same and distinct struct types are race-free and stable.
func TestStructOf_ConcurrentScan_NoRace(t *testing.T) {
	type other struct {
		A string
		B string
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			pal := source.StructOf(testPalette())
			oth := source.StructOf(other{A: "x", B: "y"})
			for i := 0; i < 2000; i++ {
				if got := pal.EnumCases(); len(got) != 4 {
					t.Errorf("palette cases = %d, want 4", len(got))
					return
				}
				if got := oth.EnumCases(); len(got) != 2 {
					t.Errorf("other cases = %d, want 2", len(got))
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
