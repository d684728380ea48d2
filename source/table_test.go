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
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
	"dirpx.dev/enumx/source"
)

func TestTableSource_Contribute(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	if err := reg.Register("colors", apis.Case{Name: "red", Value: 1}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("colors", apis.Case{Name: "green", Value: 2}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	s := source.NewTable(reg)

	got := s.Contribute("colors", cfg)
	if len(got) != 2 {
		t.Fatalf("Contribute len = %d, want 2", len(got))
	}
	// Declaration order is preserved at this layer.
	if got[0].Name != "red" || got[1].Name != "green" {
		t.Fatalf("Contribute order = [%s %s], want [red green]", got[0].Name, got[1].Name)
	}

	// Unknown set -> nothing to contribute.
	if got := s.Contribute("unknown", cfg); got != nil {
		t.Fatalf("Contribute(unknown) = %v, want nil", got)
	}
	// Empty set name -> nothing to contribute.
	if got := s.Contribute("", cfg); got != nil {
		t.Fatalf("Contribute('') = %v, want nil", got)
	}
}

func TestTableSource_NilRegistry(t *testing.T) {
	s := source.NewTable(nil)
	if got := s.Contribute("colors", config.DefaultConfig()); got != nil {
		t.Fatalf("Contribute with nil registry = %v, want nil", got)
	}
}

// Ensure the table source satisfies apis.Source (compile-time).
var _ apis.Source = source.NewTable(nil)
