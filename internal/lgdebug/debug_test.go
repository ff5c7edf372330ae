// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lgdebug

import "testing"

func TestParseDefaults(t *testing.T) {
	var c Config
	if err := parse(&c, ""); err != nil {
		t.Fatal(err)
	}
	if !c.Strict {
		t.Fatalf("Strict should default to true")
	}
	if c.PruneTrace {
		t.Fatalf("PruneTrace should default to false")
	}
}

func TestParseOverrides(t *testing.T) {
	var c Config
	if err := parse(&c, "strict=0,prunetrace,loglevel=2"); err != nil {
		t.Fatal(err)
	}
	if c.Strict {
		t.Fatalf("Strict should have been turned off")
	}
	if !c.PruneTrace {
		t.Fatalf("PruneTrace should have been turned on")
	}
	if c.LogLevel != 2 {
		t.Fatalf("LogLevel = %d, want 2", c.LogLevel)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	var c Config
	if err := parse(&c, "bogus"); err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}

func TestAssertf(t *testing.T) {
	Assertf(false, false, "never panics when not strict")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when strict and condition is false")
		}
	}()
	Assertf(true, false, "always panics when strict")
}
