/*
   Copyright 2025 The DIRPX Authors

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

package dresult

import (
	"strings"
	"testing"

	"dirpx.dev/dresult/code"
)

func TestError_Basics(t *testing.T) {
	e := E(code.Unavailable, "db is down",
		WithMetaOption("node", "pg-2"),
	)

	if e.Code != code.Unavailable {
		t.Fatal("code mismatch")
	}
	if e.Metadata["node"] != "pg-2" {
		t.Fatal("metadata missing")
	}

	s := e.Error()
	for _, sub := range []string{"unavailable", "db is down"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(code.Invalid, "bad").WithMeta("k1", "1")
	e2 := e1.WithMeta("k2", "2")

	if len(e1.Metadata) != 1 || len(e2.Metadata) != 2 {
		t.Fatal("metadata size mismatch")
	}
	if _, ok := e1.Metadata["k2"]; ok {
		t.Fatal("original mutated")
	}
}

func TestError_WithMetadata_Merge(t *testing.T) {
	e := E(code.Invalid, "x").WithMetadata(map[string]string{"a": "1"})
	e2 := e.WithMetadata(map[string]string{"b": "2", "a": "3"})
	if e.Metadata["a"] != "1" {
		t.Fatal("original mutated")
	}
	if e2.Metadata["a"] != "3" || e2.Metadata["b"] != "2" {
		t.Fatal("merge failed")
	}
}

func TestError_Equal(t *testing.T) {
	a := E(code.NotFound, "x", WithMetaOption("k", "v"))
	b := E(code.NotFound, "x", WithMetaOption("k", "v"))
	c := b.WithMeta("k2", "v2")

	if !a.Equal(b) {
		t.Fatal("structurally equal errors must compare equal")
	}
	if a.Equal(c) || a.Equal(a.WithMessage("y")) {
		t.Fatal("different errors must not compare equal")
	}
}

func TestError_ImplementsErrorInterfaces(t *testing.T) {
	var err error = E(code.Conflict, "clash")
	if err.Error() != "conflict: clash" {
		t.Fatalf("Error() = %q", err.Error())
	}

	e := E(code.Conflict, "clash", WithMetaOption("k", "v"))
	if e.ErrorCode() != "conflict" {
		t.Fatalf("ErrorCode() = %q", e.ErrorCode())
	}
	m := e.ErrorMetadata()
	m["k"] = "mutated"
	if e.Metadata["k"] != "v" {
		t.Fatal("ErrorMetadata must return a copy")
	}
}
