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
	"reflect"
	"strconv"
	"testing"

	"dirpx.dev/dresult/code"
)

func TestOKOf_Invariants(t *testing.T) {
	r := OKOf(7)
	if !r.IsOK() || r.IsFailure() {
		t.Fatal("OKOf must be a success")
	}
	if r.Value() != 7 {
		t.Fatalf("Value() = %d", r.Value())
	}
	if r.Errors() != nil {
		t.Fatal("success carries no errors")
	}
}

func TestFailOf_Invariants(t *testing.T) {
	r := FailfOf[int](code.NotFound, "nope")
	if r.IsOK() || !r.IsFailure() {
		t.Fatal("FailfOf must be a failure")
	}
	if len(r.Errors()) != 1 {
		t.Fatalf("errors = %+v", r.Errors())
	}
}

func TestValue_OnFailurePanics(t *testing.T) {
	r := FailfOf[int](code.Invalid, "bad")
	mustPanicWith(t, ErrNoValue, func() { _ = r.Value() })
}

func TestMatch_ExactlyOneBranch(t *testing.T) {
	calls := 0

	got := Match(OKOf(7),
		func(v int) string { calls++; return strconv.Itoa(v) },
		func([]Error) string { calls++; return "fail" },
	)
	if got != "7" || calls != 1 {
		t.Fatalf("Match(success) = %q, calls = %d", got, calls)
	}

	calls = 0
	got = Match(FailfOf[int](code.Conflict, "x"),
		func(int) string { calls++; return "ok" },
		func(errs []Error) string { calls++; return string(errs[0].Code) },
	)
	if got != "conflict" || calls != 1 {
		t.Fatalf("Match(failure) = %q, calls = %d", got, calls)
	}
}

func TestMap_Success(t *testing.T) {
	meta := map[string]string{"trace": "abc"}
	r := OKOf(21).WithMetadata(meta)

	mapped := Map(r, func(v int) string { return strconv.Itoa(v * 2) })
	if !mapped.IsOK() || mapped.Value() != "42" {
		t.Fatalf("mapped = %+v", mapped)
	}
	if !reflect.DeepEqual(mapped.Metadata(), meta) {
		t.Fatal("metadata must be forwarded")
	}
}

func TestMap_FailureForwardsUntouched(t *testing.T) {
	r := FailOf[int](E(code.NotFound, "x")).WithMetadata(map[string]string{"trace": "abc"})

	mapped := Map(r, func(int) string {
		t.Fatal("selector must never run on a failure")
		return ""
	})
	if !mapped.IsFailure() {
		t.Fatal("failure must stay a failure")
	}
	if !reflect.DeepEqual(mapped.Errors(), r.Errors()) {
		t.Fatal("errors must be forwarded unchanged")
	}
	if !reflect.DeepEqual(mapped.Metadata(), r.Metadata()) {
		t.Fatal("metadata must be forwarded unchanged")
	}
}

func TestOf_SideEffectCombinators(t *testing.T) {
	var seen []int
	r := OKOf(7).
		OnSuccess(func(v int) { seen = append(seen, v) }).
		OnFailure(func([]Error) { t.Fatal("failure branch on success") })
	if r.Value() != 7 || !reflect.DeepEqual(seen, []int{7}) {
		t.Fatalf("pass-through broken: %+v, seen=%v", r, seen)
	}

	var codes []code.Code
	FailfOf[int](code.Invalid, "x").
		OnSuccess(func(int) { t.Fatal("success branch on failure") }).
		OnFailure(func(errs []Error) { codes = append(codes, errs[0].Code) })
	if !reflect.DeepEqual(codes, []code.Code{code.Invalid}) {
		t.Fatalf("failure combinator not run: %v", codes)
	}
}

func TestVoid(t *testing.T) {
	ok := OKOf(7).WithMetadata(map[string]string{"k": "v"}).Void()
	if !ok.IsOK() || ok.Metadata()["k"] != "v" {
		t.Fatalf("Void(success) = %+v", ok)
	}

	fail := FailfOf[int](code.Invalid, "x").Void()
	if !fail.IsFailure() || len(fail.Errors()) != 1 {
		t.Fatalf("Void(failure) = %+v", fail)
	}
}

func TestOf_ZeroValueIsSuccess(t *testing.T) {
	var r Of[string]
	if !r.IsOK() || r.Value() != "" {
		t.Fatalf("zero Of must be a success with the zero value: %+v", r)
	}
}
