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

package code

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"screaming snake", "NOT_FOUND", "not_found"},
		{"dash to underscore", "not-found", "not_found"},
		{"mixed", "  ALREADY-EXISTS  ", "already_exists"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	valid := []struct {
		in   string
		want Code
	}{
		{"internal", Internal},
		{"  not_found  ", NotFound},
		{"CONFLICT", Conflict},
		{"rate-limited", RateLimited},
		{"abc", Code("abc")},
	}
	for _, tt := range valid {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	invalid := []string{"", "a", "1invalid", "x-", "with space", "a!b"}
	for _, in := range invalid {
		got, err := Parse(in)
		if !errors.Is(err, ErrCodeInvalid) {
			t.Fatalf("Parse(%q) = (%q, %v), want ErrCodeInvalid", in, got, err)
		}
		if got != Empty {
			t.Fatalf("Parse(%q) on error must return Empty, got %q", in, got)
		}
	}
}

func TestValidate_WellKnownCodes(t *testing.T) {
	// Every shipped constant must itself be canonical.
	for _, c := range []Code{
		Internal, Invalid, Missing, NotFound, AlreadyExists, Conflict,
		Unauthenticated, PermissionDenied,
		Unavailable, Timeout, Canceled, RateLimited,
	} {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	for _, c := range []Code{"", "ab", "Invalid", "not-found"} {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestMustParse(t *testing.T) {
	if c := MustParse("not_found"); c != NotFound {
		t.Fatalf("MustParse(valid) = %q, want %q", c, NotFound)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestCode_TextMarshaling(t *testing.T) {
	text, err := Internal.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "internal" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "internal")
	}

	if _, err := Code("Invalid-Dash").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid code must return error")
	}

	var c Code
	if err := c.UnmarshalText([]byte("  NOT-FOUND  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != NotFound {
		t.Fatalf("UnmarshalText() = %q, want %q", c, NotFound)
	}

	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	if MinLength != 3 || MaxLength != 64 {
		t.Fatalf("length constants changed, update codeFmt and tests")
	}

	long := "a"
	for len(long) < MaxLength {
		long += "a"
	}
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %d-char code to be valid: %v", len(long), err)
	}
	if _, err := Parse(long + "a"); err == nil {
		t.Fatalf("expected %d-char code to be invalid", len(long)+1)
	}
}
