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
	"errors"
	"fmt"

	"dirpx.dev/dresult/code"
)

// Misuse sentinels.
//
// These are NOT domain failures. A domain failure is data: a failing Result
// carrying one or more Error values. The sentinels below mark caller bugs —
// they are raised via panic, immediately, at the offending call site, and
// are never meant to be recovered from inside this package.
var (
	// ErrEmptyFailure is the panic value when a failure is constructed with
	// zero errors. A failure without errors is not a representable state.
	ErrEmptyFailure = errors.New("dresult: failure constructed with no errors")

	// ErrNoValue is the panic value when Value is called on a failing result.
	// Callers must check IsOK first, or consume the result through Match.
	ErrNoValue = errors.New("dresult: value accessed on a failing result")
)

// Result is the valueless outcome of an operation: exactly one of success
// or failure, with a failure always carrying at least one Error.
//
// The zero value of Result is a success with no metadata, so a Result is
// always in a consistent state. Once constructed, a Result never transitions
// between success and failure.
//
// Result values are cheap to copy and safe to share across goroutines:
// every accessor returns copies and every WithX helper returns a new value.
type Result struct {
	errs []Error
	meta map[string]string
}

// OK constructs a successful valueless result.
func OK() Result {
	return Result{}
}

// Fail constructs a failing result from one or more errors.
//
// Passing zero errors is a programmer error and panics with ErrEmptyFailure.
// All failure constructors in this package funnel through the same guard,
// so the precondition holds regardless of which overload was used.
func Fail(errs ...Error) Result {
	return Result{errs: guardErrors(errs)}
}

// Failf constructs a failing result with a single Error built from the code
// and a formatted message.
func Failf(c code.Code, format string, args ...any) Result {
	return Fail(E(c, fmt.Sprintf(format, args...)))
}

// IsOK reports whether the result is a success.
func (r Result) IsOK() bool { return len(r.errs) == 0 }

// IsFailure reports whether the result is a failure.
func (r Result) IsFailure() bool { return len(r.errs) > 0 }

// Errors returns a copy of the errors carried by a failing result.
// It returns nil for a success.
func (r Result) Errors() []Error {
	return copyErrors(r.errs)
}

// Metadata returns a copy of the attached metadata, or nil if none was set.
func (r Result) Metadata() map[string]string {
	return copyMeta(r.meta)
}

// WithMetadata returns a copy of the result with the given metadata attached,
// replacing any previously attached map. The input map is copied, never
// aliased, so the caller may keep mutating its own map safely.
func (r Result) WithMetadata(kv map[string]string) Result {
	r.meta = copyMeta(kv)
	return r
}

// OnSuccess runs fn when the result is a success and returns the result
// unchanged. It is a pass-through combinator for side effects.
func (r Result) OnSuccess(fn func()) Result {
	if r.IsOK() && fn != nil {
		fn()
	}
	return r
}

// OnFailure runs fn with the carried errors when the result is a failure and
// returns the result unchanged.
func (r Result) OnFailure(fn func([]Error)) Result {
	if r.IsFailure() && fn != nil {
		fn(copyErrors(r.errs))
	}
	return r
}

// MatchResult consumes a valueless result by invoking exactly one of the two
// branches and returning that branch's value. This is the safe way to
// consume a result without risking the misuse panics.
func MatchResult[R any](r Result, onOK func() R, onFail func([]Error) R) R {
	if r.IsOK() {
		return onOK()
	}
	return onFail(copyErrors(r.errs))
}

// guardErrors is the single precondition gate for all failure constructors.
// It copies the input slice so later caller mutations cannot reach inside
// the result.
func guardErrors(errs []Error) []Error {
	if len(errs) == 0 {
		panic(ErrEmptyFailure)
	}
	return copyErrors(errs)
}

func copyErrors(errs []Error) []Error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]Error, len(errs))
	copy(out, errs)
	return out
}

func copyMeta(kv map[string]string) map[string]string {
	if len(kv) == 0 {
		return nil
	}
	m := make(map[string]string, len(kv))
	for k, v := range kv {
		m[k] = v
	}
	return m
}
