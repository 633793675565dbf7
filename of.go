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
	"fmt"

	"dirpx.dev/dresult/code"
)

// Of is the value-carrying outcome of an operation.
//
// A successful Of[T] carries exactly one value of type T and zero errors;
// a failing Of[T] carries one or more errors and no value. The zero value
// of Of[T] is a success carrying the zero value of T.
//
// The carried value is only accessible on a success: Value panics with
// ErrNoValue on a failure. Use Match (or check IsOK first) to consume the
// result safely.
type Of[T any] struct {
	value T
	errs  []Error
	meta  map[string]string
}

// OKOf constructs a successful result carrying v.
func OKOf[T any](v T) Of[T] {
	return Of[T]{value: v}
}

// FailOf constructs a failing result from one or more errors.
// Passing zero errors panics with ErrEmptyFailure (see Fail).
func FailOf[T any](errs ...Error) Of[T] {
	return Of[T]{errs: guardErrors(errs)}
}

// FailfOf constructs a failing result with a single Error built from the
// code and a formatted message.
func FailfOf[T any](c code.Code, format string, args ...any) Of[T] {
	return FailOf[T](E(c, fmt.Sprintf(format, args...)))
}

// IsOK reports whether the result is a success.
func (r Of[T]) IsOK() bool { return len(r.errs) == 0 }

// IsFailure reports whether the result is a failure.
func (r Of[T]) IsFailure() bool { return len(r.errs) > 0 }

// Value returns the carried value of a successful result.
//
// Calling Value on a failing result is a caller bug and panics with
// ErrNoValue. This keeps the line between domain failure (data, in Errors)
// and programmer misuse (panic) sharp: a failure never silently yields a
// zero value.
func (r Of[T]) Value() T {
	if r.IsFailure() {
		panic(ErrNoValue)
	}
	return r.value
}

// Errors returns a copy of the errors carried by a failing result, or nil
// for a success.
func (r Of[T]) Errors() []Error {
	return copyErrors(r.errs)
}

// Metadata returns a copy of the attached metadata, or nil if none was set.
func (r Of[T]) Metadata() map[string]string {
	return copyMeta(r.meta)
}

// WithMetadata returns a copy of the result with the given metadata attached,
// replacing any previous map. The input map is copied, never aliased.
func (r Of[T]) WithMetadata(kv map[string]string) Of[T] {
	r.meta = copyMeta(kv)
	return r
}

// OnSuccess runs fn with the carried value when the result is a success and
// returns the result unchanged.
func (r Of[T]) OnSuccess(fn func(T)) Of[T] {
	if r.IsOK() && fn != nil {
		fn(r.value)
	}
	return r
}

// OnFailure runs fn with the carried errors when the result is a failure and
// returns the result unchanged.
func (r Of[T]) OnFailure(fn func([]Error)) Of[T] {
	if r.IsFailure() && fn != nil {
		fn(copyErrors(r.errs))
	}
	return r
}

// Void drops the value and returns the equivalent valueless Result,
// preserving errors and metadata. Handy when a caller only needs the
// discriminant.
func (r Of[T]) Void() Result {
	return Result{errs: copyErrors(r.errs), meta: copyMeta(r.meta)}
}

// Match consumes a result by invoking exactly one of the two branches and
// returning that branch's value.
//
// This is the only way to get at the value or the errors in one expression
// without risking the misuse panics, and it is total: one branch always
// runs, never both.
func Match[T, R any](r Of[T], onOK func(T) R, onFail func([]Error) R) R {
	if r.IsOK() {
		return onOK(r.value)
	}
	return onFail(copyErrors(r.errs))
}

// Map transforms the value of a successful result with fn, producing a new
// result of the target type. On a failure, fn is never invoked and the
// errors and metadata are forwarded unchanged.
//
// Map is a package-level function because Go methods cannot introduce new
// type parameters.
func Map[T, U any](r Of[T], fn func(T) U) Of[U] {
	if r.IsFailure() {
		return Of[U]{errs: copyErrors(r.errs), meta: copyMeta(r.meta)}
	}
	return Of[U]{value: fn(r.value), meta: copyMeta(r.meta)}
}
