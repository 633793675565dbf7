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
	"encoding/json"
	"errors"
)

// ErrWireEmptyFailure is returned (not panicked) when a wire document claims
// to be a failure but carries zero errors. Unlike Fail, unmarshaling deals
// with external input, so the violated invariant is a decode error rather
// than a caller bug.
var ErrWireEmptyFailure = errors.New("dresult: wire document is a failure with no errors")

// resultWire is the JSON shape shared by Result and Of[T].
//
// Both discriminant booleans are emitted so that clients can branch on
// either without re-deriving the other. The value field is present only for
// successful Of[T] results; the valueless Result never emits it.
type resultWire[T any] struct {
	IsSuccess bool              `json:"isSuccess"`
	IsFailure bool              `json:"isFailure"`
	Value     *T                `json:"value,omitempty"`
	Errors    []Error           `json:"errors,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler for the valueless result.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultWire[struct{}]{
		IsSuccess: r.IsOK(),
		IsFailure: r.IsFailure(),
		Errors:    r.errs,
		Metadata:  r.meta,
	})
}

// UnmarshalJSON implements json.Unmarshaler for the valueless result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultWire[struct{}]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.IsSuccess {
		*r = Result{meta: copyMeta(w.Metadata)}
		return nil
	}
	if len(w.Errors) == 0 {
		return ErrWireEmptyFailure
	}
	*r = Result{errs: copyErrors(w.Errors), meta: copyMeta(w.Metadata)}
	return nil
}

// MarshalJSON implements json.Marshaler for the value-carrying result.
// The value field is emitted only on success.
func (r Of[T]) MarshalJSON() ([]byte, error) {
	w := resultWire[T]{
		IsSuccess: r.IsOK(),
		IsFailure: r.IsFailure(),
		Errors:    r.errs,
		Metadata:  r.meta,
	}
	if r.IsOK() {
		w.Value = &r.value
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler for the value-carrying result.
//
// A successful document without a value field decodes to the zero value of
// T; a failing document must carry at least one error.
func (r *Of[T]) UnmarshalJSON(data []byte) error {
	var w resultWire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.IsSuccess {
		out := Of[T]{meta: copyMeta(w.Metadata)}
		if w.Value != nil {
			out.value = *w.Value
		}
		*r = out
		return nil
	}
	if len(w.Errors) == 0 {
		return ErrWireEmptyFailure
	}
	*r = Of[T]{errs: copyErrors(w.Errors), meta: copyMeta(w.Metadata)}
	return nil
}
