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

// Error is a structured domain failure carried inside a Result.
//
// It is a plain value object:
//   - Code: normalized machine-readable classification (required);
//   - Message: human-oriented description of what went wrong;
//   - Metadata: optional flat string key/value payload (ids, limits, hints).
//
// Errors have no identity beyond their fields. Because Metadata is a map,
// Go's == cannot be used; compare with Equal (or reflect.DeepEqual in tests).
//
// All mutation helpers (WithX) return a copy, so Error values can be safely
// shared and refined in a functional style.
type Error struct {
	// Code is the primary classification of the failure, e.g. "not_found",
	// "invalid", "conflict". Must be a normalized code from dresult/code.
	Code code.Code `json:"code"`

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of a serialized failure.
	Message string `json:"message"`

	// Metadata is an optional, shallow map of extra fields. The map is
	// treated as immutable: WithMeta/WithMetadata always copy it.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	dresult.Fail(dresult.E(code.NotFound, "order 42 does not exist",
//	    dresult.WithMetaOption("order_id", "42"),
//	))
//
// It applies all provided options in order and returns the final value.
func E(c code.Code, msg string, opts ...Option) Error {
	e := Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>: <message>
//
// This makes the error both human- and machine-scannable in logs, and lets
// an Error travel through plain error-returning call chains (see grpcx).
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the machine-readable code as a string.
// It satisfies apis.CodedError so transport adapters can classify the
// failure without importing this package's concrete type.
func (e Error) ErrorCode() string { return string(e.Code) }

// ErrorMetadata returns a copy of the metadata map. It satisfies
// apis.MetadataError; callers may freely keep or mutate the returned map.
func (e Error) ErrorMetadata() map[string]string {
	if len(e.Metadata) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.Metadata))
	for k, v := range e.Metadata {
		m[k] = v
	}
	return m
}

// Equal reports structural equality of two errors: same code, same message,
// and the same metadata entries.
func (e Error) Equal(o Error) bool {
	if e.Code != o.Code || e.Message != o.Message {
		return false
	}
	if len(e.Metadata) != len(o.Metadata) {
		return false
	}
	for k, v := range e.Metadata {
		if ov, ok := o.Metadata[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// WithMessage returns a copy of e with a replaced human message.
// Useful when the Code should be kept but the message rephrased for a
// different audience or language.
func (e Error) WithMessage(msg string) Error {
	e.Message = msg
	return e
}

// WithMeta returns a copy of e with one extra key/value in Metadata.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e Error) WithMeta(k, v string) Error {
	if len(e.Metadata) == 0 {
		e.Metadata = map[string]string{k: v}
		return e
	}
	m := make(map[string]string, len(e.Metadata)+1)
	for k0, v0 := range e.Metadata {
		m[k0] = v0
	}
	m[k] = v
	e.Metadata = m
	return e
}

// WithMetadata returns a copy of e with all provided kv merged into Metadata.
//
// If the Error already has Metadata, both maps are copied and merged,
// with kv taking precedence on key conflicts.
func (e Error) WithMetadata(kv map[string]string) Error {
	if len(kv) == 0 {
		return e
	}
	m := make(map[string]string, len(e.Metadata)+len(kv))
	for k0, v0 := range e.Metadata {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	e.Metadata = m
	return e
}
