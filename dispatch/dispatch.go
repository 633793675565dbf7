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

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/dresult"
)

// Dispatch-level errors.
//
// These are routing problems, not domain failures: a domain failure travels
// inside the dresult.Of a handler returns, while these errors mean the
// request never reached a handler at all.
var (
	// ErrNotRegistered is returned by Send when no handler was registered
	// for the request type.
	ErrNotRegistered = errors.New("dispatch: no handler registered for request type")

	// ErrHandlerMismatch is returned by Send when a handler exists for the
	// request type but was registered with a different response type than
	// the one Send was instantiated with.
	ErrHandlerMismatch = errors.New("dispatch: handler registered with a different response type")

	// ErrDuplicateHandler is returned by Register when a handler for the
	// request type is already present.
	ErrDuplicateHandler = errors.New("dispatch: handler already registered for request type")
)

// Handler handles exactly one request type and produces exactly one result.
//
// Handlers must honor ctx cancellation for any blocking work; a canceled
// handler conventionally returns a failure with code.Canceled rather than
// a panic or a bare error.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) dresult.Of[Res]
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc[Req, Res any] func(ctx context.Context, req Req) dresult.Of[Res]

// Handle calls fn.
func (fn HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) dresult.Of[Res] {
	return fn(ctx, req)
}

// Mux is an explicit registration table mapping request types to handlers.
//
// It replaces reflective assembly scanning with a table built by plain
// function calls at startup: each Register call binds one request type to
// one handler, decorators are applied by the caller before registration,
// and after startup the table is read-only.
//
// A Mux is safe for concurrent Send use once registration is finished.
// Registration itself is expected to happen from a single goroutine during
// startup and is not synchronized.
type Mux struct {
	handlers map[reflect.Type]any
}

// NewMux returns an empty registration table.
func NewMux() *Mux {
	return &Mux{handlers: make(map[reflect.Type]any)}
}

// Register binds the handler to its request type.
// Registering the same request type twice is a startup configuration error.
func Register[Req, Res any](m *Mux, h Handler[Req, Res]) error {
	key := reflect.TypeOf((*Req)(nil)).Elem()
	if _, exists := m.handlers[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, key)
	}
	m.handlers[key] = h
	return nil
}

// MustRegister is the panic-on-error variant of Register, for wiring done
// in main/init where a duplicate registration is always a bug.
func MustRegister[Req, Res any](m *Mux, h Handler[Req, Res]) {
	if err := Register(m, h); err != nil {
		panic(err)
	}
}

// Send routes the request to its registered handler and returns the
// handler's result.
//
// The returned error covers dispatch-level problems only (ErrNotRegistered,
// ErrHandlerMismatch); domain failures stay inside the result. When err is
// non-nil the result is the zero value and must not be consumed.
func Send[Req, Res any](ctx context.Context, m *Mux, req Req) (dresult.Of[Res], error) {
	key := reflect.TypeOf((*Req)(nil)).Elem()
	raw, ok := m.handlers[key]
	if !ok {
		return dresult.Of[Res]{}, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}
	h, ok := raw.(Handler[Req, Res])
	if !ok {
		return dresult.Of[Res]{}, fmt.Errorf("%w: %s", ErrHandlerMismatch, key)
	}
	return h.Handle(ctx, req), nil
}
