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
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/code"
)

// Middleware decorates a handler with a cross-cutting concern while
// preserving the handler contract.
//
// Decoration is explicit function composition: construct the inner handler,
// wrap it, register the wrapped value. No container introspection, no open
// generics — what runs is exactly what was composed at startup.
type Middleware[Req, Res any] func(Handler[Req, Res]) Handler[Req, Res]

// Chain applies the middlewares so that the first one listed is the
// outermost: Chain(h, A, B) runs A before B before h.
func Chain[Req, Res any](h Handler[Req, Res], mws ...Middleware[Req, Res]) Handler[Req, Res] {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Logging returns a middleware that logs every dispatch with slog.
//
// Each dispatch gets a fresh correlation id, logged on both the start and
// the finish record so the two can be joined in aggregated logs. Failures
// log at Warn with the carried error codes; successes log at Info with the
// elapsed time.
func Logging[Req, Res any](log *slog.Logger) Middleware[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return HandlerFunc[Req, Res](func(ctx context.Context, req Req) dresult.Of[Res] {
			dispatchID := uuid.NewString()
			reqName := fmt.Sprintf("%T", req)

			log.InfoContext(ctx, "dispatch: handling request",
				slog.String("request", reqName),
				slog.String("dispatch_id", dispatchID),
			)
			start := time.Now()

			res := next.Handle(ctx, req)

			elapsed := time.Since(start)
			if res.IsFailure() {
				errs := res.Errors()
				codeStrs := make([]string, len(errs))
				for i, e := range errs {
					codeStrs[i] = string(e.Code)
				}
				log.WarnContext(ctx, "dispatch: request failed",
					slog.String("request", reqName),
					slog.String("dispatch_id", dispatchID),
					slog.Duration("elapsed", elapsed),
					slog.Any("codes", codeStrs),
				)
				return res
			}

			log.InfoContext(ctx, "dispatch: request handled",
				slog.String("request", reqName),
				slog.String("dispatch_id", dispatchID),
				slog.Duration("elapsed", elapsed),
			)
			return res
		})
	}
}

// Recover returns a middleware that converts a panicking handler into a
// failing result with code.Internal.
//
// Misuse panics (ErrNoValue, ErrEmptyFailure) raised inside a handler are
// caller bugs, but a dispatch boundary — like an HTTP server — should
// degrade them into a coded failure rather than take the process down.
// The panic value's text is preserved in the error metadata.
func Recover[Req, Res any]() Middleware[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return HandlerFunc[Req, Res](func(ctx context.Context, req Req) (res dresult.Of[Res]) {
			defer func() {
				if r := recover(); r != nil {
					res = dresult.FailOf[Res](
						dresult.E(code.Internal, "handler panicked").
							WithMeta("panic", fmt.Sprint(r)).
							WithMeta("request", fmt.Sprintf("%T", req)),
					)
				}
			}()
			return next.Handle(ctx, req)
		})
	}
}
