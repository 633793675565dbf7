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

// Package dresult implements the canonical success-or-failure result model
// for dirpx services.
//
// An operation's terminal state is exactly one of:
//
//   - a success, optionally carrying a value (Of[T]) or nothing (Result);
//   - a failure, carrying one or more structured Error values.
//
// Domain failures are data, never panics: they travel inside the result and
// are surfaced or recovered by the caller. Panics are reserved for caller
// bugs — constructing a failure with zero errors (ErrEmptyFailure) or
// reading the value of a failing result (ErrNoValue).
//
// Typical producer:
//
//	func (s *Service) Find(ctx context.Context, id string) dresult.Of[Order] {
//	    o, ok := s.store[id]
//	    if !ok {
//	        return dresult.FailfOf[Order](code.NotFound, "order %s does not exist", id)
//	    }
//	    return dresult.OKOf(o)
//	}
//
// Typical consumer:
//
//	status := dresult.Match(res,
//	    func(o Order) int { return http.StatusOK },
//	    func(errs []dresult.Error) int { return http.StatusNotFound },
//	)
//
// Subpackages provide the surrounding conventions: dresult/code (normalized
// error codes), dresult/envelope (response envelopes), dresult/mapper and
// dresult/apis (transport status mapping), dresult/httpx and dresult/grpcx
// (boundary adapters), and dresult/dispatch (explicitly composed request
// handlers and decorators).
package dresult
