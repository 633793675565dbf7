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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for well-known
// error codes. These are only defaults: callers may override them at the
// boundary where HTTP is actually produced.
//
// The intent is to stay close to common REST conventions while reflecting
// the dresult code semantics.
var defaultHTTP = map[code.Code]int{
	// 5xx — server / dependency / transient issues.
	code.Internal:    http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	code.Unavailable: http.StatusServiceUnavailable,  // A required dependency is temporarily unreachable.
	code.Timeout:     http.StatusGatewayTimeout,      // Operation exceeded the time budget.
	// Note: 499 is a non-standard but widely used status (nginx) for "client
	// closed request". We use 408 by default; integrators may switch to 499.
	code.Canceled: http.StatusRequestTimeout,

	// 4xx — client/protocol/resource issues.
	code.Invalid:  http.StatusBadRequest, // Malformed input, validation errors, contract violation.
	code.Missing:  http.StatusBadRequest, // Required field/parameter/resource reference is missing.
	code.NotFound: http.StatusNotFound,   // Target resource does not exist (or is not visible to the caller).

	// Conflicts and concurrency.
	code.AlreadyExists: http.StatusConflict, // Resource creation clash — it already exists.
	code.Conflict:      http.StatusConflict, // General conflicting update/action.

	// AuthN / AuthZ.
	code.Unauthenticated:  http.StatusUnauthorized, // No/invalid credentials — caller must authenticate.
	code.PermissionDenied: http.StatusForbidden,    // Caller is authenticated but not allowed to perform the action.

	// Rate/quotas.
	code.RateLimited: http.StatusTooManyRequests, // Client hit a rate limit or quota.
}

// defaultGRPC defines the library's built-in gRPC mappings for well-known
// error codes. Values align with canonical gRPC status codes while still
// preserving the dresult meanings. As with HTTP, callers may override these
// at the transport edge.
var defaultGRPC = map[code.Code]codes.Code{
	// Internal / server-side / unexpected.
	code.Internal: codes.Internal,

	// Input / protocol.
	code.Invalid: codes.InvalidArgument, // Bad input shape or validation errors.
	code.Missing: codes.InvalidArgument, // Required field or parameter missing.

	// Resource state.
	code.NotFound:      codes.NotFound,      // Resource does not exist (or not visible).
	code.AlreadyExists: codes.AlreadyExists, // Create on existing resource.
	code.Conflict:      codes.Aborted,       // General conflict (concurrent updates, etc.).

	// AuthN / AuthZ.
	code.Unauthenticated:  codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,

	// Availability / time / cancellation.
	code.Unavailable: codes.Unavailable,      // Service or dependency temporarily unavailable.
	code.Timeout:     codes.DeadlineExceeded, // Time budget exceeded.
	code.Canceled:    codes.Canceled,         // Caller canceled or context expired upstream.

	// Rate/quotas.
	code.RateLimited: codes.ResourceExhausted, // Rate limit or quota exhausted.
}
