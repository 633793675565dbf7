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

// Core domain error codes.
//
// These codes describe high-level, transport-agnostic failure classes that
// business logic and validation code use most often when building failing
// results.
const (
	// Internal indicates an internal, non-classified failure.
	// Use this as the fallback when no more specific code applies.
	// Can be mapped to an HTTP 500.
	Internal Code = "internal"

	// Invalid indicates that an input value, entity, or payload violates
	// a structural or semantic invariant: wrong format, range, charset,
	// or cross-field consistency.
	// Can be mapped to an HTTP 400.
	Invalid Code = "invalid"

	// Missing indicates that a required value or structure is absent —
	// a field, parameter, header, or related object that was empty, nil,
	// or not supplied at all.
	// Can be mapped to an HTTP 400.
	Missing Code = "missing"

	// NotFound indicates that the target resource does not exist, or is
	// not visible to the caller.
	// Can be mapped to an HTTP 404.
	NotFound Code = "not_found"

	// AlreadyExists indicates a resource creation clash — the resource
	// being created already exists.
	// Can be mapped to an HTTP 409.
	AlreadyExists Code = "already_exists"

	// Conflict indicates a general conflicting update or action, including
	// optimistic-lock and version mismatches.
	// Can be mapped to an HTTP 409.
	Conflict Code = "conflict"
)

// Access control error codes.
const (
	// Unauthenticated indicates missing or invalid credentials — the
	// caller must authenticate before retrying.
	// Can be mapped to an HTTP 401.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied indicates that the caller is authenticated but is
	// not allowed to perform the action.
	// Can be mapped to an HTTP 403.
	PermissionDenied Code = "permission_denied"
)

// Runtime / operation control error codes.
//
// These codes describe transient, operational conditions that affect the
// ability to complete the requested operation.
const (
	// Unavailable indicates that a required downstream dependency or
	// service is temporarily unreachable. The underlying technical cause
	// belongs in the error metadata or logs, not in the code.
	// Can be mapped to an HTTP 503.
	Unavailable Code = "unavailable"

	// Timeout indicates that the operation could not complete within the
	// allotted time budget; the trigger is often context.DeadlineExceeded.
	// Can be mapped to an HTTP 504.
	Timeout Code = "timeout"

	// Canceled indicates that the operation was explicitly canceled by
	// the caller or by context propagation.
	// Can be mapped to an HTTP 499 (client closed request) or 408
	// depending on policy.
	Canceled Code = "canceled"

	// RateLimited indicates that the client hit a rate limit or exceeded
	// an allocated quota and should back off before retrying.
	// Can be mapped to an HTTP 429.
	RateLimited Code = "rate_limited"
)
