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
	"fmt"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or caller-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply caller-provided options (defaults, overrides, fallbacks).
//  3. Validate every code the options touched.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid codes in the supplied
// options.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; no pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply caller-supplied options (defaults, overrides, fallbacks).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Every code mentioned by an option must be canonical. Library
	// defaults are covered by tests, so only builder contents are checked.
	for _, m := range []map[code.Code]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for c := range m {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: invalid code %q in options: %w", c, err)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTPStatuses(b.httpDefaults),
		grpcDefault:  freezeGRPCStatuses(b.grpcDefaults),
		httpOverride: freezeHTTPStatuses(b.httpOverride),
		grpcOverride: freezeGRPCStatuses(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults and per-code exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given logical error code.
	// Used when no override is present.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given logical error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. per-code default (library or caller supplied);
//  3. global fallback (HTTP must never be zero).
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback) for each transport.
//
// Example output:
//
//	code="unavailable"
//	http: source=default -> 503
//	grpc: source=default -> UNAVAILABLE(14)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)

	switch {
	case hasKey(m.httpOverride, c):
		_, _ = fmt.Fprintf(&b, "http: source=override -> %d\n", m.httpOverride[c])
	case hasKey(m.httpDefault, c):
		_, _ = fmt.Fprintf(&b, "http: source=default -> %d\n", m.httpDefault[c])
	default:
		_, _ = fmt.Fprintf(&b, "http: source=fallback -> %d\n", m.fallbackHTTP)
	}

	switch {
	case hasKey(m.grpcOverride, c):
		_, _ = fmt.Fprintf(&b, "grpc: source=override -> %s\n", grpcLabel(m.grpcOverride[c]))
	case hasKey(m.grpcDefault, c):
		_, _ = fmt.Fprintf(&b, "grpc: source=default -> %s\n", grpcLabel(m.grpcDefault[c]))
	default:
		_, _ = fmt.Fprintf(&b, "grpc: source=fallback -> %s\n", grpcLabel(m.fallbackGRPC))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func hasKey[V any](m map[code.Code]V, c code.Code) bool {
	_, ok := m[c]
	return ok
}

// grpcLabel renders a gRPC code as NAME(number) for Explain output.
func grpcLabel(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
