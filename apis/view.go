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

package apis

// ErrorView is a minimal, serializable representation of a single failure.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Code is the canonical error code, e.g. "invalid", "not_found",
	// "already_exists".
	//
	// Implementations SHOULD store only normalized, validated codes here.
	Code string `json:"code"`

	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`

	// Metadata is an optional flat map of additional string fields attached
	// to the failure (ids, limits, resource names, etc.).
	Metadata map[string]string `json:"metadata,omitempty"`
}
