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

// CodedError represents an error that is classified into a well-defined,
// machine-readable error *code*.
//
// A code usually denotes a broad category, such as:
//   - "invalid"        — validation failed,
//   - "not_found"      — a referenced object does not exist,
//   - "conflict"       — concurrent modification or version mismatch,
//   - "internal"       — unexpected server-side failure.
//
// Codes are intended to be stable and enumerable. They are the primary value
// that boundary adapters (HTTP, gRPC) use to decide which status code to
// return to the client, and the hook that lets adapter.Classify recognize
// foreign error types without importing them.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the dresult/code package. Callers should not
	// try to "fix" or "guess" the value here — if it is invalid, it should
	// be handled as an internal error at the boundary.
	ErrorCode() string
}

// MetadataError represents an error that exposes a flat map of structured
// string metadata alongside its message.
//
// Implementations SHOULD return a map that the callee will not modify.
// Returning nil is allowed and simply means "no extra metadata".
type MetadataError interface {
	error

	// ErrorMetadata returns the structured metadata of the error. May return nil.
	ErrorMetadata() map[string]string
}
