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

// Package mapper resolves logical dresult codes into concrete HTTP and gRPC
// statuses.
//
// A mapper is built once at startup from library defaults plus caller
// options, then frozen into an immutable snapshot that is safe for
// concurrent use. Resolution order, highest to lowest:
//
//  1. exact per-code override (explicitly registered);
//  2. per-code default (library-seeded, caller-replaceable);
//  3. global fallback (HTTP 500 / codes.Internal unless changed).
//
// Typical construction:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Conflict, http.StatusPreconditionFailed),
//	    mapper.WithHTTPDefault(code.Canceled, 499),
//	)
//
// The resulting apis.Mapper is handed to httpx/grpcx writers so both
// transports present a single logical failure consistently.
package mapper
