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

// Package code defines the canonical, validated error code type used by
// dresult failures.
//
// A code is a short, machine-readable classification of a failure, such as
// "not_found" or "permission_denied". Codes are normalized to lowercase
// snake_case, so raw inputs like "NOT_FOUND" or "not-found" parse to the
// same canonical value.
//
// The package ships a curated set of well-known codes; callers are free to
// introduce their own as long as they pass Parse/Validate. Transport
// adapters resolve codes into concrete HTTP/gRPC statuses via the mapper
// package, so codes themselves stay transport-agnostic.
package code
