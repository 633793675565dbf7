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

// Package httpx writes dresult results and envelopes to HTTP responses.
//
// The package is a thin boundary adapter: it resolves the HTTP status via
// an apis.Mapper and serializes the result's canonical wire shape
// (isSuccess/isFailure/value/errors/metadata) or an envelope's data/attributes
// shape as JSON. No automatic redaction or filtering is performed: whatever
// is present in the result is exposed as-is. Higher-level handlers should
// apply policies if needed.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/envelope"
)

// WriteResult serializes a value-carrying result to rw.
//
// A success is written with http.StatusOK; a failure with the status the
// mapper resolves for the first error's code. When a failing result carries
// several errors, the first one decides the status — all of them are still
// present in the body.
func WriteResult[T any](rw http.ResponseWriter, m apis.Mapper, r dresult.Of[T]) {
	writeJSON(rw, resultStatus(m, r.IsFailure(), r.Errors()), r)
}

// Write serializes a valueless result to rw, with the same status rules as
// WriteResult.
func Write(rw http.ResponseWriter, m apis.Mapper, r dresult.Result) {
	writeJSON(rw, resultStatus(m, r.IsFailure(), r.Errors()), r)
}

// WriteEnvelope serializes an envelope to rw with the given status.
//
// Envelopes are success-path shapes; the caller picks the status (usually
// 200 or 201) because the envelope itself carries no failure discriminant.
func WriteEnvelope[D any](rw http.ResponseWriter, status int, env envelope.Envelope[D]) {
	writeJSON(rw, status, env)
}

// WriteErrors serializes a bare failure to rw as a failing valueless result.
// Passing zero errors is a caller bug (it panics, see dresult.Fail).
func WriteErrors(rw http.ResponseWriter, m apis.Mapper, errs ...dresult.Error) {
	Write(rw, m, dresult.Fail(errs...))
}

// resultStatus resolves the transport status for one serialized result.
func resultStatus(m apis.Mapper, failed bool, errs []dresult.Error) int {
	if !failed {
		return http.StatusOK
	}
	return m.HTTPStatus(errs[0].Code)
}

// writeJSON writes v as a JSON body with the given status.
//
// The body is encoded before the header is written so that an encoding
// failure can still surface as a 500 instead of a half-written 2xx.
func writeJSON(rw http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(rw, `{"isSuccess":false,"isFailure":true,"errors":[{"code":"internal","message":"response serialization failed"}]}`,
			http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}
