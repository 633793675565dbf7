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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/envelope"
	"dirpx.dev/dresult/mapper"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return m
}

func TestWriteResult_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResult(rec, newMapper(t), dresult.OKOf(map[string]string{"name": "a"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var body struct {
		IsSuccess bool              `json:"isSuccess"`
		IsFailure bool              `json:"isFailure"`
		Value     map[string]string `json:"value"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.IsSuccess || body.IsFailure || body.Value["name"] != "a" {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestWriteResult_FailureStatusFromFirstError(t *testing.T) {
	rec := httptest.NewRecorder()
	r := dresult.FailOf[string](
		dresult.E(code.NotFound, "missing order"),
		dresult.E(code.Invalid, "and also invalid"),
	)
	WriteResult(rec, newMapper(t), r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (first error decides)", rec.Code)
	}

	var body struct {
		IsFailure bool `json:"isFailure"`
		Errors    []struct {
			Code string `json:"code"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.IsFailure || len(body.Errors) != 2 {
		t.Fatalf("all errors must reach the body: %s", rec.Body.String())
	}
}

func TestWrite_ValuelessHasNoValueField(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, newMapper(t), dresult.OK())

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := raw["value"]; ok {
		t.Fatalf("valueless result must not emit a value field: %s", rec.Body.String())
	}
}

func TestWriteErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrors(rec, newMapper(t), dresult.E(code.RateLimited, "slow down"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}

func TestWriteEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteEnvelope(rec, http.StatusCreated, envelope.NewID(int64(7), nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var body struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
		Attributes map[string]string `json:"attributes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.ID != 7 || body.Attributes[envelope.AttrType] != "int64" {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
