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

package adapter

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
	"google.golang.org/grpc/codes"
)

func TestToView(t *testing.T) {
	e := dresult.E(code.NotFound, "order 42 does not exist",
		dresult.WithMetaOption("order_id", "42"),
	)
	v := ToView(e)
	want := apis.ErrorView{
		Code:     "not_found",
		Message:  "order 42 does not exist",
		Metadata: map[string]string{"order_id": "42"},
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("ToView = %+v, want %+v", v, want)
	}
}

func TestToViews_PreservesOrder(t *testing.T) {
	errs := []dresult.Error{
		dresult.E(code.Invalid, "first"),
		dresult.E(code.Missing, "second"),
	}
	vs := ToViews(errs)
	if len(vs) != 2 || vs[0].Code != "invalid" || vs[1].Code != "missing" {
		t.Fatalf("ToViews order broken: %+v", vs)
	}
	if ToViews(nil) != nil {
		t.Fatalf("ToViews(nil) must be nil")
	}
}

func TestToDescriptor(t *testing.T) {
	e := dresult.E(code.Conflict, "version mismatch")
	d := ToDescriptor(e, apis.Status{HTTP: 409, GRPC: codes.Aborted})
	if d.Code != "conflict" || d.HTTPStatus != 409 || d.GRPCCode != int(codes.Aborted) {
		t.Fatalf("ToDescriptor = %+v", d)
	}
}

type codedTestError struct {
	code string
	meta map[string]string
}

func (e codedTestError) Error() string { return "coded: " + e.code }
func (e codedTestError) ErrorCode() string { return e.code }
func (e codedTestError) ErrorMetadata() map[string]string { return e.meta }

func TestClassify(t *testing.T) {
	t.Run("dresult error passes through", func(t *testing.T) {
		orig := dresult.E(code.NotFound, "x").WithMeta("k", "v")
		got := Classify(fmt.Errorf("wrapped: %w", orig))
		if !got.Equal(orig) {
			t.Fatalf("Classify = %+v, want %+v", got, orig)
		}
	})

	t.Run("coded error contributes its code", func(t *testing.T) {
		got := Classify(codedTestError{code: "conflict", meta: map[string]string{"a": "1"}})
		if got.Code != code.Conflict {
			t.Fatalf("code = %q, want conflict", got.Code)
		}
		if got.Metadata["a"] != "1" {
			t.Fatalf("metadata lost: %+v", got.Metadata)
		}
	})

	t.Run("malformed code degrades to internal", func(t *testing.T) {
		got := Classify(codedTestError{code: "NOT A CODE"})
		if got.Code != code.Internal {
			t.Fatalf("code = %q, want internal", got.Code)
		}
		if got.Metadata["raw_code"] != "NOT A CODE" {
			t.Fatalf("raw code not preserved: %+v", got.Metadata)
		}
	})

	t.Run("context sentinels", func(t *testing.T) {
		if c := Classify(context.Canceled).Code; c != code.Canceled {
			t.Fatalf("context.Canceled -> %q", c)
		}
		if c := Classify(fmt.Errorf("rpc: %w", context.DeadlineExceeded)).Code; c != code.Timeout {
			t.Fatalf("context.DeadlineExceeded -> %q", c)
		}
	})

	t.Run("plain error is internal", func(t *testing.T) {
		got := Classify(errors.New("boom"))
		if got.Code != code.Internal || got.Message != "boom" {
			t.Fatalf("Classify(plain) = %+v", got)
		}
	})

	t.Run("nil panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("Classify(nil) must panic")
			}
		}()
		_ = Classify(nil)
	})
}
