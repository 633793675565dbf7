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

// Package adapter converts between the concrete dresult types and the
// transport-neutral apis view shapes, and classifies foreign Go errors into
// structured failures.
package adapter

import (
	"context"
	"errors"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/code"
)

// ToView converts a domain-level failure into a public ErrorView.
//
// No automatic redaction or filtering is performed: the view exposes exactly
// what the error instance contains. It is up to the caller or API layer to
// decide whether to redact sensitive metadata.
func ToView(e dresult.Error) apis.ErrorView {
	return apis.ErrorView{
		Code:     string(e.Code),
		Message:  e.Message,
		Metadata: e.ErrorMetadata(),
	}
}

// ToViews converts a failing result's error slice into views, preserving order.
// It returns nil for an empty input.
func ToViews(errs []dresult.Error) []apis.ErrorView {
	if len(errs) == 0 {
		return nil
	}
	out := make([]apis.ErrorView, len(errs))
	for i, e := range errs {
		out[i] = ToView(e)
	}
	return out
}

// ToDescriptor converts a failure together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message-bus
// propagation. It carries both the logical code and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e dresult.Error, st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Code:       string(e.Code),
		Message:    e.Message,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Metadata:   e.ErrorMetadata(),
	}
}

// Classify turns an arbitrary Go error into a structured dresult.Error so
// that boundary code can always produce a coded failure.
//
// Classification order:
//
//  1. a dresult.Error anywhere in the chain is returned as-is;
//  2. an apis.CodedError in the chain contributes its code (normalized via
//     code.Parse; a malformed code degrades to internal);
//  3. context.Canceled and context.DeadlineExceeded map to the canceled and
//     timeout codes respectively;
//  4. anything else is an internal failure carrying the error text.
//
// Classify(nil) panics: a nil error is not a failure, and classifying it
// would manufacture one out of thin air.
func Classify(err error) dresult.Error {
	if err == nil {
		panic("adapter: Classify called with nil error")
	}

	var de dresult.Error
	if errors.As(err, &de) {
		return de
	}

	var ce apis.CodedError
	if errors.As(err, &ce) {
		if c, perr := code.Parse(ce.ErrorCode()); perr == nil {
			e := dresult.E(c, ce.Error())
			if me, ok := ce.(apis.MetadataError); ok {
				e = e.WithMetadata(me.ErrorMetadata())
			}
			return e
		}
		// Coded but not canonical: treat as internal, keep the raw code
		// around for debugging.
		return dresult.E(code.Internal, ce.Error()).WithMeta("raw_code", ce.ErrorCode())
	}

	switch {
	case errors.Is(err, context.Canceled):
		return dresult.E(code.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return dresult.E(code.Timeout, err.Error())
	}

	return dresult.E(code.Internal, err.Error())
}
