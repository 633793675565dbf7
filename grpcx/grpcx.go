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

// Package grpcx maps dresult failures onto gRPC status errors.
//
// Each failure is attached to the status as a google.rpc.ErrorInfo detail:
// the dresult code becomes the ErrorInfo reason (uppercased, per the
// google.rpc conventions), the failure metadata becomes the ErrorInfo
// metadata, and the apis.Mapper decides the transport status code. Clients
// recover the structured failures with ExtractErrorInfo.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
)

// Domain is the google.rpc.ErrorInfo domain under which dresult failures
// are published. Clients can use it to recognize details produced by this
// package among details from other layers.
const Domain = "dresult.dirpx.dev"

// Status converts one or more failures into a gRPC status.
//
// The first error decides the status code and message; every error is
// attached as its own ErrorInfo detail, in order. Passing zero errors is a
// caller bug and panics with dresult.ErrEmptyFailure, mirroring dresult.Fail.
func Status(m apis.Mapper, errs ...dresult.Error) *gstatus.Status {
	if len(errs) == 0 {
		panic(dresult.ErrEmptyFailure)
	}

	first := errs[0]
	base := gstatus.New(m.GRPCStatus(first.Code), first.Message)

	details := make([]*errdetails.ErrorInfo, len(errs))
	for i, e := range errs {
		details[i] = &errdetails.ErrorInfo{
			Reason:   reasonFor(e),
			Domain:   Domain,
			Metadata: e.ErrorMetadata(),
		}
	}

	// Attaching details can only fail on marshaling; ErrorInfo with string
	// maps always marshals, but fall back to the bare status regardless.
	with := base
	for _, d := range details {
		next, err := with.WithDetails(d)
		if err != nil {
			return base
		}
		with = next
	}
	return with
}

// Error converts failures into a ready-to-return gRPC error.
func Error(m apis.Mapper, errs ...dresult.Error) error {
	return Status(m, errs...).Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// dresult.Error values escaping a handler into rich gRPC status errors.
//
// Only errors carrying a dresult.Error in their chain are converted; other
// errors are returned as-is so that foreign status errors and transport
// failures keep their own semantics.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de dresult.Error
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, Error(m, de)
	}
}

// ExtractErrorInfo pulls the dresult-domain ErrorInfo details out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) ([]*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	var out []*errdetails.ErrorInfo
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			out = append(out, info)
		}
	}
	return out, len(out) > 0
}

// reasonFor renders a failure code in the UPPER_SNAKE form that
// google.rpc.ErrorInfo reasons conventionally use.
func reasonFor(e dresult.Error) string {
	return strings.ToUpper(string(e.Code))
}
