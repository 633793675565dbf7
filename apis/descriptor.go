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

// ErrorDescriptor is a portable snapshot of one failure together with its
// resolved transport statuses.
//
// Unlike ErrorView (which is client-facing), the descriptor is meant for
// structured logging, tracing, and message-bus propagation: it records not
// only what went wrong but also how the boundary decided to present it.
type ErrorDescriptor struct {
	// Code is the canonical error code.
	Code string `json:"code"`

	// Message is the human-readable description.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the HTTP status the mapper resolved for this code.
	HTTPStatus int `json:"httpStatus"`

	// GRPCCode is the numeric gRPC status the mapper resolved for this code.
	GRPCCode int `json:"grpcCode"`

	// Metadata carries the failure's flat string key/value payload.
	Metadata map[string]string `json:"metadata,omitempty"`
}
