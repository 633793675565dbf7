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

// Package apis holds the transport-neutral contracts shared by the dresult
// boundary adapters.
//
// It defines the Mapper interface that resolves a logical error code into
// concrete HTTP and gRPC statuses, together with the small view types that
// HTTP and gRPC adapters are comfortable exposing over the wire. Keeping
// these contracts in one leaf package lets httpx, grpcx, and logging code
// agree on shapes without importing each other or the concrete result types.
package apis
