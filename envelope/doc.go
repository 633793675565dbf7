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

// Package envelope standardizes the shape of payloads returned across a
// process boundary.
//
// Every envelope is a payload plus a flat string attribute map:
//
//	{"data": ..., "attributes": {...}}
//
// Two specialized factories cover the recurring cases: NewID for
// identifier-only payloads (create endpoints) and NewPaged for paged
// collections. Both inject a well-known attribute (AttrType, AttrTotalCount)
// so clients can interpret the payload without out-of-band knowledge.
//
// Envelopes are independent of the result model: a handler typically
// produces a dresult.Of[T] first and wraps the value in an envelope only on
// the success path, at the boundary.
package envelope
