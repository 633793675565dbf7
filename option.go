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

package dresult

// Option is a functional option for constructing or transforming an Error.
// It always takes an Error value and returns a (possibly refined) value.
type Option func(Error) Error

// WithMessageOption replaces the human message on the error being constructed.
// Intended to be used with E(...).
func WithMessageOption(msg string) Option {
	return func(e Error) Error {
		return e.WithMessage(msg)
	}
}

// WithMetaOption adds a single metadata key/value on construction.
// Intended to be used with E(...).
func WithMetaOption(k, v string) Option {
	return func(e Error) Error {
		return e.WithMeta(k, v)
	}
}

// WithMetadataOption merges multiple metadata key/values on construction.
// Intended to be used with E(...).
func WithMetadataOption(kv map[string]string) Option {
	return func(e Error) Error {
		return e.WithMetadata(kv)
	}
}
