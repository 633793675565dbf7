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

package envelope

import (
	"fmt"
	"strconv"
)

// Well-known attribute keys injected by the factories below.
//
// The factories silently overwrite caller-supplied values under these keys.
// Whether a collision should instead be an error is deliberately left open;
// the silent overwrite is the long-standing observable behavior and callers
// rely on the injected values being authoritative.
const (
	// AttrType names the declared Go type of the wrapped identifier.
	AttrType = "type"

	// AttrTotalCount carries the decimal string form of the total number of
	// items a paged collection was cut from.
	AttrTotalCount = "totalCount"
)

// Envelope is the standard shape for data crossing a process boundary:
// an arbitrary payload plus an open-ended string-keyed attribute map.
//
// Consumers can rely on every endpoint producing this one shape regardless
// of what the payload is. An Envelope is an immutable value: factories copy
// caller-supplied attribute maps and never alias them.
type Envelope[D any] struct {
	// Data is the wrapped payload, serialized verbatim.
	Data D `json:"data"`

	// Attributes is optional open-ended metadata about the payload.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// IdentifierData wraps a single identifier value, typically the key of a
// freshly created resource. Used as the Data of an Envelope built by NewID.
type IdentifierData[I any] struct {
	ID I `json:"id"`
}

// PageData wraps one page of a collection. Used as the Data of an Envelope
// built by NewPaged; the page's total count travels in the attributes.
type PageData[T any] struct {
	Items []T `json:"items"`
}

// New wraps data verbatim together with the given attributes.
//
// The operation is total: it never fails and performs no validation of the
// payload. A nil attrs map yields an envelope without attributes.
func New[D any](data D, attrs map[string]string) Envelope[D] {
	return Envelope[D]{Data: data, Attributes: copyAttrs(attrs, 0)}
}

// NewID wraps a single identifier and injects an AttrType attribute naming
// the identifier's declared Go type (e.g. "int" or "uuid.UUID").
//
// A caller-supplied value under AttrType is silently overwritten; the
// injected name is authoritative.
func NewID[I any](id I, attrs map[string]string) Envelope[IdentifierData[I]] {
	out := copyAttrs(attrs, 1)
	out[AttrType] = fmt.Sprintf("%T", id)
	return Envelope[IdentifierData[I]]{
		Data:       IdentifierData[I]{ID: id},
		Attributes: out,
	}
}

// NewPaged wraps one page of items and injects an AttrTotalCount attribute
// with the decimal form of totalCount, silently overwriting any
// caller-supplied value under that key.
//
// No consistency between len(items) and totalCount is enforced: the total
// describes the whole collection, the items just one page of it, and the
// caller owns both numbers.
func NewPaged[T any](items []T, totalCount int64, attrs map[string]string) Envelope[PageData[T]] {
	out := copyAttrs(attrs, 1)
	out[AttrTotalCount] = strconv.FormatInt(totalCount, 10)
	return Envelope[PageData[T]]{
		Data:       PageData[T]{Items: items},
		Attributes: out,
	}
}

// copyAttrs clones a caller-supplied attribute map with room for extra
// injected entries. With extra == 0 a nil/empty input stays nil so that
// "no attributes" round-trips as an omitted field.
func copyAttrs(attrs map[string]string, extra int) map[string]string {
	if len(attrs) == 0 && extra == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs)+extra)
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
