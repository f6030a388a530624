// Copyright 2022 VectorSQL Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package substring implements the batch substring kernel.
//
// Indexing is 1-based over UTF-8 code points.  A negative start counts
// from the end of the string, -1 being the last character.  Per row:
//
//   - a start beyond the row's byte length gives NULL;
//   - a non-positive length, an empty string or a zero start give "";
//   - otherwise the string is scanned once, the start is resolved to a
//     forward code-point position, and the byte span is cut, clamped
//     to the end of the string.
//
// Note the first rejection compares start against the byte length, not
// the code-point count.  That is the historical behavior of this
// function and callers depend on it.
package substring

import (
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
)

// utf8CharLength returns the encoded length of the code point starting
// with the given byte, 1 to 6.
func utf8CharLength(b byte) int {
	switch {
	case b >= 0xFC:
		return 6
	case b >= 0xF8:
		return 5
	case b >= 0xF0:
		return 4
	case b >= 0xE0:
		return 3
	case b >= 0xC0:
		return 2
	default:
		return 1
	}
}

// CodepointCount returns the number of code points in b, read with the
// same length table the kernel scans with.
func CodepointCount(b []byte) int {
	n := 0
	for j := 0; j < len(b); n++ {
		j += utf8CharLength(b[j])
	}
	return n
}

// SubstringWithParams cuts src row by row using per-row start and
// length parameters.  Rows resolved to NULL are added to nsp; their
// payload in res is left empty.  res must have been reserved by the
// caller; len(src.Data) is always a sufficient reservation.
func SubstringWithParams(src *types.Bytes, starts, lens []int32, nsp *nulls.Nulls, res *types.Bytes) *types.Bytes {
	rows := src.Rows()
	index := make([]int, 0, 64)

	for i := 0; i < rows; i++ {
		raw := src.Get(i)
		strSize := len(raw)

		if int(starts[i]) > strSize {
			nulls.Add(nsp, uint64(i))
			res.AppendEmpty(i)
			continue
		}
		if lens[i] <= 0 || strSize == 0 || starts[i] == 0 {
			res.AppendEmpty(i)
			continue
		}

		// Scan code-point starts; with a positive start the scan stops
		// as soon as start+len positions are known.
		index = index[:0]
		for j := 0; j < strSize; {
			index = append(index, j)
			if starts[i] > 0 && len(index) > int(starts[i])+int(lens[i]) {
				break
			}
			j += utf8CharLength(raw[j])
		}

		fixedPos := int(starts[i])
		if fixedPos < 0 {
			fixedPos = len(index) + fixedPos + 1
		}
		if fixedPos < 1 || fixedPos > len(index) {
			nulls.Add(nsp, uint64(i))
			res.AppendEmpty(i)
			continue
		}

		bytePos := index[fixedPos-1]
		fixedLen := strSize - bytePos
		if fixedPos+int(lens[i]) <= len(index) {
			fixedLen = index[fixedPos+int(lens[i])-1] - bytePos
		}

		if fixedLen > 0 {
			res.AppendValue(i, raw[bytePos:bytePos+fixedLen])
		} else {
			res.AppendEmpty(i)
		}
	}
	return res
}
