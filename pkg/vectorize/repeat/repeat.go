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

// Package repeat implements the repeat batch kernel.
package repeat

import (
	"math"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/types"
)

// ReserveSize returns the exact output size of repeating every row of
// src by its count, one terminator per row included.  A row whose
// repeated length would exceed the int32 limit is rejected in every
// build configuration.
func ReserveSize(src *types.Bytes, counts []int32) (int, error) {
	size := src.Rows()
	for i := 0; i < src.Rows(); i++ {
		n := int64(counts[i])
		if n <= 0 {
			continue
		}
		rowSize := int64(src.LengthOf(i)) * n
		if rowSize > math.MaxInt32 {
			return 0, moerr.NewOutOfRange("varchar", "repeat count %d on a %d byte string", counts[i], src.LengthOf(i))
		}
		size += int(rowSize)
	}
	return size, nil
}

// StrRepeat writes each row of src repeated counts[i] times with no
// separator.  A non-positive count yields an empty string.  res must
// be reserved with ReserveSize.
func StrRepeat(src *types.Bytes, counts []int32, res *types.Bytes) *types.Bytes {
	for i := 0; i < src.Rows(); i++ {
		if counts[i] <= 0 {
			res.AppendEmpty(i)
			continue
		}
		raw := src.Get(i)
		for j := int32(0); j < counts[i]; j++ {
			res.Data = append(res.Data, raw...)
		}
		res.Data = append(res.Data, types.Terminator)
		res.Offsets[i] = uint32(len(res.Data))
	}
	return res
}
