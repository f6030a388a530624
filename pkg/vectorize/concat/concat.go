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

// Package concat implements the concat and concat_ws batch kernels.
// Both pre-compute the exact output buffer size and fill it in a
// single pass, so no reallocation happens on the hot path.
package concat

import (
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
)

// ReserveSize returns the exact byte size of the concat output over
// all rows: the sum of every argument's payload plus one terminator
// per row.
func ReserveSize(srcs []*types.Bytes, rows int) int {
	size := rows
	for _, src := range srcs {
		size += src.PayloadSize()
	}
	return size
}

// Concat joins the arguments' payloads back-to-back per row.  Null
// visibility is governed by the caller's fused bitmap; payloads of
// null-marked rows are still copied so the output column stays
// well-formed.  res must be reserved with ReserveSize.
func Concat(srcs []*types.Bytes, rows int, res *types.Bytes) *types.Bytes {
	for i := 0; i < rows; i++ {
		for _, src := range srcs {
			res.Data = append(res.Data, src.Get(i)...)
		}
		res.Data = append(res.Data, types.Terminator)
		res.Offsets[i] = uint32(len(res.Data))
	}
	return res
}

// WsReserveSize returns the exact byte size of the concat_ws output:
// for each row with a non-null separator, the payloads of the non-null
// value arguments plus the separators between the survivors; one
// terminator per row either way.
func WsReserveSize(sep *types.Bytes, sepNulls *nulls.Nulls, args []*types.Bytes, argNulls []*nulls.Nulls, rows int) int {
	size := rows
	for i := 0; i < rows; i++ {
		if nulls.Contains(sepNulls, uint64(i)) {
			continue
		}
		cnt := 0
		for j, arg := range args {
			if nulls.Contains(argNulls[j], uint64(i)) {
				continue
			}
			size += arg.LengthOf(i)
			cnt++
		}
		if cnt > 1 {
			size += (cnt - 1) * sep.LengthOf(i)
		}
	}
	return size
}

// ConcatWs joins, per row, the non-null value arguments with the row's
// separator.  A null separator makes the row null (added to nsp); null
// value arguments are skipped, not treated as empty.  res must be
// reserved with WsReserveSize.
func ConcatWs(sep *types.Bytes, sepNulls *nulls.Nulls, args []*types.Bytes, argNulls []*nulls.Nulls, rows int, nsp *nulls.Nulls, res *types.Bytes) *types.Bytes {
	for i := 0; i < rows; i++ {
		if nulls.Contains(sepNulls, uint64(i)) {
			nulls.Add(nsp, uint64(i))
			res.AppendEmpty(i)
			continue
		}
		sepVal := sep.Get(i)
		first := true
		for j, arg := range args {
			if nulls.Contains(argNulls[j], uint64(i)) {
				continue
			}
			if !first {
				res.Data = append(res.Data, sepVal...)
			}
			res.Data = append(res.Data, arg.Get(i)...)
			first = false
		}
		res.Data = append(res.Data, types.Terminator)
		res.Offsets[i] = uint32(len(res.Data))
	}
	return res
}
