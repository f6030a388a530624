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

package binary

import (
	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/sql/plan/function/builtin/multi"
	"github.com/vectorsql/vectorsql/pkg/vectorize/substring"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// Right evaluates right(str, n) by staging, per row, a start position
// of max(-n, -codepointCount(str)) and delegating to the substring
// engine with the original n as the length.
func Right(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	srcVec := bat.GetVector(args[0])
	cntVec := bat.GetVector(args[1])

	srcCol, ok := srcVec.Col.(*types.Bytes)
	if !ok {
		return moerr.NewNotSupported("right: parameter types %s, %s", srcVec.Typ, cntVec.Typ)
	}
	counts, ok := cntVec.Col.([]int32)
	if !ok {
		return moerr.NewNotSupported("right: parameter types %s, %s", srcVec.Typ, cntVec.Typ)
	}

	// The substring engine updates the null bitmap itself, so the
	// derived start column needs no bitmap of its own.
	starts := make([]int32, length)
	for i := 0; i < length; i++ {
		charLen := int32(substring.CodepointCount(srcCol.Get(i)))
		if start := -counts[i]; start > -charLen {
			starts[i] = start
		} else {
			starts[i] = -charLen
		}
	}
	startPos := bat.Append("right start", vector.NewWithFixed(types.New(types.T_int32), starts, nil))

	return multi.Substring(bat, []int32{args[0], startPos, args[1]}, result, proc, length)
}
