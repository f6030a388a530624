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

// Package binary holds the two-argument string builtins.  left and
// right are thin compositions over the substring engine: they stage
// derived argument columns on the working batch and delegate, with no
// duplication of the scan.
package binary

import (
	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/sql/plan/function/builtin/multi"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// Left evaluates left(str, n) as substring(str, 1, n).
func Left(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	ones := make([]int32, length)
	for i := range ones {
		ones[i] = 1
	}
	startPos := bat.Append("const 1", vector.NewWithFixed(types.New(types.T_int32), ones, nil))

	return multi.Substring(bat, []int32{args[0], startPos, args[1]}, result, proc, length)
}
