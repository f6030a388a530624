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

package multi

import (
	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/vectorize/concat"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// Concat evaluates concat(args...) over a batch.  A row is null iff
// any argument is null on that row; otherwise the result is the
// back-to-back join of the argument payloads.  With a single argument
// the column passes through as a nullable copy.
func Concat(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	if len(args) == 1 {
		vec := bat.GetVector(args[0])
		if _, ok := vec.Col.(*types.Bytes); !ok {
			return moerr.NewNotSupported("concat: parameter type %s", vec.Typ)
		}
		rvec, err := vec.Dup(proc.Mp())
		if err != nil {
			return err
		}
		bat.SetVector(result, rvec)
		return nil
	}

	srcs := make([]*types.Bytes, len(args))
	nsp := nulls.NewWithSize(length)
	for i, pos := range args {
		vec := bat.GetVector(pos)
		col, ok := vec.Col.(*types.Bytes)
		if !ok {
			return moerr.NewNotSupported("concat: parameter type %s", vec.Typ)
		}
		srcs[i] = col
		nulls.Set(nsp, vec.Nsp)
	}

	size := concat.ReserveSize(srcs, length)
	rvec, err := vector.AllocString(types.New(types.T_varchar), length, size, proc.Mp())
	if err != nil {
		return err
	}
	concat.Concat(srcs, length, vector.MustBytesCol(rvec))
	rvec.Nsp = nsp

	bat.SetVector(result, rvec)
	return nil
}
