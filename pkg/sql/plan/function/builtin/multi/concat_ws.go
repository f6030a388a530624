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

// ConcatWs evaluates concat_ws(sep, args...) over a batch.  A null
// separator makes the row null; null value arguments are skipped and
// the survivors are joined with the row's separator, in argument
// order.
func ConcatWs(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	sepVec := bat.GetVector(args[0])
	sepCol, ok := sepVec.Col.(*types.Bytes)
	if !ok {
		return moerr.NewNotSupported("concat_ws: parameter type %s", sepVec.Typ)
	}

	vals := make([]*types.Bytes, len(args)-1)
	valNulls := make([]*nulls.Nulls, len(args)-1)
	for i, pos := range args[1:] {
		vec := bat.GetVector(pos)
		col, ok := vec.Col.(*types.Bytes)
		if !ok {
			return moerr.NewNotSupported("concat_ws: parameter type %s", vec.Typ)
		}
		vals[i] = col
		valNulls[i] = vec.Nsp
	}

	size := concat.WsReserveSize(sepCol, sepVec.Nsp, vals, valNulls, length)
	rvec, err := vector.AllocString(types.New(types.T_varchar), length, size, proc.Mp())
	if err != nil {
		return err
	}
	nsp := nulls.NewWithSize(length)
	concat.ConcatWs(sepCol, sepVec.Nsp, vals, valNulls, length, nsp, vector.MustBytesCol(rvec))
	rvec.Nsp = nsp

	bat.SetVector(result, rvec)
	return nil
}
