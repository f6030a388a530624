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
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/vectorize/repeat"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// Repeat evaluates repeat(str, n) over a batch.  Only the
// {string, int32} pairing is implemented; a repeated length past the
// int32 limit is a hard runtime error in every build.
func Repeat(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	srcVec := bat.GetVector(args[0])
	cntVec := bat.GetVector(args[1])

	srcCol, ok := srcVec.Col.(*types.Bytes)
	if !ok {
		return moerr.NewNotSupported("repeat: parameter types %s, %s", srcVec.Typ, cntVec.Typ)
	}
	counts, ok := cntVec.Col.([]int32)
	if !ok {
		return moerr.NewNotSupported("repeat: parameter types %s, %s", srcVec.Typ, cntVec.Typ)
	}

	size, err := repeat.ReserveSize(srcCol, counts)
	if err != nil {
		return err
	}
	rvec, err := vector.AllocString(types.New(types.T_varchar), length, size, proc.Mp())
	if err != nil {
		return err
	}
	repeat.StrRepeat(srcCol, counts, vector.MustBytesCol(rvec))

	bat.SetVector(result, rvec)
	return nil
}
