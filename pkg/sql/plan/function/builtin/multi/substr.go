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
	"github.com/vectorsql/vectorsql/pkg/vectorize/substring"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// Substring evaluates substring(str, start, len) over a batch.  The
// three argument columns must be {string, int32, int32}; anything else
// is reported as not supported.  The result is a nullable string
// column.
func Substring(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	srcVec := bat.GetVector(args[0])
	startVec := bat.GetVector(args[1])
	lenVec := bat.GetVector(args[2])

	srcCol, ok := srcVec.Col.(*types.Bytes)
	if !ok {
		return moerr.NewNotSupported("substring: parameter types %s, %s, %s",
			srcVec.Typ, startVec.Typ, lenVec.Typ)
	}
	starts, ok := startVec.Col.([]int32)
	if !ok {
		return moerr.NewNotSupported("substring: parameter types %s, %s, %s",
			srcVec.Typ, startVec.Typ, lenVec.Typ)
	}
	lens, ok := lenVec.Col.([]int32)
	if !ok {
		return moerr.NewNotSupported("substring: parameter types %s, %s, %s",
			srcVec.Typ, startVec.Typ, lenVec.Typ)
	}

	nsp := nulls.NewWithSize(length)
	nulls.Set(nsp, srcVec.Nsp)
	nulls.Set(nsp, startVec.Nsp)
	nulls.Set(nsp, lenVec.Nsp)

	// The result of a substring never exceeds its source, so the
	// source size is a sufficient reservation for a single-pass fill.
	rvec, err := vector.AllocString(types.New(types.T_varchar), length, len(srcCol.Data), proc.Mp())
	if err != nil {
		return err
	}
	substring.SubstringWithParams(srcCol, starts, lens, nsp, vector.MustBytesCol(rvec))
	rvec.Nsp = nsp

	bat.SetVector(result, rvec)
	return nil
}
