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

// Package unary holds the one-argument string builtins.
package unary

import (
	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// NullOrEmpty evaluates null_or_empty(str): true for a row that is
// null or has an empty payload.  The result is a non-nullable bool
// column; a null input contributes true, not a propagated null.
func NullOrEmpty(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	srcVec := bat.GetVector(args[0])
	srcCol, ok := srcVec.Col.(*types.Bytes)
	if !ok {
		return moerr.NewNotSupported("null_or_empty: parameter type %s", srcVec.Typ)
	}

	rvec, err := vector.AllocFixed[bool](types.New(types.T_bool), length, proc.Mp())
	if err != nil {
		return err
	}
	rvals := vector.MustFixedCol[bool](rvec)
	for i := 0; i < length; i++ {
		rvals[i] = nulls.Contains(srcVec.Nsp, uint64(i)) || srcCol.LengthOf(i) == 0
	}

	bat.SetVector(result, rvec)
	return nil
}
