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

// Package testutil provides vector and process constructors for tests.
package testutil

import (
	"context"

	"github.com/vectorsql/vectorsql/pkg/common/mpool"
	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// NewProc returns a process backed by an unbounded pool.
func NewProc() *process.Process {
	return process.New(context.Background(), mpool.MustNew("test"))
}

// NewBatch returns a batch with n empty column slots.
func NewBatch(n int) *batch.Batch {
	return batch.NewWithSize(n)
}

// MakeVarcharVector builds a flat varchar vector.  Rows listed in nullRows
// are marked null and keep an empty payload.
func MakeVarcharVector(vals []string, nullRows []uint64) *vector.Vector {
	bs := types.NewBytes(len(vals))
	nsp := nulls.Build(len(vals), nullRows...)
	for i, val := range vals {
		if nulls.Contains(nsp, uint64(i)) {
			bs.AppendEmpty(i)
		} else {
			bs.AppendValue(i, []byte(val))
		}
	}
	return vector.NewWithBytes(types.New(types.T_varchar), bs, nsp)
}

// MakeScalarVarchar builds a constant varchar vector of the given
// logical length.
func MakeScalarVarchar(val string, length int) *vector.Vector {
	return vector.NewConstBytes(types.New(types.T_varchar), []byte(val), length)
}

// MakeScalarNull builds a constant NULL of the given type.
func MakeScalarNull(oid types.T, length int) *vector.Vector {
	return vector.NewConstNull(types.New(oid), length)
}

// MakeInt32Vector builds a flat int32 vector.
func MakeInt32Vector(vals []int32, nullRows []uint64) *vector.Vector {
	return vector.NewWithFixed(types.New(types.T_int32), vals, nulls.Build(len(vals), nullRows...))
}

// MakeScalarInt32 builds a constant int32 vector.
func MakeScalarInt32(val int32, length int) *vector.Vector {
	return vector.NewConstFixed(types.New(types.T_int32), val, length)
}

// MakeBoolVector builds a flat bool vector without nulls.
func MakeBoolVector(vals []bool) *vector.Vector {
	return vector.NewWithFixed(types.New(types.T_bool), vals, nil)
}
