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

package function

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/testutil"
)

func TestGet(t *testing.T) {
	f, err := Get("substring", 3)
	require.NoError(t, err)
	require.Equal(t, int32(SUBSTRING), f.ID)

	_, err = Get("substring", 2)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))

	// variadic functions take any count at or above the minimum
	_, err = Get("concat", 5)
	require.NoError(t, err)
	_, err = Get("concat_ws", 1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))

	_, err = Get("no_such_function", 1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrFunctionNotFound))
}

func TestEvalConstExpand(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(4)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"hello", "world", "foobar"}, nil))
	bat.SetVector(1, testutil.MakeScalarInt32(2, 3))
	bat.SetVector(2, testutil.MakeScalarInt32(3, 3))

	f, err := Get("substring", 3)
	require.NoError(t, err)
	require.NoError(t, f.Eval(bat, []int32{0, 1, 2}, 3, proc, 3))

	rvec := bat.GetVector(3)
	require.Equal(t, "ell", rvec.GetString(0))
	require.Equal(t, "orl", rvec.GetString(1))
	require.Equal(t, "oob", rvec.GetString(2))

	// argument columns are untouched, constants included
	require.True(t, bat.GetVector(1).IsConst())
	require.True(t, bat.GetVector(2).IsConst())
}

func TestEvalScalarNullArg(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(4)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"a", "b"}, nil))
	bat.SetVector(1, testutil.MakeScalarNull(types.T_int32, 2))

	f, err := Get("repeat", 2)
	require.NoError(t, err)
	require.NoError(t, f.Eval(bat, []int32{0, 1}, 2, proc, 2))

	// repeat relies on the default null handling
	rvec := bat.GetVector(2)
	require.True(t, nulls.Contains(rvec.Nsp, 0))
	require.True(t, nulls.Contains(rvec.Nsp, 1))
}

func TestEvalSyntheticColumnsStayLocal(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"hello"}, nil))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{3}, nil))

	f, err := Get("left", 2)
	require.NoError(t, err)
	require.NoError(t, f.Eval(bat, []int32{0, 1}, 2, proc, 1))

	require.Equal(t, 3, bat.VectorCount())
	require.Equal(t, "hel", bat.GetVector(2).GetString(0))
}

func TestEvalIdempotent(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(4)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"hello", "你好世界", ""}, []uint64{2}))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{2, -3, 1}, nil))
	bat.SetVector(2, testutil.MakeInt32Vector([]int32{3, 2, 1}, nil))

	f, err := Get("substring", 3)
	require.NoError(t, err)

	require.NoError(t, f.Eval(bat, []int32{0, 1, 2}, 3, proc, 3))
	first := bat.GetVector(3)
	firstVals := make([]string, 3)
	for i := range firstVals {
		firstVals[i] = first.GetString(i)
	}

	require.NoError(t, f.Eval(bat, []int32{0, 1, 2}, 3, proc, 3))
	second := bat.GetVector(3)
	for i := range firstVals {
		require.Equal(t, firstVals[i], second.GetString(i))
		require.Equal(t, nulls.Contains(first.Nsp, uint64(i)), nulls.Contains(second.Nsp, uint64(i)))
	}
}

func TestEvalArityPanics(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(2)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"a"}, nil))

	f, err := Get("substring", 3)
	require.NoError(t, err)
	require.Panics(t, func() {
		_ = f.Eval(bat, []int32{0}, 1, proc, 1)
	})
}

func TestReturnTypes(t *testing.T) {
	f, err := Get("null_or_empty", 1)
	require.NoError(t, err)
	typ, nullable := f.ReturnTyp([]types.Type{types.New(types.T_varchar)})
	require.Equal(t, types.T_bool, typ.Oid)
	require.False(t, nullable)

	f, err = Get("substring", 3)
	require.NoError(t, err)
	typ, nullable = f.ReturnTyp([]types.Type{types.New(types.T_varchar), types.New(types.T_int32), types.New(types.T_int32)})
	require.Equal(t, types.T_varchar, typ.Oid)
	require.True(t, nullable)
}
