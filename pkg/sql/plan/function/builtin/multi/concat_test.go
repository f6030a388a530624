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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/vector"
	"github.com/vectorsql/vectorsql/pkg/testutil"
)

func TestConcat(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(4)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"ab", "", "x"}, nil))
	bat.SetVector(1, testutil.MakeVarcharVector([]string{"cd", "ef", ""}, []uint64{2}))
	bat.SetVector(2, testutil.MakeVarcharVector([]string{"!", "?", "."}, nil))

	err := Concat(bat, []int32{0, 1, 2}, 3, proc, 3)
	require.NoError(t, err)

	rvec := bat.GetVector(3)
	require.Equal(t, "abcd!", rvec.GetString(0))
	require.Equal(t, "ef?", rvec.GetString(1))
	require.True(t, nulls.Contains(rvec.Nsp, 2))
}

func TestConcatSingleArg(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(2)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"keep", ""}, []uint64{1}))

	err := Concat(bat, []int32{0}, 1, proc, 2)
	require.NoError(t, err)

	rvec := bat.GetVector(1)
	require.NotSame(t, bat.GetVector(0), rvec)
	require.Equal(t, "keep", rvec.GetString(0))
	require.True(t, nulls.Contains(rvec.Nsp, 1))
}

func TestConcatExactReserve(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"aa", "b"}, nil))
	bat.SetVector(1, testutil.MakeVarcharVector([]string{"cc", "d"}, nil))

	err := Concat(bat, []int32{0, 1}, 2, proc, 2)
	require.NoError(t, err)

	// 2 rows of joined payload plus one terminator each.
	bs := vector.MustBytesCol(bat.GetVector(2))
	require.Equal(t, 4+2+2, len(bs.Data))
}

func TestConcatBadType(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"a"}, nil))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{1}, nil))

	err := Concat(bat, []int32{0, 1}, 2, proc, 1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}
