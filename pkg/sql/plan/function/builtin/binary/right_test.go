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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/testutil"
)

func TestRight(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"hello", "hi", "你好世界"}, nil))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{2, 10, 2}, nil))

	err := Right(bat, []int32{0, 1}, 2, proc, 3)
	require.NoError(t, err)

	rvec := bat.GetVector(2)
	require.Equal(t, "lo", rvec.GetString(0))
	// a count past the start clamps to the whole string
	require.Equal(t, "hi", rvec.GetString(1))
	require.Equal(t, "世界", rvec.GetString(2))
}

func TestRightCountPastMultibyteStart(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{"你好"}, nil))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{10}, nil))

	err := Right(bat, []int32{0, 1}, 2, proc, 1)
	require.NoError(t, err)
	require.Equal(t, "你好", bat.GetVector(2).GetString(0))
}

func TestRightEmptyString(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeVarcharVector([]string{""}, nil))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{3}, nil))

	err := Right(bat, []int32{0, 1}, 2, proc, 1)
	require.NoError(t, err)
	require.Equal(t, "", bat.GetVector(2).GetString(0))
}

func TestRightBadType(t *testing.T) {
	proc := testutil.NewProc()
	bat := testutil.NewBatch(3)
	bat.SetVector(0, testutil.MakeInt32Vector([]int32{1}, nil))
	bat.SetVector(1, testutil.MakeInt32Vector([]int32{1}, nil))

	err := Right(bat, []int32{0, 1}, 2, proc, 1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}
