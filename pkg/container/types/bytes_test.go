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

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesAppendGet(t *testing.T) {
	b := NewBytes(3)
	b.AppendValue(0, []byte("hello"))
	b.AppendEmpty(1)
	b.AppendValue(2, []byte("world"))

	require.Equal(t, 3, b.Rows())
	require.Equal(t, []byte("hello"), b.Get(0))
	require.Equal(t, []byte(""), b.Get(1))
	require.Equal(t, []byte("world"), b.Get(2))
	require.Equal(t, 5, b.LengthOf(0))
	require.Equal(t, 0, b.LengthOf(1))

	// one terminator per row, offsets point one past it
	require.Equal(t, uint32(6), b.Offsets[0])
	require.Equal(t, uint32(7), b.Offsets[1])
	require.Equal(t, uint32(13), b.Offsets[2])
	require.Equal(t, Terminator, b.Data[5])
	require.Equal(t, Terminator, b.Data[6])
	require.Equal(t, 10, b.PayloadSize())
}

func TestBytesOffsetsMonotonic(t *testing.T) {
	b := NewBytes(5)
	rows := [][]byte{[]byte("a"), {}, []byte("bcd"), {}, []byte("e")}
	for i, r := range rows {
		b.AppendValue(i, r)
	}
	var prev uint32
	for i := 0; i < b.Rows(); i++ {
		require.GreaterOrEqual(t, b.Offsets[i], prev)
		require.GreaterOrEqual(t, b.LengthOf(i), 0)
		prev = b.Offsets[i]
	}
}

func TestBytesReserveNoRealloc(t *testing.T) {
	b := NewBytes(2)
	b.Reserve(12)
	c := cap(b.Data)
	b.AppendValue(0, []byte("hello"))
	b.AppendValue(1, []byte("world"))
	require.Equal(t, c, cap(b.Data))
	require.Equal(t, 12, len(b.Data))
}

func TestBytesCloneEqual(t *testing.T) {
	b := NewBytes(2)
	b.AppendValue(0, []byte("xy"))
	b.AppendEmpty(1)

	c := b.Clone()
	require.True(t, b.Equal(c))
	c.Data[0] = 'z'
	require.False(t, b.Equal(c))
}
