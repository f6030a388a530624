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

package substring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
)

func makeBytes(vals []string) *types.Bytes {
	bs := types.NewBytes(len(vals))
	for i, v := range vals {
		bs.AppendValue(i, []byte(v))
	}
	return bs
}

func runSubstring(t *testing.T, vals []string, starts, lens []int32) ([]string, *nulls.Nulls) {
	t.Helper()
	src := makeBytes(vals)
	res := types.NewBytes(src.Rows())
	res.Reserve(len(src.Data))
	nsp := nulls.NewWithSize(src.Rows())
	SubstringWithParams(src, starts, lens, nsp, res)

	out := make([]string, res.Rows())
	for i := range out {
		out[i] = string(res.Get(i))
	}
	return out, nsp
}

func TestSubstringBasics(t *testing.T) {
	cases := []struct {
		name     string
		str      string
		start    int32
		len      int32
		want     string
		wantNull bool
	}{
		{name: "forward", str: "hello", start: 1, len: 3, want: "hel"},
		{name: "negative start", str: "hello", start: -3, len: 2, want: "ll"},
		{name: "start past end", str: "hello", start: 10, len: 2, wantNull: true},
		{name: "zero length", str: "hello", start: 2, len: 0, want: ""},
		{name: "zero start", str: "hello", start: 0, len: 5, want: ""},
		{name: "negative length", str: "hello", start: 1, len: -1, want: ""},
		// an empty string fails the byte-length check for any positive
		// start before the empty-string rule is reached
		{name: "empty string positive start", str: "", start: 1, len: 3, wantNull: true},
		{name: "empty string zero start", str: "", start: 0, len: 3, want: ""},
		{name: "length clamped", str: "hello", start: 4, len: 10, want: "lo"},
		{name: "negative start clamped", str: "hi", start: -2, len: 10, want: "hi"},
		{name: "negative start past begin", str: "hi", start: -10, len: 2, wantNull: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, nsp := runSubstring(t, []string{c.str}, []int32{c.start}, []int32{c.len})
			if c.wantNull {
				require.True(t, nulls.Contains(nsp, 0))
			} else {
				require.False(t, nulls.Contains(nsp, 0))
				require.Equal(t, c.want, got[0])
			}
		})
	}
}

func TestSubstringUTF8(t *testing.T) {
	cases := []struct {
		name  string
		str   string
		start int32
		len   int32
		want  string
	}{
		{name: "two cjk from second", str: "你好世界", start: 2, len: 2, want: "好世"},
		{name: "cjk from end", str: "你好世界", start: -2, len: 2, want: "世界"},
		{name: "mixed ascii cjk", str: "a你b好c", start: 2, len: 3, want: "你b好"},
		{name: "emoji", str: "x😄y", start: 2, len: 1, want: "😄"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, nsp := runSubstring(t, []string{c.str}, []int32{c.start}, []int32{c.len})
			require.False(t, nulls.Contains(nsp, 0))
			require.Equal(t, c.want, got[0])
		})
	}
}

// The first rejection compares start against the byte length, so a
// start that is within code-point bounds of a multi-byte string is
// still accepted when it exceeds the code-point count.
func TestSubstringByteLengthQuirk(t *testing.T) {
	// "你好" is 2 code points, 6 bytes: start 4 passes the byte-length
	// check but cannot be resolved, the row becomes NULL.
	got, nsp := runSubstring(t, []string{"你好"}, []int32{4}, []int32{1})
	require.True(t, nulls.Contains(nsp, 0))
	require.Equal(t, "", got[0])

	// start 7 exceeds the byte length outright.
	_, nsp = runSubstring(t, []string{"你好"}, []int32{7}, []int32{1})
	require.True(t, nulls.Contains(nsp, 0))
}

func TestSubstringBatch(t *testing.T) {
	vals := []string{"hello", "world", "", "你好世界"}
	starts := []int32{1, -3, 0, 3}
	lens := []int32{3, 2, 2, 2}
	got, nsp := runSubstring(t, vals, starts, lens)
	require.Equal(t, []string{"hel", "rl", "", "世界"}, got)
	require.False(t, nsp.Any())
}

func TestSubstringOffsetsInvariant(t *testing.T) {
	vals := []string{"abc", "", "hello", "你好"}
	src := makeBytes(vals)
	res := types.NewBytes(src.Rows())
	res.Reserve(len(src.Data))
	nsp := nulls.NewWithSize(src.Rows())
	SubstringWithParams(src, []int32{1, 1, 10, 1}, []int32{2, 2, 2, 1}, nsp, res)

	var prev uint32
	for i := 0; i < res.Rows(); i++ {
		require.GreaterOrEqual(t, res.Offsets[i], prev)
		require.Equal(t, types.Terminator, res.Data[res.Offsets[i]-1])
		prev = res.Offsets[i]
	}
}

func TestUTF8CharLength(t *testing.T) {
	require.Equal(t, 1, utf8CharLength('a'))
	require.Equal(t, 2, utf8CharLength(0xC3))
	require.Equal(t, 3, utf8CharLength(0xE4))
	require.Equal(t, 4, utf8CharLength(0xF0))
	require.Equal(t, 5, utf8CharLength(0xF8))
	require.Equal(t, 6, utf8CharLength(0xFC))
}
