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

import "bytes"

// Terminator is appended after every row payload in Bytes.Data.
const Terminator byte = 0

// Bytes is the column encoding for a batch of var-len values.
//
// Data holds every row's payload back-to-back, each payload followed by
// one Terminator byte.  Offsets[i] is the index one past row i's
// terminator; by convention the offset before row 0 is 0.  Row i's
// payload is Data[Offsets[i-1] : Offsets[i]-1], so its length is
// Offsets[i]-Offsets[i-1]-1 and an empty row still consumes one byte.
//
// Rows must be appended in increasing index order: a row's start is
// defined by the previous row's end.  A Bytes built by a function
// invocation is handed to the batch by move and is read-only after
// that.
type Bytes struct {
	Data    []byte
	Offsets []uint32
}

// NewBytes returns a Bytes with room for rows offsets and an empty
// data buffer.
func NewBytes(rows int) *Bytes {
	return &Bytes{
		Data:    []byte{},
		Offsets: make([]uint32, rows),
	}
}

func (b *Bytes) Rows() int {
	return len(b.Offsets)
}

// Reserve pre-sizes the data buffer so that a single-pass fill of up
// to total bytes (terminators included) never reallocates.
func (b *Bytes) Reserve(total int) {
	if cap(b.Data)-len(b.Data) >= total {
		return
	}
	data := make([]byte, len(b.Data), len(b.Data)+total)
	copy(data, b.Data)
	b.Data = data
}

// AppendValue writes row i's payload followed by the terminator and
// records its offset.
func (b *Bytes) AppendValue(i int, v []byte) {
	b.Data = append(b.Data, v...)
	b.Data = append(b.Data, Terminator)
	b.Offsets[i] = uint32(len(b.Data))
}

// AppendEmpty writes an empty payload for row i (terminator only).
func (b *Bytes) AppendEmpty(i int) {
	b.Data = append(b.Data, Terminator)
	b.Offsets[i] = uint32(len(b.Data))
}

// Get returns a read-only view of row i's payload, without the
// terminator and without copying.
func (b *Bytes) Get(i int) []byte {
	var start uint32
	if i > 0 {
		start = b.Offsets[i-1]
	}
	return b.Data[start : b.Offsets[i]-1]
}

// LengthOf returns the payload length of row i.
func (b *Bytes) LengthOf(i int) int {
	var start uint32
	if i > 0 {
		start = b.Offsets[i-1]
	}
	return int(b.Offsets[i] - start - 1)
}

// PayloadSize returns the total payload bytes over all rows,
// terminators excluded.
func (b *Bytes) PayloadSize() int {
	if len(b.Offsets) == 0 {
		return 0
	}
	return int(b.Offsets[len(b.Offsets)-1]) - len(b.Offsets)
}

// Clone returns a deep copy.
func (b *Bytes) Clone() *Bytes {
	r := &Bytes{
		Data:    make([]byte, len(b.Data)),
		Offsets: make([]uint32, len(b.Offsets)),
	}
	copy(r.Data, b.Data)
	copy(r.Offsets, b.Offsets)
	return r
}

func (b *Bytes) Equal(o *Bytes) bool {
	if len(b.Offsets) != len(o.Offsets) {
		return false
	}
	for i := range b.Offsets {
		if b.Offsets[i] != o.Offsets[i] {
			return false
		}
	}
	return bytes.Equal(b.Data[:lastOffset(b)], o.Data[:lastOffset(o)])
}

func lastOffset(b *Bytes) uint32 {
	if len(b.Offsets) == 0 {
		return 0
	}
	return b.Offsets[len(b.Offsets)-1]
}
