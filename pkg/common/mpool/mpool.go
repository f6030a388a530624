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

// Package mpool provides the memory pool column buffers are drawn from.
// A pool does accounting, not sub-allocation: every Alloc is counted
// against the pool's cap and must be paired with a Free.  Kernels
// reserve their result buffers up front, so a fill pass never grows a
// buffer behind the pool's back.
package mpool

import (
	"sync/atomic"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
)

// NoCap disables the capacity check.
const NoCap int64 = -1

type MPool struct {
	name string
	cap  int64

	inUse int64
	peak  int64
}

func New(name string, cap int64) *MPool {
	return &MPool{
		name: name,
		cap:  cap,
	}
}

// MustNew is New with no cap, for callers that cannot fail.
func MustNew(name string) *MPool {
	return New(name, NoCap)
}

func (m *MPool) Name() string {
	return m.name
}

// InUse returns the number of currently allocated bytes.
func (m *MPool) InUse() int64 {
	return atomic.LoadInt64(&m.inUse)
}

// Peak returns the high-water mark of allocated bytes.
func (m *MPool) Peak() int64 {
	return atomic.LoadInt64(&m.peak)
}

func (m *MPool) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, moerr.NewInvalidArg("alloc size", size)
	}
	if size == 0 {
		return nil, nil
	}
	now := atomic.AddInt64(&m.inUse, int64(size))
	if m.cap != NoCap && now > m.cap {
		atomic.AddInt64(&m.inUse, -int64(size))
		return nil, moerr.NewOOM(m.name, int64(size), m.cap)
	}
	for {
		peak := atomic.LoadInt64(&m.peak)
		if now <= peak || atomic.CompareAndSwapInt64(&m.peak, peak, now) {
			break
		}
	}
	return make([]byte, size), nil
}

func (m *MPool) Free(data []byte) {
	if data == nil {
		return
	}
	atomic.AddInt64(&m.inUse, -int64(cap(data)))
}

// Grow reallocates data to at least size bytes, keeping its contents.
// The old buffer is released from the accounting.
func (m *MPool) Grow(data []byte, size int) ([]byte, error) {
	if size <= cap(data) {
		return data[:size], nil
	}
	buf, err := m.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(buf, data)
	m.Free(data)
	return buf, nil
}
