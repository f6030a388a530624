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

package batch

import (
	"bytes"
	"fmt"

	"github.com/vectorsql/vectorsql/pkg/container/vector"
)

// Batch is one execution unit of rows: an ordered list of named
// columns addressed by position.  Function arguments and results are
// positions into Vecs.  A batch is built by the caller, columns are
// appended during expression evaluation, and the whole thing is
// discarded once consumed downstream.
type Batch struct {
	// Attrs is the column name list.
	Attrs []string
	// Vecs is the column data.
	Vecs []*vector.Vector
}

func New(attrs []string) *Batch {
	return &Batch{
		Attrs: attrs,
		Vecs:  make([]*vector.Vector, len(attrs)),
	}
}

func NewWithSize(n int) *Batch {
	return &Batch{
		Attrs: make([]string, n),
		Vecs:  make([]*vector.Vector, n),
	}
}

func (bat *Batch) VectorCount() int {
	return len(bat.Vecs)
}

func (bat *Batch) GetVector(pos int32) *vector.Vector {
	return bat.Vecs[pos]
}

func (bat *Batch) SetVector(pos int32, vec *vector.Vector) {
	bat.Vecs[pos] = vec
}

// Append adds a synthetic helper column and returns its position.
func (bat *Batch) Append(attr string, vec *vector.Vector) int32 {
	bat.Attrs = append(bat.Attrs, attr)
	bat.Vecs = append(bat.Vecs, vec)
	return int32(len(bat.Vecs) - 1)
}

// ShallowClone copies the batch header so columns can be swapped or
// appended without mutating the original.  The vectors themselves are
// shared.
func (bat *Batch) ShallowClone() *Batch {
	rbat := &Batch{
		Attrs: make([]string, len(bat.Attrs)),
		Vecs:  make([]*vector.Vector, len(bat.Vecs)),
	}
	copy(rbat.Attrs, bat.Attrs)
	copy(rbat.Vecs, bat.Vecs)
	return rbat
}

// RowCount returns the logical row count of the batch, taken from its
// first non-nil column.
func (bat *Batch) RowCount() int {
	for _, vec := range bat.Vecs {
		if vec != nil {
			return vec.Length()
		}
	}
	return 0
}

func (bat *Batch) String() string {
	var buf bytes.Buffer
	for i, vec := range bat.Vecs {
		if vec != nil {
			buf.WriteString(fmt.Sprintf("%v:\n%s\n", bat.Attrs[i], vec))
		}
	}
	return buf.String()
}
