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

package vector

import (
	"fmt"
	"unsafe"

	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/common/mpool"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
)

const (
	// FLAT is an ordinary materialized column.
	FLAT = iota
	// CONSTANT is a single value implicitly repeated for every row.
	CONSTANT
)

// Vector represents a column of a batch.
//
// Col holds *types.Bytes for string types and a []T slice for
// fixed-size types.  Nsp is the null bitmap; it is an independent
// object, a null row keeps a well-formed payload.  A CONSTANT vector
// stores a single physical row and a logical length; it must be
// materialized with ConstExpand before row-wise kernels touch it.
type Vector struct {
	Typ types.Type

	// Col is the payload column.
	Col any

	// Nsp is the null bitmap.
	Nsp *nulls.Nulls

	class  int
	length int
}

func New(typ types.Type) *Vector {
	return &Vector{
		Typ:   typ,
		class: FLAT,
		Nsp:   &nulls.Nulls{},
	}
}

// NewString returns a flat string vector with rows offset slots and an
// empty data buffer.
func NewString(typ types.Type, rows int) *Vector {
	v := New(typ)
	v.Col = types.NewBytes(rows)
	v.length = rows
	return v
}

// NewWithBytes wraps an already built Bytes column.
func NewWithBytes(typ types.Type, bs *types.Bytes, nsp *nulls.Nulls) *Vector {
	if nsp == nil {
		nsp = &nulls.Nulls{}
	}
	return &Vector{
		Typ:    typ,
		Col:    bs,
		Nsp:    nsp,
		class:  FLAT,
		length: bs.Rows(),
	}
}

// NewWithFixed wraps a fixed-size column.
func NewWithFixed[T types.FixedSizeT](typ types.Type, vals []T, nsp *nulls.Nulls) *Vector {
	if nsp == nil {
		nsp = &nulls.Nulls{}
	}
	return &Vector{
		Typ:    typ,
		Col:    vals,
		Nsp:    nsp,
		class:  FLAT,
		length: len(vals),
	}
}

// NewConstNull returns a scalar NULL of the given type.
func NewConstNull(typ types.Type, length int) *Vector {
	v := &Vector{
		Typ:    typ,
		Nsp:    nulls.Build(length, 0),
		class:  CONSTANT,
		length: length,
	}
	if typ.IsString() {
		bs := types.NewBytes(1)
		bs.AppendEmpty(0)
		v.Col = bs
	}
	return v
}

// NewConstBytes returns a scalar string value repeated length rows.
func NewConstBytes(typ types.Type, val []byte, length int) *Vector {
	bs := types.NewBytes(1)
	bs.AppendValue(0, val)
	return &Vector{
		Typ:    typ,
		Col:    bs,
		Nsp:    &nulls.Nulls{},
		class:  CONSTANT,
		length: length,
	}
}

// NewConstFixed returns a scalar fixed-size value repeated length rows.
func NewConstFixed[T types.FixedSizeT](typ types.Type, val T, length int) *Vector {
	return &Vector{
		Typ:    typ,
		Col:    []T{val},
		Nsp:    &nulls.Nulls{},
		class:  CONSTANT,
		length: length,
	}
}

// AllocString returns a flat string vector whose data buffer is drawn
// from mp with room for capBytes, so a bounded fill pass never
// reallocates.
func AllocString(typ types.Type, rows int, capBytes int, mp *mpool.MPool) (*Vector, error) {
	buf, err := mp.Alloc(capBytes)
	if err != nil {
		return nil, err
	}
	v := New(typ)
	v.Col = &types.Bytes{
		Data:    buf[:0],
		Offsets: make([]uint32, rows),
	}
	v.length = rows
	return v, nil
}

// AllocFixed returns a flat fixed-size vector of rows elements backed
// by mp.
func AllocFixed[T types.FixedSizeT](typ types.Type, rows int, mp *mpool.MPool) (*Vector, error) {
	if rows == 0 {
		return NewWithFixed(typ, []T{}, nil), nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	buf, err := mp.Alloc(rows * sz)
	if err != nil {
		return nil, err
	}
	col := unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), rows)
	return NewWithFixed(typ, col, nil), nil
}

func (v *Vector) IsConst() bool {
	return v.class == CONSTANT
}

// IsConstNull returns true if the vector is a scalar NULL.
func (v *Vector) IsConstNull() bool {
	return v.class == CONSTANT && nulls.Contains(v.Nsp, 0)
}

func (v *Vector) Length() int {
	return v.length
}

func (v *Vector) SetLength(n int) {
	v.length = n
}

func (v *Vector) GetNulls() *nulls.Nulls {
	return v.Nsp
}

func (v *Vector) GetType() types.Type {
	return v.Typ
}

// GetBytes returns row i's payload of a string vector.
func (v *Vector) GetBytes(i int) []byte {
	if v.IsConst() {
		i = 0
	}
	return v.Col.(*types.Bytes).Get(i)
}

func (v *Vector) GetString(i int) string {
	return string(v.GetBytes(i))
}

// SetCol publishes the payload column into the vector.
func SetCol(v *Vector, col any) {
	v.Col = col
	switch c := col.(type) {
	case *types.Bytes:
		v.length = c.Rows()
	}
}

// MustBytesCol returns the Bytes column of a string vector.
func MustBytesCol(v *Vector) *types.Bytes {
	return v.Col.(*types.Bytes)
}

// MustFixedCol returns the typed slice of a fixed-size vector.
func MustFixedCol[T types.FixedSizeT](v *Vector) []T {
	return v.Col.([]T)
}

// MustStrCol materializes the string values of a vector.  Null rows
// come out as empty strings; consult the null bitmap for nullity.
func MustStrCol(v *Vector) []string {
	bs := v.Col.(*types.Bytes)
	if v.IsConst() {
		return []string{string(bs.Get(0))}
	}
	vals := make([]string, bs.Rows())
	for i := range vals {
		vals[i] = string(bs.Get(i))
	}
	return vals
}

// ConstExpand materializes a CONSTANT vector into a fresh FLAT vector
// of the same logical length.  FLAT vectors are returned as-is.
func (v *Vector) ConstExpand(mp *mpool.MPool) (*Vector, error) {
	if v.class != CONSTANT {
		return v, nil
	}
	rows := v.length
	if v.IsConstNull() {
		return expandConstNull(v, rows, mp)
	}
	if v.Typ.IsString() {
		val := v.Col.(*types.Bytes).Get(0)
		rv, err := AllocString(v.Typ, rows, rows*(len(val)+1), mp)
		if err != nil {
			return nil, err
		}
		bs := MustBytesCol(rv)
		for i := 0; i < rows; i++ {
			bs.AppendValue(i, val)
		}
		return rv, nil
	}
	switch v.Typ.Oid {
	case types.T_bool:
		return expandConstFixed[bool](v, rows, mp)
	case types.T_int8:
		return expandConstFixed[int8](v, rows, mp)
	case types.T_int16:
		return expandConstFixed[int16](v, rows, mp)
	case types.T_int32:
		return expandConstFixed[int32](v, rows, mp)
	case types.T_int64:
		return expandConstFixed[int64](v, rows, mp)
	case types.T_uint8:
		return expandConstFixed[uint8](v, rows, mp)
	case types.T_uint16:
		return expandConstFixed[uint16](v, rows, mp)
	case types.T_uint32:
		return expandConstFixed[uint32](v, rows, mp)
	case types.T_uint64:
		return expandConstFixed[uint64](v, rows, mp)
	case types.T_float32:
		return expandConstFixed[float32](v, rows, mp)
	case types.T_float64:
		return expandConstFixed[float64](v, rows, mp)
	}
	return nil, moerr.NewInternal("const expand on unexpected type %s", v.Typ)
}

func expandConstNull(v *Vector, rows int, mp *mpool.MPool) (*Vector, error) {
	nsp := nulls.NewWithSize(rows)
	for i := 0; i < rows; i++ {
		nsp.Set(uint64(i))
	}
	if v.Typ.IsString() {
		rv, err := AllocString(v.Typ, rows, rows, mp)
		if err != nil {
			return nil, err
		}
		bs := MustBytesCol(rv)
		for i := 0; i < rows; i++ {
			bs.AppendEmpty(i)
		}
		rv.Nsp = nsp
		return rv, nil
	}
	switch v.Typ.Oid {
	case types.T_bool:
		return allocNullFixed[bool](v.Typ, rows, nsp, mp)
	case types.T_int8:
		return allocNullFixed[int8](v.Typ, rows, nsp, mp)
	case types.T_int16:
		return allocNullFixed[int16](v.Typ, rows, nsp, mp)
	case types.T_int32:
		return allocNullFixed[int32](v.Typ, rows, nsp, mp)
	case types.T_int64:
		return allocNullFixed[int64](v.Typ, rows, nsp, mp)
	case types.T_uint8:
		return allocNullFixed[uint8](v.Typ, rows, nsp, mp)
	case types.T_uint16:
		return allocNullFixed[uint16](v.Typ, rows, nsp, mp)
	case types.T_uint32:
		return allocNullFixed[uint32](v.Typ, rows, nsp, mp)
	case types.T_uint64:
		return allocNullFixed[uint64](v.Typ, rows, nsp, mp)
	case types.T_float32:
		return allocNullFixed[float32](v.Typ, rows, nsp, mp)
	case types.T_float64:
		return allocNullFixed[float64](v.Typ, rows, nsp, mp)
	}
	return nil, moerr.NewInternal("const null expand on unexpected type %s", v.Typ)
}

func expandConstFixed[T types.FixedSizeT](v *Vector, rows int, mp *mpool.MPool) (*Vector, error) {
	val := v.Col.([]T)[0]
	rv, err := AllocFixed[T](v.Typ, rows, mp)
	if err != nil {
		return nil, err
	}
	col := MustFixedCol[T](rv)
	for i := range col {
		col[i] = val
	}
	return rv, nil
}

func allocNullFixed[T types.FixedSizeT](typ types.Type, rows int, nsp *nulls.Nulls, mp *mpool.MPool) (*Vector, error) {
	rv, err := AllocFixed[T](typ, rows, mp)
	if err != nil {
		return nil, err
	}
	var zero T
	col := MustFixedCol[T](rv)
	for i := range col {
		col[i] = zero
	}
	rv.Nsp = nsp
	return rv, nil
}

// Dup returns a deep copy of a string vector, null bitmap included.
func (v *Vector) Dup(mp *mpool.MPool) (*Vector, error) {
	if !v.Typ.IsString() {
		return nil, moerr.NewNYI("dup of non-string vector")
	}
	src := v.Col.(*types.Bytes)
	rv := &Vector{
		Typ:    v.Typ,
		Col:    src.Clone(),
		Nsp:    v.Nsp.Clone(),
		class:  v.class,
		length: v.length,
	}
	return rv, nil
}

func (v *Vector) String() string {
	if v.Typ.IsString() {
		return fmt.Sprintf("%v-%s", MustStrCol(v), nulls.String(v.Nsp))
	}
	return fmt.Sprintf("%v-%s", v.Col, nulls.String(v.Nsp))
}
