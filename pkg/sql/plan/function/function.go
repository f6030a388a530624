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

// Package function defines the row-batch function contract and the
// builtin registry.
//
// A Function is a batch-apply operation: it reads its argument columns
// by position from a batch and writes the result column into the
// designated slot.  The set of functions is fixed at build time and
// bound into a table at init; anything satisfying the contract is a
// valid function, there is no inheritance relationship.
package function

import (
	"fmt"

	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/container/nulls"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// FuncExec is the execution entry point of a function.  It must write
// a column of exactly length rows into bat.Vecs[result], or return an
// error and leave the slot untouched.
type FuncExec func(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error

// Function is one builtin of the library.
type Function struct {
	ID   int32
	Name string

	// MinArgs is the exact arity, or the minimum when Variadic.
	MinArgs  int
	Variadic bool

	// SkipDefaultNullCheck opts out of the default null handling: the
	// function fuses argument null bitmaps itself (e.g. concat_ws,
	// which skips null arguments instead of propagating them).
	SkipDefaultNullCheck bool

	// SkipDefaultConstCheck opts out of the default constant
	// materialization.  None of the string builtins do: they all want
	// fully materialized argument columns.
	SkipDefaultConstCheck bool

	// ReturnTyp derives the result type from the declared argument
	// types only, never from data.  nullable reports whether the
	// result column may carry a null bitmap of its own.
	ReturnTyp func(args []types.Type) (typ types.Type, nullable bool)

	Fn FuncExec
}

// Eval applies the function to one batch.
//
// Unless opted out, constant argument columns are first materialized
// into a shallow working copy of the batch, so argument columns are
// never mutated and synthetic helper columns functions append stay
// local.  Unless opted out, every argument's null bitmap is OR-ed into
// the result's bitmap after a successful call.  The destination slot
// of bat is written only once the full result is computed.
func (f *Function) Eval(bat *batch.Batch, args []int32, result int32, proc *process.Process, length int) error {
	if f.Variadic {
		if len(args) < f.MinArgs {
			panic(fmt.Sprintf("%s called with %d arguments, wants at least %d", f.Name, len(args), f.MinArgs))
		}
	} else if len(args) != f.MinArgs {
		panic(fmt.Sprintf("%s called with %d arguments, wants %d", f.Name, len(args), f.MinArgs))
	}

	wb := bat.ShallowClone()
	if !f.SkipDefaultConstCheck {
		for _, pos := range args {
			vec := wb.Vecs[pos]
			if vec.IsConst() {
				fv, err := vec.ConstExpand(proc.Mp())
				if err != nil {
					return err
				}
				wb.Vecs[pos] = fv
			}
		}
	}

	if err := f.Fn(wb, args, result, proc, length); err != nil {
		return err
	}

	rvec := wb.Vecs[result]
	if !f.SkipDefaultNullCheck {
		for _, pos := range args {
			nulls.Set(rvec.Nsp, wb.Vecs[pos].Nsp)
		}
	}
	bat.Vecs[result] = rvec
	return nil
}
