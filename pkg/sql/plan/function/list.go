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
	"github.com/vectorsql/vectorsql/pkg/common/moerr"
	"github.com/vectorsql/vectorsql/pkg/container/types"
	"github.com/vectorsql/vectorsql/pkg/sql/plan/function/builtin/binary"
	"github.com/vectorsql/vectorsql/pkg/sql/plan/function/builtin/multi"
	"github.com/vectorsql/vectorsql/pkg/sql/plan/function/builtin/unary"
)

// function ids
const (
	SUBSTRING = iota
	LEFT
	RIGHT
	CONCAT
	CONCAT_WS
	REPEAT
	NULL_OR_EMPTY
)

func nullableString([]types.Type) (types.Type, bool) {
	return types.New(types.T_varchar), true
}

func plainString([]types.Type) (types.Type, bool) {
	return types.New(types.T_varchar), false
}

func plainBool([]types.Type) (types.Type, bool) {
	return types.New(types.T_bool), false
}

// functions is the builtin table.  It is closed: the set of functions
// is fixed at build time and looked up by name.
var functions = map[string]*Function{
	"substring": {
		ID:                   SUBSTRING,
		Name:                 "substring",
		MinArgs:              3,
		SkipDefaultNullCheck: true,
		ReturnTyp:            nullableString,
		Fn:                   multi.Substring,
	},
	"left": {
		ID:                   LEFT,
		Name:                 "left",
		MinArgs:              2,
		SkipDefaultNullCheck: true,
		ReturnTyp:            nullableString,
		Fn:                   binary.Left,
	},
	"right": {
		ID:                   RIGHT,
		Name:                 "right",
		MinArgs:              2,
		SkipDefaultNullCheck: true,
		ReturnTyp:            nullableString,
		Fn:                   binary.Right,
	},
	"concat": {
		ID:                   CONCAT,
		Name:                 "concat",
		MinArgs:              1,
		Variadic:             true,
		SkipDefaultNullCheck: true,
		ReturnTyp:            nullableString,
		Fn:                   multi.Concat,
	},
	"concat_ws": {
		ID:                   CONCAT_WS,
		Name:                 "concat_ws",
		MinArgs:              2,
		Variadic:             true,
		SkipDefaultNullCheck: true,
		ReturnTyp:            nullableString,
		Fn:                   multi.ConcatWs,
	},
	"repeat": {
		ID:        REPEAT,
		Name:      "repeat",
		MinArgs:   2,
		ReturnTyp: plainString,
		Fn:        multi.Repeat,
	},
	"null_or_empty": {
		ID:                   NULL_OR_EMPTY,
		Name:                 "null_or_empty",
		MinArgs:              1,
		SkipDefaultNullCheck: true,
		ReturnTyp:            plainBool,
		Fn:                   unary.NullOrEmpty,
	},
}

// Get looks a function up by name and argument count.
func Get(name string, argc int) (*Function, error) {
	f, ok := functions[name]
	if !ok {
		return nil, moerr.NewFunctionNotFound(name)
	}
	if f.Variadic {
		if argc < f.MinArgs {
			return nil, moerr.NewInvalidArg(name+" argument count", argc)
		}
	} else if argc != f.MinArgs {
		return nil, moerr.NewInvalidArg(name+" argument count", argc)
	}
	return f, nil
}
