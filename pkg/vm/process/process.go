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

// Package process carries the per-invocation execution context.  Each
// batch evaluation owns one Process and therefore one memory pool;
// nothing in it is shared across concurrent invocations.
package process

import (
	"context"

	"github.com/vectorsql/vectorsql/pkg/common/mpool"
)

type Process struct {
	Ctx context.Context

	mp *mpool.MPool
}

func New(ctx context.Context, mp *mpool.MPool) *Process {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Process{
		Ctx: ctx,
		mp:  mp,
	}
}

func (proc *Process) Mp() *mpool.MPool {
	return proc.mp
}
