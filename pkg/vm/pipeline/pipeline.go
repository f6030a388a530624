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

// Package pipeline evaluates a fixed list of function calls over a
// stream of batches on a worker pool.  Each batch is processed by one
// worker with its own process and memory pool, so batches flow through
// concurrently but nothing inside a batch is shared.  Completed batches
// arrive on the output channel in completion order, not input order.
package pipeline

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/vectorsql/vectorsql/pkg/common/mpool"
	"github.com/vectorsql/vectorsql/pkg/container/batch"
	"github.com/vectorsql/vectorsql/pkg/logutil"
	"github.com/vectorsql/vectorsql/pkg/sql/plan/function"
	"github.com/vectorsql/vectorsql/pkg/vm/process"
)

// Instruction is one function call of the pipeline: apply the named
// builtin to the argument columns and write the result column.
type Instruction struct {
	FuncName string
	Args     []int32
	Result   int32
}

type Pipeline struct {
	ins  []Instruction
	fns  []*function.Function
	pool *ants.Pool

	// memLimit caps each per-batch pool; zero means unbounded.
	memLimit int64
}

// New builds a pipeline running on parallelism workers.  Unknown
// function names or wrong arities are reported here, not at run time.
func New(parallelism int, memLimit int64, ins []Instruction) (*Pipeline, error) {
	fns := make([]*function.Function, len(ins))
	for i, in := range ins {
		f, err := function.Get(in.FuncName, len(in.Args))
		if err != nil {
			return nil, err
		}
		fns[i] = f
	}
	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		ins:      ins,
		fns:      fns,
		pool:     pool,
		memLimit: memLimit,
	}, nil
}

// Run drains in, evaluates every instruction on each batch and sends
// the batch to out.  It returns the first evaluation error, if any;
// later batches may still have been processed.  Run does not close out.
func (p *Pipeline) Run(ctx context.Context, in <-chan *batch.Batch, out chan<- *batch.Batch) error {
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
		})
	}

	issued := 0
	for bat := range in {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		default:
		}

		bat := bat
		issued++
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.evalBatch(ctx, bat); err != nil {
				logutil.Errorf("pipeline batch failed: %v", err)
				fail(err)
				return
			}
			select {
			case out <- bat:
			case <-ctx.Done():
				fail(ctx.Err())
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}

	wg.Wait()
	logutil.Debugf("pipeline drained, %d batches issued", issued)
	return firstErr
}

func (p *Pipeline) evalBatch(ctx context.Context, bat *batch.Batch) error {
	mp := p.newPool()
	proc := process.New(ctx, mp)
	rows := bat.RowCount()
	for i, in := range p.ins {
		if err := p.fns[i].Eval(bat, in.Args, in.Result, proc, rows); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) newPool() *mpool.MPool {
	if p.memLimit > 0 {
		return mpool.New("pipeline", p.memLimit)
	}
	return mpool.MustNew("pipeline")
}

// Close releases the worker pool.
func (p *Pipeline) Close() {
	p.pool.Release()
}
