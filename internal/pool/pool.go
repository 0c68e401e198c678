// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package pool implements the process-wide worker pool the chunked
// SIMD skeletons (spec.md §4.2) dispatch chunks onto. It is the same
// channel-of-tasks shape as plan.pool/plan.mkpool in the teacher repo,
// changed from a pool-per-query-tree lifecycle to a single
// lazily-initialized, process-wide instance per spec.md §5: "a
// process-wide worker pool of OS threads... initialized at first use,
// torn down at process exit."
package pool

import (
	"runtime"
	"sync"
)

type task struct {
	i int
	f func(int)
}

// Pool is a fixed-size work queue for a goroutine pool.
type Pool chan task

func newPool(parallel int) Pool {
	if parallel <= 0 {
		panic("pool: size out of range")
	}
	ch := make(Pool, parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			for t := range ch {
				t.f(t.i)
			}
		}()
	}
	return ch
}

// Do enqueues f to run with argument i on the pool, blocking only while
// the queue (capacity: one slot per worker) is full. It does not wait
// for f to finish; callers
// coordinate completion themselves (see Run).
func (p Pool) Do(i int, f func(int)) {
	p <- task{i, f}
}

var (
	once    sync.Once
	shared  Pool
)

// Shared returns the process-wide worker pool, sized to
// runtime.GOMAXPROCS(0), initializing it on first use.
func Shared() Pool {
	once.Do(func() {
		n := runtime.GOMAXPROCS(0)
		if n < 1 {
			n = 1
		}
		shared = newPool(n)
	})
	return shared
}

// Run dispatches n independent tasks (indices 0..n-1) onto the shared
// pool and blocks until every one of them has completed. Scheduling
// order across tasks is unspecified; this is the "fork chunks -> join
// all" primitive every execution skeleton is built on (spec.md §9).
func Run(n int, f func(i int)) {
	if n <= 0 {
		return
	}
	p := Shared()
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		p.Do(i, func(i int) {
			defer wg.Done()
			f(i)
		})
	}
	wg.Wait()
}
