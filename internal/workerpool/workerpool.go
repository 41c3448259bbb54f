/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package workerpool fans a fixed number of goroutines out over a fixed
// number of tasks and waits for all of them to finish. Unlike a long-lived
// server-side goroutine pool, a benchmark run has a known task count and a
// bounded lifetime, so there is no idle-worker aging or task queue here:
// just N workers pulling from a shared counter until the work is done.
package workerpool

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Run starts workers goroutines, each repeatedly claiming the next task
// index in [0, tasks) and calling f with it, until every index has been
// claimed. It blocks until all workers finish. A panic inside f is
// recovered and logged; it does not stop the other workers.
//
// f also receives workerID, the index in [0, workers) of the goroutine
// running it. Unlike taskIndex, which is handed out dynamically off a
// shared counter and gives no affinity guarantee, workerID is fixed for
// the lifetime of one goroutine: callers that need per-goroutine state
// (one arena per goroutine, say) must key it by workerID, never by
// taskIndex, since two different goroutines can otherwise race to claim
// tasks that would land on the same taskIndex-derived key.
func Run(workers int, tasks int, f func(taskIndex, workerID int)) {
	if workers < 1 {
		workers = 1
	}
	if tasks <= 0 {
		return
	}
	if workers > tasks {
		workers = tasks
	}

	var next int64 = -1
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for {
				i := atomic.AddInt64(&next, 1)
				if i >= int64(tasks) {
					return
				}
				runTask(f, int(i), w)
			}
		}()
	}
	wg.Wait()
}

func runTask(f func(taskIndex, workerID int), i, w int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("workerpool: task %d (worker %d) panicked: %v\n%s", i, w, r, debug.Stack())
		}
	}()
	f(i, w)
}
