// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	out := &Workers{}
	for _, w := range ws {
		if w != nil {
			out.workers = append(out.workers, w)
		}
	}
	return out
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
