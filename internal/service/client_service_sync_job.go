// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// syncer is the part of ClientSyncService the scheduler drives.
type syncer interface {
	SyncNow(ctx context.Context) (models.SyncReport, error)
}

type clientSyncJob struct {
	syncer syncer

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a scheduler calling s.SyncNow. The job is idle
// until Start is called.
func NewClientSyncJob(s syncer, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncer: s, logger: logger}
}

// Start stops any previously running loop and launches a new one. The
// first cycle runs one interval after Start, and every following cycle one
// interval after the previous cycle returned, so cycles never overlap.
// A non-positive interval falls back to five minutes.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.running = true
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		t := time.NewTimer(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, err := j.syncer.SyncNow(jobCtx)
				if err != nil && !errors.Is(err, ErrSyncInProgress) && !errors.Is(err, context.Canceled) {
					j.logger.Debug().Err(err).Str("func", "*clientSyncJob.Start").Msg("scheduled sync failed")
				}
				t.Reset(interval)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. It is a no-op when the
// job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.running = false
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
