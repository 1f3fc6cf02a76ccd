// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/adapter"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

var manualSource = json.RawMessage(`"manual"`)

// ClipboardWatcher polls the system clipboard and reports every change as
// an add-clipboard-item message.
type ClipboardWatcher struct {
	system   adapter.SystemClipboard
	handler  MessageHandler
	interval time.Duration

	last   string
	failed bool

	logger *logger.Logger
}

func NewClipboardWatcher(system adapter.SystemClipboard, handler MessageHandler, interval time.Duration, logger *logger.Logger) *ClipboardWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &ClipboardWatcher{
		system:   system,
		handler:  handler,
		interval: interval,
		logger:   logger,
	}
}

// Run polls until ctx is cancelled. Whatever is on the clipboard when Run
// starts is treated as already seen.
func (w *ClipboardWatcher) Run(ctx context.Context) {
	log := w.logger.With().Str("func", "*ClipboardWatcher.Run").Logger()
	log.Info().Dur("interval", w.interval).Msg("clipboard watcher started")

	if text, err := w.system.ReadAll(); err == nil {
		w.last = text
	}

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("clipboard watcher stopped")
			return
		case <-t.C:
			w.poll(ctx)
		}
	}
}

func (w *ClipboardWatcher) poll(ctx context.Context) {
	text, err := w.system.ReadAll()
	if err != nil {
		// one warning per outage
		if !w.failed {
			w.logger.Warn().Err(err).Str("func", "*ClipboardWatcher.poll").Msg("cannot read clipboard")
			w.failed = true
		}
		return
	}
	w.failed = false

	if text == "" || text == w.last {
		return
	}
	w.last = text

	resp := w.handler.Handle(ctx, models.Message{
		Action:  models.ActionAddClipboardItem,
		Content: text,
		Source:  manualSource,
	})
	if resp.Error != "" {
		w.logger.Warn().Str("func", "*ClipboardWatcher.poll").Str("error", resp.Error).Msg("clipboard capture rejected")
	}
}
