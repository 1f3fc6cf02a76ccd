// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/clip-keeper/internal/category"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

const (
	// persistAttempts is the number of writes tried before giving up or
	// falling back to eviction.
	persistAttempts = 3

	// defaultPersistBackoff is the first retry delay; it doubles each time.
	defaultPersistBackoff = 100 * time.Millisecond

	// evictionPercent of the oldest items are dropped when the store is full.
	evictionPercent = 30
)

type clipboardService struct {
	kv store.KeyValueStore

	mu       sync.Mutex
	history  []models.ClipboardItem
	capacity int
	lastAdd  string
	lastID   int64

	now            func() time.Time
	persistBackoff time.Duration

	logger *logger.Logger
}

// NewClipboardService builds the history store over kv. capacity is the
// initial ceiling; see [ClipboardService.SetCapacity].
func NewClipboardService(kv store.KeyValueStore, capacity int, logger *logger.Logger) ClipboardService {
	return &clipboardService{
		kv:             kv,
		capacity:       capacity,
		now:            time.Now,
		persistBackoff: defaultPersistBackoff,
		logger:         logger,
	}
}

func (c *clipboardService) Load(ctx context.Context) error {
	values, err := c.kv.Get(ctx, store.KeyClipboardHistory)
	if err != nil {
		return fmt.Errorf("load clipboard history: %w", err)
	}

	var items []models.ClipboardItem
	if raw, ok := values[store.KeyClipboardHistory]; ok && len(raw) > 0 {
		if err = json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("decode clipboard history: %w", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = c.truncate(items)
	for _, item := range c.history {
		if item.ID > c.lastID {
			c.lastID = item.ID
		}
	}

	c.logger.Debug().Str("func", "*clipboardService.Load").Int("items", len(c.history)).Msg("clipboard history loaded")
	return nil
}

func (c *clipboardService) Add(ctx context.Context, content string, source models.Source) (AddResult, error) {
	if content == "" {
		return AddResult{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if content == c.lastAdd {
		return AddResult{}, nil
	}

	analysis, err := category.Analyze(content)
	if errors.Is(err, category.ErrEmptyContent) {
		return AddResult{}, nil
	}
	if err != nil {
		return AddResult{}, err
	}

	now := c.now()
	item := models.ClipboardItem{
		ID:        c.nextID(now),
		Content:   strings.TrimSpace(content),
		Type:      analysis.Type,
		Source:    source,
		Timestamp: now.UTC(),
		Tags:      analysis.Tags,
		Preview:   analysis.Preview,
	}

	prev := c.history
	c.history = c.truncate(append([]models.ClipboardItem{item}, c.history...))

	evicted, err := c.commit(ctx, prev)
	if err != nil {
		return AddResult{Evicted: evicted}, err
	}

	c.lastAdd = content
	return AddResult{Added: true, Item: item.Clone(), Evicted: evicted}, nil
}

func (c *clipboardService) History() []models.ClipboardItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CloneItems(c.history)
}

func (c *clipboardService) Get(id int64) (models.ClipboardItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.ClipboardItem{}, ErrItemNotFound
	}
	return c.history[i].Clone(), nil
}

func (c *clipboardService) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}
	prev := c.history
	c.history = append(c.history[:i:i], c.history[i+1:]...)

	_, err := c.commit(ctx, prev)
	return err
}

func (c *clipboardService) ToggleFavorite(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}
	prev := c.history
	c.history = models.CloneItems(c.history)
	c.history[i].Favorite = !c.history[i].Favorite

	_, err := c.commit(ctx, prev)
	return err
}

func (c *clipboardService) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.history
	c.history = nil

	_, err := c.commit(ctx, prev)
	return err
}

func (c *clipboardService) MarkUsed(ctx context.Context, id int64) (models.ClipboardItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.ClipboardItem{}, ErrItemNotFound
	}

	item := c.history[i]
	now := c.now().UTC()
	item.UsageCount++
	item.LastUsed = &now

	prev := c.history
	rest := append(c.history[:i:i], c.history[i+1:]...)
	c.history = append([]models.ClipboardItem{item}, rest...)

	if _, err := c.commit(ctx, prev); err != nil {
		return models.ClipboardItem{}, err
	}

	// the copy-back comes straight back through the clipboard watcher
	c.lastAdd = item.Content
	return item.Clone(), nil
}

func (c *clipboardService) Replace(ctx context.Context, items []models.ClipboardItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.history
	c.history = c.truncate(models.CloneItems(items))
	for _, item := range c.history {
		if item.ID > c.lastID {
			c.lastID = item.ID
		}
	}

	_, err := c.commit(ctx, prev)
	return err
}

func (c *clipboardService) SetCapacity(ctx context.Context, capacity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = capacity
	if capacity <= 0 || len(c.history) <= capacity {
		return nil
	}

	prev := c.history
	c.history = c.truncate(c.history)
	_, err := c.commit(ctx, prev)
	return err
}

func (c *clipboardService) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// commit persists the mutated history. When the write fails before any
// item was evicted the history is rolled back to prev, which is still what
// the store holds. A failure after eviction keeps the evicted history.
func (c *clipboardService) commit(ctx context.Context, prev []models.ClipboardItem) (int, error) {
	evicted, err := c.persist(ctx)
	if err != nil && evicted == 0 {
		c.history = prev
	}
	return evicted, err
}

// persist writes the history under c.mu. It makes up to persistAttempts
// writes with exponential backoff. A full store skips the remaining
// attempts: the oldest evictionPercent of items are dropped and the write
// is tried once more. It returns the number of evicted items.
func (c *clipboardService) persist(ctx context.Context) (int, error) {
	log := c.logger.With().Str("func", "*clipboardService.persist").Logger()

	err := c.write(ctx)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, store.ErrQuotaExceeded) {
		return 0, &PersistenceError{Err: err}
	}

	evicted := c.evictOldest()
	log.Warn().Int("evicted", evicted).Int("remaining", len(c.history)).Msg("storage quota exceeded, evicting oldest items")

	if err = c.writeOnce(ctx); err != nil {
		log.Error().Err(err).Int("evicted", evicted).Msg("clipboard history lost after eviction")
		return evicted, &PersistenceError{Evicted: evicted, Err: err}
	}
	return evicted, nil
}

func (c *clipboardService) write(ctx context.Context) error {
	backoff := retry.WithMaxRetries(persistAttempts-1, retry.NewExponential(c.persistBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.writeOnce(ctx)
		if err == nil || errors.Is(err, store.ErrQuotaExceeded) {
			return err
		}
		c.logger.Debug().Err(err).Str("func", "*clipboardService.write").Msg("persist failed, retrying")
		return retry.RetryableError(err)
	})
}

func (c *clipboardService) writeOnce(ctx context.Context) error {
	items := c.history
	if items == nil {
		items = []models.ClipboardItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode clipboard history: %w", err)
	}
	return c.kv.Set(ctx, map[string][]byte{store.KeyClipboardHistory: data})
}

// evictOldest drops the oldest evictionPercent of the history, at least one
// item when the history is not empty.
func (c *clipboardService) evictOldest() int {
	n := len(c.history) * evictionPercent / 100
	if n == 0 && len(c.history) > 0 {
		n = 1
	}
	c.history = c.history[:len(c.history)-n]
	return n
}

func (c *clipboardService) truncate(items []models.ClipboardItem) []models.ClipboardItem {
	if c.capacity > 0 && len(items) > c.capacity {
		return items[:c.capacity]
	}
	return items
}

func (c *clipboardService) indexOf(id int64) int {
	for i := range c.history {
		if c.history[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID returns the capture time in milliseconds, bumped past the last id
// so that two adds in the same millisecond stay distinct.
func (c *clipboardService) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}
