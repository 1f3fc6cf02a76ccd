// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

type settingsService struct {
	kv store.KeyValueStore

	mu sync.Mutex
	// stored holds only the keys the user has set; settings is stored over
	// the defaults.
	stored   models.Settings
	settings models.Settings

	// onChange runs after every successful write with the new settings.
	onChange func(ctx context.Context, settings models.Settings) error

	logger *logger.Logger
}

// NewSettingsService builds the preferences store. Keys missing from the
// stored document fall back to models.DefaultSettings.
func NewSettingsService(kv store.KeyValueStore, logger *logger.Logger) SettingsService {
	return newSettingsService(kv, logger)
}

func newSettingsService(kv store.KeyValueStore, logger *logger.Logger) *settingsService {
	return &settingsService{
		kv:       kv,
		stored:   models.Settings{},
		settings: models.DefaultSettings(),
		logger:   logger,
	}
}

func (s *settingsService) Load(ctx context.Context) error {
	var stored models.Settings
	if _, err := loadJSON(ctx, s.kv, store.KeySettings, &stored); err != nil {
		return err
	}

	s.mu.Lock()
	s.set(stored)
	settings := s.settings.Clone()
	s.mu.Unlock()

	return s.notify(ctx, settings)
}

func (s *settingsService) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

func (s *settingsService) Stored() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored.Clone()
}

func (s *settingsService) Update(ctx context.Context, patch models.Settings) (models.Settings, error) {
	s.mu.Lock()
	next := s.stored.Clone()
	for k, v := range patch {
		next[k] = v
	}
	if err := saveJSON(ctx, s.kv, store.KeySettings, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.set(next)
	settings := s.settings.Clone()
	s.mu.Unlock()

	return settings.Clone(), s.notify(ctx, settings)
}

// Replace stores settings as given. Defaults are not written back, so a
// key the user never set stays unset on every device.
func (s *settingsService) Replace(ctx context.Context, settings models.Settings) error {
	next := settings.Clone()
	if next == nil {
		next = models.Settings{}
	}

	s.mu.Lock()
	if err := saveJSON(ctx, s.kv, store.KeySettings, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.set(next)
	current := s.settings.Clone()
	s.mu.Unlock()

	return s.notify(ctx, current)
}

// set must be called with s.mu held.
func (s *settingsService) set(stored models.Settings) {
	if stored == nil {
		stored = models.Settings{}
	}
	s.stored = stored
	s.settings = withDefaults(stored)
}

func (s *settingsService) notify(ctx context.Context, settings models.Settings) error {
	if s.onChange == nil {
		return nil
	}
	return s.onChange(ctx, settings)
}

func withDefaults(settings models.Settings) models.Settings {
	out := models.DefaultSettings()
	for k, v := range settings {
		out[k] = v
	}
	return out
}
