// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/adapter"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/models"
)

type clientSyncService struct {
	kv           store.KeyValueStore
	clipboard    ClipboardService
	templates    TemplateService
	settings     SettingsService
	keys         KeyManager
	transport    adapter.SyncTransport
	entitlements Entitlements

	job      ClientSyncJob
	interval time.Duration

	// inFlight is the single-flight gate of SyncNow.
	inFlight atomic.Bool

	mu       sync.Mutex
	enabled  bool
	state    models.SyncState
	deviceID string
	lastSync *time.Time
	lastErr  error

	now    func() time.Time
	logger *logger.Logger
}

// ClientSyncDeps are the collaborators of the sync engine. Transport may
// be nil when no server is configured; sync then refuses to enable.
type ClientSyncDeps struct {
	KV           store.KeyValueStore
	Clipboard    ClipboardService
	Templates    TemplateService
	Settings     SettingsService
	Keys         KeyManager
	Transport    adapter.SyncTransport
	Entitlements Entitlements

	// Job schedules cycles; nil builds the default ticker job.
	Job ClientSyncJob
}

// NewClientSyncService builds the sync engine together with its scheduler.
// interval is the pause between scheduled cycles.
func NewClientSyncService(deps ClientSyncDeps, interval time.Duration, logger *logger.Logger) ClientSyncService {
	s := &clientSyncService{
		kv:           deps.KV,
		clipboard:    deps.Clipboard,
		templates:    deps.Templates,
		settings:     deps.Settings,
		keys:         deps.Keys,
		transport:    deps.Transport,
		entitlements: deps.Entitlements,
		interval:     interval,
		state:        models.SyncDisabled,
		now:          time.Now,
		logger:       logger,
	}
	s.job = deps.Job
	if s.job == nil {
		s.job = NewClientSyncJob(s, logger)
	}
	return s
}

func (s *clientSyncService) Init(ctx context.Context) error {
	log := s.logger.With().Str("func", "*clientSyncService.Init").Logger()

	var deviceID string
	found, err := loadJSON(ctx, s.kv, store.KeyDeviceID, &deviceID)
	if err != nil {
		return err
	}
	if !found || deviceID == "" {
		deviceID = utils.NewDeviceID()
		if err = saveJSON(ctx, s.kv, store.KeyDeviceID, deviceID); err != nil {
			return err
		}
		log.Info().Str("device_id", deviceID).Msg("generated device id")
	}

	var enabled bool
	if _, err = loadJSON(ctx, s.kv, store.KeyCloudSyncEnabled, &enabled); err != nil {
		return err
	}

	var lastSyncMs int64
	if _, err = loadJSON(ctx, s.kv, store.KeyLastSyncTime, &lastSyncMs); err != nil {
		return err
	}

	s.mu.Lock()
	s.deviceID = deviceID
	if lastSyncMs > 0 {
		t := time.UnixMilli(lastSyncMs).UTC()
		s.lastSync = &t
	}
	s.mu.Unlock()

	if s.transport != nil {
		s.transport.SetDeviceID(deviceID)
	}

	if !enabled {
		return nil
	}

	if err = s.ready(ctx); err != nil {
		log.Warn().Err(err).Msg("sync was enabled but cannot start, staying disabled")
		return nil
	}

	s.setEnabled(true)
	s.job.Start(context.WithoutCancel(ctx), s.interval)
	return nil
}

func (s *clientSyncService) Enable(ctx context.Context) (models.SyncReport, error) {
	if err := s.ready(ctx); err != nil {
		return models.SyncReport{}, err
	}
	if err := saveJSON(ctx, s.kv, store.KeyCloudSyncEnabled, true); err != nil {
		return models.SyncReport{}, err
	}
	s.setEnabled(true)

	report, err := s.SyncNow(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientSyncService.Enable").Msg("first sync failed, sync stays enabled")
	}

	s.job.Start(context.WithoutCancel(ctx), s.interval)
	return report, err
}

func (s *clientSyncService) Disable(ctx context.Context, clearRemote bool) error {
	s.job.Stop()

	if err := saveJSON(ctx, s.kv, store.KeyCloudSyncEnabled, false); err != nil {
		return err
	}
	s.setEnabled(false)

	if !clearRemote {
		return nil
	}
	if s.transport == nil {
		return ErrSyncNotConfigured
	}
	if err := s.transport.Clear(ctx); err != nil {
		return mapTransportError(err)
	}

	s.logger.Info().Str("func", "*clientSyncService.Disable").Msg("remote snapshots cleared")
	return nil
}

func (s *clientSyncService) SyncNow(ctx context.Context) (models.SyncReport, error) {
	log := s.logger.With().Str("func", "*clientSyncService.SyncNow").Logger()

	s.mu.Lock()
	enabled := s.enabled
	s.mu.Unlock()
	if !enabled {
		return models.SyncReport{}, ErrSyncDisabled
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer s.inFlight.Store(false)

	s.setState(models.SyncSyncing)

	report, err := s.cycle(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = models.SyncError
		s.lastErr = err
		s.mu.Unlock()

		log.Error().Err(err).Int("uploads", report.Uploads).Msg("sync failed")
		s.setState(models.SyncIdle)
		return report, err
	}

	now := s.now().UTC()
	if err = saveJSON(ctx, s.kv, store.KeyLastSyncTime, now.UnixMilli()); err != nil {
		log.Warn().Err(err).Msg("failed to persist last sync time")
	}

	s.mu.Lock()
	s.lastSync = &now
	s.lastErr = nil
	s.mu.Unlock()
	s.setState(models.SyncIdle)

	log.Info().
		Int("uploads", report.Uploads).
		Bool("merged", report.Merged).
		Int("items", report.Items).
		Msg("sync completed")
	return report, nil
}

// cycle runs the sync steps in order. The local snapshot is uploaded
// before anything is downloaded so a later failure cannot lose it.
func (s *clientSyncService) cycle(ctx context.Context) (models.SyncReport, error) {
	var report models.SyncReport

	local := s.buildSnapshot()
	report.Items = len(local.ClipboardHistory)
	report.Templates = len(local.Templates)

	if err := s.upload(ctx, local, StepEncrypt, StepUpload); err != nil {
		return report, err
	}
	report.Uploads = 1

	payload, err := s.transport.Download(ctx)
	if errors.Is(err, adapter.ErrRemoteSnapshotNotFound) {
		return report, nil
	}
	if err != nil {
		return report, &SyncError{Step: StepDownload, Err: mapTransportError(err)}
	}

	var remote models.SyncSnapshot
	if err = s.keys.Decrypt(ctx, payload, &remote); err != nil {
		return report, &SyncError{Step: StepDecrypt, Err: err}
	}

	merged := MergeSnapshots(local, remote)
	report.Merged = true

	if err = s.apply(ctx, merged); err != nil {
		return report, &SyncError{Step: StepPersist, Err: err}
	}

	// Upload what was actually stored: the history may have been trimmed to
	// capacity on the way in.
	merged.ClipboardHistory = s.clipboard.History()
	merged.Templates = s.templates.List()
	merged.Settings = s.settings.Stored()
	report.Items = len(merged.ClipboardHistory)
	report.Templates = len(merged.Templates)

	if err = s.upload(ctx, merged, StepReupload, StepReupload); err != nil {
		return report, err
	}
	report.Uploads = 2

	return report, nil
}

func (s *clientSyncService) upload(ctx context.Context, snapshot models.SyncSnapshot, encryptStep, uploadStep string) error {
	payload, err := s.keys.Encrypt(ctx, snapshot)
	if err != nil {
		return &SyncError{Step: encryptStep, Err: err}
	}
	if err = s.transport.Upload(ctx, payload, snapshot.LastModified); err != nil {
		return &SyncError{Step: uploadStep, Err: mapTransportError(err)}
	}
	return nil
}

func (s *clientSyncService) apply(ctx context.Context, snapshot models.SyncSnapshot) error {
	if err := s.clipboard.Replace(ctx, snapshot.ClipboardHistory); err != nil {
		return err
	}
	if err := s.templates.Replace(ctx, snapshot.Templates); err != nil {
		return err
	}
	return s.settings.Replace(ctx, snapshot.Settings)
}

func (s *clientSyncService) buildSnapshot() models.SyncSnapshot {
	s.mu.Lock()
	deviceID := s.deviceID
	s.mu.Unlock()

	history := s.clipboard.History()
	if history == nil {
		history = []models.ClipboardItem{}
	}
	templates := s.templates.List()
	if templates == nil {
		templates = []models.Template{}
	}

	return models.SyncSnapshot{
		ClipboardHistory: history,
		Templates:        templates,
		Settings:         s.settings.Stored(),
		LastModified:     s.now().UnixMilli(),
		DeviceID:         deviceID,
	}
}

func (s *clientSyncService) Status(ctx context.Context) models.SyncStatus {
	s.mu.Lock()
	status := models.SyncStatus{
		Enabled:     s.enabled,
		State:       s.state,
		InProgress:  s.inFlight.Load(),
		DeviceID:    s.deviceID,
		DeviceCount: 1,
	}
	if s.lastSync != nil {
		t := *s.lastSync
		status.LastSync = &t
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	s.mu.Unlock()

	if !status.Enabled || s.transport == nil {
		return status
	}

	count, err := s.transport.DeviceCount(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*clientSyncService.Status").Msg("device count unavailable")
		return status
	}
	if count > 0 {
		status.DeviceCount = count
	}
	return status
}

func (s *clientSyncService) Close() {
	s.job.Stop()
}

// ready checks everything Enable needs before touching any state.
func (s *clientSyncService) ready(ctx context.Context) error {
	if s.transport == nil {
		return ErrSyncNotConfigured
	}
	if !s.entitlements.Limits().CloudSync {
		return ErrSyncNotEntitled
	}
	return s.keys.EnsureKey(ctx)
}

func (s *clientSyncService) setEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = enabled
	if enabled {
		s.state = models.SyncIdle
	} else {
		s.state = models.SyncDisabled
	}
}

// setState moves between Idle, Syncing and Error. A disabled engine stays
// disabled even if a cycle finishes after Disable.
func (s *clientSyncService) setState(state models.SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		s.state = models.SyncDisabled
		return
	}
	s.state = state
}
