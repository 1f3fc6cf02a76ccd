package message

import (
	"bytes"
	"context"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/adapter"
	"github.com/MKhiriev/clip-keeper/internal/export"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/models"
)

type actionFunc func(ctx context.Context, msg models.Message) (models.MessageResponse, error)

// Dispatcher routes messages to the client services.
type Dispatcher struct {
	services *service.ClientServices

	// system is nil when the process has no desktop clipboard.
	system adapter.SystemClipboard

	actions map[string]actionFunc

	now    func() time.Time
	logger *logger.Logger
}

// NewDispatcher builds a dispatcher over services. system may be nil, in
// which case copy-item fails with ErrNoSystemClipboard.
func NewDispatcher(services *service.ClientServices, system adapter.SystemClipboard, logger *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		services: services,
		system:   system,
		now:      time.Now,
		logger:   logger,
	}

	d.actions = map[string]actionFunc{
		models.ActionAddClipboardItem:    d.addClipboardItem,
		models.ActionGetClipboardHistory: d.getClipboardHistory,
		models.ActionDeleteClipboardItem: d.deleteClipboardItem,
		models.ActionToggleFavorite:      d.toggleFavorite,
		models.ActionClearHistory:        d.clearHistory,
		models.ActionCopyItem:            d.copyItem,
		models.ActionGetSyncStatus:       d.getSyncStatus,
		models.ActionSyncNow:             d.syncNow,
		models.ActionExportHistory:       d.exportHistory,
	}
	return d
}

// Handle runs msg and always returns a response.
func (d *Dispatcher) Handle(ctx context.Context, msg models.Message) models.MessageResponse {
	log := d.logger.With().Str("func", "*Dispatcher.Handle").Str("action", msg.Action).Logger()

	action, ok := d.actions[msg.Action]
	if !ok {
		log.Warn().Msg("unknown action")
		return models.MessageResponse{Error: ErrUnknownAction.Error()}
	}

	resp, err := action(ctx, msg)
	if err != nil {
		log.Warn().Err(err).Int64("id", msg.ID).Msg("action failed")
		return models.MessageResponse{Error: err.Error()}
	}

	log.Debug().Msg("action handled")
	return resp
}

func (d *Dispatcher) addClipboardItem(ctx context.Context, msg models.Message) (models.MessageResponse, error) {
	res, err := d.services.Clipboard.Add(ctx, msg.Content, models.ParseSource(msg.Source))
	if err != nil {
		return models.MessageResponse{}, err
	}
	if res.Evicted > 0 {
		d.logger.Info().Str("func", "*Dispatcher.addClipboardItem").Int("evicted", res.Evicted).Msg("storage full, oldest items dropped")
	}
	return models.MessageResponse{Success: true}, nil
}

func (d *Dispatcher) getClipboardHistory(_ context.Context, _ models.Message) (models.MessageResponse, error) {
	history := d.services.Clipboard.History()
	if history == nil {
		history = []models.ClipboardItem{}
	}
	return models.MessageResponse{History: history}, nil
}

func (d *Dispatcher) deleteClipboardItem(ctx context.Context, msg models.Message) (models.MessageResponse, error) {
	if msg.ID == 0 {
		return models.MessageResponse{}, ErrMissingItemID
	}
	if err := d.services.Clipboard.Delete(ctx, msg.ID); err != nil {
		return models.MessageResponse{}, err
	}
	return models.MessageResponse{Success: true}, nil
}

func (d *Dispatcher) toggleFavorite(ctx context.Context, msg models.Message) (models.MessageResponse, error) {
	if msg.ID == 0 {
		return models.MessageResponse{}, ErrMissingItemID
	}
	if err := d.services.Clipboard.ToggleFavorite(ctx, msg.ID); err != nil {
		return models.MessageResponse{}, err
	}
	return models.MessageResponse{Success: true}, nil
}

func (d *Dispatcher) clearHistory(ctx context.Context, _ models.Message) (models.MessageResponse, error) {
	if err := d.services.Clipboard.Clear(ctx); err != nil {
		return models.MessageResponse{}, err
	}
	return models.MessageResponse{Success: true}, nil
}

// copyItem puts an entry back on the system clipboard and records the use.
func (d *Dispatcher) copyItem(ctx context.Context, msg models.Message) (models.MessageResponse, error) {
	if msg.ID == 0 {
		return models.MessageResponse{}, ErrMissingItemID
	}
	if d.system == nil {
		return models.MessageResponse{}, ErrNoSystemClipboard
	}

	item, err := d.services.Clipboard.Get(msg.ID)
	if err != nil {
		return models.MessageResponse{}, err
	}
	if err = d.system.WriteAll(item.Content); err != nil {
		return models.MessageResponse{}, err
	}
	if _, err = d.services.Clipboard.MarkUsed(ctx, msg.ID); err != nil {
		return models.MessageResponse{}, err
	}
	return models.MessageResponse{Success: true}, nil
}

func (d *Dispatcher) getSyncStatus(ctx context.Context, _ models.Message) (models.MessageResponse, error) {
	status := d.services.Sync.Status(ctx)
	return models.MessageResponse{Success: true, Status: &status}, nil
}

func (d *Dispatcher) syncNow(ctx context.Context, _ models.Message) (models.MessageResponse, error) {
	report, err := d.services.Sync.SyncNow(ctx)
	if err != nil {
		return models.MessageResponse{}, err
	}
	return models.MessageResponse{Success: true, Report: &report}, nil
}

// exportHistory renders the history and settings in the requested format
// and returns the document text in Data.
func (d *Dispatcher) exportHistory(_ context.Context, msg models.Message) (models.MessageResponse, error) {
	format, err := export.ParseFormat(msg.Format)
	if err != nil {
		return models.MessageResponse{}, err
	}

	doc := export.Document{
		History:    d.services.Clipboard.History(),
		Settings:   d.services.Settings.Get(),
		ExportedAt: d.now(),
	}

	var buf bytes.Buffer
	if err = export.Write(&buf, format, doc); err != nil {
		return models.MessageResponse{}, err
	}
	return models.MessageResponse{Success: true, Data: buf.String()}, nil
}
