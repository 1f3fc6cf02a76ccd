package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/clip-keeper/internal/handler/message"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/service"
)

type App struct {
	services   *service.ClientServices
	dispatcher *message.Dispatcher

	// ui is nil in headless mode.
	ui      UI
	workers BackgroundWorkers

	loadOnce sync.Once
	loadErr  error

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, dispatcher *message.Dispatcher, ui UI, workers BackgroundWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || dispatcher == nil {
		return nil, ErrNoServices
	}
	return &App{
		services:   services,
		dispatcher: dispatcher,
		ui:         ui,
		workers:    workers,
		logger:     logger,
	}, nil
}

// Load reads the persisted state once. Later calls return the first result.
func (a *App) Load(ctx context.Context) error {
	a.loadOnce.Do(func() {
		if err := a.services.Load(ctx); err != nil {
			a.loadErr = fmt.Errorf("load client state: %w", err)
		}
	})
	return a.loadErr
}

// Run starts the background workers and blocks in the UI, or until ctx is
// cancelled when there is no UI.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With().Str("func", "*App.Run").Logger()

	if err := a.Load(ctx); err != nil {
		return err
	}

	workersCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if a.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.workers.Run(workersCtx)
		}()
	}
	defer func() {
		cancel()
		wg.Wait()
	}()

	if a.ui == nil {
		log.Info().Msg("running headless")
		<-ctx.Done()
		return nil
	}

	log.Info().Msg("starting ui")
	return a.ui.Run(ctx)
}

// Close stops background sync.
func (a *App) Close() {
	a.services.Close()
}
