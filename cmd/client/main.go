package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/clip-keeper/internal/adapter"
	"github.com/MKhiriev/clip-keeper/internal/client"
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/handler/message"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/tui"
	"github.com/MKhiriev/clip-keeper/internal/workers"
	"github.com/MKhiriev/clip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("clipkeeper-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		return err
	}
	defer storages.Close()

	var transport adapter.SyncTransport
	if cfg.Adapter.HTTPAddress != "" {
		transport, err = adapter.NewHTTPSyncTransport(cfg.Adapter, log.Component("transport"))
		if err != nil {
			log.Error().Err(err).Msg("create sync transport")
			return err
		}
	}

	services := service.NewClientServices(storages.KeyValue, transport, cfg, log)

	system := adapter.NewSystemClipboard()
	dispatcher := message.NewDispatcher(services, system, log.Component("messages"))
	watcher := workers.NewClipboardWatcher(system, dispatcher, cfg.Workers.ClipboardPollInterval, log.Component("watcher"))

	var ui client.UI
	if !cfg.App.Headless {
		ui = tui.New(dispatcher, build, log.Component("tui"))
	}

	app, err := client.NewApp(services, dispatcher, ui, workers.NewWorkers(watcher), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}

	// config flags were consumed by flag.Parse; the rest selects a command
	args := append([]string{os.Args[0]}, flag.Args()...)
	return client.NewCLI(app, build, os.Stdout).Run(ctx, args)
}
