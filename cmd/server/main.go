package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/handler"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/server"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultTokenDuration = 30 * 24 * time.Hour

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("clipkeeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.IssueTokenFor != "" {
		issueToken(cfg.App, log)
		return
	}

	fmt.Println(build.String())

	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	log.Info().Msg("server stopped")
}

// issueToken prints a bearer token for one account. Devices of the same
// user share the account, so one token can be copied to each of them.
func issueToken(cfg config.App, log *logger.Logger) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		log.Fatal().Err(config.ErrInvalidAppConfigs).Msg("token sign key and issuer are required to issue tokens")
	}

	token, err := service.NewAuthService(cfg, log).CreateToken(context.Background(), cfg.IssueTokenFor)
	if err != nil {
		log.Fatal().Err(err).Msg("error issuing token")
	}

	fmt.Println(token.SignedString)
}
