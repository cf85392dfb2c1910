package cmd

import (
	"context"

	"github.com/kasuboski/nextup/config"
	mhttp "github.com/kasuboski/nextup/pkg/http"
	"github.com/kasuboski/nextup/pkg/logger"
	"github.com/kasuboski/nextup/pkg/plex"
	"github.com/kasuboski/nextup/pkg/sonarr"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// setup reads the configuration and builds the logger every command runs with
func setup() (config.Config, *zap.SugaredLogger, context.Context) {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configurations", zap.Error(err))
	}

	configured, err := logger.New(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		log.Warnw("invalid log configuration, using defaults", zap.Error(err))
	} else {
		log = configured
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", zap.Error(err))
	}

	return cfg, log, logger.WithCtx(context.Background(), log)
}

func newPlexClient(cfg config.Config, log *zap.SugaredLogger) *plex.Client {
	client, err := plex.New(mhttp.NewHeaderClient(mhttp.WithTimeout(cfg.HTTP.Timeout)), cfg.Plex.URI, cfg.Plex.Token)
	if err != nil {
		log.Fatalw("failed to create plex client", zap.Error(err))
	}
	return client
}

func newSonarrClient(cfg config.Config, log *zap.SugaredLogger) *sonarr.Client {
	client, err := sonarr.New(mhttp.NewHeaderClient(mhttp.WithTimeout(cfg.HTTP.Timeout)), cfg.Sonarr.URI, cfg.Sonarr.APIKey)
	if err != nil {
		log.Fatalw("failed to create sonarr client", zap.Error(err))
	}
	return client
}
