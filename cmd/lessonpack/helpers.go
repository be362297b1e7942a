package main

import (
	"fmt"
	"log/slog"

	"github.com/hsmedia/lessonpack/internal/config"
	"github.com/hsmedia/lessonpack/internal/database"
	"github.com/hsmedia/lessonpack/internal/history"
	"github.com/hsmedia/lessonpack/internal/media"
	"github.com/hsmedia/lessonpack/internal/media/pexels"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newMediaResolver wires the image and video collaborators. Without a
// Pexels API key every image slot falls back to a generated placeholder.
func newMediaResolver(cfg *config.Config) *media.Resolver {
	var images media.ImageFinder
	if cfg.Pexels.APIKey != "" {
		images = pexels.NewClient(cfg.Pexels.APIKey, cfg.Pexels.BaseURL, cfg.Pexels.RetryAttempts)
	} else {
		slog.Debug("PEXELS_API_KEY is not set, image slots use generated placeholders")
	}
	return media.NewResolver(images, media.NewCurated())
}

// newRunRepository opens the history database. The returned close function
// must be called once the run is over.
func newRunRepository(cfg *config.Config) (history.RunRepository, func(), error) {
	db, err := database.Open(cfg.HistoryDatabase())
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	repository := history.NewDBRunRepository(db)
	return repository, func() { _ = db.Close() }, nil
}
