package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/registrar/internal/catalog"
	"github.com/lehigh-university-libraries/registrar/internal/config"
	"github.com/lehigh-university-libraries/registrar/internal/selection"
	"github.com/lehigh-university-libraries/registrar/internal/storage"
)

// session is one command invocation: a catalog, the device store and an
// engine restored from the saved draft.
type session struct {
	engine *selection.Engine
	store  storage.Store
	logger *slog.Logger
}

func openSession(opts *globalOptions) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.catalogPath != "" {
		cfg.Catalog = opts.catalogPath
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}

	level := cfg.Level()
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cat := catalog.Default()
	if cfg.Catalog != "" {
		cat, err = catalog.NewLoader(cfg.Catalog).Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	store, err := storage.OpenBadger(storage.BadgerConfig{
		Path:       cfg.StorePath(),
		SyncWrites: true,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	engine, err := selection.New(cat, store, cfg.Selection(), selection.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	if err := engine.Restore(); err != nil {
		switch {
		case errors.Is(err, selection.ErrMalformedDraft):
			logger.Warn("Saved draft is unreadable, starting with an empty selection", "err", err)
		default:
			logger.Warn("Unable to restore draft", "err", err)
		}
	}

	return &session{engine: engine, store: store, logger: logger}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Error("Unable to close store", "err", err)
	}
}
