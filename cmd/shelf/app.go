package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/shelf/internal/achievement"
	"github.com/mmcdole/shelf/internal/adapter"
	"github.com/mmcdole/shelf/internal/collection"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/mmcdole/shelf/internal/theme"
)

// app holds the wired components shared by every command
type app struct {
	cfg       *adapter.Config
	logger    *slog.Logger
	logCloser io.Closer

	kv        *store.KVStore
	store     *collection.Store
	announcer *achievement.Announcer
	tracker   *achievement.Tracker
	theme     *theme.Preference
}

// openApp opens storage and wires the collection to the achievement tracker.
// The unlocked sets are reconciled with the stored collection before returning.
func openApp(cfg *adapter.Config, logger *slog.Logger) (*app, error) {
	if logger == nil {
		logger = adapter.NullLogger()
	}

	kv, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if kv.Path() == "" {
		logger.Info("running with memory-only storage")
	}

	announcer := achievement.NewAnnouncer(cfg.AnnounceDuration(), logger)
	collectionStore := collection.NewStore(kv, logger)
	tracker := achievement.NewTracker(kv, announcer, logger)
	collectionStore.Observe(tracker)

	if err := tracker.Sync(collectionStore.Snapshot()); err != nil {
		// Not fatal; the sets are recomputed on the next change
		logger.Warn("failed to persist achievements at startup", "error", err)
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		kv:        kv,
		store:     collectionStore,
		announcer: announcer,
		tracker:   tracker,
		theme:     theme.Load(kv, logger),
	}, nil
}

// Close stops timers and closes storage and the log file
func (a *app) Close() error {
	a.announcer.Stop()
	err := a.kv.Close()
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	return err
}
