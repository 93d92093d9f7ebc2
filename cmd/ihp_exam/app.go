package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/config"
	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/jonathan/ihp-exam/internal/logger"
	"github.com/jonathan/ihp-exam/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every command: configuration, logger, store
// and the rehydrated session.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	store   storage.Store
	session *exam.Session
}

// openApp resolves configuration (flags over env over file over defaults)
// and opens the session.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Resolve(rootConfig, os.Getenv)
	if err != nil {
		return nil, err
	}
	if rootStore != "" {
		cfg.Store = rootStore
	}
	if rootStorePath != "" {
		cfg.StorePath = rootStorePath
	}
	if rootLogLevel != "" {
		cfg.LogLevel = rootLogLevel
	}
	if rootLogFormat != "" {
		cfg.LogFormat = rootLogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		// The form still works without persistence.
		log.Warn("store unavailable, answers will not be kept", zap.String("store", cfg.Store), zap.Error(err))
		store = storage.Unavailable{}
	}

	adapter := exam.RegisterSchemas(storage.NewAdapter(store, log))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		session: exam.Open(ctx, adapter, nil),
	}, nil
}

// Close releases the store and flushes the logger.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close store", zap.Error(err))
	}
	_ = a.log.Sync()
}

// lookupVariant resolves a --variant flag value.
func lookupVariant(name string) (*catalog.Variant, error) {
	tab, ok := catalog.ParseTab(name)
	if ok {
		if v, ok := catalog.Lookup(tab); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown variant %q (want %s or %s)", name, catalog.TabFagprove, catalog.TabKompetanse)
}
