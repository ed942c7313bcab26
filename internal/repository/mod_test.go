package repository

//
// mod_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
)

func prepareTests(t *testing.T) (context.Context, *db.Engine) {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	ctx := log.Logger.WithContext(context.Background())

	engine := db.NewEngine(config.NewSqliteConfig(filepath.Join(t.TempDir(), "test.db")))
	if err := engine.Open(ctx); err != nil {
		t.Fatalf("open database error: %#+v", err)
	}

	t.Cleanup(func() { _ = engine.Shutdown(ctx) })

	if _, err := db.InitDB(ctx, engine, model.NewRegistry()); err != nil {
		t.Fatalf("prepare db error: %#+v", err)
	}

	return ctx, engine
}
