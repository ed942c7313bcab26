package service

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
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
	"gitlab.com/kabes/go-philo/internal/repository"
)

func prepareTests(t *testing.T) (context.Context, *do.RootScope) {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	ctx := log.Logger.WithContext(context.Background())

	i := do.New(Package, db.Package, model.Package, repository.Package)
	do.ProvideValue(i, config.NewSqliteConfig(filepath.Join(t.TempDir(), "test.db")))

	engine := do.MustInvoke[*db.Engine](i)
	if err := engine.Open(ctx); err != nil {
		t.Fatalf("open database error: %#+v", err)
	}

	t.Cleanup(func() { i.Shutdown() })

	return ctx, i
}
