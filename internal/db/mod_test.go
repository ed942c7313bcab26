package db

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
	"gitlab.com/kabes/go-philo/internal/entity"
)

type Post struct {
	entity.Base

	Title string `gorm:"size:50;not null"`
}

type Note struct {
	entity.Base

	PostID entity.ForeignKey `gorm:"many2one:Post;ondelete:CASCADE;not null"`
	Body   string            `gorm:"size:1000;not null"`
}

func prepareCtx(t *testing.T) context.Context {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	return log.Logger.WithContext(context.Background())
}

func prepareEngine(t *testing.T) (context.Context, *Engine) {
	t.Helper()

	ctx := prepareCtx(t)

	engine := NewEngine(config.NewSqliteConfig(filepath.Join(t.TempDir(), "test.db")))
	engine.LogSQL(true)

	if err := engine.Open(ctx); err != nil {
		t.Fatalf("open database error: %#+v", err)
	}

	t.Cleanup(func() { _ = engine.Shutdown(ctx) })

	return ctx, engine
}

func prepareSchema(ctx context.Context, t *testing.T, engine *Engine) {
	t.Helper()

	if err := engine.CreateTables(ctx, &Post{}, &Note{}); err != nil {
		t.Fatalf("create tables error: %#+v", err)
	}
}

func countPosts(ctx context.Context, t *testing.T, engine *Engine) int64 {
	t.Helper()

	cnt, err := InTransactionR(ctx, engine, func(ctx context.Context) (int64, error) {
		var cnt int64
		err := MustSession(ctx).Model(&Post{}).Count(&cnt).Error

		return cnt, err
	})
	if err != nil {
		t.Fatalf("count posts error: %#+v", err)
	}

	return cnt
}
