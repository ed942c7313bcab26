package db

//
// gormlog.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger pass gorm logs to zerolog logger from context.
type gormLogger struct {
	level  logger.LogLevel
	logSQL bool
}

func newGormLogger(logSQL bool) *gormLogger {
	return &gormLogger{level: logger.Warn, logSQL: logSQL}
}

func (g *gormLogger) LogMode(level logger.LogLevel) logger.Interface { //nolint:ireturn
	n := *g
	n.level = level

	return &n
}

func (g *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if g.level >= logger.Info {
		log.Ctx(ctx).Info().Str("mod", "orm").Msgf(msg, data...)
	}
}

func (g *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if g.level >= logger.Warn {
		log.Ctx(ctx).Warn().Str("mod", "orm").Msgf(msg, data...)
	}
}

func (g *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if g.level >= logger.Error {
		log.Ctx(ctx).Error().Str("mod", "orm").Msgf(msg, data...)
	}
}

func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	llog := log.Ctx(ctx)

	switch {
	case err != nil && g.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		llog.Error().Err(err).Str("mod", "orm").Str("sql", sql).Int64("rows", rows).
			Dur("duration", elapsed).Msg("query failed")
	case elapsed > slowQueryThreshold && g.level >= logger.Warn:
		sql, rows := fc()
		llog.Warn().Str("mod", "orm").Str("sql", sql).Int64("rows", rows).
			Dur("duration", elapsed).Msg("slow query")
	case g.logSQL:
		sql, rows := fc()
		llog.Debug().Str("mod", "orm").Str("sql", sql).Int64("rows", rows).
			Dur("duration", elapsed).Msg("query")
	}
}
