package db

//
// bootstrap.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-philo/internal/entity"
)

// InitDB create tables for all registered entities when the first registered
// table not exists. Return true when tables were created.
// Only the first table is checked; partially created schema is not repaired.
func InitDB(ctx context.Context, e *Engine, reg *entity.Registry) (bool, error) {
	logger := log.Ctx(ctx)

	tables := reg.Tables()
	if len(tables) == 0 {
		logger.Info().Msg("no entities registered; nothing to create")

		return false, nil
	}

	exists, err := e.HasTable(ctx, tables[0])
	if err != nil {
		return false, err
	}

	if exists {
		logger.Debug().Str("table", tables[0]).Msg("table exists; skipping schema creation")

		return false, nil
	}

	if err := e.CreateTables(ctx, reg.Models()...); err != nil {
		return false, err
	}

	logger.Info().Strs("tables", tables).Msg("database schema created")

	return true, nil
}

// DropDB drop tables of all registered entities in reverse registration order.
func DropDB(ctx context.Context, e *Engine, reg *entity.Registry) error {
	if err := e.DropTables(ctx, reg.Models()...); err != nil {
		return err
	}

	log.Ctx(ctx).Info().Strs("tables", reg.Tables()).Msg("database schema dropped")

	return nil
}
