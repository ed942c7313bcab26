package repository

//
// stats.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-philo/internal/common"
	"gitlab.com/kabes/go-philo/internal/db"
)

// Stats query database directly by sqlx.
type Stats struct{}

// CountRows return number of rows in each of tables. Table names must come from entity registry.
func (Stats) CountRows(ctx context.Context, conn db.Queryer, tables []string) (map[string]int64, error) {
	logger := log.Ctx(ctx)
	res := make(map[string]int64, len(tables))

	for _, table := range tables {
		var cnt int64

		// table name is not user input
		err := conn.GetContext(ctx, &cnt, "SELECT count(*) FROM "+table) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("count rows in %q error: %w", table, err)
		}

		logger.Debug().Str(common.LogKeyTable, table).Int64("rows", cnt).Msg("rows counted")

		res[table] = cnt
	}

	return res, nil
}
