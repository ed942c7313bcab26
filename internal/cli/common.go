package cli

//
// common.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
)

func wrap(
	cmdfunc func(ctx context.Context, clicmd *cli.Command, i do.Injector) error,
) func(ctx context.Context, clicmd *cli.Command) error {
	return func(ctx context.Context, clicmd *cli.Command) error {
		if err := initializeLogger(clicmd.String("log.level"), clicmd.String("log.format")); err != nil {
			return err
		}

		ctx = log.Logger.WithContext(ctx)

		dbconf := config.NewDBConfig(clicmd.String("db.driver"), clicmd.String("database"))
		if err := dbconf.Validate(); err != nil {
			return aerr.Wrapf(err, "invalid database configuration")
		}

		debugFlags := config.NewDebugFlags(clicmd.String("debug"))

		injector := createInjector(ctx, debugFlags)
		do.ProvideValue(injector, dbconf)

		defer shutdownInjector(ctx, injector)

		engine := do.MustInvoke[*db.Engine](injector)
		engine.LogSQL(debugFlags.HasFlag(config.DebugSQL))

		if err := engine.Open(ctx); err != nil {
			return aerr.Wrapf(err, "connect to database failed")
		}

		return cmdfunc(ctx, clicmd, injector)
	}
}
