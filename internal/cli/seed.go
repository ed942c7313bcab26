package cli

//
// seed.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-philo/internal/service"
)

func newSeedCmd() *cli.Command {
	return &cli.Command{
		Name:   "seed",
		Usage:  "create database and default articles when database is empty",
		Action: wrap(seedCmd),
	}
}

//nolint:forbidigo
func seedCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	articlesSrv := do.MustInvoke[*service.ArticlesSrv](injector)

	created, err := articlesSrv.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap database error: %w", err)
	}

	if created {
		fmt.Printf("Database created; %d articles added\n", service.NumDefaultArticles)
	} else {
		fmt.Println("Database already initialized")
	}

	return nil
}
