package cli

//
// database.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/service"
)

func newInitDBCmd() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "create tables for all entities",
		Action: wrap(initDBCmd),
	}
}

//nolint:forbidigo
func initDBCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	schemaSrv := do.MustInvoke[*service.SchemaSrv](injector)

	created, err := schemaSrv.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("init database error: %w", err)
	}

	if created {
		fmt.Println("Database created")
	} else {
		fmt.Println("Database already initialized")
	}

	return nil
}

func newDropDBCmd() *cli.Command {
	return &cli.Command{
		Name:  "drop",
		Usage: "drop tables of all entities",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Usage: "confirm dropping all data", Aliases: []string{"y"}},
		},
		Action: wrap(dropDBCmd),
	}
}

//nolint:forbidigo
func dropDBCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	if !clicmd.Bool("yes") {
		return aerr.ErrValidation.WithUserMsg("dropping database require --yes flag")
	}

	schemaSrv := do.MustInvoke[*service.SchemaSrv](injector)

	if err := schemaSrv.DropDB(ctx); err != nil {
		return fmt.Errorf("drop database error: %w", err)
	}

	fmt.Println("Database dropped")

	return nil
}

func newStatusDBCmd() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "show tables and number of rows",
		Action: wrap(statusDBCmd),
	}
}

//nolint:forbidigo
func statusDBCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	schemaSrv := do.MustInvoke[*service.SchemaSrv](injector)

	status, err := schemaSrv.Status(ctx)
	if err != nil {
		return fmt.Errorf("get database status error: %w", err)
	}

	fmt.Printf("%-20s | %-25s | %-6s | %s \n", "Table", "Sequence", "Exists", "Rows")
	fmt.Println("-----------------------------------------------------------------")

	for _, s := range status {
		fmt.Printf("%-20s | %-25s | %-6v | %d \n", s.Name, s.Sequence, s.Exists, s.Rows)
	}

	return nil
}
