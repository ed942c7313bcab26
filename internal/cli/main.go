package cli

//
// main.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/config"
)

//nolint:forbidigo
func Main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "print-version",
		Aliases: []string{"V"},
		Usage:   "Print version.",
	}

	cli := &cli.Command{
		Name:    "philo",
		Usage:   "demo application of orm helpers",
		Version: config.VersionString,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "database",
				Value:     "philo.sqlite",
				Usage:     "Database file or connection string",
				Aliases:   []string{"D"},
				Sources:   cli.EnvVars("PHILO_DB"),
				Validator: dbConnstrValidator,
				Config:    cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "db.driver",
				Value:   config.DriverSqlite3,
				Usage:   "Database driver (sqlite3, sqlite/modernc, postgres)",
				Sources: cli.EnvVars("PHILO_DB_DRIVER"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("PHILO_LOGLEVEL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.format",
				Value:   "console",
				Usage:   "Log format (console, logfmt, json, journald, syslog)",
				Sources: cli.EnvVars("PHILO_LOGFORMAT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "debug",
				Usage:   "Debug flags (sql, do, querymetrics, router, all)",
				Sources: cli.EnvVars("PHILO_DEBUG"),
			},
		},
		Commands: []*cli.Command{
			newSeedCmd(),
			newStartServerCmd(),
			databaseSubCmd(),
			articlesSubCmd(),
		},
	}

	if err := cli.Run(context.Background(), os.Args); err != nil {
		if h := aerr.GetUserMessage(err); h != "" {
			fmt.Printf("Error: %s\n", h)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}

		if cli.String("log.level") == "debug" {
			fmt.Printf("Error: %#+v\n", err)
		}

		os.Exit(1)
	}
}

func databaseSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "database",
		Usage: "manage database",
		Commands: []*cli.Command{
			newInitDBCmd(),
			newDropDBCmd(),
			newStatusDBCmd(),
		},
	}
}

func articlesSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "article",
		Usage: "manage articles",
		Commands: []*cli.Command{
			newListArticlesCmd(),
		},
	}
}

//---------------------------------------------------------------------

func dbConnstrValidator(connstr string) error {
	if connstr == "" {
		return aerr.New("database connection string cannot be empty")
	}

	return nil
}
