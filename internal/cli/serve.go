package cli

//
// serve.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Merovius/systemd"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/server"
)

func newStartServerCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   ":8080",
				Usage:   "listen address",
				Aliases: []string{"a"},
				Sources: cli.EnvVars("PHILO_SERVER_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "web-root",
				Value:   "/",
				Usage:   "path root",
				Sources: cli.EnvVars("PHILO_SERVER_WEBROOT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.BoolFlag{
				Name:    "enable-metrics",
				Usage:   "enable prometheus metrics (/metrics endpoint)",
				Sources: cli.EnvVars("PHILO_SERVER_METRICS"),
			},
			&cli.StringFlag{
				Name:      "cert",
				Usage:     "tls certificate file",
				Sources:   cli.EnvVars("PHILO_SERVER_CERT"),
				Config:    cli.StringConfig{TrimSpace: true},
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "key",
				Usage:     "tls key file",
				Sources:   cli.EnvVars("PHILO_SERVER_KEY"),
				Config:    cli.StringConfig{TrimSpace: true},
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "bootstrap",
				Usage:   "create database and default articles before start",
				Sources: cli.EnvVars("PHILO_SERVER_BOOTSTRAP"),
			},
		},
		Action: wrap(startServerCmd),
	}
}

func startServerCmd(ctx context.Context, clicmd *cli.Command, rootInjector do.Injector) error {
	injector := rootInjector.Scope("server", server.Package)

	serverConf := config.ServerConf{
		Address:       strings.TrimSpace(clicmd.String("address")),
		WebRoot:       clicmd.String("web-root"),
		TLSKey:        clicmd.String("key"),
		TLSCert:       clicmd.String("cert"),
		DebugFlags:    config.NewDebugFlags(clicmd.String("debug")),
		EnableMetrics: clicmd.Bool("enable-metrics"),
	}

	if err := serverConf.Validate(); err != nil {
		return aerr.Wrapf(err, "server config validation failed")
	}

	do.ProvideValue(injector, &serverConf)

	if clicmd.Bool("bootstrap") {
		if err := seedCmd(ctx, clicmd, injector); err != nil {
			return err
		}
	}

	return startServer(ctx, injector, &serverConf)
}

func startServer(ctx context.Context, injector do.Injector, cfg *config.ServerConf) error {
	logger := log.Ctx(ctx)
	logger.Log().Msgf("Starting philo (%s)...", config.VersionString)
	logger.Debug().Msgf("Server: debug_flags=%q", cfg.DebugFlags)

	startSystemdWatchdog(logger)

	if cfg.EnableMetrics {
		engine := do.MustInvoke[*db.Engine](injector)

		err := engine.RegisterMetrics(prometheus.DefaultRegisterer,
			cfg.DebugFlags.HasFlag(config.DebugDBQueryMetrics))
		if err != nil {
			return aerr.Wrapf(err, "register metrics failed")
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := do.MustInvoke[*server.Server](injector)
	if err := srv.Start(ctx); err != nil {
		logger.Error().Err(err).Msgf("start server failed error=%q", err)

		return aerr.Wrapf(err, "failed start server")
	}

	systemd.NotifyReady()           //nolint:errcheck
	systemd.NotifyStatus("running") //nolint:errcheck

	<-ctx.Done()

	logger.Log().Msg("Stopping...")
	systemd.NotifyStatus("stopped") //nolint:errcheck

	return nil
}

func startSystemdWatchdog(logger *zerolog.Logger) {
	if ok, dur, err := systemd.AutoWatchdog(); ok {
		logger.Info().Msgf("Systemd: autowatchdog started; duration=%s", dur)
	} else if err != nil {
		logger.Warn().Err(err).Msgf("Systemd: autowatchdog start error=%q", err)
	}
}
