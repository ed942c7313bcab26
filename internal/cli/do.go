package cli

//
// do.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
	"gitlab.com/kabes/go-philo/internal/repository"
	"gitlab.com/kabes/go-philo/internal/service"
)

const shutdownTimeout = 10 * time.Second

func createInjector(ctx context.Context, debugFlags config.DebugFlags) *do.RootScope {
	injector := do.New(
		db.Package,
		model.Package,
		repository.Package,
		service.Package,
	)

	if debugFlags.HasFlag(config.DebugDo) {
		enableDoDebug(ctx, injector)
	}

	return injector
}

func shutdownInjector(ctx context.Context, injector *do.RootScope) {
	logger := log.Ctx(ctx)

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	report := injector.ShutdownWithContext(ctx)
	if report != nil && !report.Succeed {
		logger.Error().Msgf("shutdown services error: %s", report.Error())
	}

	logger.Debug().Msg("services stopped")
}

func enableDoDebug(ctx context.Context, injector *do.RootScope) {
	logger := log.Ctx(ctx)

	injector.AddBeforeInvocationHook(func(_ *do.Scope, serviceName string) {
		logger.Debug().Str("service", serviceName).Msg("do: invoke service")
	})
	injector.AddAfterShutdownHook(func(_ *do.Scope, serviceName string, err error) {
		logger.Debug().Err(err).Str("service", serviceName).Msg("do: service stopped")
	})

	logger.Debug().Msgf("do: available services: %v", injector.ListProvidedServices())

	explanation := do.ExplainInjector(injector)
	logger.Debug().Msg(explanation.String())
}
