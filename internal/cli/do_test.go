package cli

//
// do_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"testing"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/assert"
	"gitlab.com/kabes/go-philo/internal/config"
	"gitlab.com/kabes/go-philo/internal/db"
)

func TestCreateInjectorWithDoDebug(t *testing.T) {
	ctx := context.Background()

	injector := createInjector(ctx, config.NewDebugFlags("do"))
	defer shutdownInjector(ctx, injector)

	assert.True(t, len(injector.ListProvidedServices()) > 0)

	do.ProvideValue(injector, config.NewSqliteConfig(":memory:"))

	engine, err := do.Invoke[*db.Engine](injector)
	assert.NoErr(t, err)
	assert.Equal(t, engine.Driver(), config.DriverSqlite3)
}
