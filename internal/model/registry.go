package model

//
// registry.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/entity"
)

// NewRegistry create registry of all application entities; order define order of tables creation.
func NewRegistry() *entity.Registry {
	return entity.NewRegistry(
		&Article{},
		&Comment{},
	)
}

func NewRegistryI(_ do.Injector) (*entity.Registry, error) {
	return NewRegistry(), nil
}

var Package = do.Package(
	do.Lazy(NewRegistryI),
)
