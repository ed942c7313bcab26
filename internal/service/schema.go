package service

//
// schema.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/entity"
	"gitlab.com/kabes/go-philo/internal/repository"
)

type TableStatus struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
	Exists   bool   `json:"exists"`
	Rows     int64  `json:"rows"`
}

type SchemaSrv struct {
	db        *db.Engine
	registry  *entity.Registry
	statsRepo repository.StatsRepository
}

func NewSchemaSrv(i do.Injector) (*SchemaSrv, error) {
	return &SchemaSrv{
		db:        do.MustInvoke[*db.Engine](i),
		registry:  do.MustInvoke[*entity.Registry](i),
		statsRepo: do.MustInvoke[repository.StatsRepository](i),
	}, nil
}

func (s *SchemaSrv) InitDB(ctx context.Context) (bool, error) {
	created, err := db.InitDB(ctx, s.db, s.registry)
	if err != nil {
		return false, aerr.ApplyFor(ErrRepositoryError, err, "create schema failed")
	}

	return created, nil
}

func (s *SchemaSrv) DropDB(ctx context.Context) error {
	if err := db.DropDB(ctx, s.db, s.registry); err != nil {
		return aerr.ApplyFor(ErrRepositoryError, err, "drop schema failed")
	}

	return nil
}

// Status return information about registered tables. Rows are counted only for existing tables.
func (s *SchemaSrv) Status(ctx context.Context) ([]TableStatus, error) {
	tables := s.registry.Describe()
	res := make([]TableStatus, 0, len(tables))
	existing := make([]string, 0, len(tables))

	for _, t := range tables {
		exists, err := s.db.HasTable(ctx, t.Name)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err, "check table failed")
		}

		res = append(res, TableStatus{Name: t.Name, Sequence: t.Sequence, Exists: exists})

		if exists {
			existing = append(existing, t.Name)
		}
	}

	counts, err := db.InConnectionR(ctx, s.db, func(conn db.Interface) (map[string]int64, error) {
		return s.statsRepo.CountRows(ctx, conn, existing)
	})
	if err != nil {
		return nil, aerr.ApplyFor(ErrRepositoryError, err, "count rows failed")
	}

	for i := range res {
		res[i].Rows = counts[res[i].Name]
	}

	return res, nil
}
