package entity

//
// registry.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"slices"
	"sync"
)

// Registry keep list of entities (models) mapped to database tables.
// Order of registration is preserved; schema is created in this order.
type Registry struct {
	mu     sync.RWMutex
	models []any
	tables []string
}

type TableInfo struct {
	Name     string
	Sequence string
}

func NewRegistry(models ...any) *Registry {
	r := &Registry{}
	r.Register(models...)

	return r
}

// Register add models to registry. Model which table is already registered is skipped.
func (r *Registry) Register(models ...any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range models {
		table := TableName(m)
		if table == "" || slices.Contains(r.tables, table) {
			continue
		}

		r.models = append(r.models, m)
		r.tables = append(r.tables, table)
	}

	return r
}

func (r *Registry) Models() []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.models)
}

func (r *Registry) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.tables)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tables)
}

func (r *Registry) Describe() []TableInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]TableInfo, 0, len(r.tables))
	for _, t := range r.tables {
		res = append(res, TableInfo{Name: t, Sequence: SequenceName(t)})
	}

	return res
}
