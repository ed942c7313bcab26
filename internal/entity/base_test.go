package entity

//
// base_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"sync"
	"testing"

	"gitlab.com/kabes/go-philo/internal/assert"
	"gorm.io/gorm/schema"
)

type Foo struct {
	Base
	Name string
}

type Bar struct {
	Base
	Value int
}

type BlogPost struct {
	Base
	Title string
}

type legacy struct {
	Base
}

func (legacy) TableName() string {
	return "legacy_items"
}

func TestTableName(t *testing.T) {
	assert.Equal(t, TableName(Foo{}), "foo")
	assert.Equal(t, TableName(&Bar{}), "bar")
	assert.Equal(t, TableName(&BlogPost{}), "blogpost")
	assert.Equal(t, TableName(legacy{}), "legacy_items")
	assert.Equal(t, TableName(nil), "")
}

func TestSequenceName(t *testing.T) {
	assert.Equal(t, SequenceName("foo"), "foo_id_seq")
	assert.Equal(t, SequenceName(TableName(&BlogPost{})), "blogpost_id_seq")
}

func TestNamerSchema(t *testing.T) {
	cache := &sync.Map{}

	for _, tt := range []struct {
		model any
		table string
	}{
		{&Foo{}, "foo"},
		{&Bar{}, "bar"},
		{&BlogPost{}, "blogpost"},
	} {
		sch, err := schema.Parse(tt.model, cache, Namer{})
		assert.NoErr(t, err)
		assert.Equal(t, sch.Table, tt.table)

		pk := sch.PrioritizedPrimaryField
		assert.True(t, pk != nil)
		assert.Equal(t, pk.DBName, "id")
		assert.True(t, pk.AutoIncrement)
	}
}
