package entity

//
// many2one_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"sync"
	"testing"

	"gitlab.com/kabes/go-philo/internal/assert"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type Comment struct {
	Base
	FooID ForeignKey `gorm:"many2one:Foo;ondelete:cascade;not null"`
	Ref   ForeignKey
	Text  string
}

func TestMany2One(t *testing.T) {
	col := Many2One("Foo")
	assert.Equal(t, col.Table, "foo")
	assert.Equal(t, col.References, "foo.id")
	assert.Equal(t, col.OnDelete, "")
	assert.Equal(t, col.SQLType("sqlite"), "integer REFERENCES foo(id)")
	assert.Equal(t, col.SQLType("postgres"), "bigint REFERENCES foo(id)")

	// referenced entity is not validated
	col = Many2One("NotExisting", OnDelete("set null"), OnUpdate(" cascade"))
	assert.Equal(t, col.References, "notexisting.id")
	assert.Equal(t, col.SQLType("sqlite"),
		"integer REFERENCES notexisting(id) ON DELETE SET NULL ON UPDATE CASCADE")
}

func TestForeignKeyDataType(t *testing.T) {
	sch, err := schema.Parse(&Comment{}, &sync.Map{}, Namer{})
	assert.NoErr(t, err)

	sqliteDB := &gorm.DB{Config: &gorm.Config{Dialector: sqlite.Open("unused.db")}}
	pgDB := &gorm.DB{Config: &gorm.Config{Dialector: postgres.New(postgres.Config{DSN: "host=unused"})}}

	field := sch.LookUpField("foo_id")
	assert.True(t, field != nil)
	assert.Equal(t, ForeignKey(0).GormDBDataType(sqliteDB, field),
		"integer REFERENCES foo(id) ON DELETE CASCADE")
	assert.Equal(t, ForeignKey(0).GormDBDataType(pgDB, field),
		"bigint REFERENCES foo(id) ON DELETE CASCADE")

	// no many2one tag - default type
	field = sch.LookUpField("ref")
	assert.True(t, field != nil)
	assert.Equal(t, ForeignKey(0).GormDBDataType(sqliteDB, field), "")
}
