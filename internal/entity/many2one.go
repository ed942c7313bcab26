package entity

//
// many2one.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Column describe integer column that reference primary key of other entity.
type Column struct {
	// Table is name of referenced table.
	Table string
	// References is referenced column in form `table.id`.
	References string
	OnDelete   string
	OnUpdate   string
}

type ColumnOption func(*Column)

// OnDelete set action executed on delete referenced row (CASCADE, SET NULL, ...).
func OnDelete(action string) ColumnOption {
	return func(c *Column) {
		c.OnDelete = strings.ToUpper(strings.TrimSpace(action))
	}
}

// OnUpdate set action executed on update of referenced key.
func OnUpdate(action string) ColumnOption {
	return func(c *Column) {
		c.OnUpdate = strings.ToUpper(strings.TrimSpace(action))
	}
}

// Many2One create foreign key column referencing `id` of entity named `className`.
// Referenced entity is not checked; this happen on schema creation.
func Many2One(className string, opts ...ColumnOption) Column {
	table := Namer{}.TableName(className)

	col := Column{
		Table:      table,
		References: table + ".id",
	}

	for _, o := range opts {
		o(&col)
	}

	return col
}

// SQLType return column definition for given dialect.
func (c Column) SQLType(dialect string) string {
	var sql strings.Builder

	if dialect == "postgres" {
		sql.WriteString("bigint")
	} else {
		sql.WriteString("integer")
	}

	sql.WriteString(" REFERENCES ")
	sql.WriteString(c.Table)
	sql.WriteString("(id)")

	if c.OnDelete != "" {
		sql.WriteString(" ON DELETE ")
		sql.WriteString(c.OnDelete)
	}

	if c.OnUpdate != "" {
		sql.WriteString(" ON UPDATE ")
		sql.WriteString(c.OnUpdate)
	}

	return sql.String()
}

//------------------------------------------------------------------------------

// ForeignKey is type of column created by Many2One. Target entity is defined in tag, i.e.:
//
//	ArticleID entity.ForeignKey `gorm:"many2one:Article;ondelete:CASCADE;not null"`
//
// Without `many2one` tag column is plain integer.
type ForeignKey int64

func (f ForeignKey) Int64() int64 {
	return int64(f)
}

// GormDBDataType is called by orm migrator when table is created.
func (ForeignKey) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	target := field.TagSettings["MANY2ONE"]
	if target == "" {
		return ""
	}

	col := Many2One(target,
		OnDelete(field.TagSettings["ONDELETE"]),
		OnUpdate(field.TagSettings["ONUPDATE"]),
	)

	return col.SQLType(db.Dialector.Name())
}
