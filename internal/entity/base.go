// Package entity define base for all mapped entities: table naming, default primary key,
// many-to-one references and registry of entities used to create database schema.
package entity

//
// base.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"reflect"
	"strings"

	"gorm.io/gorm/schema"
)

// Base should be embedded in every entity. Provide auto-incremented primary key `id`.
type Base struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
}

// Namer is naming strategy for orm; table name is lower-cased name of the type.
type Namer struct {
	schema.NamingStrategy
}

func (Namer) TableName(str string) string {
	return strings.ToLower(str)
}

// TableName return name of table for given model (struct or pointer to struct).
// Models that implement schema.Tabler use own name.
func TableName(model any) string {
	if t, ok := model.(schema.Tabler); ok {
		return t.TableName()
	}

	typ := reflect.TypeOf(model)
	if typ == nil {
		return ""
	}

	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return Namer{}.TableName(typ.Name())
}

// SequenceName return name of sequence used for generating `id` in table.
func SequenceName(table string) string {
	return table + "_id_seq"
}
