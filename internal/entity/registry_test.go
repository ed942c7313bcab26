package entity

//
// registry_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-philo/internal/assert"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, reg.Len(), 0)
	assert.Len(t, reg.Tables(), 0)

	reg.Register(&Foo{}, &Bar{})
	assert.Equal(t, reg.Len(), 2)
	assert.Equal(t, reg.Tables(), []string{"foo", "bar"})

	// duplicates are ignored
	reg.Register(Foo{}, &BlogPost{})
	assert.Equal(t, reg.Tables(), []string{"foo", "bar", "blogpost"})
	assert.Len(t, reg.Models(), 3)

	assert.Equal(t, reg.Describe(), []TableInfo{
		{Name: "foo", Sequence: "foo_id_seq"},
		{Name: "bar", Sequence: "bar_id_seq"},
		{Name: "blogpost", Sequence: "blogpost_id_seq"},
	})
}
