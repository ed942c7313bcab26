package model

//
// registry_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-philo/internal/assert"
	"gitlab.com/kabes/go-philo/internal/entity"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, reg.Tables(), []string{"article", "comment"})
	assert.Equal(t, reg.Describe(), []entity.TableInfo{
		{Name: "article", Sequence: "article_id_seq"},
		{Name: "comment", Sequence: "comment_id_seq"},
	})
}

func TestNewArticle(t *testing.T) {
	art := NewArticle("name", "", true)
	assert.Equal(t, art.Content, DefaultArticleContent)
	assert.True(t, art.Published)

	art = NewArticle("name", "content", false)
	assert.Equal(t, art.Content, "content")
	assert.Equal(t, art.ID, 0)
}
