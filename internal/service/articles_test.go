package service

//
// articles_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"testing"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/assert"
	"gitlab.com/kabes/go-philo/internal/common"
)

func TestArticlesBootstrap(t *testing.T) {
	ctx, i := prepareTests(t)
	articlesSrv := do.MustInvoke[*ArticlesSrv](i)

	created, err := articlesSrv.Bootstrap(ctx)
	assert.NoErr(t, err)
	assert.True(t, created)

	articles, err := articlesSrv.ListArticles(ctx, true)
	assert.NoErr(t, err)
	assert.Len(t, articles, NumDefaultArticles)

	for idx, art := range articles {
		assert.Equal(t, art.Name, fmt.Sprintf("Something %d", idx))
		assert.Equal(t, art.Content, fmt.Sprintf("Hello world %d!", idx))
		assert.True(t, art.Published)
	}

	// second bootstrap do nothing
	created, err = articlesSrv.Bootstrap(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, created, false)

	articles, err = articlesSrv.ListArticles(ctx, false)
	assert.NoErr(t, err)
	assert.Len(t, articles, NumDefaultArticles)
}

func TestArticlesGetArticle(t *testing.T) {
	ctx, i := prepareTests(t)
	articlesSrv := do.MustInvoke[*ArticlesSrv](i)

	_, err := articlesSrv.Bootstrap(ctx)
	assert.NoErr(t, err)

	articles, err := articlesSrv.ListArticles(ctx, false)
	assert.NoErr(t, err)

	art, err := articlesSrv.GetArticle(ctx, articles[2].ID)
	assert.NoErr(t, err)
	assert.Equal(t, art.Name, "Something 2")

	_, err = articlesSrv.GetArticle(ctx, 9999)
	assert.ErrSpec(t, err, common.ErrUnknownArticle)

	_, err = articlesSrv.GetArticle(ctx, 0)
	assert.ErrSpec(t, err, common.ErrInvalidArticle)
}

func TestArticlesComments(t *testing.T) {
	ctx, i := prepareTests(t)
	articlesSrv := do.MustInvoke[*ArticlesSrv](i)

	_, err := articlesSrv.Bootstrap(ctx)
	assert.NoErr(t, err)

	articles, err := articlesSrv.ListArticles(ctx, false)
	assert.NoErr(t, err)

	aid := articles[0].ID

	comment, err := articlesSrv.AddComment(ctx, aid, "  nice article ")
	assert.NoErr(t, err)
	assert.Equal(t, comment.Body, "nice article")
	assert.True(t, comment.ID > 0)

	_, err = articlesSrv.AddComment(ctx, aid, " ")
	assert.ErrSpec(t, err, common.ErrEmptyCommentBody)

	_, err = articlesSrv.AddComment(ctx, 9999, "body")
	assert.ErrSpec(t, err, common.ErrUnknownArticle)

	comments, err := articlesSrv.ListComments(ctx, aid)
	assert.NoErr(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, comments[0].ArticleID.Int64(), aid)

	_, err = articlesSrv.ListComments(ctx, 9999)
	assert.ErrSpec(t, err, common.ErrUnknownArticle)
}
