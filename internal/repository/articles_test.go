package repository

//
// articles_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"testing"

	"gitlab.com/kabes/go-philo/internal/assert"
	"gitlab.com/kabes/go-philo/internal/common"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
)

func TestArticlesRequireTransaction(t *testing.T) {
	ctx, _ := prepareTests(t)
	repo := Articles{}

	_, err := repo.ListArticles(ctx, false)
	assert.ErrSpec(t, err, db.ErrNoTransaction)

	art := model.NewArticle("a", "", false)
	_, err = repo.AddArticle(ctx, &art)
	assert.ErrSpec(t, err, db.ErrNoTransaction)

	_, err = repo.CountArticles(ctx)
	assert.ErrSpec(t, err, db.ErrNoTransaction)
}

func TestArticlesAddList(t *testing.T) {
	ctx, engine := prepareTests(t)
	repo := Articles{}

	err := db.InTransaction(ctx, engine, func(ctx context.Context) error {
		for i := range 4 {
			art := model.NewArticle(fmt.Sprintf("art %d", i), "", i%2 == 0)
			if _, err := repo.AddArticle(ctx, &art); err != nil {
				return err
			}
		}

		return nil
	})
	assert.NoErr(t, err)

	err = db.InTransaction(ctx, engine, func(ctx context.Context) error {
		cnt, err := repo.CountArticles(ctx)
		assert.NoErr(t, err)
		assert.Equal(t, cnt, 4)

		all, err := repo.ListArticles(ctx, false)
		assert.NoErr(t, err)
		assert.Len(t, all, 4)
		assert.Equal(t, all[1].Name, "art 1")
		assert.Equal(t, all[1].Content, model.DefaultArticleContent)
		assert.Equal(t, all[1].Published, false)

		published, err := repo.ListArticles(ctx, true)
		assert.NoErr(t, err)
		assert.Len(t, published, 2)
		assert.Equal(t, published[0].Name, "art 0")
		assert.Equal(t, published[1].Name, "art 2")

		art, err := repo.GetArticle(ctx, all[3].ID)
		assert.NoErr(t, err)
		assert.Equal(t, art.Name, "art 3")

		_, err = repo.GetArticle(ctx, 9999)
		assert.ErrSpec(t, err, common.ErrNoData)

		return nil
	})
	assert.NoErr(t, err)
}

func TestArticlesComments(t *testing.T) {
	ctx, engine := prepareTests(t)
	repo := Articles{}

	err := db.InTransaction(ctx, engine, func(ctx context.Context) error {
		art := model.NewArticle("art", "content", true)

		aid, err := repo.AddArticle(ctx, &art)
		if err != nil {
			return err
		}

		for _, body := range []string{"first", "second"} {
			comment := model.NewComment(aid, body)
			if _, err := repo.AddComment(ctx, &comment); err != nil {
				return err
			}
		}

		comments, err := repo.ListComments(ctx, aid)
		assert.NoErr(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, comments[0].Body, "first")
		assert.Equal(t, comments[1].ArticleID.Int64(), aid)

		comments, err = repo.ListComments(ctx, aid+1)
		assert.NoErr(t, err)
		assert.Len(t, comments, 0)

		return nil
	})
	assert.NoErr(t, err)

	// comment for not existing article violate foreign key
	err = db.InTransaction(ctx, engine, func(ctx context.Context) error {
		comment := model.NewComment(9999, "orphan")
		_, err := repo.AddComment(ctx, &comment)

		return err
	})
	assert.Err(t, err)
}

func TestStatsCountRows(t *testing.T) {
	ctx, engine := prepareTests(t)

	err := db.InTransaction(ctx, engine, func(ctx context.Context) error {
		art := model.NewArticle("art", "", true)
		_, err := Articles{}.AddArticle(ctx, &art)

		return err
	})
	assert.NoErr(t, err)

	res, err := db.InConnectionR(ctx, engine, func(conn db.Interface) (map[string]int64, error) {
		return Stats{}.CountRows(ctx, conn, model.NewRegistry().Tables())
	})
	assert.NoErr(t, err)
	assert.Equal(t, res, map[string]int64{"article": 1, "comment": 0})
}
