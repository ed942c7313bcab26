package service

//
// articles.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/aerr"
	"gitlab.com/kabes/go-philo/internal/common"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/entity"
	"gitlab.com/kabes/go-philo/internal/model"
	"gitlab.com/kabes/go-philo/internal/repository"
)

// NumDefaultArticles is number of articles created by SeedDefaults.
const NumDefaultArticles = 17

type ArticlesSrv struct {
	db           *db.Engine
	registry     *entity.Registry
	articlesRepo repository.ArticlesRepository
}

func NewArticlesSrv(i do.Injector) (*ArticlesSrv, error) {
	return &ArticlesSrv{
		db:           do.MustInvoke[*db.Engine](i),
		registry:     do.MustInvoke[*entity.Registry](i),
		articlesRepo: do.MustInvoke[repository.ArticlesRepository](i),
	}, nil
}

// SeedDefaults insert default, published articles in one transaction.
func (a *ArticlesSrv) SeedDefaults(ctx context.Context) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, a.db, func(ctx context.Context) error {
		for i := range NumDefaultArticles {
			article := model.NewArticle(
				fmt.Sprintf("Something %d", i),
				fmt.Sprintf("Hello world %d!", i),
				true,
			)

			if _, err := a.articlesRepo.AddArticle(ctx, &article); err != nil {
				return aerr.ApplyFor(ErrRepositoryError, err, "insert default article failed")
			}
		}

		log.Ctx(ctx).Info().Msgf("%d default articles created", NumDefaultArticles)

		return nil
	})
}

// Bootstrap create database schema and default articles when database is empty.
// Return true when schema was created.
func (a *ArticlesSrv) Bootstrap(ctx context.Context) (bool, error) {
	created, err := db.InitDB(ctx, a.db, a.registry)
	if err != nil {
		return false, aerr.ApplyFor(ErrRepositoryError, err, "create schema failed")
	}

	if !created {
		log.Ctx(ctx).Info().Msg("database already initialized")

		return false, nil
	}

	if err := a.SeedDefaults(ctx); err != nil {
		return true, err
	}

	return true, nil
}

func (a *ArticlesSrv) ListArticles(ctx context.Context, publishedOnly bool) ([]model.Article, error) {
	//nolint:wrapcheck
	return db.InTransactionR(ctx, a.db, func(ctx context.Context) ([]model.Article, error) {
		articles, err := a.articlesRepo.ListArticles(ctx, publishedOnly)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		return articles, nil
	})
}

func (a *ArticlesSrv) GetArticle(ctx context.Context, articleID int64) (*model.Article, error) {
	if articleID <= 0 {
		return nil, common.ErrInvalidArticle
	}

	//nolint:wrapcheck
	return db.InTransactionR(ctx, a.db, func(ctx context.Context) (*model.Article, error) {
		article, err := a.articlesRepo.GetArticle(ctx, articleID)
		if errors.Is(err, common.ErrNoData) {
			return nil, common.ErrUnknownArticle
		} else if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		return article, nil
	})
}

func (a *ArticlesSrv) AddComment(ctx context.Context, articleID int64, body string) (*model.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, common.ErrEmptyCommentBody
	}

	//nolint:wrapcheck
	return db.InTransactionR(ctx, a.db, func(ctx context.Context) (*model.Comment, error) {
		_, err := a.articlesRepo.GetArticle(ctx, articleID)
		if errors.Is(err, common.ErrNoData) {
			return nil, common.ErrUnknownArticle
		} else if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		comment := model.NewComment(articleID, body)
		if _, err := a.articlesRepo.AddComment(ctx, &comment); err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err, "insert comment failed")
		}

		return &comment, nil
	})
}

func (a *ArticlesSrv) ListComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	//nolint:wrapcheck
	return db.InTransactionR(ctx, a.db, func(ctx context.Context) ([]model.Comment, error) {
		_, err := a.articlesRepo.GetArticle(ctx, articleID)
		if errors.Is(err, common.ErrNoData) {
			return nil, common.ErrUnknownArticle
		} else if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		comments, err := a.articlesRepo.ListComments(ctx, articleID)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		return comments, nil
	})
}
