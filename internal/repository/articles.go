package repository

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

	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-philo/internal/common"
	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
	"gorm.io/gorm"
)

// Articles is orm-based repository; every method use session from context.
type Articles struct{}

func (Articles) AddArticle(ctx context.Context, article *model.Article) (int64, error) {
	sess, err := db.SessionCtx(ctx)
	if err != nil {
		return 0, err
	}

	log.Ctx(ctx).Debug().Str("name", article.Name).Msg("insert article")

	if err := sess.Create(article).Error; err != nil {
		return 0, fmt.Errorf("insert article error: %w", err)
	}

	return article.ID, nil
}

func (Articles) GetArticle(ctx context.Context, articleID int64) (*model.Article, error) {
	sess, err := db.SessionCtx(ctx)
	if err != nil {
		return nil, err
	}

	article := model.Article{}

	err = sess.First(&article, articleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNoData
	} else if err != nil {
		return nil, fmt.Errorf("get article error: %w", err)
	}

	return &article, nil
}

func (Articles) ListArticles(ctx context.Context, publishedOnly bool) ([]model.Article, error) {
	sess, err := db.SessionCtx(ctx)
	if err != nil {
		return nil, err
	}

	query := sess.Order("id")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	res := []model.Article{}
	if err := query.Find(&res).Error; err != nil {
		return nil, fmt.Errorf("list articles error: %w", err)
	}

	log.Ctx(ctx).Debug().Msgf("query result len=%d", len(res))

	return res, nil
}

func (Articles) CountArticles(ctx context.Context) (int64, error) {
	sess, err := db.SessionCtx(ctx)
	if err != nil {
		return 0, err
	}

	var cnt int64
	if err := sess.Model(&model.Article{}).Count(&cnt).Error; err != nil {
		return 0, fmt.Errorf("count articles error: %w", err)
	}

	return cnt, nil
}

func (Articles) AddComment(ctx context.Context, comment *model.Comment) (int64, error) {
	sess, err := db.SessionCtx(ctx)
	if err != nil {
		return 0, err
	}

	log.Ctx(ctx).Debug().Int64(common.LogKeyArticleID, comment.ArticleID.Int64()).Msg("insert comment")

	if err := sess.Create(comment).Error; err != nil {
		return 0, fmt.Errorf("insert comment error: %w", err)
	}

	return comment.ID, nil
}

func (Articles) ListComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	sess, err := db.SessionCtx(ctx)
	if err != nil {
		return nil, err
	}

	res := []model.Comment{}

	err = sess.Where("article_id = ?", articleID).Order("id").Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list comments error: %w", err)
	}

	return res, nil
}
