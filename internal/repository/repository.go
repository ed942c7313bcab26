package repository

//
// repository.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"gitlab.com/kabes/go-philo/internal/db"
	"gitlab.com/kabes/go-philo/internal/model"
)

// ArticlesRepository require transactional context (db.InTransaction).
type ArticlesRepository interface {
	AddArticle(ctx context.Context, article *model.Article) (int64, error)
	GetArticle(ctx context.Context, articleID int64) (*model.Article, error)
	ListArticles(ctx context.Context, publishedOnly bool) ([]model.Article, error)
	CountArticles(ctx context.Context) (int64, error)
	AddComment(ctx context.Context, comment *model.Comment) (int64, error)
	ListComments(ctx context.Context, articleID int64) ([]model.Comment, error)
}

// StatsRepository run raw queries on database connection (db.InConnectionR).
type StatsRepository interface {
	CountRows(ctx context.Context, conn db.Queryer, tables []string) (map[string]int64, error)
}
