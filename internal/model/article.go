// Package model define entities of application stored in database.
package model

//
// article.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"gitlab.com/kabes/go-philo/internal/entity"
)

const DefaultArticleContent = "This is content"

type Article struct {
	entity.Base

	Name      string `gorm:"size:50;not null"                            json:"name"`
	Content   string `gorm:"size:1000;not null;default:'This is content'" json:"content"`
	Published bool   `gorm:"not null;default:false"                      json:"published"`
}

func NewArticle(name, content string, published bool) Article {
	if content == "" {
		content = DefaultArticleContent
	}

	return Article{
		Name:      name,
		Content:   content,
		Published: published,
	}
}

type Comment struct {
	entity.Base

	ArticleID entity.ForeignKey `gorm:"many2one:Article;ondelete:CASCADE;not null" json:"article_id"`
	Body      string            `gorm:"size:1000;not null"                          json:"body"`
}

func NewComment(articleID int64, body string) Comment {
	return Comment{
		ArticleID: entity.ForeignKey(articleID),
		Body:      body,
	}
}
