package server

//
// articles.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/hlog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-philo/internal/common"
	"gitlab.com/kabes/go-philo/internal/server/srvsupport"
	"gitlab.com/kabes/go-philo/internal/service"
)

type articlesResource struct {
	articlesSrv *service.ArticlesSrv
}

func newArticlesResource(i do.Injector) (articlesResource, error) {
	return articlesResource{
		articlesSrv: do.MustInvoke[*service.ArticlesSrv](i),
	}, nil
}

func (a articlesResource) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", a.list)
	r.Route("/{articleid:[0-9]+}", func(r chi.Router) {
		r.Get("/", a.get)
		r.Get("/comments", a.listComments)
		r.Post("/comments", a.addComment)
	})

	return r
}

func (a articlesResource) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := hlog.FromRequest(r)

	publishedOnly := r.URL.Query().Get("all") == ""

	articles, err := a.articlesSrv.ListArticles(ctx, publishedOnly)
	if err != nil {
		logger.Error().Err(err).Msg("list articles error")
		srvsupport.CheckAndWriteError(w, r, err)

		return
	}

	srvsupport.RenderJSON(w, r, articles)
}

func (a articlesResource) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := hlog.FromRequest(r)

	articleID, ok := articleIDParam(w, r)
	if !ok {
		return
	}

	article, err := a.articlesSrv.GetArticle(ctx, articleID)
	if err != nil {
		logger.Info().Err(err).Int64(common.LogKeyArticleID, articleID).Msg("get article error")
		srvsupport.CheckAndWriteError(w, r, err)

		return
	}

	srvsupport.RenderJSON(w, r, article)
}

func (a articlesResource) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := hlog.FromRequest(r)

	articleID, ok := articleIDParam(w, r)
	if !ok {
		return
	}

	comments, err := a.articlesSrv.ListComments(ctx, articleID)
	if err != nil {
		logger.Info().Err(err).Int64(common.LogKeyArticleID, articleID).Msg("list comments error")
		srvsupport.CheckAndWriteError(w, r, err)

		return
	}

	srvsupport.RenderJSON(w, r, comments)
}

func (a articlesResource) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := hlog.FromRequest(r)

	articleID, ok := articleIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Body string `json:"body"`
	}

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		logger.Info().Err(err).Msg("error decoding json payload")
		srvsupport.WriteError(w, r, http.StatusBadRequest, "invalid request")

		return
	}

	comment, err := a.articlesSrv.AddComment(ctx, articleID, req.Body)
	if err != nil {
		logger.Info().Err(err).Int64(common.LogKeyArticleID, articleID).Msg("add comment error")
		srvsupport.CheckAndWriteError(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	srvsupport.RenderJSON(w, r, comment)
}

func articleIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	articleID, err := strconv.ParseInt(chi.URLParam(r, "articleid"), 10, 64)
	if err != nil {
		srvsupport.WriteError(w, r, http.StatusBadRequest, "invalid article id")

		return 0, false
	}

	return articleID, true
}
